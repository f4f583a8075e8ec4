package ptree

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// voidElements are HTML elements that never carry children and are
// emitted self-closing.
var voidElements = map[string]bool{
	"br":  true,
	"hr":  true,
	"img": true,
}

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	withKeys bool
}

// WithKeys emits each node's key as a data-key attribute. Keys are
// omitted by default to keep output minimal; enabling them makes sibling
// identity visible to downstream tooling.
func WithKeys() HTMLOption { return func(r *htmlRenderer) { r.withKeys = true } }

// RenderHTML serializes a presentation tree to compact HTML.
//
// Output is deterministic: attributes are written in sorted order, text
// and attribute values are escaped, and void elements (br, img, hr) are
// self-closed. A nil or empty tree yields a nil byte slice, preserving
// the "nothing" sentinel through serialization.
//
// RenderHTML does not modify the tree and is safe for concurrent use.
func RenderHTML(nodes []*Node, opts ...HTMLOption) []byte {
	if len(nodes) == 0 {
		return nil
	}
	r := htmlRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		r.writeNode(&buf, n)
	}
	return buf.Bytes()
}

func (r *htmlRenderer) writeNode(buf *bytes.Buffer, n *Node) {
	if n == nil {
		return
	}
	if n.IsText() {
		buf.WriteString(escapeText(n.Text))
		return
	}

	buf.WriteByte('<')
	buf.WriteString(n.Tag)
	r.writeAttrs(buf, n)

	if voidElements[n.Tag] {
		buf.WriteString("/>")
		return
	}

	buf.WriteByte('>')
	for _, c := range n.Children {
		r.writeNode(buf, c)
	}
	fmt.Fprintf(buf, "</%s>", n.Tag)
}

func (r *htmlRenderer) writeAttrs(buf *bytes.Buffer, n *Node) {
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		fmt.Fprintf(buf, ` %s="%s"`, k, escapeAttr(n.Attrs[k]))
	}
	if r.withKeys && n.Key != "" {
		fmt.Fprintf(buf, ` data-key="%s"`, escapeAttr(n.Key))
	}
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
)

func escapeText(s string) string { return textEscaper.Replace(s) }
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
