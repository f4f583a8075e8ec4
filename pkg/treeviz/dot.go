package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/pagesmith/pagesmith/pkg/ptree"
)

// Options configures tree diagram rendering.
type Options struct {
	// Detailed includes attributes in node labels.
	// When false, only the tag (or text snippet) is shown.
	Detailed bool

	// MaxTextLen truncates text node labels (default 24 runes).
	MaxTextLen int
}

const defaultMaxTextLen = 24

// ToDOT converts a presentation tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Text nodes are rendered with grey fill to distinguish them from elements.
func ToDOT(nodes []*ptree.Node, opts Options) string {
	if opts.MaxTextLen <= 0 {
		opts.MaxTextLen = defaultMaxTextLen
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var body bytes.Buffer
	ids := map[string]int{}
	for i, n := range nodes {
		writeNode(&buf, &body, n, rootID(i), ids, opts)
	}

	buf.WriteString("\n")
	buf.Write(body.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

func rootID(i int) string {
	return fmt.Sprintf("root-%d", i)
}

// writeNode emits the node statement into buf and edge statements into edges,
// so all nodes appear before all edges in the output.
func writeNode(buf, edges *bytes.Buffer, n *ptree.Node, id string, ids map[string]int, opts Options) {
	if n == nil {
		return
	}

	label := fmtLabel(n, opts)
	attrs := fmtAttrs(n, label)
	fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))

	for i, c := range n.Children {
		childID := childID(id, c, i, ids)
		writeNode(buf, edges, c, childID, ids, opts)
		fmt.Fprintf(edges, "  %q -> %q;\n", id, childID)
	}
}

// childID derives a unique graph ID for a child node. Keys are unique
// among siblings but can repeat across the tree, so a disambiguating
// counter is appended on collision.
func childID(parentID string, n *ptree.Node, i int, ids map[string]int) string {
	key := n.Key
	if key == "" {
		key = strconv.Itoa(i)
	}
	id := parentID + "/" + key
	if seen := ids[id]; seen > 0 {
		ids[id]++
		return fmt.Sprintf("%s#%d", id, seen)
	}
	ids[id] = 1
	return id
}

func fmtLabel(n *ptree.Node, opts Options) string {
	if n.IsText() {
		return snippet(n.Text, opts.MaxTextLen)
	}

	if !opts.Detailed || len(n.Attrs) == 0 {
		return n.Tag
	}

	parts := make([]string, 0, len(n.Attrs))
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, n.Attrs[k]))
	}
	return n.Tag + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(n *ptree.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsText() {
		attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

func snippet(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG, nil)
}

func render(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if post != nil {
		return post(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
