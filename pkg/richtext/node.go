package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Node kinds recognized by the renderer. The set is closed at the type
// level but the data is not: any other string is treated as an unknown
// kind and handled by the pass-through rule.
const (
	KindText      = "text"
	KindParagraph = "paragraph"
	KindHeading   = "heading"
	KindList      = "list"
	KindListItem  = "listitem"
	KindQuote     = "quote"
	KindLink      = "link"
	KindLineBreak = "linebreak"
)

// List kinds carried by list nodes. Anything other than ListKindOrdered
// renders as a bulleted list.
const (
	ListKindOrdered   = "ordered"
	ListKindUnordered = "unordered"
)

// Node is one element of a rich-text document tree.
//
// Only a subset of fields is meaningful for any given kind: Text and
// Format on text nodes, Tag on headings, ListKind on lists, LinkTarget
// and OpensNewWindow on links. Fields irrelevant to a node's kind are
// ignored by the renderer rather than rejected.
type Node struct {
	Kind           string `json:"kind"`
	Version        int    `json:"version,omitempty"`
	Children       []Node `json:"children,omitempty"`
	Text           string `json:"text,omitempty"`
	Format         Format `json:"format,omitempty"`
	Tag            string `json:"tag,omitempty"`
	ListKind       string `json:"listKind,omitempty"`
	LinkTarget     string `json:"linkTarget,omitempty"`
	OpensNewWindow bool   `json:"opensNewWindow,omitempty"`
}

// Root is the top of a document tree: an ordered sequence of children.
type Root struct {
	Children []Node `json:"children"`
}

// Empty reports whether the root is absent or has no children.
func (r *Root) Empty() bool {
	return r == nil || len(r.Children) == 0
}

// UnmarshalJSON decodes a Root from either its plain form
// {"children": [...]} or the editor's wrapped form {"root": {...}}.
// JSON null decodes to an empty root.
func (r *Root) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		r.Children = nil
		return nil
	}

	var raw struct {
		Children []Node          `json:"children"`
		Root     json.RawMessage `json:"root"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode root: %w", err)
	}
	if len(raw.Root) > 0 && !bytes.Equal(raw.Root, []byte("null")) {
		var inner Root
		if err := json.Unmarshal(raw.Root, &inner); err != nil {
			return fmt.Errorf("decode root: %w", err)
		}
		*r = inner
		return nil
	}
	r.Children = raw.Children
	return nil
}

// Document wraps an optional Root. The Root may be nil (field never
// touched by an editor), which renders to nothing rather than erroring.
type Document struct {
	Root *Root `json:"root"`
}

// ReadDocument decodes a serialized document from r.
//
// The only error condition is input that is not a JSON object or null at
// all — that is a caller contract violation, not a degradable document
// state. Unknown fields and unknown node kinds decode without error.
func ReadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// DecodeDocument decodes a serialized document from data.
// See [ReadDocument] for error semantics.
func DecodeDocument(data []byte) (*Document, error) {
	return ReadDocument(bytes.NewReader(data))
}
