package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pagesmith/pagesmith/pkg/blocks"
	"github.com/pagesmith/pagesmith/pkg/errors"
	"github.com/pagesmith/pagesmith/pkg/ptree"
	"github.com/pagesmith/pagesmith/pkg/richtext"
)

// Page is the source model for a renderable page: an optional title,
// a rich text document, and a sequence of typed content blocks.
type Page struct {
	Title    string          `json:"title,omitempty"`
	Document *richtext.Root  `json:"document,omitempty"`
	Blocks   blocks.Sequence `json:"blocks,omitempty"`
}

// ReadPage decodes a JSON page from r.
//
// The input must be a JSON object:
//
//	{
//	  "title": "About",
//	  "document": {"children": [...]},
//	  "blocks": [{"blockKind": "media", ...}]
//	}
//
// All fields are optional. An unknown block kind does not fail decoding;
// it becomes an [blocks.Unknown] that renders nothing.
//
// ReadPage does not close r.
func ReadPage(r io.Reader) (*Page, error) {
	var p Page
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPage, err, "decode page")
	}
	return &p, nil
}

// DecodePage decodes a JSON page from data.
// See [ReadPage] for the accepted format.
func DecodePage(data []byte) (*Page, error) {
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPage, err, "decode page")
	}
	return &p, nil
}

// ImportPage reads a JSON file at path and returns the decoded page.
// The error wraps the underlying cause with the file path for context.
func ImportPage(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadPage(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return p, nil
}

// Compose builds the presentation tree for the page: the title heading
// (when present), then the document content, then the block sequence.
// A page with no renderable content yields a nil tree.
func (p *Page) Compose() []*ptree.Node {
	if p == nil {
		return nil
	}

	var out []*ptree.Node
	if p.Title != "" {
		h := ptree.Element("h1", "title")
		h.AddClass("page-title")
		h.Append(ptree.Text("text-0", p.Title))
		out = append(out, h)
	}
	out = append(out, richtext.Render(p.Document)...)
	out = append(out, blocks.RenderSequence(p.Blocks)...)
	return out
}
