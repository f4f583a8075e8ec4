package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pagesmith/pagesmith/pkg/errors"
	"github.com/pagesmith/pagesmith/pkg/ptree"
)

const samplePage = `{
  "title": "About",
  "document": {
    "children": [
      {"kind": "paragraph", "children": [{"kind": "text", "text": "Hello"}]}
    ]
  },
  "blocks": [
    {"blockKind": "promo", "id": "intro", "heading": "Welcome"}
  ]
}`

func TestDecodePage(t *testing.T) {
	p, err := DecodePage([]byte(samplePage))
	if err != nil {
		t.Fatalf("DecodePage error: %v", err)
	}
	if p.Title != "About" {
		t.Errorf("Title = %q, want About", p.Title)
	}
	if p.Document.Empty() {
		t.Error("Document should not be empty")
	}
	if len(p.Blocks) != 1 {
		t.Fatalf("Blocks = %d, want 1", len(p.Blocks))
	}
	if p.Blocks[0].BlockKind() != "promo" {
		t.Errorf("BlockKind = %q, want promo", p.Blocks[0].BlockKind())
	}
}

func TestDecodePageInvalid(t *testing.T) {
	_, err := DecodePage([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for malformed page")
	}
	if !errors.Is(err, errors.ErrCodeInvalidPage) {
		t.Errorf("expected INVALID_PAGE code, got: %v", err)
	}
}

func TestDecodePageEmpty(t *testing.T) {
	p, err := DecodePage([]byte("{}"))
	if err != nil {
		t.Fatalf("DecodePage error: %v", err)
	}
	if tree := p.Compose(); tree != nil {
		t.Errorf("empty page should compose to nothing, got %d nodes", len(tree))
	}
}

func TestReadPage(t *testing.T) {
	p, err := ReadPage(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("ReadPage error: %v", err)
	}
	if p.Title != "About" {
		t.Errorf("Title = %q, want About", p.Title)
	}
}

func TestImportPage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "about.json")
	if err := os.WriteFile(path, []byte(samplePage), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := ImportPage(path)
	if err != nil {
		t.Fatalf("ImportPage error: %v", err)
	}
	if p.Title != "About" {
		t.Errorf("Title = %q, want About", p.Title)
	}
}

func TestImportPageMissing(t *testing.T) {
	_, err := ImportPage(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("expected FILE_NOT_FOUND code, got: %v", err)
	}
}

func TestCompose(t *testing.T) {
	p, err := DecodePage([]byte(samplePage))
	if err != nil {
		t.Fatal(err)
	}

	tree := p.Compose()
	if len(tree) != 3 {
		t.Fatalf("Compose node count = %d, want 3 (title, paragraph, blocks)", len(tree))
	}

	if tree[0].Tag != "h1" || tree[0].Attr("class") != "page-title" {
		t.Errorf("first node should be the title heading, got <%s class=%q>", tree[0].Tag, tree[0].Attr("class"))
	}
	if tree[1].Tag != "p" {
		t.Errorf("second node should be the document paragraph, got <%s>", tree[1].Tag)
	}
	if tree[2].Key != "blocks" {
		t.Errorf("third node should be the block sequence wrapper, key = %q", tree[2].Key)
	}
}

func TestComposeNilPage(t *testing.T) {
	var p *Page
	if tree := p.Compose(); tree != nil {
		t.Error("nil page should compose to nothing")
	}
}

func TestComposeDeterministic(t *testing.T) {
	p, err := DecodePage([]byte(samplePage))
	if err != nil {
		t.Fatal(err)
	}

	a := ptree.RenderHTML(p.Compose())
	b := ptree.RenderHTML(p.Compose())
	if string(a) != string(b) {
		t.Error("Compose should be deterministic")
	}
}
