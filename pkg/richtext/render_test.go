package richtext

import (
	"testing"

	"github.com/pagesmith/pagesmith/pkg/ptree"
)

func renderHTML(t *testing.T, root *Root) string {
	t.Helper()
	return string(ptree.RenderHTML(Render(root)))
}

func TestRenderAbsenceYieldsNothing(t *testing.T) {
	tests := []struct {
		name string
		root *Root
	}{
		{name: "nil root", root: nil},
		{name: "empty children", root: &Root{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.root); got != nil {
				t.Errorf("Render() = %v, want nil sentinel", got)
			}
		})
	}

	if got := RenderDocument(nil); got != nil {
		t.Errorf("RenderDocument(nil) = %v, want nil", got)
	}
	if got := RenderDocument(&Document{}); got != nil {
		t.Errorf("RenderDocument(empty) = %v, want nil", got)
	}
}

func TestRenderSingleParagraph(t *testing.T) {
	root := &Root{Children: []Node{
		{Kind: KindParagraph, Children: []Node{
			{Kind: KindText, Text: "Hello", Format: 0},
		}},
	}}

	if got := renderHTML(t, root); got != "<p>Hello</p>" {
		t.Errorf("render = %q, want %q", got, "<p>Hello</p>")
	}
}

func TestRenderHeading(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{name: "h1", tag: "h1", want: `<h1 class="rt-h1">T</h1>`},
		{name: "h6", tag: "h6", want: `<h6 class="rt-h6">T</h6>`},
		{name: "absent tag falls back to h2", tag: "", want: `<h2 class="rt-h2">T</h2>`},
		{name: "unrecognized tag falls back to h2", tag: "h9", want: `<h2 class="rt-h2">T</h2>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &Root{Children: []Node{
				{Kind: KindHeading, Tag: tt.tag, Children: []Node{{Kind: KindText, Text: "T"}}},
			}}
			if got := renderHTML(t, root); got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	item := []Node{{Kind: KindListItem, Children: []Node{{Kind: KindText, Text: "i"}}}}

	tests := []struct {
		name     string
		listKind string
		want     string
	}{
		{name: "ordered", listKind: ListKindOrdered, want: "<ol><li>i</li></ol>"},
		{name: "unordered", listKind: ListKindUnordered, want: "<ul><li>i</li></ul>"},
		{name: "unknown defaults to bulleted", listKind: "fancy", want: "<ul><li>i</li></ul>"},
		{name: "absent defaults to bulleted", listKind: "", want: "<ul><li>i</li></ul>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &Root{Children: []Node{{Kind: KindList, ListKind: tt.listKind, Children: item}}}
			if got := renderHTML(t, root); got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderQuoteAndLineBreak(t *testing.T) {
	root := &Root{Children: []Node{
		{Kind: KindQuote, Children: []Node{{Kind: KindText, Text: "q"}}},
		{Kind: KindLineBreak},
	}}
	want := "<blockquote>q</blockquote><br/>"
	if got := renderHTML(t, root); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRenderLink(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "target and same window",
			node: Node{Kind: KindLink, LinkTarget: "/about", Children: []Node{{Kind: KindText, Text: "go"}}},
			want: `<a href="/about">go</a>`,
		},
		{
			name: "absent target falls back to safe no-op",
			node: Node{Kind: KindLink, Children: []Node{{Kind: KindText, Text: "go"}}},
			want: `<a href="#">go</a>`,
		},
		{
			name: "new window always pairs target with rel",
			node: Node{Kind: KindLink, LinkTarget: "https://x.test", OpensNewWindow: true, Children: []Node{{Kind: KindText, Text: "go"}}},
			want: `<a href="https://x.test" rel="noopener noreferrer" target="_blank">go</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &Root{Children: []Node{tt.node}}
			if got := renderHTML(t, root); got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderUnknownKind(t *testing.T) {
	t.Run("with children renders children in place", func(t *testing.T) {
		root := &Root{Children: []Node{
			{Kind: "futureKind123", Children: []Node{
				{Kind: KindText, Text: "one"},
				{Kind: KindText, Text: "two"},
			}},
		}}
		// Both children survive, undecorated by any known-kind wrapper.
		if got := renderHTML(t, root); got != "onetwo" {
			t.Errorf("render = %q, want %q", got, "onetwo")
		}
	})

	t.Run("leaf renders nothing", func(t *testing.T) {
		root := &Root{Children: []Node{{Kind: "futureKind123"}}}
		if got := Render(root); got != nil {
			t.Errorf("Render() = %v, want nil", got)
		}
	})

	t.Run("does not suppress siblings", func(t *testing.T) {
		root := &Root{Children: []Node{
			{Kind: KindParagraph, Children: []Node{{Kind: KindText, Text: "before"}}},
			{Kind: "futureKind123"},
			{Kind: KindParagraph, Children: []Node{{Kind: KindText, Text: "after"}}},
		}}
		if got := renderHTML(t, root); got != "<p>before</p><p>after</p>" {
			t.Errorf("render = %q, want %q", got, "<p>before</p><p>after</p>")
		}
	})
}

func TestRenderKeys(t *testing.T) {
	root := &Root{Children: []Node{
		{Kind: KindParagraph, Children: []Node{{Kind: KindText, Text: "a"}}},
		{Kind: KindParagraph, Children: []Node{{Kind: KindText, Text: "b"}}},
	}}

	nodes := Render(root)
	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(nodes))
	}
	if nodes[0].Key != "paragraph-0" || nodes[1].Key != "paragraph-1" {
		t.Errorf("keys = %q, %q, want paragraph-0, paragraph-1", nodes[0].Key, nodes[1].Key)
	}
}

func TestRenderIdempotent(t *testing.T) {
	root := &Root{Children: []Node{
		{Kind: KindHeading, Tag: "h1", Children: []Node{{Kind: KindText, Text: "Title"}}},
		{Kind: KindParagraph, Children: []Node{
			{Kind: KindText, Text: "bold code", Format: 17},
			{Kind: KindLineBreak},
			{Kind: KindLink, LinkTarget: "/x", Children: []Node{{Kind: KindText, Text: "link"}}},
		}},
		{Kind: KindList, ListKind: ListKindOrdered, Children: []Node{
			{Kind: KindListItem, Children: []Node{{Kind: KindText, Text: "first"}}},
		}},
	}}

	first := ptree.RenderHTML(Render(root), ptree.WithKeys())
	second := ptree.RenderHTML(Render(root), ptree.WithKeys())
	if string(first) != string(second) {
		t.Errorf("repeated renders differ:\n%s\n%s", first, second)
	}
}

func TestRenderEmptyTextDegrades(t *testing.T) {
	root := &Root{Children: []Node{
		{Kind: KindParagraph, Children: []Node{
			{Kind: KindText, Text: ""},
			{Kind: KindText, Text: "kept"},
		}},
	}}
	if got := renderHTML(t, root); got != "<p>kept</p>" {
		t.Errorf("render = %q, want %q", got, "<p>kept</p>")
	}
}
