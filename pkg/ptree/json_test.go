package ptree

import (
	"strings"
	"testing"
)

func TestRenderJSON(t *testing.T) {
	p := Element("p", "paragraph-0")
	p.Append(Text("text-0", "Hello"))

	data, err := RenderJSON([]*Node{p})
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	for _, want := range []string{`"key": "paragraph-0"`, `"tag": "p"`, `"text": "Hello"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON missing %q:\n%s", want, data)
		}
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(nil)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	if data != nil {
		t.Errorf("empty tree should yield nil bytes, got %q", data)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	fig := Element("figure", "media-0")
	fig.AddClass("media align-center")
	img := Element("img", "image-0")
	img.SetAttr("src", "https://example.com/a.png")
	img.SetAttr("width", "800")
	fig.Append(img, Text("caption-1", "A caption"))

	data, err := RenderJSON([]*Node{fig})
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}

	back, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}

	a := string(RenderHTML([]*Node{fig}, WithKeys()))
	b := string(RenderHTML(back, WithKeys()))
	if a != b {
		t.Errorf("round trip changed the tree:\n%s\n%s", a, b)
	}
}

func TestDecodeJSONEmpty(t *testing.T) {
	nodes, err := DecodeJSON(nil)
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if nodes != nil {
		t.Error("nil input should yield nil tree")
	}
}

func TestDecodeJSONInvalid(t *testing.T) {
	if _, err := DecodeJSON([]byte("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
