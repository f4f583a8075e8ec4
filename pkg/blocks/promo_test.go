package blocks

import (
	"strings"
	"testing"

	"github.com/pagesmith/pagesmith/pkg/ptree"
	"github.com/pagesmith/pagesmith/pkg/richtext"
)

func TestPromoHeadingAlwaysRendered(t *testing.T) {
	b := Promo{Heading: "Sale"}
	html := string(ptree.RenderHTML(b.Render("promo-0")))
	if !strings.Contains(html, `<h2 class="promo-heading">Sale</h2>`) {
		t.Errorf("heading missing: %s", html)
	}
}

func TestPromoSubheadingOptional(t *testing.T) {
	with := Promo{Heading: "H", Subheading: "S"}
	without := Promo{Heading: "H"}

	if html := string(ptree.RenderHTML(with.Render("promo-0"))); !strings.Contains(html, "promo-subheading") {
		t.Errorf("subheading missing when set: %s", html)
	}
	if html := string(ptree.RenderHTML(without.Render("promo-0"))); strings.Contains(html, "promo-subheading") {
		t.Errorf("subheading rendered when absent: %s", html)
	}
}

func TestPromoBodyWrapperSuppressed(t *testing.T) {
	tests := []struct {
		name     string
		body     *richtext.Root
		wantBody bool
	}{
		{name: "nil body", body: nil, wantBody: false},
		{name: "empty body", body: &richtext.Root{}, wantBody: false},
		{name: "populated body", body: paragraphRoot("inside"), wantBody: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Promo{Heading: "H", Body: tt.body}
			html := string(ptree.RenderHTML(b.Render("promo-0")))
			if got := strings.Contains(html, "promo-body"); got != tt.wantBody {
				t.Errorf("body wrapper present = %v, want %v in %s", got, tt.wantBody, html)
			}
		})
	}
}

func TestPromoActions(t *testing.T) {
	b := Promo{
		Heading: "H",
		Actions: []Action{
			{ID: "cta-1", Label: "Buy", Target: "/buy", VisualVariant: "primary"},
			{Label: "More", Target: "/more"},
		},
	}

	nodes := b.Render("promo-0")
	var actions *ptree.Node
	for _, c := range nodes[0].Children {
		if c.Attr("class") == "promo-actions" {
			actions = c
		}
	}
	if actions == nil {
		t.Fatal("actions container missing")
	}
	if len(actions.Children) != 2 {
		t.Fatalf("action count = %d, want 2", len(actions.Children))
	}

	first, second := actions.Children[0], actions.Children[1]
	if first.Key != "cta-1" {
		t.Errorf("first action key = %q, want id cta-1", first.Key)
	}
	if second.Key != "action-1" {
		t.Errorf("second action key = %q, want positional action-1", second.Key)
	}
	if first.Attr("class") != "action action-primary" {
		t.Errorf("first action class = %q", first.Attr("class"))
	}
	if second.Attr("class") != "action action-default" {
		t.Errorf("second action class = %q", second.Attr("class"))
	}
	if first.Attr("href") != "/buy" || second.Attr("href") != "/more" {
		t.Errorf("action targets = %q, %q", first.Attr("href"), second.Attr("href"))
	}
}

func TestPromoNoActionsNoContainer(t *testing.T) {
	b := Promo{Heading: "H"}
	html := string(ptree.RenderHTML(b.Render("promo-0")))
	if strings.Contains(html, "promo-actions") {
		t.Errorf("empty actions container rendered: %s", html)
	}
}

func TestPromoBackground(t *testing.T) {
	tests := []struct {
		name       string
		background Background
		want       string
	}{
		{name: "accent", background: BackgroundAccent, want: "promo-accent"},
		{name: "absent defaults", background: "", want: "promo-default"},
		{name: "unrecognized defaults", background: "plaid", want: "promo-default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Promo{Heading: "H", Background: tt.background}
			nodes := b.Render("promo-0")
			if got := nodes[0].Attr("class"); !strings.Contains(got, tt.want) {
				t.Errorf("class = %q, want containing %q", got, tt.want)
			}
		})
	}
}
