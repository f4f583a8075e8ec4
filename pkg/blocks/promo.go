package blocks

import (
	"encoding/json"

	"github.com/pagesmith/pagesmith/pkg/ptree"
	"github.com/pagesmith/pagesmith/pkg/richtext"
)

// Background selects the promo's visual treatment. Each value maps 1:1
// to a fixed style; anything unrecognized falls back to the default.
type Background string

const (
	BackgroundDefault   Background = "default"
	BackgroundMuted     Background = "muted"
	BackgroundPrimary   Background = "primary"
	BackgroundSecondary Background = "secondary"
	BackgroundAccent    Background = "accent"
)

func (b Background) normalize() Background {
	switch b {
	case BackgroundDefault, BackgroundMuted, BackgroundPrimary, BackgroundSecondary, BackgroundAccent:
		return b
	default:
		return BackgroundDefault
	}
}

// Action is one interactive element of a promo, rendered in input order.
type Action struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Target        string `json:"target"`
	VisualVariant string `json:"visualVariant"`
}

// Promo is a call-out region: mandatory heading, optional subheading and
// rich-text body, and an ordered set of actions.
type Promo struct {
	ID         string         `json:"id"`
	Heading    string         `json:"heading"`
	Subheading string         `json:"subheading"`
	Body       *richtext.Root `json:"body"`
	Actions    []Action       `json:"actions"`
	Background Background     `json:"backgroundStyle"`
}

func (b Promo) BlockKind() string { return KindPromo }

func (b Promo) BlockID() string { return b.ID }

// Render produces the promo region. The heading always renders; the body
// wrapper is suppressed entirely unless the body has at least one child,
// never emitted as an empty container.
func (b Promo) Render(key string) []*ptree.Node {
	sec := ptree.Element("section", key).
		SetAttr("class", "promo promo-"+string(b.Background.normalize()))

	sec.Append(ptree.Element("h2", ptree.ChildKey("heading", 0)).
		SetAttr("class", "promo-heading").
		Append(ptree.Text(ptree.ChildKey("text", 0), b.Heading)))

	if b.Subheading != "" {
		sec.Append(ptree.Element("p", ptree.ChildKey("subheading", 1)).
			SetAttr("class", "promo-subheading").
			Append(ptree.Text(ptree.ChildKey("text", 0), b.Subheading)))
	}

	if !b.Body.Empty() {
		sec.Append(ptree.Element("div", ptree.ChildKey("body", 2)).
			SetAttr("class", "promo-body").
			Append(richtext.Render(b.Body)...))
	}

	if len(b.Actions) > 0 {
		actions := ptree.Element("div", ptree.ChildKey("actions", 3)).
			SetAttr("class", "promo-actions")
		for i, a := range b.Actions {
			actions.Append(renderAction(a, i))
		}
		sec.Append(actions)
	}

	return []*ptree.Node{sec}
}

func renderAction(a Action, index int) *ptree.Node {
	key := a.ID
	if key == "" {
		key = ptree.ChildKey("action", index)
	}

	variant := a.VisualVariant
	if variant == "" {
		variant = "default"
	}

	target := a.Target
	if target == "" {
		target = "#"
	}

	return ptree.Element("a", key).
		SetAttr("class", "action action-"+variant).
		SetAttr("href", target).
		Append(ptree.Text(ptree.ChildKey("text", 0), a.Label))
}

func decodePromo(data json.RawMessage) (Block, error) {
	var b Promo
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return b, nil
}
