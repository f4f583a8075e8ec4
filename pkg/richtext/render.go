package richtext

import (
	"github.com/pagesmith/pagesmith/pkg/observability"
	"github.com/pagesmith/pagesmith/pkg/ptree"
)

// Heading tags accepted from the editor. Anything else falls back to
// defaultHeadingTag; the h1–h6 → visual weight mapping must stay total.
var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true,
}

const (
	defaultHeadingTag = "h2"
	defaultLinkTarget = "#"
)

// RenderDocument renders a wrapped document. A nil document or nil root
// yields the nil "nothing" sentinel.
func RenderDocument(doc *Document) []*ptree.Node {
	if doc == nil {
		return nil
	}
	return Render(doc.Root)
}

// Render walks a document tree and produces its presentation tree.
//
// Each node dispatches on its kind; unknown kinds with children render
// their children in place so future editor node types never drop content,
// and unknown leaves render nothing. Malformed nodes degrade to nothing
// at the smallest affected scope — a bad node never suppresses its
// siblings. Render never returns an error and never panics on
// structurally plausible input.
//
// Every produced node carries a key derived from (kind, positionIndex),
// making sibling order stable across re-renders of the same input.
func Render(root *Root) []*ptree.Node {
	if root.Empty() {
		return nil
	}
	return renderChildren(root.Children)
}

func renderChildren(nodes []Node) []*ptree.Node {
	var out []*ptree.Node
	for i, n := range nodes {
		out = append(out, renderNode(n, i)...)
	}
	return out
}

// renderNode renders a single node at the given sibling position. The
// returned slice is empty for degraded nodes and may contain several
// nodes for the unknown-kind pass-through.
func renderNode(n Node, index int) []*ptree.Node {
	key := ptree.ChildKey(n.Kind, index)

	switch n.Kind {
	case KindText:
		if n.Text == "" {
			return nil
		}
		return one(FormatText(key, n.Text, n.Format))

	case KindLineBreak:
		return one(ptree.Element("br", key))

	case KindParagraph:
		return one(ptree.Element("p", key).Append(renderChildren(n.Children)...))

	case KindHeading:
		tag := n.Tag
		if !headingTags[tag] {
			tag = defaultHeadingTag
		}
		h := ptree.Element(tag, key).AddClass("rt-" + tag)
		return one(h.Append(renderChildren(n.Children)...))

	case KindList:
		tag := "ul"
		if n.ListKind == ListKindOrdered {
			tag = "ol"
		}
		return one(ptree.Element(tag, key).Append(renderChildren(n.Children)...))

	case KindListItem:
		return one(ptree.Element("li", key).Append(renderChildren(n.Children)...))

	case KindQuote:
		return one(ptree.Element("blockquote", key).Append(renderChildren(n.Children)...))

	case KindLink:
		target := n.LinkTarget
		if target == "" {
			target = defaultLinkTarget
		}
		a := ptree.Element("a", key).SetAttr("href", target)
		if n.OpensNewWindow {
			// The new-context flag and the cross-origin safety attribute
			// travel together, never one without the other.
			a.SetAttr("target", "_blank")
			a.SetAttr("rel", "noopener noreferrer")
		}
		return one(a.Append(renderChildren(n.Children)...))

	default:
		if len(n.Children) > 0 {
			observability.Render().OnUnknownNode(n.Kind, index)
			return renderChildren(n.Children)
		}
		return nil
	}
}

func one(n *ptree.Node) []*ptree.Node {
	return []*ptree.Node{n}
}
