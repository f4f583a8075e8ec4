package ptree

import "fmt"

// Node is a single node of a presentation tree. A node is either an
// element (Tag set) or a text leaf (Tag empty, Text set).
type Node struct {
	Key      string            // stable identity among siblings
	Tag      string            // element name; empty for text nodes
	Text     string            // literal text; only for text nodes
	Attrs    map[string]string // element attributes
	Children []*Node           // ordered child nodes
}

// Element creates an element node with the given tag and key.
func Element(tag, key string) *Node {
	return &Node{Tag: tag, Key: key}
}

// Text creates a text leaf with the given key and content.
func Text(key, text string) *Node {
	return &Node{Key: key, Text: text}
}

// IsText reports whether n is a text leaf.
func (n *Node) IsText() bool { return n.Tag == "" }

// SetAttr sets an attribute and returns n for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns the attribute value for key, or "" if unset.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// AddClass appends a class token to the node's class attribute.
func (n *Node) AddClass(class string) *Node {
	if class == "" {
		return n
	}
	if existing := n.Attr("class"); existing != "" {
		return n.SetAttr("class", existing+" "+class)
	}
	return n.SetAttr("class", class)
}

// Append adds children to n in order, skipping nil entries, and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// ChildKey derives the stable sibling key for a rendered node from its
// source kind and position index. Rendering the same input twice yields
// the same keys, which is what makes re-renders deterministic.
func ChildKey(kind string, index int) string {
	if kind == "" {
		kind = "node"
	}
	return fmt.Sprintf("%s-%d", kind, index)
}
