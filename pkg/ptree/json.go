package ptree

import "encoding/json"

type jsonNode struct {
	Key      string            `json:"key"`
	Tag      string            `json:"tag,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []jsonNode        `json:"children,omitempty"`
}

// RenderJSON exports a presentation tree as a pretty-printed JSON document.
// This is the primary interchange format for consumers that build their own
// markup instead of using [RenderHTML], and is convenient for golden tests.
//
// A nil or empty tree yields nil bytes, preserving the "nothing" sentinel.
// Map keys are sorted by encoding/json, so output is deterministic.
func RenderJSON(nodes []*Node) ([]byte, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	return json.MarshalIndent(buildJSONNodes(nodes), "", "  ")
}

// DecodeJSON parses a tree previously exported with [RenderJSON].
// Nil or empty input yields a nil tree.
func DecodeJSON(data []byte) ([]*Node, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw []jsonNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return rebuildNodes(raw), nil
}

func rebuildNodes(raw []jsonNode) []*Node {
	if len(raw) == 0 {
		return nil
	}
	out := make([]*Node, len(raw))
	for i, jn := range raw {
		out[i] = &Node{
			Key:      jn.Key,
			Tag:      jn.Tag,
			Text:     jn.Text,
			Attrs:    jn.Attrs,
			Children: rebuildNodes(jn.Children),
		}
	}
	return out
}

func buildJSONNodes(nodes []*Node) []jsonNode {
	out := make([]jsonNode, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, jsonNode{
			Key:      n.Key,
			Tag:      n.Tag,
			Text:     n.Text,
			Attrs:    n.Attrs,
			Children: buildJSONNodes(n.Children),
		})
	}
	return out
}
