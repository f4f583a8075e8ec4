package blocks

import (
	"github.com/pagesmith/pagesmith/pkg/observability"
	"github.com/pagesmith/pagesmith/pkg/ptree"
)

// sequenceKey identifies the single stable container wrapping a rendered
// block sequence.
const sequenceKey = "blocks"

// RenderBlock renders one block at its sequence position.
//
// The block's key is its stable id when the editor assigned one, else
// its (kind, positionIndex) fallback; renderers are idempotent under
// either. Unknown blocks yield nil and report through the diagnostic
// hooks; they never interrupt rendering of subsequent blocks.
func RenderBlock(b Block, index int) []*ptree.Node {
	if b == nil {
		return nil
	}

	if u, ok := b.(Unknown); ok {
		observability.Render().OnUnknownBlock(u.Kind, index)
		return nil
	}

	key := b.BlockID()
	if key == "" {
		key = ptree.ChildKey(b.BlockKind(), index)
	}
	return b.Render(key)
}

// RenderSequence renders an ordered block list into a single stable
// container.
//
// A nil or empty sequence returns the nil "nothing" sentinel, not an
// empty wrapper, so callers can tell "no blocks" apart from "blocks
// that rendered empty". Otherwise per-block output appears in exact
// input order; a degraded position is skipped, not swapped.
func RenderSequence(seq Sequence) []*ptree.Node {
	if len(seq) == 0 {
		return nil
	}

	container := ptree.Element("div", sequenceKey).SetAttr("class", "page-blocks")
	for i, b := range seq {
		container.Append(RenderBlock(b, i)...)
	}
	return []*ptree.Node{container}
}
