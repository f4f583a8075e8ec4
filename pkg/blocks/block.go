package blocks

import (
	"bytes"
	"encoding/json"

	"github.com/pagesmith/pagesmith/pkg/errors"
	"github.com/pagesmith/pagesmith/pkg/ptree"
)

// Block kinds with built-in renderers.
const (
	KindColumns = "columns"
	KindMedia   = "media"
	KindPromo   = "promo"
)

// Block is one self-contained, typed unit of a page layout.
//
// Render produces the block's presentation subtree under the given key,
// or nil when the block degrades to nothing. Implementations must be
// pure: no I/O, no mutation of the receiver, deterministic output for
// the same value.
type Block interface {
	// BlockKind returns the kind discriminant (e.g. "columns").
	BlockKind() string

	// BlockID returns the editor-assigned stable id, or "" if absent.
	BlockID() string

	// Render produces the presentation subtree for this block.
	Render(key string) []*ptree.Node
}

// Sequence is the ordered list of blocks composing a page body.
// Order is rendering order and is preserved exactly.
type Sequence []Block

// UnmarshalJSON decodes a sequence via the block registry. JSON null
// decodes to a nil sequence (the "no blocks" state).
func (s *Sequence) UnmarshalJSON(data []byte) error {
	seq, err := DecodeSequence(data)
	if err != nil {
		return err
	}
	*s = seq
	return nil
}

// Unknown is the degradation case for block kinds without a registered
// decoder. It renders nothing; the suppression is reported through the
// observability hooks at composition time, not here.
type Unknown struct {
	Kind string
	ID   string
}

func (b Unknown) BlockKind() string { return b.Kind }

func (b Unknown) BlockID() string { return b.ID }

// Render returns the nil sentinel: unknown blocks contribute no output.
func (b Unknown) Render(string) []*ptree.Node { return nil }

// envelope is the minimal shape peeked from every raw block before
// kind dispatch.
type envelope struct {
	BlockKind string `json:"blockKind"`
	ID        string `json:"id"`
}

// DecodeBlock decodes a single raw block using the registry.
//
// Unknown kinds and malformed known blocks both degrade to [Unknown]
// rather than failing, so one bad block can never take down its
// siblings. The only error is input that is not a JSON object.
func DecodeBlock(data json.RawMessage) (Block, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPage, err, "decode block")
	}

	decode, ok := lookup(env.BlockKind)
	if !ok {
		return Unknown{Kind: env.BlockKind, ID: env.ID}, nil
	}

	b, err := decode(data)
	if err != nil {
		return Unknown{Kind: env.BlockKind, ID: env.ID}, nil
	}
	return b, nil
}

// DecodeSequence decodes an ordered block list. JSON null yields a nil
// sequence; an empty array yields an empty one. Both render to nothing.
func DecodeSequence(data []byte) (Sequence, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPage, err, "decode block sequence")
	}

	seq := make(Sequence, 0, len(raw))
	for i, r := range raw {
		b, err := DecodeBlock(r)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPage, err, "block %d", i)
		}
		seq = append(seq, b)
	}
	return seq, nil
}
