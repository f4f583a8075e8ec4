package blocks

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pagesmith/pagesmith/pkg/ptree"
	"github.com/pagesmith/pagesmith/pkg/richtext"
)

// ColumnCount is the layout arity of a Columns block. Editors serialize
// it as either a number or a numeric string ("2"); both decode. Values
// outside 1–3 clamp to the nearest bound, absence defaults to 1.
type ColumnCount int

// UnmarshalJSON accepts both 2 and "2". Undecodable values degrade to
// the zero value instead of failing the block.
func (c *ColumnCount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		*c = 0
		return nil
	}
	*c = ColumnCount(n)
	return nil
}

// clamp maps the raw value onto the defined arity range.
func (c ColumnCount) clamp() int {
	switch {
	case c < 1:
		return 1
	case c > 3:
		return 3
	default:
		return int(c)
	}
}

// Columns lays out one to three rich-text columns side by side.
//
// Count alone controls the grid shape: a column whose content is empty
// still renders an empty slot, and content beyond Count (stray data in
// Three when Count is 2) is ignored entirely.
type Columns struct {
	ID    string         `json:"id"`
	Count ColumnCount    `json:"columnCount"`
	One   *richtext.Root `json:"columnOne"`
	Two   *richtext.Root `json:"columnTwo"`
	Three *richtext.Root `json:"columnThree"`
}

func (b Columns) BlockKind() string { return KindColumns }

func (b Columns) BlockID() string { return b.ID }

// Render produces the column grid. Column N's content is read only when
// Count permits: Two at count >= 2, Three at count == 3.
func (b Columns) Render(key string) []*ptree.Node {
	count := b.Count.clamp()
	grid := ptree.Element("div", key).SetAttr("class", fmt.Sprintf("cols cols-%d", count))

	slots := []*richtext.Root{b.One, b.Two, b.Three}
	for i := 0; i < count; i++ {
		slot := ptree.Element("div", ptree.ChildKey("column", i)).SetAttr("class", "col")
		slot.Append(richtext.Render(slots[i])...)
		grid.Append(slot)
	}
	return []*ptree.Node{grid}
}

func decodeColumns(data json.RawMessage) (Block, error) {
	var b Columns
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return b, nil
}
