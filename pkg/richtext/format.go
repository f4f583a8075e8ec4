package richtext

import "github.com/pagesmith/pagesmith/pkg/ptree"

// Format is the bitmask encoding of inline text formatting. The editor
// stores it as a plain integer; bits above the defined flags are ignored,
// never an error.
type Format int

// Defined format flags, one per bit position.
const (
	FormatBold      Format = 1 << iota // 1
	FormatItalic                       // 2
	FormatStrike                       // 4
	FormatUnderline                    // 8
	FormatCode                         // 16
)

// TextStyle is the decoded form of a [Format] mask: one named boolean per
// flag. Decoding happens once at the boundary so the rest of the pipeline
// never repeats bit tests.
type TextStyle struct {
	Bold      bool
	Italic    bool
	Strike    bool
	Underline bool
	Code      bool
}

// Style decodes the mask into a TextStyle. Undefined bits are dropped.
func (f Format) Style() TextStyle {
	return TextStyle{
		Bold:      f&FormatBold != 0,
		Italic:    f&FormatItalic != 0,
		Strike:    f&FormatStrike != 0,
		Underline: f&FormatUnderline != 0,
		Code:      f&FormatCode != 0,
	}
}

// None reports whether no flag is set.
func (s TextStyle) None() bool {
	return s == TextStyle{}
}

// wrappers lists the style wrapper tags in nesting order, outermost
// first. The order is fixed regardless of how the mask was tested, so a
// given mask always produces the same wrapper nesting.
var wrappers = []struct {
	tag string
	on  func(TextStyle) bool
}{
	{"strong", func(s TextStyle) bool { return s.Bold }},
	{"em", func(s TextStyle) bool { return s.Italic }},
	{"s", func(s TextStyle) bool { return s.Strike }},
	{"u", func(s TextStyle) bool { return s.Underline }},
	{"code", func(s TextStyle) bool { return s.Code }},
}

// FormatText builds the presentation subtree for a text leaf: the literal
// text wrapped by one element per active flag, nested bold > italic >
// strikethrough > underline > code with bold outermost. A zero mask
// returns the bare text node. Pure function, no side effects.
func FormatText(key, text string, f Format) *ptree.Node {
	node := ptree.Text(key, text)

	style := f.Style()
	if style.None() {
		return node
	}

	// Wrap from the innermost tag outward so the declared order reads
	// outermost-first.
	for i := len(wrappers) - 1; i >= 0; i-- {
		w := wrappers[i]
		if w.on(style) {
			node = ptree.Element(w.tag, key).Append(node)
		}
	}
	return node
}
