// Package ptree defines the presentation tree produced by the rendering
// engine, together with sinks that serialize it.
//
// # Overview
//
// A presentation tree is an ordered, keyed tree of [Node] values. Element
// nodes carry a tag, attributes, and children; text nodes carry literal
// text. The tree is the output contract of the renderer: it makes no
// assumption about what consumes it beyond "stable, ordered, keyed nodes".
//
// The "nothing" sentinel is a nil (or empty) []*Node. Renderers return it
// for absent input so that callers can distinguish "no content" from
// "content that happens to be empty markup".
//
// # Sinks
//
// Two sinks serialize a tree deterministically:
//
//   - [RenderHTML]: compact HTML with escaped text, attributes in sorted
//     order, and self-closing void elements.
//   - [RenderJSON]: pretty-printed JSON for interchange and testing.
//
// Both sinks are pure functions of their input; rendering the same tree
// twice yields byte-identical output.
package ptree
