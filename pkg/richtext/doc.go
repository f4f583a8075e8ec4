// Package richtext models the serialized rich-text documents produced by
// the content editor and renders them into presentation trees.
//
// # Overview
//
// A document is a recursive tree of [Node] values, each tagged with a
// string kind (paragraph, heading, list, text, ...). The kind set is open:
// editors evolve faster than renderers, so the data may carry kinds this
// package has never heard of. Rendering degrades gracefully instead of
// failing — unknown kinds with children render their children in place,
// unknown leaves render nothing, and no structurally plausible input ever
// causes an error or panic.
//
// Inline text formatting arrives as an integer bitmask ([Format]). The
// mask is decoded once at the boundary into a [TextStyle] value and
// applied as nested wrappers in a fixed precedence order, so the same
// mask always produces the same wrapper nesting.
//
// # Rendering
//
//	doc, _ := richtext.DecodeDocument(data)
//	nodes := richtext.RenderDocument(doc)
//	html := ptree.RenderHTML(nodes)
//
// [Render] and [RenderDocument] are pure functions: no I/O, no shared
// state, safe for concurrent use. A nil or childless root renders to the
// nil "nothing" sentinel, never an empty wrapper.
package richtext
