// Package treeviz renders presentation trees as Graphviz diagrams.
//
// # Overview
//
// The diagrams are a debugging aid for the render pipeline: they show
// the element hierarchy a page produces, with one box per node and an
// edge from each parent to its children. Text nodes are drawn with a
// grey fill to distinguish them from elements.
//
// # Usage
//
//	nodes := pipeline result tree
//	dot := treeviz.ToDOT(nodes, treeviz.Options{Detailed: true})
//	svg, err := treeviz.RenderSVG(dot)
//
// DOT generation is pure Go. SVG and PNG rendering use the embedded
// Graphviz engine from goccy/go-graphviz.
package treeviz
