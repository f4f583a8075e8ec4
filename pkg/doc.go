// Package pkg provides the core libraries for Pagesmith document rendering.
//
// # Overview
//
// Pagesmith transforms versioned rich-text documents and typed content
// blocks into deterministic presentation trees. The pkg directory is
// organized into five main areas:
//
//  1. [richtext] - Recursive rich-text document rendering
//  2. [blocks] - Typed content blocks (columns, media, promo)
//  3. [ptree] - Presentation tree nodes and HTML/JSON sinks
//  4. [pipeline] - Orchestration (decode → compose → sink) with caching
//  5. [cache] - Pluggable artifact cache (file, Redis, null)
//
// # Architecture
//
// The typical data flow through Pagesmith:
//
//	Page JSON (document + blocks)
//	         ↓
//	pipeline.DecodePage
//	         ↓
//	Page.Compose ──→ richtext.Render + blocks.RenderSequence
//	         ↓
//	[]*ptree.Node (presentation tree, cached)
//	         ↓
//	pipeline.Sink ──→ HTML / JSON / DOT / SVG / PNG (cached)
//
// Rendering is pure: the same page bytes and options always produce the
// same artifacts, which is what makes the content-hash cache sound.
// Degraded inputs (unknown node kinds, unknown block kinds, malformed
// fields) render to defined fallbacks instead of failing the page;
// [observability] hooks surface them to diagnostics.
package pkg
