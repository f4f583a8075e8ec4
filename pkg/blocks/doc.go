// Package blocks models the typed content blocks that compose a page and
// renders ordered block sequences into presentation trees.
//
// # Overview
//
// A page body is an ordered, heterogeneous list of blocks, each tagged
// with a string blockKind. Each kind is its own type carrying only the
// fields that kind uses ([Columns], [Media], and [Promo] are built in),
// and all of them implement the [Block] interface. Kinds outside the
// registry decode to [Unknown], which renders nothing while reporting
// through the observability diagnostic channel, so an editor shipping a
// newer block vocabulary degrades one position instead of breaking the
// page.
//
// # Decoding
//
// [DecodeSequence] turns raw JSON into a [Sequence] using the registry to
// dispatch on blockKind. Decoding only fails for input that is not JSON
// at all; malformed known blocks and unknown kinds degrade to [Unknown].
// Additional kinds can be added with [Register] at init time.
//
// # Rendering
//
// [RenderSequence] preserves input order exactly: no block is reordered,
// deduplicated, or skipped except via the unknown-kind rule, and a
// degraded position is skipped, not swapped. Rendering is pure and safe
// for concurrent use across independent sequences.
package blocks
