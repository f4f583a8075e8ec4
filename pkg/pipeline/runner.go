package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pagesmith/pagesmith/pkg/cache"
	"github.com/pagesmith/pagesmith/pkg/observability"
	"github.com/pagesmith/pagesmith/pkg/ptree"
	"github.com/pagesmith/pagesmith/pkg/treeviz"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete decode → compose → sink pipeline with caching.
// The name identifies the page in logs and diagnostics; data is the raw
// JSON page source.
func (r *Runner) Execute(ctx context.Context, name string, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		PageHash:  cache.Hash(data),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1+2: Decode and compose
	composeStart := time.Now()
	page, err := DecodePage(data)
	if err != nil {
		return nil, err
	}
	result.Page = page
	result.Stats.BlockCount = len(page.Blocks)

	hooks := observability.Render()
	hooks.OnRenderStart(name, len(page.Blocks))
	defer func() {
		hooks.OnRenderComplete(name, time.Since(composeStart))
	}()

	tree, treeHit := r.composeWithCache(ctx, page, result.PageHash, opts)
	result.Tree = tree
	result.Stats.ComposeTime = time.Since(composeStart)
	result.Stats.NodeCount = countNodes(tree)
	result.CacheInfo.TreeHit = treeHit

	r.Logger.Info("composed page",
		"page", name,
		"blocks", result.Stats.BlockCount,
		"nodes", result.Stats.NodeCount,
		"duration", result.Stats.ComposeTime)

	// Stage 3: Sink
	sinkStart := time.Now()
	artifacts, sinkHit, err := r.SinkWithCacheInfo(ctx, tree, result.PageHash, opts)
	if err != nil {
		return nil, fmt.Errorf("sink: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.SinkTime = time.Since(sinkStart)
	result.CacheInfo.SinkHit = sinkHit

	r.Logger.Info("rendered outputs",
		"page", name,
		"formats", opts.Formats,
		"duration", result.Stats.SinkTime)

	return result, nil
}

// composeWithCache returns the composed tree, using the cache when a
// valid entry exists. The bool reports a cache hit. Compose failures
// cannot occur (rendering is total), so only decode errors surface and
// those happen before this point.
func (r *Runner) composeWithCache(ctx context.Context, page *Page, pageHash string, opts Options) ([]*ptree.Node, bool) {
	cacheKey := r.Keyer.TreeKey(pageHash, opts.TreeKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if tree, err := ptree.DecodeJSON(data); err == nil {
				return tree, true
			}
			// Invalid cache entry - fall through to recompute
		}
	}

	tree := page.Compose()

	if data, err := ptree.RenderJSON(tree); err == nil && data != nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLTree)
	}

	return tree, false
}

// SinkWithCacheInfo serializes the tree into the requested formats with
// caching and returns cache hit info.
func (r *Runner) SinkWithCacheInfo(ctx context.Context, tree []*ptree.Node, pageHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(pageHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := Sink(tree, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(pageHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Sink serializes a presentation tree into the requested formats.
// A nil tree yields nil artifact bytes for tree-shaped formats (HTML,
// JSON) and a minimal empty diagram for graph formats.
func Sink(tree []*ptree.Node, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := sinkOne(tree, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func sinkOne(tree []*ptree.Node, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatHTML:
		var htmlOpts []ptree.HTMLOption
		if opts.Keys {
			htmlOpts = append(htmlOpts, ptree.WithKeys())
		}
		return ptree.RenderHTML(tree, htmlOpts...), nil
	case FormatJSON:
		return ptree.RenderJSON(tree)
	case FormatDOT:
		return []byte(treeviz.ToDOT(tree, treeviz.Options{Detailed: opts.Detailed})), nil
	case FormatSVG:
		return treeviz.RenderSVG(treeviz.ToDOT(tree, treeviz.Options{Detailed: opts.Detailed}))
	case FormatPNG:
		return treeviz.RenderPNG(treeviz.ToDOT(tree, treeviz.Options{Detailed: opts.Detailed}))
	default:
		return nil, ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func countNodes(nodes []*ptree.Node) int {
	n := 0
	for _, node := range nodes {
		if node == nil {
			continue
		}
		n += 1 + countNodes(node.Children)
	}
	return n
}
