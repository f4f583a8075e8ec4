package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/pagesmith/pagesmith/pkg/observability"
)

// logHooks reports render diagnostics through the CLI logger.
// Unknown kinds are logged as warnings so authors notice content that
// silently renders to nothing.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnRenderStart(page string, blockCount int) {
	h.logger.Debug("render start", "page", page, "blocks", blockCount)
}

func (h logHooks) OnRenderComplete(page string, duration time.Duration) {
	h.logger.Debug("render complete", "page", page, "duration", duration.Round(time.Millisecond))
}

func (h logHooks) OnUnknownBlock(kind string, position int) {
	h.logger.Warn("unknown block kind skipped", "kind", kind, "position", position)
}

func (h logHooks) OnUnknownNode(kind string, position int) {
	h.logger.Warn("unknown node kind passed through", "kind", kind, "position", position)
}

// EnableDiagnostics registers render hooks backed by the CLI logger.
// Called for verbose runs only; the default hooks are no-ops.
func (c *CLI) EnableDiagnostics() {
	observability.SetRenderHooks(logHooks{logger: c.Logger})
}
