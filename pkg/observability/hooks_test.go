package observability

import (
	"sync"
	"testing"
	"time"
)

// recordingHooks counts events for assertions.
type recordingHooks struct {
	mu            sync.Mutex
	unknownBlocks []string
	unknownNodes  []string
	starts        int
	completes     int
}

func (h *recordingHooks) OnRenderStart(string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
}

func (h *recordingHooks) OnRenderComplete(string, time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completes++
}

func (h *recordingHooks) OnUnknownBlock(kind string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unknownBlocks = append(h.unknownBlocks, kind)
}

func (h *recordingHooks) OnUnknownNode(kind string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unknownNodes = append(h.unknownNodes, kind)
}

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	Render().OnRenderStart("page", 3)
	Render().OnRenderComplete("page", time.Millisecond)
	Render().OnUnknownBlock("mystery", 1)
	Render().OnUnknownNode("futureKind", 0)
}

func TestSetRenderHooks(t *testing.T) {
	defer Reset()

	rec := &recordingHooks{}
	SetRenderHooks(rec)

	Render().OnUnknownBlock("mystery", 1)
	Render().OnUnknownNode("futureKind", 0)

	if len(rec.unknownBlocks) != 1 || rec.unknownBlocks[0] != "mystery" {
		t.Errorf("unknownBlocks = %v, want [mystery]", rec.unknownBlocks)
	}
	if len(rec.unknownNodes) != 1 || rec.unknownNodes[0] != "futureKind" {
		t.Errorf("unknownNodes = %v, want [futureKind]", rec.unknownNodes)
	}
}

func TestSetRenderHooksIgnoresNil(t *testing.T) {
	defer Reset()

	SetRenderHooks(nil)
	if Render() == nil {
		t.Fatal("Render() = nil after SetRenderHooks(nil)")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingHooks{}
	SetRenderHooks(rec)
	Reset()

	Render().OnUnknownBlock("mystery", 0)
	if len(rec.unknownBlocks) != 0 {
		t.Errorf("hooks still active after Reset: %v", rec.unknownBlocks)
	}
}
