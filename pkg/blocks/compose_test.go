package blocks

import (
	"strings"
	"sync"
	"testing"

	"github.com/pagesmith/pagesmith/pkg/observability"
	"github.com/pagesmith/pagesmith/pkg/ptree"
)

func TestRenderSequenceAbsenceYieldsNothing(t *testing.T) {
	if got := RenderSequence(nil); got != nil {
		t.Errorf("RenderSequence(nil) = %v, want nil sentinel", got)
	}
	if got := RenderSequence(Sequence{}); got != nil {
		t.Errorf("RenderSequence(empty) = %v, want nil sentinel", got)
	}
}

func TestRenderSequenceOrderPreserved(t *testing.T) {
	seq := Sequence{
		Promo{Heading: "A"},
		Unknown{Kind: "mystery"},
		Promo{Heading: "B"},
	}

	nodes := RenderSequence(seq)
	if len(nodes) != 1 {
		t.Fatalf("len(nodes) = %d, want single container", len(nodes))
	}

	// Exactly two promo regions survive, A before B, the suppressed
	// middle position skipped rather than swapped.
	container := nodes[0]
	if len(container.Children) != 2 {
		t.Fatalf("rendered blocks = %d, want 2", len(container.Children))
	}
	html := string(ptree.RenderHTML(nodes))
	if strings.Index(html, "A") > strings.Index(html, "B") {
		t.Errorf("block order not preserved: %s", html)
	}
	if strings.Contains(html, "mystery") {
		t.Errorf("unknown block leaked into output: %s", html)
	}
}

func TestRenderSequenceKeys(t *testing.T) {
	seq := Sequence{
		Promo{ID: "intro", Heading: "A"},
		Promo{Heading: "B"},
	}

	container := RenderSequence(seq)[0]
	if container.Children[0].Key != "intro" {
		t.Errorf("first block key = %q, want editor id intro", container.Children[0].Key)
	}
	if container.Children[1].Key != "promo-1" {
		t.Errorf("second block key = %q, want positional promo-1", container.Children[1].Key)
	}
}

func TestRenderSequenceIdempotent(t *testing.T) {
	seq := Sequence{
		Columns{Count: 2, One: paragraphRoot("left"), Two: paragraphRoot("right")},
		Media{Ref: ResolvedRef(MediaDescriptor{URL: "/a.png", Alt: "A"}), Caption: "cap"},
		Promo{Heading: "H", Actions: []Action{{Label: "Go", Target: "/go"}}},
	}

	first := ptree.RenderHTML(RenderSequence(seq), ptree.WithKeys())
	second := ptree.RenderHTML(RenderSequence(seq), ptree.WithKeys())
	if string(first) != string(second) {
		t.Errorf("repeated renders differ:\n%s\n%s", first, second)
	}
}

// hookRecorder captures unknown-block diagnostics.
type hookRecorder struct {
	observability.NoopRenderHooks
	mu     sync.Mutex
	events []string
}

func (h *hookRecorder) OnUnknownBlock(kind string, position int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, kind)
}

func TestRenderSequenceUnknownBlockDiagnostic(t *testing.T) {
	defer observability.Reset()
	rec := &hookRecorder{}
	observability.SetRenderHooks(rec)

	RenderSequence(Sequence{Promo{Heading: "A"}, Unknown{Kind: "mystery"}})

	if len(rec.events) != 1 || rec.events[0] != "mystery" {
		t.Errorf("diagnostic events = %v, want [mystery]", rec.events)
	}
}

func TestRenderBlockNil(t *testing.T) {
	if got := RenderBlock(nil, 0); got != nil {
		t.Errorf("RenderBlock(nil) = %v, want nil", got)
	}
}
