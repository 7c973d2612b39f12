package router

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder collects lifecycle events from every fake view in order.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// fakeView implements View, Initializer and Cleaner and records each call.
type fakeView struct {
	name  string
	match Match
	rec   *recorder

	content    Content
	renderErr  error
	initErr    error
	cleanupErr error
	panicOn    Phase

	renderStarted  chan struct{} // closed when Render begins, if set
	renderRelease  chan struct{} // Render waits on it, if set
	initStarted    chan struct{}
	initRelease    chan struct{}
	cleanupStarted chan struct{}
	cleanupRelease chan struct{}
}

func (v *fakeView) Render(ctx context.Context) (Content, error) {
	v.rec.add(v.name + ".render")
	if v.renderStarted != nil {
		close(v.renderStarted)
	}
	if v.renderRelease != nil {
		<-v.renderRelease
	}
	if v.panicOn == PhaseRender {
		panic("render exploded")
	}
	return v.content, v.renderErr
}

func (v *fakeView) Initialize(ctx context.Context) error {
	v.rec.add(v.name + ".initialize")
	if v.initStarted != nil {
		close(v.initStarted)
	}
	if v.initRelease != nil {
		<-v.initRelease
	}
	if v.panicOn == PhaseInitialize {
		panic("initialize exploded")
	}
	return v.initErr
}

func (v *fakeView) Cleanup(ctx context.Context) error {
	v.rec.add(v.name + ".cleanup")
	if v.cleanupStarted != nil {
		close(v.cleanupStarted)
	}
	if v.cleanupRelease != nil {
		<-v.cleanupRelease
	}
	v.rec.add(v.name + ".cleanup.done")
	if v.panicOn == PhaseCleanup {
		panic("cleanup exploded")
	}
	return v.cleanupErr
}

// harness wires a router to in-memory host collaborators and counts the
// views each route constructs.
type harness struct {
	t         *testing.T
	rec       *recorder
	region    *MemoryRegion
	indicator *MemoryIndicator
	history   *MemoryHistory
	links     *MemoryLinks
	routes    map[string]Factory

	mu    sync.Mutex
	built map[string][]*fakeView
}

func newHarness(t *testing.T, start string) *harness {
	t.Helper()
	h := &harness{
		t:         t,
		rec:       &recorder{},
		region:    &MemoryRegion{},
		indicator: &MemoryIndicator{},
		history:   NewMemoryHistory(start),
		links:     NewMemoryLinks("/", "/x", "/y"),
		routes:    make(map[string]Factory),
		built:     make(map[string][]*fakeView),
	}
	return h
}

// route registers pattern with a fake view named name. configure, if set,
// adjusts each new instance before it is returned.
func (h *harness) route(pattern, name string, configure func(v *fakeView)) *harness {
	h.routes[pattern] = func(m Match) (View, error) {
		v := &fakeView{name: name, match: m, rec: h.rec, content: Content(name)}
		if configure != nil {
			configure(v)
		}
		h.mu.Lock()
		h.built[name] = append(h.built[name], v)
		h.mu.Unlock()
		return v, nil
	}
	return h
}

func (h *harness) views(name string) []*fakeView {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*fakeView{}, h.built[name]...)
}

func (h *harness) router() *Router {
	h.t.Helper()
	table, err := NewTable(h.routes)
	require.NoError(h.t, err)
	r, err := New(table, Options{
		Region:      h.region,
		Indicator:   h.indicator,
		History:     h.history,
		Highlighter: h.links,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		ErrorContent: func(path string, err error) Content {
			return Content("error: " + path)
		},
	})
	require.NoError(h.t, err)
	return r
}

// standard registers the three-route table used by most tests.
func (h *harness) standard() *harness {
	return h.route("/", "A", nil).route("/x", "B", nil).route("/404", "NotFound", nil)
}
