package router

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/trailmark/waypoint/pkg/waypoint/constants"
	"github.com/trailmark/waypoint/pkg/waypoint/internal"
)

// Outcome reports what happened to a navigation request.
type Outcome int

const (
	OutcomeDropped  Outcome = iota // Another resolution was in flight, or the router is closed
	OutcomeRendered                // The new view rendered and initialized
	OutcomeFailed                  // A lifecycle step failed; the error content is showing
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDropped:
		return "dropped"
	case OutcomeRendered:
		return "rendered"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrorContentFunc produces the content shown when a view fails.
type ErrorContentFunc func(path string, err error) Content

// Options configures a Router. Region and History are required.
type Options struct {
	Region       Region           // Host container the current view owns
	Indicator    Indicator        // Loading indicator; optional
	History      History          // Session history
	Highlighter  Highlighter      // Navigation highlight; optional
	Logger       *slog.Logger     // Defaults to the internal framework logger
	ErrorContent ErrorContentFunc // Defaults to a plain generic message
	NewID        func() string    // Navigation id generator; defaults to UUIDv4
}

// Router is the single authority for what is on screen. It resolves paths
// against its table and drives views through their lifecycle, one
// resolution at a time.
type Router struct {
	table        *Table
	region       Region
	indicator    Indicator
	history      History
	highlighter  Highlighter
	logger       *slog.Logger
	errorContent ErrorContentFunc
	newID        func() string

	inFlight atomic.Bool
	closed   atomic.Bool

	mu      sync.Mutex
	current *instance
}

// New creates a Router over an already validated table.
func New(table *Table, opts Options) (*Router, error) {
	if opts.Region == nil {
		return nil, ErrMissingRegion
	}
	if opts.History == nil {
		return nil, ErrMissingHistory
	}

	r := &Router{
		table:        table,
		region:       opts.Region,
		indicator:    opts.Indicator,
		history:      opts.History,
		highlighter:  opts.Highlighter,
		logger:       opts.Logger,
		errorContent: opts.ErrorContent,
		newID:        opts.NewID,
	}
	if r.indicator == nil {
		r.indicator = nopIndicator{}
	}
	if r.highlighter == nil {
		r.highlighter = nopHighlighter{}
	}
	if r.logger == nil {
		r.logger = internal.GetInternalLogger()
	}
	if r.errorContent == nil {
		r.errorContent = func(string, error) Content {
			return Content(constants.GenericErrorMessage)
		}
	}
	if r.newID == nil {
		r.newID = uuid.NewString
	}
	return r, nil
}

// Table returns the route table the router was built with.
func (r *Router) Table() *Table {
	return r.table
}

// Start resolves the current location without touching history.
func (r *Router) Start(ctx context.Context) Outcome {
	return r.HandleHistoryChange(ctx)
}

// Navigate requests a transition to path. A request arriving while another
// resolution is in flight is dropped: no history entry, no view. Accepted
// requests push path before the view starts rendering, so the address bar
// reflects the destination while content loads.
//
// Navigate blocks until the resolution settles. Failures are absorbed and
// shown in the host region; the returned Outcome is informational only.
func (r *Router) Navigate(ctx context.Context, path string) Outcome {
	if !r.acquire(path) {
		return OutcomeDropped
	}
	r.history.Push(path)
	return r.resolve(ctx, path)
}

// HandleHistoryChange re-resolves the current location after the browser
// moved through its history. Nothing is pushed.
func (r *Router) HandleHistoryChange(ctx context.Context) Outcome {
	location := r.history.Location()
	if !r.acquire(location) {
		return OutcomeDropped
	}
	return r.resolve(ctx, location)
}

// Close tears the application down: the current view is cleaned up and
// every later request is dropped. A view still rendering is cleaned up by
// the in-flight resolution once its construction settles.
func (r *Router) Close(ctx context.Context) error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	r.mu.Lock()
	current := r.current
	r.current = nil
	r.mu.Unlock()

	if current == nil {
		return nil
	}
	return current.cleanup(ctx)
}

// Current returns the match and lifecycle state of the view on screen.
func (r *Router) Current() (Match, State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return Match{}, StateDestroyed, false
	}
	return r.current.match, r.current.State(), true
}

// InFlight reports whether a resolution is running.
func (r *Router) InFlight() bool {
	return r.inFlight.Load()
}

func (r *Router) acquire(path string) bool {
	if r.closed.Load() {
		r.logger.Debug("navigation dropped, router closed", "path", path)
		return false
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		r.logger.Debug("navigation dropped, resolution in flight", "path", path)
		return false
	}
	return true
}

// resolve runs one full transition. The caller holds the in-flight guard;
// it is released here whatever happens.
func (r *Router) resolve(ctx context.Context, location string) Outcome {
	defer r.inFlight.Store(false)

	r.indicator.Show()
	defer r.indicator.Hide()

	started := time.Now()
	m := r.table.Match(location)
	logger := r.logger.With("navigation", r.newID(), "path", m.Path, "route", m.Pattern)

	r.mu.Lock()
	previous := r.current
	r.current = nil
	r.mu.Unlock()

	if previous != nil {
		if err := previous.cleanup(ctx); err != nil {
			logger.Warn("view cleanup failed", "error", err)
		}
	}

	outcome := r.mount(ctx, m, logger)
	logger.Info("navigation settled", "outcome", outcome.String(), "duration", time.Since(started))
	return outcome
}

func (r *Router) mount(ctx context.Context, m Match, logger *slog.Logger) Outcome {
	view, err := construct(r.table.factory(m.Pattern), m)
	if err != nil {
		return r.fail(m.Path, err, logger)
	}

	inst := newInstance(view, m)
	r.mu.Lock()
	if r.closed.Load() {
		r.mu.Unlock()
		_ = inst.cleanup(ctx)
		return OutcomeDropped
	}
	r.current = inst
	r.mu.Unlock()

	// A view torn down by Close while suspended never touches the host
	// again, whether its step succeeded or failed.
	content, err := inst.render(ctx)
	if inst.destroyed() {
		return r.abandon(err, logger)
	}
	if err != nil {
		return r.fail(m.Path, err, logger)
	}
	if content != NoContent {
		r.region.Replace(content)
	}

	err = inst.initialize(ctx)
	if inst.destroyed() {
		return r.abandon(err, logger)
	}
	if err != nil {
		return r.fail(m.Path, err, logger)
	}

	r.highlighter.Highlight(m.Path)
	return OutcomeRendered
}

func (r *Router) abandon(err error, logger *slog.Logger) Outcome {
	if err != nil {
		logger.Warn("view failed after teardown", "phase", string(PhaseOf(err)), "error", err)
	}
	return OutcomeDropped
}

func (r *Router) fail(path string, err error, logger *slog.Logger) Outcome {
	logger.Error("view failed", "phase", string(PhaseOf(err)), "error", err)
	r.region.Replace(r.errorContent(path, err))
	return OutcomeFailed
}
