package router

import "context"

// Content is a renderable fragment the router injects into the host region.
type Content string

// NoContent is returned by views that mutate the host region themselves.
// The router skips injection when it sees it.
const NoContent Content = ""

// Params holds the path parameters extracted for a route, keyed by the
// parameter name without its leading colon.
type Params map[string]string

// Get returns the value of a path parameter, or "" when it is absent.
func (p Params) Get(name string) string {
	return p[name]
}

// View is one screen's worth of content.
//
// Render may block on network or storage calls. It either returns content
// for the router to inject, or mutates the host region itself and returns
// NoContent. Errors are absorbed by the router and shown as an error state.
type View interface {
	Render(ctx context.Context) (Content, error)
}

// Initializer is implemented by views that need post-mount wiring, such as
// subscribing to a data stream once the rendered nodes exist.
// Initialize is called at most once and is skipped entirely if the view is
// destroyed before render settles.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Cleaner is implemented by views that own resources: listeners, timers,
// live subscriptions, widget handles. Cleanup is called exactly once, before
// the next view renders or when the router is closed, and must release
// everything so no callback can touch the region after it is reassigned.
type Cleaner interface {
	Cleanup(ctx context.Context) error
}

// Factory builds a fresh View for a matched route. It is called once per
// navigation; instances are never reused.
type Factory func(m Match) (View, error)

// ViewFunc adapts a plain render function to the View interface.
type ViewFunc func(ctx context.Context) (Content, error)

// Render calls f(ctx).
func (f ViewFunc) Render(ctx context.Context) (Content, error) {
	return f(ctx)
}
