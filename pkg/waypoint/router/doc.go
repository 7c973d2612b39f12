// Package router is the client-side navigation and view-lifecycle engine.
//
// A Router owns the host region and decides what is on screen. It maps a
// path to a view through an immutable Table, and drives each view through
// a strict lifecycle:
//
//	created → rendering → rendered → initializing → ready → cleaning-up → destroyed
//
// # Basic Usage
//
//	table, err := router.NewTable(map[string]router.Factory{
//	    "/":            newHomeView,
//	    "/project/:id": newProjectView, // m.Params.Get("id")
//	    "/404":         newNotFoundView, // required
//	})
//
//	r, err := router.New(table, router.Options{
//	    Region:    region,    // where content goes
//	    Indicator: indicator, // loading indicator
//	    History:   history,   // session history
//	})
//
//	r.Start(ctx)                    // resolve the current location
//	r.Navigate(ctx, "/project/rome") // push and resolve
//
// # Transitions
//
// Every resolution runs to completion before another may start. A request
// arriving while one is in flight is dropped rather than queued: there is
// no history entry and no view for it.
//
// Within a resolution the outgoing view's Cleanup always settles before
// the incoming view is constructed, so two views never share the region.
// A failed cleanup is logged and the transition continues.
//
// # Failures
//
// Errors and panics from factories, Render and Initialize never reach the
// caller. The region shows the configured error content, the loading
// indicator is hidden and the in-flight guard is released.
//
// There is no timeout: a Render that never returns holds the guard and
// leaves the indicator visible.
package router
