// Package dom binds the router to a browser document through syscall/js.
//
// It provides the host region, loading indicator, history and navigation
// highlight implementations, and wires the two trigger sources: clicks on
// elements carrying the route attribute and the window's popstate event.
//
// Browser callbacks must return without blocking, so every navigation they
// start runs on its own goroutine. The router's in-flight guard keeps those
// goroutines from overlapping.
//
// The package only builds for GOOS=js GOARCH=wasm.
package dom
