//go:build js && wasm

package dom

import (
	"context"
	"syscall/js"

	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

// Bind installs the trigger listeners: a document click listener for
// elements carrying attr, and a popstate listener on window. The returned
// function removes both and releases the callbacks.
func Bind(ctx context.Context, r *router.Router, doc, window js.Value, attr string) (release func()) {
	onClick := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		if modified(ev) {
			return nil
		}
		target := ev.Get("target")
		if target.Get("closest").Type() != js.TypeFunction {
			return nil
		}
		el := target.Call("closest", "["+attr+"]")
		if el.IsNull() {
			return nil
		}
		ev.Call("preventDefault")
		path := el.Call("getAttribute", attr).String()
		go r.Navigate(ctx, path)
		return nil
	})

	onPopState := js.FuncOf(func(this js.Value, args []js.Value) any {
		go r.HandleHistoryChange(ctx)
		return nil
	})

	doc.Call("addEventListener", "click", onClick)
	window.Call("addEventListener", "popstate", onPopState)

	return func() {
		doc.Call("removeEventListener", "click", onClick)
		window.Call("removeEventListener", "popstate", onPopState)
		onClick.Release()
		onPopState.Release()
	}
}

// modified reports clicks the browser should handle itself, such as
// ctrl-click to open a new tab.
func modified(ev js.Value) bool {
	if ev.Get("defaultPrevented").Truthy() {
		return true
	}
	if b := ev.Get("button"); b.Type() == js.TypeNumber && b.Int() != 0 {
		return true
	}
	for _, key := range []string{"metaKey", "ctrlKey", "shiftKey", "altKey"} {
		if ev.Get(key).Truthy() {
			return true
		}
	}
	return false
}
