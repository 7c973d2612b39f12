//go:build js && wasm

package dom

import (
	"fmt"
	"syscall/js"

	"github.com/trailmark/waypoint/pkg/waypoint"
	"github.com/trailmark/waypoint/pkg/waypoint/constants"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

// Element looks up an element by id.
func Element(doc js.Value, id string) (js.Value, error) {
	el := doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, fmt.Errorf("%w: #%s", waypoint.ErrElementMissing, id)
	}
	return el, nil
}

// Region replaces the content of a container element.
type Region struct {
	el js.Value
}

func NewRegion(el js.Value) *Region {
	return &Region{el: el}
}

func (r *Region) Replace(content router.Content) {
	r.el.Set("innerHTML", string(content))
}

// Indicator toggles the hidden attribute of the loading element.
type Indicator struct {
	el js.Value
}

func NewIndicator(el js.Value) *Indicator {
	return &Indicator{el: el}
}

func (i *Indicator) Show() {
	i.el.Call("removeAttribute", constants.HiddenAttr)
}

func (i *Indicator) Hide() {
	i.el.Call("setAttribute", constants.HiddenAttr, "")
}

// History wraps window.history and window.location.
type History struct {
	window js.Value
}

func NewHistory(window js.Value) *History {
	return &History{window: window}
}

func (h *History) Push(path string) {
	h.window.Get("history").Call("pushState", js.ValueOf(map[string]any{}), "", path)
}

func (h *History) Location() string {
	loc := h.window.Get("location")
	return loc.Get("pathname").String() + loc.Get("search").String()
}

// Highlighter marks the triggers whose route equals the current path with
// the active class and aria-current.
type Highlighter struct {
	doc         js.Value
	attr        string
	activeClass string
}

func NewHighlighter(doc js.Value, attr, activeClass string) *Highlighter {
	return &Highlighter{doc: doc, attr: attr, activeClass: activeClass}
}

func (h *Highlighter) Highlight(path string) {
	nodes := h.doc.Call("querySelectorAll", "["+h.attr+"]")
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		active := router.IsActive(el.Call("getAttribute", h.attr).String(), path)
		el.Get("classList").Call("toggle", h.activeClass, active)
		if active {
			el.Call("setAttribute", "aria-current", "page")
		} else {
			el.Call("removeAttribute", "aria-current")
		}
	}
}
