package router

// Region is the single container whose content the current view owns.
// Replace swaps the whole content of the container.
type Region interface {
	Replace(content Content)
}

// Indicator is the loading indicator shown around each resolution.
type Indicator interface {
	Show()
	Hide()
}

// History is the browser history as the router sees it.
type History interface {
	// Push records a new entry for path and makes it the current location.
	Push(path string)
	// Location returns the current path, including any query string.
	Location() string
}

// Highlighter marks which navigation triggers point at the current path.
// It is called after every successful resolution and must be idempotent.
type Highlighter interface {
	Highlight(path string)
}

// IsActive reports whether a trigger declaring route should be shown as
// active for the current path. Matching is an exact string comparison.
func IsActive(route, current string) bool {
	return route == current
}

type nopIndicator struct{}

func (nopIndicator) Show() {}
func (nopIndicator) Hide() {}

type nopHighlighter struct{}

func (nopHighlighter) Highlight(string) {}
