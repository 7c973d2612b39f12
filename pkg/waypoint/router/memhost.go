package router

import "sync"

// MemoryRegion records the content injected into it.
type MemoryRegion struct {
	mu       sync.Mutex
	content  Content
	replaces int
}

func (r *MemoryRegion) Replace(content Content) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.content = content
	r.replaces++
}

// Content returns the last content injected.
func (r *MemoryRegion) Content() Content {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.content
}

// Replaces returns how many times the content was replaced.
func (r *MemoryRegion) Replaces() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.replaces
}

// MemoryIndicator counts visibility toggles.
type MemoryIndicator struct {
	mu      sync.Mutex
	visible bool
	shows   int
	hides   int
}

func (i *MemoryIndicator) Show() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.visible = true
	i.shows++
}

func (i *MemoryIndicator) Hide() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.visible = false
	i.hides++
}

// Visible reports whether the indicator is currently shown.
func (i *MemoryIndicator) Visible() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.visible
}

// Counts returns the number of Show and Hide calls so far.
func (i *MemoryIndicator) Counts() (shows, hides int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.shows, i.hides
}

// MemoryLinks is a set of navigation triggers identified by their routes.
type MemoryLinks struct {
	mu     sync.Mutex
	routes []string
	active map[string]bool
}

// NewMemoryLinks creates triggers for the given routes, all inactive.
func NewMemoryLinks(routes ...string) *MemoryLinks {
	return &MemoryLinks{routes: routes, active: make(map[string]bool, len(routes))}
}

func (l *MemoryLinks) Highlight(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, route := range l.routes {
		l.active[route] = IsActive(route, path)
	}
}

// Active returns the routes currently marked active.
func (l *MemoryLinks) Active() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, route := range l.routes {
		if l.active[route] {
			out = append(out, route)
		}
	}
	return out
}
