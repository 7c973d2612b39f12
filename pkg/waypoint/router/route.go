package router

import (
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/trailmark/waypoint/pkg/waypoint/constants"
)

// Match describes how a location resolved against the route table.
type Match struct {
	Pattern  string // Registered pattern, e.g. "/project/:id"
	Path     string // Cleaned path that was matched
	Params   Params // Extracted parameters, never nil
	NotFound bool   // True when the path fell back to the not-found route
}

type segment struct {
	value string
	param bool
}

type route struct {
	pattern  string
	segments []segment
	static   int
	factory  Factory
}

// Table maps path patterns to view factories. It is built once and is
// immutable afterwards, so it is safe to share between goroutines.
type Table struct {
	routes   []route
	notFound route
}

// NewTable compiles a route table. The not-found path must be registered;
// a table without it is rejected, as are nil factories, malformed patterns
// and patterns that can never be told apart (such as "/p/:id" and "/p/:slug").
func NewTable(routes map[string]Factory) (*Table, error) {
	t := &Table{routes: make([]route, 0, len(routes))}
	shapes := make(map[string]string, len(routes))

	for pattern, factory := range routes {
		if factory == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilFactory, pattern)
		}
		rt, err := compile(pattern, factory)
		if err != nil {
			return nil, err
		}
		shape := rt.shape()
		if other, exists := shapes[shape]; exists {
			a, b := other, pattern
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateRoute, a, b)
		}
		shapes[shape] = pattern
		if rt.pattern == constants.NotFoundPath {
			t.notFound = rt
		}
		t.routes = append(t.routes, rt)
	}

	if t.notFound.factory == nil {
		return nil, ErrNoNotFoundRoute
	}

	// Most specific first; ties ordered by pattern so matching never depends
	// on map iteration order.
	sort.Slice(t.routes, func(i, j int) bool {
		if t.routes[i].static != t.routes[j].static {
			return t.routes[i].static > t.routes[j].static
		}
		return t.routes[i].pattern < t.routes[j].pattern
	})
	return t, nil
}

func compile(pattern string, factory Factory) (route, error) {
	if !strings.HasPrefix(pattern, "/") {
		return route{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern)
	}
	clean := CleanPath(pattern)
	rt := route{pattern: clean, factory: factory}
	seen := make(map[string]bool)

	for _, part := range split(clean) {
		if strings.HasPrefix(part, ":") {
			name := part[1:]
			if name == "" {
				return route{}, fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, pattern)
			}
			if seen[name] {
				return route{}, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, pattern, name)
			}
			seen[name] = true
			rt.segments = append(rt.segments, segment{value: name, param: true})
			continue
		}
		rt.segments = append(rt.segments, segment{value: part})
		rt.static++
	}
	return rt, nil
}

// shape erases parameter names so structurally identical patterns collide.
func (rt route) shape() string {
	var b strings.Builder
	for _, s := range rt.segments {
		b.WriteByte('/')
		if s.param {
			b.WriteByte(':')
			continue
		}
		b.WriteString(s.value)
	}
	return b.String()
}

func (rt route) match(parts []string) (Params, bool) {
	if len(parts) != len(rt.segments) {
		return nil, false
	}
	params := Params{}
	for i, s := range rt.segments {
		if !s.param {
			if s.value != parts[i] {
				return nil, false
			}
			continue
		}
		value, err := url.PathUnescape(parts[i])
		if err != nil {
			value = parts[i]
		}
		params[s.value] = value
	}
	return params, true
}

// Match resolves a location to a route. Query strings and fragments are
// ignored. Unregistered paths resolve to the not-found route.
func (t *Table) Match(location string) Match {
	p := CleanPath(location)
	parts := split(p)
	for _, rt := range t.routes {
		if params, ok := rt.match(parts); ok {
			return Match{Pattern: rt.pattern, Path: p, Params: params}
		}
	}
	return Match{Pattern: t.notFound.pattern, Path: p, Params: Params{}, NotFound: true}
}

func (t *Table) factory(pattern string) Factory {
	for _, rt := range t.routes {
		if rt.pattern == pattern {
			return rt.factory
		}
	}
	return t.notFound.factory
}

// Patterns returns every registered pattern in sorted order.
func (t *Table) Patterns() []string {
	out := make([]string, 0, len(t.routes))
	for _, rt := range t.routes {
		out = append(out, rt.pattern)
	}
	sort.Strings(out)
	return out
}

// StaticPaths returns the registered patterns that have no parameters,
// excluding the not-found route.
func (t *Table) StaticPaths() []string {
	out := make([]string, 0, len(t.routes))
	for _, rt := range t.routes {
		if rt.static == len(rt.segments) && rt.pattern != constants.NotFoundPath {
			out = append(out, rt.pattern)
		}
	}
	sort.Strings(out)
	return out
}

// CleanPath strips the query string and fragment from a location and
// normalizes the remaining path: leading slash, no trailing slash, no
// empty or dot segments.
func CleanPath(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		location = location[:i]
	}
	if !strings.HasPrefix(location, "/") {
		location = "/" + location
	}
	return path.Clean(location)
}

func split(p string) []string {
	if p == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}
