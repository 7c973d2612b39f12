package views

import (
	"sort"
	"strings"

	"github.com/trailmark/waypoint/pkg/waypoint/constants"
	"github.com/trailmark/waypoint/pkg/waypoint/internal"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

// Deps are the collaborators the views are built from.
type Deps struct {
	Source   ProjectSource
	Messages *internal.Messages
	Region   router.Region // Live views write updates here
}

// Routes returns the application's route table.
func Routes(d Deps) map[string]router.Factory {
	routes := map[string]router.Factory{
		"/": func(router.Match) (router.View, error) {
			return NewHomeView(d.Source, d.Messages), nil
		},
		"/about": func(router.Match) (router.View, error) {
			return NewAboutView(d.Messages), nil
		},
		"/project/:id": func(m router.Match) (router.View, error) {
			return NewProjectView(m.Params.Get("id"), d.Source, d.Messages, d.Region), nil
		},
		"/project/:id/walk/:walk": func(m router.Match) (router.View, error) {
			return NewWalkView(m.Params.Get("id"), m.Params.Get("walk"), d.Source, d.Messages), nil
		},
	}

	known := make([]string, 0, len(routes))
	for pattern := range routes {
		if !strings.Contains(pattern, ":") {
			known = append(known, pattern)
		}
	}
	sort.Strings(known)

	routes[constants.NotFoundPath] = func(m router.Match) (router.View, error) {
		return NewNotFoundView(m.Path, known, d.Messages), nil
	}
	return routes
}
