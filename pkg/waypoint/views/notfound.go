package views

import (
	"context"
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/trailmark/waypoint/pkg/waypoint/internal"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

// maxSuggestionDistance bounds how far a typo may be from a known path.
const maxSuggestionDistance = 3

// NotFoundView is shown for paths no route matches. It points at the
// closest known path when the miss looks like a typo.
type NotFoundView struct {
	path     string
	known    []string
	messages *internal.Messages
}

func NewNotFoundView(path string, known []string, messages *internal.Messages) *NotFoundView {
	return &NotFoundView{path: path, known: known, messages: messages}
}

func (v *NotFoundView) Render(context.Context) (router.Content, error) {
	suggestion := Suggest(v.path, v.known)
	data := map[string]any{
		"Title":      v.messages.Text("NotFoundTitle", nil),
		"Body":       v.messages.Text("NotFoundBody", map[string]any{"Path": v.path}),
		"Suggestion": suggestion,
	}
	if suggestion != "" {
		data["SuggestionText"] = v.messages.Text("NotFoundSuggestion", map[string]any{"Suggestion": suggestion})
	}
	return execute(notFoundTemplate, data)
}

// Suggest returns the known path closest to path by edit distance, or ""
// when none is within maxSuggestionDistance. Ties go to the path that
// sorts first.
func Suggest(path string, known []string) string {
	candidates := append([]string{}, known...)
	sort.Strings(candidates)

	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range candidates {
		if candidate == path {
			continue
		}
		if d := levenshtein.ComputeDistance(path, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}
