package views

import (
	"context"

	"github.com/trailmark/waypoint/pkg/waypoint/internal"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

// NewAboutView returns the static about screen.
func NewAboutView(messages *internal.Messages) router.View {
	return router.ViewFunc(func(context.Context) (router.Content, error) {
		return execute(aboutTemplate, map[string]any{
			"Title": messages.Text("AboutTitle", nil),
			"Body":  messages.Text("AboutBody", nil),
		})
	})
}
