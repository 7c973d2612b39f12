package views

import (
	"context"
	"fmt"

	"github.com/trailmark/waypoint/pkg/waypoint/internal"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

type projectLink struct {
	Href     string
	Name     string
	Progress string
}

// HomeView lists every project.
type HomeView struct {
	source   ProjectSource
	messages *internal.Messages
}

func NewHomeView(source ProjectSource, messages *internal.Messages) *HomeView {
	return &HomeView{source: source, messages: messages}
}

func (v *HomeView) Render(ctx context.Context) (router.Content, error) {
	projects, err := v.source.Projects(ctx)
	if err != nil {
		return router.NoContent, fmt.Errorf("list projects: %w", err)
	}
	links := make([]projectLink, 0, len(projects))
	for _, p := range projects {
		links = append(links, projectLink{
			Href:     projectPath(p.ID),
			Name:     p.Name,
			Progress: progress(v.messages, p),
		})
	}
	return execute(homeTemplate, map[string]any{
		"Title":    v.messages.Text("HomeTitle", nil),
		"Empty":    v.messages.Text("HomeEmpty", nil),
		"Projects": links,
	})
}

func progress(messages *internal.Messages, p Project) string {
	return messages.Text("ProjectProgress", map[string]any{
		"Walked":      messages.Number(p.WalkedKm, 1),
		"Goal":        messages.Number(p.GoalKm, 1),
		"Destination": p.Destination,
	})
}

func projectPath(id string) string {
	return "/project/" + id
}

func walkPath(projectID, walkID string) string {
	return projectPath(projectID) + "/walk/" + walkID
}
