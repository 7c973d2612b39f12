package views

import (
	"context"
	"fmt"

	"github.com/trailmark/waypoint/pkg/waypoint/internal"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

// WalkView shows a single walk of a project.
type WalkView struct {
	projectID string
	walkID    string
	source    ProjectSource
	messages  *internal.Messages
}

func NewWalkView(projectID, walkID string, source ProjectSource, messages *internal.Messages) *WalkView {
	return &WalkView{projectID: projectID, walkID: walkID, source: source, messages: messages}
}

func (v *WalkView) Render(ctx context.Context) (router.Content, error) {
	p, err := v.source.Project(ctx, v.projectID)
	if err != nil {
		return router.NoContent, fmt.Errorf("load project %q: %w", v.projectID, err)
	}
	w, ok := p.Walk(v.walkID)
	if !ok {
		return router.NoContent, fmt.Errorf("walk %q of %q: %w", v.walkID, v.projectID, ErrWalkNotFound)
	}
	return execute(walkTemplate, map[string]any{
		"Title":     v.messages.Text("WalkTitle", map[string]any{"Date": w.Date.Format(dateLayout)}),
		"Distance":  v.messages.Text("WalkDistance", map[string]any{"Distance": v.messages.Number(w.Km, 1)}),
		"Back":      projectPath(p.ID),
		"BackLabel": v.messages.Text("BackToProject", nil),
	})
}
