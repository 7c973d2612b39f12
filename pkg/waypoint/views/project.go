package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/trailmark/waypoint/pkg/waypoint/internal"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
)

const dateLayout = "2006-01-02"

type walkLink struct {
	Href     string
	Date     string
	Distance string
}

// ProjectView shows one project and keeps it current: Initialize
// subscribes to the project and every change re-renders the region until
// Cleanup unsubscribes.
type ProjectView struct {
	id       string
	source   ProjectSource
	messages *internal.Messages
	region   router.Region

	mu          sync.Mutex
	unsubscribe func()
	destroyed   bool
	rendered    router.Content // last content written or returned
	updates     int
}

func NewProjectView(id string, source ProjectSource, messages *internal.Messages, region router.Region) *ProjectView {
	return &ProjectView{id: id, source: source, messages: messages, region: region}
}

func (v *ProjectView) Render(ctx context.Context) (router.Content, error) {
	p, err := v.source.Project(ctx, v.id)
	if err != nil {
		return router.NoContent, fmt.Errorf("load project %q: %w", v.id, err)
	}
	content, err := v.content(p)
	if err != nil {
		return router.NoContent, err
	}
	v.mu.Lock()
	v.rendered = content
	v.mu.Unlock()
	return content, nil
}

func (v *ProjectView) Initialize(ctx context.Context) error {
	unsubscribe := v.source.WatchProject(v.id, v.update)

	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		unsubscribe()
		return nil
	}
	v.unsubscribe = unsubscribe
	v.mu.Unlock()

	// Watchers only see later changes; pick up anything that landed
	// between Render and the subscription.
	p, err := v.source.Project(ctx, v.id)
	if err != nil {
		return fmt.Errorf("reload project %q: %w", v.id, err)
	}
	v.update(p)
	return nil
}

func (v *ProjectView) Cleanup(context.Context) error {
	v.mu.Lock()
	v.destroyed = true
	unsubscribe := v.unsubscribe
	v.unsubscribe = nil
	v.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	return nil
}

// update holds the view lock while writing so Cleanup cannot return
// while a write to the region is still in progress. Content equal to what
// is already showing is not written again.
func (v *ProjectView) update(p Project) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	content, err := v.content(p)
	if err != nil {
		internal.GetInternalLogger().Error("project update failed", "project", v.id, "error", err)
		return
	}
	if content == v.rendered {
		return
	}
	v.region.Replace(content)
	v.rendered = content
	v.updates++
}

// Updates returns how many live updates reached the region.
func (v *ProjectView) Updates() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.updates
}

func (v *ProjectView) content(p Project) (router.Content, error) {
	walks := make([]walkLink, 0, len(p.Walks))
	for _, w := range p.Walks {
		walks = append(walks, walkLink{
			Href:     walkPath(p.ID, w.ID),
			Date:     w.Date.Format(dateLayout),
			Distance: v.messages.Text("WalkDistance", map[string]any{"Distance": v.messages.Number(w.Km, 1)}),
		})
	}
	return execute(projectTemplate, map[string]any{
		"ID":        p.ID,
		"Name":      p.Name,
		"Progress":  progress(v.messages, p),
		"WalkCount": v.messages.Plural("WalkCount", len(p.Walks), nil),
		"Walks":     walks,
	})
}
