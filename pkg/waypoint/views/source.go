package views

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrWalkNotFound    = errors.New("walk not found")
)

// Project is a walking goal: a destination and the distance covered so far.
type Project struct {
	ID          string
	Name        string
	Destination string
	GoalKm      float64
	WalkedKm    float64
	Walks       []Walk
}

// Walk is one logged walk.
type Walk struct {
	ID   string
	Date time.Time
	Km   float64
}

// Walk returns the walk with the given id.
func (p Project) Walk(id string) (Walk, bool) {
	for _, w := range p.Walks {
		if w.ID == id {
			return w, true
		}
	}
	return Walk{}, false
}

// ProjectSource is the data collaborator the views read from.
type ProjectSource interface {
	Projects(ctx context.Context) ([]Project, error)
	Project(ctx context.Context, id string) (Project, error)
	// WatchProject calls fn on every later change to the project until the
	// returned function is called. It is not called for the current value,
	// so subscribers that rendered earlier must re-read after subscribing.
	WatchProject(id string, fn func(Project)) (unsubscribe func())
}

// MemorySource is an in-memory ProjectSource.
type MemorySource struct {
	mu       sync.Mutex
	projects map[string]Project
	watchers map[string]map[int]func(Project)
	nextID   int
}

// NewMemorySource creates a source holding the given projects.
func NewMemorySource(projects ...Project) *MemorySource {
	s := &MemorySource{
		projects: make(map[string]Project, len(projects)),
		watchers: make(map[string]map[int]func(Project)),
	}
	for _, p := range projects {
		s.projects[p.ID] = p
	}
	return s
}

func (s *MemorySource) Projects(ctx context.Context) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemorySource) Project(ctx context.Context, id string) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (s *MemorySource) WatchProject(id string, fn func(Project)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	key := s.nextID
	if s.watchers[id] == nil {
		s.watchers[id] = make(map[int]func(Project))
	}
	s.watchers[id][key] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.watchers[id], key)
		})
	}
}

// Put stores a project and notifies its watchers. Watchers run on the
// caller's goroutine after the source lock is released.
func (s *MemorySource) Put(p Project) {
	s.mu.Lock()
	s.projects[p.ID] = p
	fns := make([]func(Project), 0, len(s.watchers[p.ID]))
	for _, fn := range s.watchers[p.ID] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// AddWalk appends a walk to a project and adds its distance to the total.
func (s *MemorySource) AddWalk(projectID string, w Walk) error {
	s.mu.Lock()
	p, ok := s.projects[projectID]
	s.mu.Unlock()
	if !ok {
		return ErrProjectNotFound
	}
	p.Walks = append(append([]Walk{}, p.Walks...), w)
	p.WalkedKm += w.Km
	s.Put(p)
	return nil
}

// Watchers returns how many live subscriptions a project has.
func (s *MemorySource) Watchers(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watchers[id])
}

// DemoProjects is the seed data for headless runs and the browser demo.
func DemoProjects() []Project {
	day := func(d int) time.Time { return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC) }
	return []Project{
		{
			ID: "rome", Name: "Road to Rome", Destination: "Rome",
			GoalKm: 250, WalkedKm: 12.5,
			Walks: []Walk{
				{ID: "w1", Date: day(1), Km: 5},
				{ID: "w2", Date: day(3), Km: 7.5},
			},
		},
		{
			ID: "coast", Name: "Coast path", Destination: "Penzance",
			GoalKm: 80, WalkedKm: 0,
		},
	}
}
