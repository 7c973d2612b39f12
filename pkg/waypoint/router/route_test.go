package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFactory(Match) (View, error) {
	return ViewFunc(nil), nil
}

func tableOf(t *testing.T, patterns ...string) *Table {
	t.Helper()
	routes := map[string]Factory{"/404": stubFactory}
	for _, p := range patterns {
		routes[p] = stubFactory
	}
	table, err := NewTable(routes)
	require.NoError(t, err)
	return table
}

func TestNewTable_RequiresNotFound(t *testing.T) {
	_, err := NewTable(map[string]Factory{"/": stubFactory})
	assert.ErrorIs(t, err, ErrNoNotFoundRoute)

	_, err = NewTable(nil)
	assert.ErrorIs(t, err, ErrNoNotFoundRoute)
}

func TestNewTable_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		routes map[string]Factory
		want   error
	}{
		{"nil factory", map[string]Factory{"/404": stubFactory, "/x": nil}, ErrNilFactory},
		{"relative pattern", map[string]Factory{"/404": stubFactory, "x": stubFactory}, ErrInvalidPattern},
		{"unnamed param", map[string]Factory{"/404": stubFactory, "/p/:": stubFactory}, ErrInvalidPattern},
		{"repeated param", map[string]Factory{"/404": stubFactory, "/p/:id/:id": stubFactory}, ErrInvalidPattern},
		{"trailing slash twin", map[string]Factory{"/404": stubFactory, "/x": stubFactory, "/x/": stubFactory}, ErrDuplicateRoute},
		{"param name twin", map[string]Factory{"/404": stubFactory, "/p/:id": stubFactory, "/p/:slug": stubFactory}, ErrDuplicateRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.routes)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTable_Match(t *testing.T) {
	table := tableOf(t, "/", "/about", "/project/:id", "/project/new", "/project/:id/walk/:walk")

	tests := []struct {
		location string
		want     Match
	}{
		{"/", Match{Pattern: "/", Path: "/", Params: Params{}}},
		{"", Match{Pattern: "/", Path: "/", Params: Params{}}},
		{"/about/", Match{Pattern: "/about", Path: "/about", Params: Params{}}},
		{"/about?ref=nav#top", Match{Pattern: "/about", Path: "/about", Params: Params{}}},
		{"/project/new", Match{Pattern: "/project/new", Path: "/project/new", Params: Params{}}},
		{"/project/rome", Match{Pattern: "/project/:id", Path: "/project/rome", Params: Params{"id": "rome"}}},
		{"/project/a%2Fb", Match{Pattern: "/project/:id", Path: "/project/a%2Fb", Params: Params{"id": "a/b"}}},
		{"/project/rome/walk/w1", Match{Pattern: "/project/:id/walk/:walk", Path: "/project/rome/walk/w1", Params: Params{"id": "rome", "walk": "w1"}}},
		{"/404", Match{Pattern: "/404", Path: "/404", Params: Params{}}},
		{"/project", Match{Pattern: "/404", Path: "/project", Params: Params{}, NotFound: true}},
		{"/project/rome/walk", Match{Pattern: "/404", Path: "/project/rome/walk", Params: Params{}, NotFound: true}},
		{"/About", Match{Pattern: "/404", Path: "/About", Params: Params{}, NotFound: true}},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, table.Match(tt.location)); diff != "" {
				t.Errorf("Match(%q) mismatch (-want +got):\n%s", tt.location, diff)
			}
		})
	}
}

func TestTable_MatchIsDeterministic(t *testing.T) {
	// Same specificity, different shapes: only one can match a given path.
	table := tableOf(t, "/:a/x", "/x/:b")
	for i := 0; i < 20; i++ {
		assert.Equal(t, "/:a/x", table.Match("/y/x").Pattern)
		assert.Equal(t, "/x/:b", table.Match("/x/y").Pattern)
		assert.Equal(t, "/:a/x", table.Match("/x/x").Pattern)
	}
}

func TestTable_Patterns(t *testing.T) {
	table := tableOf(t, "/project/:id", "/", "/about")
	assert.Equal(t, []string{"/", "/404", "/about", "/project/:id"}, table.Patterns())
	assert.Equal(t, []string{"/", "/about"}, table.StaticPaths())
}

func TestCleanPath(t *testing.T) {
	tests := map[string]string{
		"":             "/",
		"/":            "/",
		"x":            "/x",
		"/x/":          "/x",
		"//x//y":       "/x/y",
		"/x/./y/../z":  "/x/z",
		"/x?y=1":       "/x",
		"/x#frag":      "/x",
		"/a%20b?c#d":   "/a%20b",
		"/project/:id": "/project/:id",
	}
	for in, want := range tests {
		assert.Equal(t, want, CleanPath(in), in)
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("/x", "/x"))
	assert.False(t, IsActive("/x", "/x/y"))
	assert.False(t, IsActive("/", "/x"))
}
