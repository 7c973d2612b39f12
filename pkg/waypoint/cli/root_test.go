package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "waypoint", cmd.Use)
	assert.Contains(t, cmd.Long, "client-side routes")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"serve", "routes", "resolve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "log-level", "lang"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.NotNil(t, serve.Flags().Lookup("addr"))
	assert.NotNil(t, serve.Flags().Lookup("root"))
}

// execute runs the CLI and returns stdout split into whitespace-separated
// fields per line.
func execute(t *testing.T, args ...string) ([][]string, error) {
	t.Helper()
	t.Setenv("WAYPOINT_CONFIG", "")
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()

	var lines [][]string
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		lines = append(lines, strings.Fields(line))
	}
	return lines, err
}

func TestRoutesCommand(t *testing.T) {
	lines, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ROUTE", "KIND"},
		{"/", "static"},
		{"/404", "fallback"},
		{"/about", "static"},
		{"/project/:id", "param"},
		{"/project/:id/walk/:walk", "param"},
	}, lines)
}

func TestResolveCommand(t *testing.T) {
	lines, err := execute(t, "resolve", "/about", "/project/rome", ":back", "/nowhere", "/project/nowhere")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"start", "/", "rendered", "route=/"},
		{"navigate", "/about", "rendered", "route=/about"},
		{"navigate", "/project/rome", "rendered", "route=/project/:id"},
		{"back", "/about", "rendered", "route=/about"},
		{"navigate", "/nowhere", "rendered", "route=/404"},
		{"navigate", "/project/nowhere", "failed", "route=/project/:id"},
		{"history:", "/", "/about", "/nowhere", "/project/nowhere"},
	}, lines)
}

func TestResolveCommand_Content(t *testing.T) {
	t.Setenv("WAYPOINT_CONFIG", "")
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--log-level", "error", "--lang", "de", "resolve", "--start", "/about", "--content"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "    <h1>Über</h1>")
}

func TestResolveCommand_HistoryBounds(t *testing.T) {
	_, err := execute(t, "resolve", ":back")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history entry before /")

	_, err = execute(t, "resolve", ":forward")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no history entry after /")
}
