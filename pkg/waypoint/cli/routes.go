package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/trailmark/waypoint/pkg/waypoint"
	"github.com/trailmark/waypoint/pkg/waypoint/constants"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
	"github.com/trailmark/waypoint/pkg/waypoint/views"
)

// NewRoutesCommand creates the routes command.
func NewRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the registered routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := waypoint.GetMessages()
			if err != nil {
				return err
			}
			table, err := router.NewTable(views.Routes(views.Deps{
				Source:   views.NewMemorySource(),
				Messages: msgs,
				Region:   &router.MemoryRegion{},
			}))
			if err != nil {
				return err
			}
			printRoutes(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func routeKind(pattern string) string {
	switch {
	case pattern == constants.NotFoundPath:
		return "fallback"
	case strings.Contains(pattern, ":"):
		return "param"
	default:
		return "static"
	}
}

func printRoutes(w io.Writer, table *router.Table) {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true)
	col := r.NewStyle().Width(28)

	fmt.Fprintln(w, header.Render(col.Render("ROUTE")+"KIND"))
	for _, pattern := range table.Patterns() {
		fmt.Fprintln(w, col.Render(pattern)+routeKind(pattern))
	}
}
