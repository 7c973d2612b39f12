package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trailmark/waypoint/pkg/waypoint"
	"github.com/trailmark/waypoint/pkg/waypoint/router"
	"github.com/trailmark/waypoint/pkg/waypoint/views"
)

// History moves accepted by resolve in place of a path.
const (
	StepBack    = ":back"
	StepForward = ":forward"
)

// ResolveOptions holds flags for the resolve command.
type ResolveOptions struct {
	Start   string
	Content bool
}

// NewResolveCommand creates the resolve command, which runs the router
// headlessly against demo data and an in-memory host.
func NewResolveCommand() *cobra.Command {
	opts := &ResolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve [path|:back|:forward]...",
		Short: "Run navigations headlessly and print each outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return resolve(ctx, cmd.OutOrStdout(), opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.Start, "start", "/", "initial location")
	cmd.Flags().BoolVar(&opts.Content, "content", false, "print the region content after each step")
	return cmd
}

func resolve(ctx context.Context, w io.Writer, opts *ResolveOptions, steps []string) error {
	msgs, err := waypoint.GetMessages()
	if err != nil {
		return err
	}

	region := &router.MemoryRegion{}
	history := router.NewMemoryHistory(opts.Start)
	r, err := waypoint.NewRouter(views.Routes(views.Deps{
		Source:   views.NewMemorySource(views.DemoProjects()...),
		Messages: msgs,
		Region:   region,
	}), waypoint.Host{
		Region:    region,
		Indicator: &router.MemoryIndicator{},
		History:   history,
	})
	if err != nil {
		return err
	}
	defer r.Close(ctx)

	report := func(step, target string, outcome router.Outcome) {
		m, _, _ := r.Current()
		fmt.Fprintf(w, "%-9s %-28s %-9s route=%s\n", step, target, outcome, m.Pattern)
		if opts.Content {
			for _, line := range strings.Split(string(region.Content()), "\n") {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}
	}

	report("start", history.Location(), r.Start(ctx))
	for _, step := range steps {
		switch step {
		case StepBack:
			if !history.Back() {
				return fmt.Errorf("no history entry before %s", history.Location())
			}
			report("back", history.Location(), r.HandleHistoryChange(ctx))
		case StepForward:
			if !history.Forward() {
				return fmt.Errorf("no history entry after %s", history.Location())
			}
			report("forward", history.Location(), r.HandleHistoryChange(ctx))
		default:
			report("navigate", step, r.Navigate(ctx, step))
		}
	}

	fmt.Fprintf(w, "history: %s\n", strings.Join(history.Entries(), " "))
	return nil
}
