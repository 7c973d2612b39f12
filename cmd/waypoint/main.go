package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/trailmark/waypoint/pkg/waypoint"
	"github.com/trailmark/waypoint/pkg/waypoint/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Command output goes to stdout; keep logs out of it.
	waypoint.SetLogOutput(os.Stderr)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	waypoint.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "waypoint:", err)
		stop()
		os.Exit(1)
	}
}
