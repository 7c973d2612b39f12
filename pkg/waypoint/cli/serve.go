package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trailmark/waypoint/pkg/waypoint"
	"github.com/trailmark/waypoint/pkg/waypoint/devserver"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser build with deep-link fallback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := waypoint.GetConfig()
			if err != nil {
				return err
			}
			addr := v.GetString("addr")
			if addr == "" {
				addr = cfg.Server.Addr
			}
			root := v.GetString("root")
			if root == "" {
				root = cfg.Server.Root
			}
			info, err := os.Stat(root)
			if err != nil {
				return fmt.Errorf("serve root: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("serve root %s is not a directory", root)
			}

			logger := waypoint.GetLogger()
			srv := &http.Server{
				Addr: addr,
				Handler: devserver.New(devserver.Options{
					Root:   os.DirFS(root),
					Logger: logger,
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return run(cmd.Context(), srv, func() {
				logger.Info("serving", "addr", addr, "root", root)
				fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s\n", root, addr)
			})
		},
	}

	cmd.Flags().String("addr", "", "listen address (default from config)")
	cmd.Flags().String("root", "", "directory with index.html and the wasm bundle (default from config)")
	_ = v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("root", cmd.Flags().Lookup("root"))

	return cmd
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, srv *http.Server, started func()) error {
	if ctx == nil {
		ctx = context.Background()
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	started()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
