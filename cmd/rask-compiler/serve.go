package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/christianalfoni/rask-ui/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	var cwd string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer compile requests from a host process over stdio",
		Long: `Serve reads MessagePack-framed requests from stdin and writes responses to
stdout until stdin is closed. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cwd == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to get working directory: %w", err)
				}
				cwd = wd
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := server.New(&server.Options{
				In:        cmd.InOrStdin(),
				Out:       cmd.OutOrStdout(),
				Err:       cmd.ErrOrStderr(),
				Cwd:       cwd,
				Logger:    a.log,
				CacheSize: a.v.GetInt(keyCacheSize),
			})
			if err != nil {
				return err
			}

			a.log.Debug("serving", zap.String("cwd", cwd))

			// Run blocks on stdin, so a signal is handled here rather than
			// between requests.
			errc := make(chan error, 1)
			go func() { errc <- s.Run(ctx) }()
			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				a.log.Debug("shutting down", zap.Error(ctx.Err()))
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "", "directory relative file names are resolved against (default: current directory)")
	cmd.Flags().Int("cache-size", server.DefaultCacheSize, "number of transformSource results to keep")

	return cmd
}
