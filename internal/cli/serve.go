package cli

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/config"
	"github.com/beezer-app/beezer/internal/server"
)

func newServeCmd(o *overrides) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the artist view and the Deezer proxy over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *o)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Serve.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := setup(ctx, cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer rt.Close()

			srv, err := server.New(rt.loader, upstream(cfg.APIBaseURL), rt.log)
			if err != nil {
				return err
			}

			go func() {
				v := rt.loader.Load(ctx)
				rt.log.Info("load finished", zap.Stringer("state", v.State), zap.Bool("from_cache", v.FromCache))
			}()

			return srv.ListenAndServe(ctx, cfg.Serve.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

// upstream maps a base URL that points at a local /deezer proxy back to
// the public API.
func upstream(apiURL string) string {
	if strings.HasSuffix(apiURL, server.ProxyPrefix) {
		return config.DefaultAPIBaseURL
	}
	return apiURL
}
