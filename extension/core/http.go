// http.go implements "docsite http", the JSON API over HTTP.
//
// Design: unlike serve, http needs an opened site and uses the shared
// service. It runs until interrupted and then shuts down gracefully.

package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/api"
	"github.com/spf13/cobra"
)

func (e *Extension) newHTTPCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "http",
		Short: "Start the HTTP API",
		Long: `Serve the site operations as a JSON API.

  docsite http                    # listen on http.addr (default 127.0.0.1:8080)
  docsite http --addr :9000

When http.api_key is configured, /api routes require
"Authorization: Bearer <key>". See 'docsite guide http'.`,
		Args: cobra.NoArgs,
		RunE: e.runHTTP,
	}
	c.Flags().String(extension.FlagAddr, "", "Listen address (overrides http.addr)")
	return c
}

func (e *Extension) runHTTP(c *cobra.Command, _ []string) error {
	cfg := e.ctx.Config()
	addr, _ := c.Flags().GetString(extension.FlagAddr)
	if addr == "" {
		addr = cfg.HTTPAddr()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv := api.NewServer(e.ctx.Service(), logger, api.Options{
		APIKey:  cfg.HTTP.APIKey,
		MaxBody: cfg.MaxContent() + 4096, // content plus the JSON envelope
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return cmd.PrintJSONError(fmt.Errorf("http: %w", err))
	}
	return nil
}
