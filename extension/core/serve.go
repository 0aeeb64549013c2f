// serve.go implements "docsite serve", the MCP server over stdio.
//
// Design: serve is siteless. It opens the site itself and keeps running
// without one so guide and config tools stay usable from an empty directory.

package core

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio.

The site is taken from site.root in config, or the MKDOCS environment
variable, or the current directory.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}
	return mcp.Serve(cfg)
}
