// Package core provides the docsite commands that are not about pages:
// config, serve, http, guide, version and log.
package core

import (
	"github.com/jpl-au/docsite/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Siteless      = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		e.newHTTPCmd(),
		newGuideCmd(),
		newVersionCmd(),
		e.newLogCmd(),
	}
}

// MCPTools returns nil. The MCP server registers config and guide tools
// itself.
func (e *Extension) MCPTools() []extension.MCPTool { return nil }

// Init stores the shared context for http and log.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// NoSiteCommands lists commands that run without an opened site.
// serve opens the site itself and tolerates its absence.
func (e *Extension) NoSiteCommands() []string {
	return []string{"config", "serve", "guide", "version"}
}
