// Package navigation provides the read-only commands over the mkdocs.yml
// navigation: find, validate, tree and grep.
package navigation

import (
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the navigation extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "nav".
func (e *Extension) Name() string { return "nav" }

// Init connects to the shared site service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the navigation commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newFindCmd(),
		e.newValidateCmd(),
		e.newTreeCmd(),
		e.newGrepCmd(),
	}
}

// MCPTools returns nil; the MCP server registers site_find, site_validate
// and site_tree directly.
func (e *Extension) MCPTools() []extension.MCPTool { return nil }
