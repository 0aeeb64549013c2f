// Package extension provides the plugin architecture for docsite. Extensions
// group related functionality (commands, MCP tools) and register at init
// time, so new command families never touch the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for docsite extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared context once the site service
// has been opened.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Siteless is an optional interface for extensions with commands that do not
// need an opened site. Commands returned by NoSiteCommands() will not trigger
// site initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Commands that must work before mkdocs.yml exists (config, guide)
// 2. Commands that manage their own service lifecycle
type Siteless interface {
	NoSiteCommands() []string
}
