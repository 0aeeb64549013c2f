// Package page provides the commands that change or read individual pages
// and nav nodes: cat, write, edit, new and rm.
//
// Each command file holds its own flag handling and output. Pages are named
// by nav identifier, never by file path.
package page

import (
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/render"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the page extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "page".
func (e *Extension) Name() string { return "page" }

// Init connects to the shared site service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns cat, write, edit, new and rm.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newCatCmd(),
		e.newWriteCmd(),
		e.newEditCmd(),
		e.newNewCmd(),
		e.newRmCmd(),
	}
}

// MCPTools returns nil; page tools live in the MCP server.
func (e *Extension) MCPTools() []extension.MCPTool { return nil }

// readContent returns content from the positional argument, the -f file or
// stdin, in that order. Stdin is only read when required is set or it is
// not a terminal.
func readContent(c *cobra.Command, args []string, idx int, required bool) (string, error) {
	if len(args) > idx {
		return args[idx], nil
	}
	if file, _ := c.Flags().GetString(extension.FlagFile); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read file %q: %w", file, err)
		}
		return string(data), nil
	}
	if !required && render.IsTerminal(os.Stdin) {
		return "", nil
	}
	data, err := io.ReadAll(c.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
