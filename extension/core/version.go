// version.go implements "docsite version". The values come from -ldflags
// at release build time; a plain "go build" reports "dev".

package core

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print the docsite build",
		Long: `Print the docsite version, commit, build time and Go toolchain.

  docsite version
  docsite version --short   # version number only, for scripts`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
	c.Flags().Bool(extension.FlagShort, false, "Print the version number only")
	return c
}

func runVersion(c *cobra.Command, _ []string) error {
	info := version.Get()
	short, _ := c.Flags().GetBool(extension.FlagShort)
	switch {
	case cmd.JSON():
		return cmd.PrintJSON(info)
	case short:
		fmt.Fprintln(cmd.Out(), version.Short())
	default:
		fmt.Fprint(cmd.Out(), info.String())
	}
	return nil
}
