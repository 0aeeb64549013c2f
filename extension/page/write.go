// write.go implements "docsite write", which replaces the content of an
// existing page.
//
// Design: content comes from the argument, -f, or stdin, like the write of
// any Unix-style tool. The page must already be in the nav; use new to add
// one. --diff prints what changed.

package page

import (
	"fmt"
	"os"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/render"
	"github.com/spf13/cobra"
)

func (e *Extension) newWriteCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "write <url> [content]",
		Short: "Replace a page's content",
		Long: `Write new content to the page backing url.

  docsite write install "# Install"
  docsite write install -f install.md
  cat install.md | docsite write install --diff`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runWrite,
	}
	c.Flags().StringP(extension.FlagFile, "f", "", "Read content from file")
	c.Flags().BoolP(extension.FlagDiff, "d", false, "Show the change")
	return c
}

func (e *Extension) runWrite(c *cobra.Command, args []string) error {
	u := args[0]
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	content, err := readContent(c, args, 1, true)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	res, err := e.svc.Write(c.Context(), u, content)
	l := log.Event("page:write", "write").Author(cmd.Author()).URL(u)
	if err == nil {
		l.Path(res.Path).Detail("changed", res.Diff.Changed())
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("write %q: %w", u, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}
	if !res.Diff.Changed() {
		fmt.Fprintf(cmd.Out(), "%s unchanged\n", res.Path)
		return nil
	}
	fmt.Fprintf(cmd.Out(), "Wrote %s\n", res.Path)
	if showDiff {
		colour := cmd.Out() == os.Stdout && render.IsTerminal(os.Stdout)
		fmt.Fprint(cmd.Out(), res.Diff.Format(colour))
	}
	return nil
}
