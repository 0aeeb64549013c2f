// edit.go implements "docsite edit", which changes part of a page in place.
//
// Design: two forms share one command. "edit <url> <old> <new>" replaces
// the first occurrence of old; "edit <url> -l 3:5 [new]" replaces a line
// range with new (or -f, or stdin). Both go through the same page write as
// "docsite write", so auto-build and the diff behave identically.

package page

import (
	"fmt"
	"os"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/edit"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/render"
	"github.com/spf13/cobra"
)

func (e *Extension) newEditCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "edit <url> [old] [new]",
		Short: "Edit part of a page",
		Long: `Replace text or a range of lines in the page backing url.

  docsite edit install "pip install" "pipx install"
  docsite edit install -i "TODO" "Note"
  docsite edit install -l 3:5 "Replacement paragraph."
  docsite edit install -l 10: -f tail.md`,
		Args: cobra.RangeArgs(1, 3),
		RunE: e.runEdit,
	}
	c.Flags().StringP(extension.FlagLines, "l", "", "Replace a line range (start:end)")
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Match old text ignoring case")
	c.Flags().StringP(extension.FlagFile, "f", "", "Read replacement from file")
	c.Flags().BoolP(extension.FlagDiff, "d", false, "Show the change")
	return c
}

func (e *Extension) runEdit(c *cobra.Command, args []string) error {
	u := args[0]
	lines, _ := c.Flags().GetString(extension.FlagLines)
	ignoreCase, _ := c.Flags().GetBool(extension.FlagIgnoreCase)
	showDiff, _ := c.Flags().GetBool(extension.FlagDiff)

	opts := edit.Options{Lines: lines, IgnoreCase: ignoreCase}
	if lines != "" {
		if len(args) > 2 {
			return cmd.PrintJSONError(fmt.Errorf("edit %q: --lines takes one replacement, got %d", u, len(args)-1))
		}
		content, err := readContent(c, args, 1, true)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		opts.New = content
	} else {
		if len(args) != 3 {
			return cmd.PrintJSONError(fmt.Errorf("edit %q: need old and new text, or --lines", u))
		}
		opts.Old, opts.New = args[1], args[2]
	}

	res, err := edit.Run(c.Context(), e.svc, u, opts)
	l := log.Event("page:edit", "write").Author(cmd.Author()).URL(u)
	if lines != "" {
		l.Detail("lines", lines)
	}
	if err == nil {
		l.Path(res.Path).Detail("changed", res.Diff.Changed())
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("edit %q: %w", u, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}
	if !res.Diff.Changed() {
		fmt.Fprintf(cmd.Out(), "%s unchanged\n", res.Path)
		return nil
	}
	fmt.Fprintf(cmd.Out(), "Edited %s\n", res.Path)
	if showDiff {
		colour := cmd.Out() == os.Stdout && render.IsTerminal(os.Stdout)
		fmt.Fprint(cmd.Out(), res.Diff.Format(colour))
	}
	return nil
}
