// grep.go implements "docsite grep", a regex search over page content.
//
// Only pages listed in the navigation are searched, in nav order.

package navigation

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/grep"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newGrepCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "grep <pattern> [glob]",
		Short: "Search pages using regex",
		Long: `Search page content using regular expressions, like Unix grep.

  docsite grep "TODO"                  # search every page
  docsite grep -i "install" "guides/**" # case-insensitive, guides only
  docsite grep -l "mkdocs"             # list matching files only
  docsite grep -C 2 "warning"          # two lines of context`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runGrep,
	}
	c.Flags().BoolP(extension.FlagFilesWithMatch, "l", false, "Only output paths of matching pages")
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Ignore case distinctions")
	c.Flags().BoolP(extension.FlagInvertMatch, "v", false, "Select non-matching lines")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Only print count of matches per page")
	c.Flags().IntP(extension.FlagContext, "C", 0, "Print N lines of context around matches")
	return c
}

func (e *Extension) runGrep(c *cobra.Command, args []string) error {
	pattern := args[0]
	var glob string
	if len(args) > 1 {
		glob = args[1]
	}

	pathsOnly, _ := c.Flags().GetBool(extension.FlagFilesWithMatch)
	ignoreCase, _ := c.Flags().GetBool(extension.FlagIgnoreCase)
	invert, _ := c.Flags().GetBool(extension.FlagInvertMatch)
	countOnly, _ := c.Flags().GetBool(extension.FlagCount)
	context, _ := c.Flags().GetInt(extension.FlagContext)
	if context < 0 {
		return cmd.PrintJSONError(fmt.Errorf("context lines (-C) must be >= 0, got %d", context))
	}

	opts := grep.Options{
		Glob:       glob,
		IgnoreCase: ignoreCase,
		Invert:     invert,
		PathsOnly:  pathsOnly,
		CountOnly:  countOnly,
		Context:    context,
	}

	var hits []grep.Hit
	var err error
	if cmd.JSON() {
		hits, err = grep.Search(c.Context(), e.svc, pattern, opts)
	} else {
		hits, err = grep.Run(c.Context(), cmd.Out(), e.svc, pattern, opts)
	}

	log.Event("nav:grep", "search").
		Author(cmd.Author()).
		Path(glob).
		Detail("pattern", pattern).
		Detail("count", len(hits)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("grep %q: %w", pattern, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(hits)
	}
	return nil
}
