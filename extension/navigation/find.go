// find.go implements "docsite find", which resolves a page url to the file
// that backs it.
//
// Design: matching is on nav identifiers only. "getting_started",
// "Getting Started" and "GETTING started" all name the same entry; section
// titles never match.

package navigation

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

type findResult struct {
	URL     string `json:"url"`
	Section string `json:"section"`
	Path    string `json:"path"`
}

func (e *Extension) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <url>",
		Short: "Locate the file backing a page",
		Long: `Find the markdown file for a page by its nav identifier.

  docsite find getting_started
  docsite find "Getting Started" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: e.runFind,
	}
}

func (e *Extension) runFind(c *cobra.Command, args []string) error {
	u := args[0]
	res, err := e.svc.Find(c.Context(), u, nil)

	l := log.Event("nav:find", "read").Author(cmd.Author()).URL(u)
	if err == nil {
		l.Path(res.Path)
	}
	l.Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("find %q: %w", u, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(findResult{URL: u, Section: res.Section, Path: res.Path})
	}
	fmt.Fprintln(cmd.Out(), res.Path)
	return nil
}
