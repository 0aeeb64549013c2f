// tree.go implements "docsite tree", which prints the navigation.

package navigation

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/format"
	"github.com/jpl-au/docsite/internal/glob"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/spf13/cobra"
)

type pageResult struct {
	Identifier string `json:"identifier"`
	Path       string `json:"path"`
}

func (e *Extension) newTreeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tree [pattern]",
		Short: "Show the navigation tree",
		Long: `Print the mkdocs.yml navigation as a tree.

  docsite tree
  docsite tree --paths        # backing files only, one per line
  docsite tree "guides/**"    # pages whose file matches a pattern`,
		Args: cobra.MaximumNArgs(1),
		RunE: e.runTree,
	}
	c.Flags().Bool(extension.FlagPaths, false, "Print page file paths only")
	return c
}

func (e *Extension) runTree(c *cobra.Command, args []string) error {
	paths, _ := c.Flags().GetBool(extension.FlagPaths)

	t, err := e.svc.Tree(c.Context())
	l := log.Event("nav:tree", "read").Author(cmd.Author())
	if len(args) > 0 {
		l.Detail("pattern", args[0])
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("tree: %w", err))
	}

	if len(args) > 0 {
		pages, err := matchPages(t, args[0])
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("tree %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(pages)
		}
		for _, p := range pages {
			fmt.Fprintln(cmd.Out(), p.Path)
		}
		return nil
	}

	switch {
	case cmd.JSON():
		return cmd.PrintJSON(t)
	case paths:
		return format.Paths(cmd.Out(), t)
	default:
		return format.Tree(cmd.Out(), t, "nav")
	}
}

// matchPages returns the pages whose file path matches pattern, in nav
// order.
func matchPages(t nav.Tree, pattern string) ([]pageResult, error) {
	pages := []pageResult{}
	for _, leaf := range t.Leaves() {
		ok, err := glob.Match(pattern, leaf.Path)
		if err != nil {
			return nil, err
		}
		if ok {
			pages = append(pages, pageResult{Identifier: leaf.Identifier, Path: leaf.Path})
		}
	}
	return pages, nil
}
