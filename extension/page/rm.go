// rm.go implements "docsite rm", which deletes a page file and its nav
// entry.

package page

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <url>",
		Short: "Delete a page",
		Long: `Delete the file backing url and remove its entry from mkdocs.yml.
Deletion is permanent.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runRm,
	}
}

func (e *Extension) runRm(c *cobra.Command, args []string) error {
	u := args[0]
	res, err := e.svc.Remove(c.Context(), u)

	l := log.Event("page:rm", "remove").Author(cmd.Author()).URL(u)
	if err == nil {
		l.Path(res.Path)
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("rm %q: %w", u, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}
	fmt.Fprintf(cmd.Out(), "Removed %s\n", res.Path)
	return nil
}
