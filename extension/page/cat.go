// cat.go implements "docsite cat", which prints the page backing a url.
//
// Design: terminal output gets glamour rendering, pipes get raw markdown.
// --html renders through goldmark instead, the same renderer the HTTP API
// uses for ?html=1.

package page

import (
	"fmt"
	"os"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/render"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/spf13/cobra"
)

type catResult struct {
	service.Page
	HTML string `json:"html,omitempty"`
}

func (e *Extension) newCatCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "cat <url>",
		Short: "Print a page",
		Long: `Print the markdown of the page backing url.

  docsite cat getting_started
  docsite cat install --html
  docsite cat install --raw | less`,
		Args: cobra.ExactArgs(1),
		RunE: e.runCat,
	}
	c.Flags().Bool(extension.FlagHTML, false, "Render the page as HTML")
	c.Flags().Bool(extension.FlagRaw, false, "Output raw markdown without rendering")
	return c
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	u := args[0]
	asHTML, _ := c.Flags().GetBool(extension.FlagHTML)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	page, err := e.svc.Page(c.Context(), u)
	l := log.Event("page:cat", "read").Author(cmd.Author()).URL(u)
	if err == nil {
		l.Path(page.Path)
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", u, err))
	}

	res := catResult{Page: page}
	if asHTML {
		if res.HTML, err = render.HTML(page.Content); err != nil {
			return cmd.PrintJSONError(err)
		}
	}

	switch {
	case cmd.JSON():
		return cmd.PrintJSON(res)
	case asHTML:
		fmt.Fprint(cmd.Out(), res.HTML)
	default:
		tty := !raw && cmd.Out() == os.Stdout && render.IsTerminal(os.Stdout)
		fmt.Fprint(cmd.Out(), render.Terminal(page.Content, tty))
	}
	return nil
}
