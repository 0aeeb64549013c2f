// guide.go implements "docsite guide". Guides are embedded in the binary
// and rendered with glamour when stdout is a terminal.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/guide"
	"github.com/jpl-au/docsite/internal/render"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the docsite usage guide",
		Long: `Outputs the docsite guide.

  docsite guide           # overview
  docsite guide new       # creating sections and pages
  docsite guide http      # HTTP API`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}
			fmt.Fprint(cmd.Out(), render.Terminal(content, cmd.Out() == os.Stdout && render.IsTerminal(os.Stdout)))
			return nil
		},
	}
}
