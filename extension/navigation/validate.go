// validate.go implements "docsite validate", a dry collision check for a
// proposed section, subsection or page.

package navigation

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/spf13/cobra"
)

type validateResult struct {
	Valid    bool         `json:"valid"`
	Kind     string       `json:"kind"`
	Proposal nav.Proposal `json:"proposal"`
}

func (e *Extension) newValidateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate <name>",
		Short: "Check a proposed name for collisions",
		Long: `Check that a new section, subsection or page would not collide with
an existing name. Names are compared in title case.

  docsite validate Guides --section                 # new section
  docsite validate Advanced --path Guides --section # new subsection
  docsite validate Install --path Guides            # new page
  docsite validate Tuning --path Guides/Advanced    # page in a subsection`,
		Args: cobra.ExactArgs(1),
		RunE: e.runValidate,
	}
	c.Flags().StringP(extension.FlagPath, "p", "", "Parent section or section/subsection")
	c.Flags().BoolP(extension.FlagSection, "s", false, "Propose a section (or subsection with --path)")
	return c
}

func proposalFromFlags(c *cobra.Command, name string) nav.Proposal {
	p, _ := c.Flags().GetString(extension.FlagPath)
	section, _ := c.Flags().GetBool(extension.FlagSection)
	return nav.Proposal{Name: name, Path: p, Section: section}
}

func (e *Extension) runValidate(c *cobra.Command, args []string) error {
	p := proposalFromFlags(c, args[0])
	got, err := e.svc.Validate(c.Context(), p)

	log.Event("nav:validate", "validate").
		Author(cmd.Author()).
		URL(p.Path).
		Kind(p.Kind().String()).
		Detail("name", p.Name).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}
	if cmd.JSON() {
		return cmd.PrintJSON(validateResult{Valid: true, Kind: got.Kind().String(), Proposal: got})
	}
	where := ""
	if got.Path != "" {
		where = " under " + got.Path
	}
	fmt.Fprintf(cmd.Out(), "%s %q is available%s\n", got.Kind(), got.Name, where)
	return nil
}
