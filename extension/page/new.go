// new.go implements "docsite new", which adds a section, subsection or page
// to the site.
//
// Design: the proposal is checked for collisions first, so a clash never
// leaves a directory or file behind. --dry-run stops after the check.

package page

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/spf13/cobra"
)

type dryRunResult struct {
	DryRun   bool         `json:"dry_run"`
	Kind     string       `json:"kind"`
	Proposal nav.Proposal `json:"proposal"`
}

func (e *Extension) newNewCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "new <name> [content]",
		Short: "Add a section, subsection or page",
		Long: `Create a section, subsection or page and add it to mkdocs.yml.

  docsite new Guides --section                  # docs/guides/
  docsite new Advanced --path Guides --section  # docs/guides/advanced/
  docsite new Install --path Guides             # docs/guides/install.md
  docsite new About                             # docs/about.md, top level
  docsite new Tuning --path Guides/Advanced -f tuning.md

New pages get a "# Name" heading unless content is given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runNew,
	}
	c.Flags().StringP(extension.FlagPath, "p", "", "Parent section or section/subsection")
	c.Flags().BoolP(extension.FlagSection, "s", false, "Create a section (or subsection with --path)")
	c.Flags().StringP(extension.FlagFile, "f", "", "Read page content from file")
	c.Flags().Bool(extension.FlagDryRun, false, "Check for collisions without creating anything")
	return c
}

func (e *Extension) runNew(c *cobra.Command, args []string) error {
	p, _ := c.Flags().GetString(extension.FlagPath)
	section, _ := c.Flags().GetBool(extension.FlagSection)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	prop := nav.Proposal{Name: args[0], Path: p, Section: section}

	l := log.Event("page:new", "create").
		Author(cmd.Author()).
		URL(prop.Path).
		Kind(prop.Kind().String()).
		Detail("name", prop.Name)

	if dryRun {
		_, err := e.svc.Validate(c.Context(), prop)
		l.Detail("dry_run", true).Write(err)
		if err != nil {
			return cmd.PrintJSONError(err)
		}
		if cmd.JSON() {
			return cmd.PrintJSON(dryRunResult{DryRun: true, Kind: prop.Kind().String(), Proposal: prop})
		}
		fmt.Fprintf(cmd.Out(), "Would create %s %q\n", prop.Kind(), prop.Name)
		return nil
	}

	var content string
	if !section {
		var err error
		if content, err = readContent(c, args, 1, false); err != nil {
			l.Write(err)
			return cmd.PrintJSONError(err)
		}
	}

	created, err := e.svc.Create(c.Context(), prop, content)
	if err == nil {
		l.Path(created.Path)
	}
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	if cmd.JSON() {
		return cmd.PrintJSON(created)
	}
	fmt.Fprintf(cmd.Out(), "Created %s %s\n", created.Kind, created.Path)
	return nil
}
