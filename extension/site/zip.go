// zip.go implements "docsite zip", which packages the built site.

package site

import (
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

type zipResult struct {
	File  string `json:"file"`
	Files int    `json:"files"`
}

func (e *Extension) newZipCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "zip",
		Short: "Archive the built site",
		Long: `Zip the build output directory (site.output, default "site").

  docsite zip               # writes site.zip
  docsite zip -f out.zip`,
		Args: cobra.NoArgs,
		RunE: e.runZip,
	}
	c.Flags().StringP(extension.FlagFile, "f", "site.zip", "Archive to write")
	return c
}

func (e *Extension) runZip(c *cobra.Command, _ []string) error {
	file, _ := c.Flags().GetString(extension.FlagFile)
	n, err := zipTo(c.Context(), e.svc, file)
	log.Event("site:zip", "zip").
		Author(cmd.Author()).
		Path(file).
		Detail("files", n).
		Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("zip: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(zipResult{File: file, Files: n})
	}
	fmt.Fprintf(cmd.Out(), "Wrote %s (%d files)\n", file, n)
	return nil
}
