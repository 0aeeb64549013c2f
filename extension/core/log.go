// log.go implements "docsite log", which lists recent audit entries for the
// current site.

package core

import (
	"fmt"
	"time"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/duration"
	"github.com/jpl-au/docsite/internal/format"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent operations on this site",
		Long: `Show the audit log for the current site, newest first.

  docsite log
  docsite log -n 50
  docsite log --since 7d
  docsite log -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			limit, _ := c.Flags().GetInt(extension.FlagLimit)
			sinceFlag, _ := c.Flags().GetString(extension.FlagSince)

			var since time.Time
			if sinceFlag != "" {
				d, err := duration.Parse(sinceFlag)
				if err != nil {
					return cmd.PrintJSONError(err)
				}
				since = time.Now().Add(-d)
			}

			entries, err := log.Recent(limit, since)
			if err != nil {
				return cmd.PrintJSONError(fmt.Errorf("log: %w", err))
			}
			if cmd.JSON() {
				if entries == nil {
					entries = []log.Entry{}
				}
				return cmd.PrintJSON(entries)
			}
			return format.Log(cmd.Out(), entries)
		},
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Number of entries")
	c.Flags().String(extension.FlagSince, "", "Only entries newer than this (2h, 7d, 4w, 3m)")
	return c
}
