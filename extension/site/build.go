// build.go implements "docsite build", which runs the configured build
// command (mkdocs build by default) in the site root.
//
// Design: output streams to the terminal as it is produced. In JSON mode it
// is captured and returned in the result instead. A failing build exits
// non-zero but is not reported as a docsite error.

package site

import (
	"errors"
	"fmt"

	"github.com/jpl-au/docsite/cmd"
	"github.com/jpl-au/docsite/internal/format"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/spf13/cobra"
)

// ErrBuildFailed is returned when the build command exits non-zero.
var ErrBuildFailed = errors.New("build failed")

func (e *Extension) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the static site",
		Long: `Run the build command (build.command, default "mkdocs build") in the
site root.

  docsite build
  docsite config build.command "mkdocs build --strict"`,
		Args: cobra.NoArgs,
		RunE: e.runBuild,
	}
}

func (e *Extension) runBuild(c *cobra.Command, _ []string) error {
	stream := cmd.Out()
	if cmd.JSON() {
		stream = nil
	}

	res, err := e.svc.Build(c.Context(), stream)
	log.Event("site:build", "build").
		Author(cmd.Author()).
		Detail("command", res.Command).
		Detail("exit_code", res.ExitCode).
		Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("build: %w", err))
	}

	if cmd.JSON() {
		if err := cmd.PrintJSON(res); err != nil {
			return err
		}
	} else {
		summary := res
		summary.Output = "" // already streamed
		if err := format.Build(cmd.Out(), summary); err != nil {
			return err
		}
	}
	if !res.OK() {
		c.SilenceErrors = cmd.JSON()
		c.SilenceUsage = true
		return fmt.Errorf("%w: exit %d", ErrBuildFailed, res.ExitCode)
	}
	return nil
}
