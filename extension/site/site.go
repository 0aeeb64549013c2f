// Package site provides the commands that act on the whole site: build and
// zip. It also contributes the site_build and site_zip MCP tools and
// rebuilds the site after page changes when build.auto is set.
package site

import (
	"context"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the site extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.EventHandler  = (*Extension)(nil)
)

// Name returns "site".
func (e *Extension) Name() string { return "site" }

// Init connects to the shared site service.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns build and zip.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newBuildCmd(),
		e.newZipCmd(),
	}
}

// MCPTools returns site_build and site_zip.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{Tool: buildTool(), Handler: handleBuildTool},
		{Tool: zipTool(), Handler: handleZipTool},
	}
}

// HandleEvent rebuilds the site after a page or nav change when build.auto
// is enabled. Build events are ignored; a build never triggers a build.
func (e *Extension) HandleEvent(ctx extension.Context, evt extension.Event) error {
	switch evt.(type) {
	case extension.PageWriteEvent, extension.PageCreateEvent, extension.PageRemoveEvent:
	default:
		return nil
	}
	if !ctx.Config().AutoBuild() {
		return nil
	}

	// handlers get no caller context; a rebuild runs to completion
	res, err := ctx.Service().Build(context.Background(), nil)
	log.Event("site:auto", "build").
		Path(evt.EventPath()).
		Detail("trigger", string(evt.EventType())).
		Detail("exit_code", res.ExitCode).
		Write(err)
	return err
}
