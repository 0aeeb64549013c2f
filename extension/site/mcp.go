// mcp.go defines the site_build and site_zip MCP tools.

package site

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

func buildTool() mcp.Tool {
	return mcp.NewTool("site_build",
		mcp.WithDescription("Build the static site with the configured build command. Returns the exit code and captured output."),
	)
}

func zipTool() mcp.Tool {
	return mcp.NewTool("site_zip",
		mcp.WithDescription("Zip the built site into an archive file"),
		mcp.WithString("file", mcp.Required(), mcp.Description("Path of the zip file to write")),
	)
}

func handleBuildTool(ctx context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := extCtx.Service().Build(ctx, nil)
	log.Event("mcp:site_build", "build").Author("mcp").Detail("exit_code", res.ExitCode).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(res)
}

func handleZipTool(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := req.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	n, err := zipTo(ctx, extCtx.Service(), file)
	log.Event("mcp:site_zip", "zip").Author("mcp").Path(file).Detail("files", n).Write(err)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("zip: %v", err)), nil
	}
	return toolJSON(zipResult{File: file, Files: n})
}

// zipTo writes the built site to file, removing the file again if the
// archive could not be completed.
func zipTo(ctx context.Context, svc service.Service, file string) (n int, err error) {
	f, err := os.Create(file)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(file)
		}
	}()
	return svc.Zip(ctx, f)
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
