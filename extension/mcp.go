// mcp.go lets an extension contribute tools to "docsite serve". The server
// registers every tool returned by an extension's MCPTools alongside its
// built-in site_* tools, and calls the handler with the same Context the
// CLI commands receive.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool is one tool definition and the function that answers it.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler answers a tool call. Errors meant for the client belong in the
// result (mcp.NewToolResultError); a returned error aborts the call.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
