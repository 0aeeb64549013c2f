// tools_util.go provides helpers for MCP tool parameter extraction and
// result encoding.
//
// Design: extraction is permissive. An optional parameter that is missing
// or of the wrong type yields the default rather than an error, since LLM
// clients often omit optional arguments or send "true" for true.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString returns a string parameter or def.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// optString returns a string parameter, or nil when it was not sent.
// An empty string that was sent is returned as such.
func optString(req mcp.CallToolRequest, name string) *string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	if v, ok := args[name].(string); ok {
		return &v
	}
	return nil
}

// getBool returns a boolean parameter or def.
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// jsonResult wraps v as indented JSON text. LLMs parse indented output more
// reliably than compact JSON.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errResult converts err into a tool error so the client can read it.
func errResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
