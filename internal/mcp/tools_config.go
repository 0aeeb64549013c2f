// tools_config.go implements MCP tools for configuration management.
//
// Separated from the site tools because config changes persist across runs
// and must be pushed into the running service.
//
// Design: Config changes trigger ReloadConfig() so the running server picks
// up a new build command or size limit at once. Both tools work without an
// open site, since fixing site.root is how a client gets one.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles site_config_get tool calls.
func (h *handlers) configGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:site_config_get", "get").Author("mcp").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:site_config_get", "list").Author("mcp").Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:site_config_get", "get").Author("mcp").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]string{key: v})
}

// configSet handles site_config_set tool calls.
func (h *handlers) configSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}

	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	cfg, err := config.Load()
	if err != nil {
		log.Event("mcp:site_config_set", "set").Author("mcp").Detail("key", key).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := cfg.Set(key, value); err != nil {
		log.Event("mcp:site_config_set", "set").Author("mcp").Detail("key", key).Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = cfg.Save()

	log.Event("mcp:site_config_set", "set").Author("mcp").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if h.svc == nil {
		return mcp.NewToolResultText(fmt.Sprintf("%s = %s (restart the server to open the site)", key, value)), nil
	}
	if err := h.svc.ReloadConfig(); err != nil {
		log.Event("mcp:site_config_set", "reload").Author("mcp").Write(err)
		return mcp.NewToolResultText(fmt.Sprintf("%s = %s (warning: reload failed, restart server to apply: %v)", key, value, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s = %s", key, value)), nil
}
