// tools_guide.go implements site_guide, which serves the embedded help
// pages over MCP. An empty topic returns the overview; an unknown topic
// returns the list of topics a client can ask for instead.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/docsite/guide"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")
	page, err := guide.Get(topic)
	log.Event("mcp:site_guide", "read").Author("mcp").Detail("topic", topic).Write(err)
	if err == nil {
		return mcp.NewToolResultText(page), nil
	}

	topics, listErr := guide.List()
	if listErr != nil {
		return nil, fmt.Errorf("listing guide topics: %w", listErr)
	}
	return jsonResult(map[string]any{
		"error":            err.Error(),
		"available_topics": topics,
	})
}
