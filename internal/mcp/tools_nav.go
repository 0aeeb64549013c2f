// tools_nav.go implements the read-only navigation tools: tree, find,
// validate and grep. They mirror the CLI commands of the same names and
// return JSON.

package mcp

import (
	"context"

	"github.com/jpl-au/docsite/internal/grep"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) tree(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	t, err := h.svc.Tree(ctx)
	log.Event("mcp:site_tree", "read").Author("mcp").Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(t)
}

func (h *handlers) find(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}

	res, err := h.svc.Find(ctx, url, optString(req, "html"))
	l := log.Event("mcp:site_find", "find").Author("mcp").URL(url)
	if err == nil {
		l.Path(res.Path)
	}
	l.Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(res)
}

func (h *handlers) validate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil //nolint:nilerr
	}
	p := nav.Proposal{
		Name:    name,
		Path:    getString(req, "path", ""),
		Section: getBool(req, "section", false),
	}

	got, err := h.svc.Validate(ctx, p)
	log.Event("mcp:site_validate", "validate").Author("mcp").URL(p.Path).Kind(p.Kind().String()).
		Detail("name", p.Name).Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(map[string]any{"valid": true, "proposal": got, "kind": got.Kind().String()})
}

func (h *handlers) grep(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("pattern is required"), nil //nolint:nilerr
	}
	opts := grep.Options{
		Glob:       getString(req, "glob", ""),
		IgnoreCase: getBool(req, "ignore_case", false),
	}

	hits, err := grep.Search(ctx, h.svc, pattern, opts)
	log.Event("mcp:site_grep", "search").Author("mcp").Path(opts.Glob).
		Detail("pattern", pattern).Detail("count", len(hits)).Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(hits)
}
