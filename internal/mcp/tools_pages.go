// tools_pages.go implements the page tools: read, create, write, edit and
// remove.
//
// Errors come back as tool error results carrying the service's message,
// so a client sees "Could not associate path" or "That section already
// exists!" exactly as the CLI prints them.

package mcp

import (
	"context"

	"github.com/jpl-au/docsite/internal/edit"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/jpl-au/docsite/internal/render"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) read(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}

	page, err := h.svc.Page(ctx, url)
	l := log.Event("mcp:site_read", "read").Author("mcp").URL(url)
	if err == nil {
		l.Path(page.Path)
	}
	l.Write(err)
	if err != nil {
		return errResult(err)
	}

	if !getBool(req, "html", false) {
		return jsonResult(page)
	}
	html, err := render.HTML(page.Content)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(map[string]any{
		"url":     page.URL,
		"section": page.Section,
		"path":    page.Path,
		"content": page.Content,
		"html":    html,
	})
}

func (h *handlers) create(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

	created, err := h.svc.Create(ctx, p, getString(req, "content", ""))
	l := log.Event("mcp:site_create", "create").Author(getString(req, "author", "mcp")).
		URL(p.Path).Kind(p.Kind().String()).Detail("name", p.Name)
	if err == nil {
		l.Path(created.Path)
	}
	l.Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(created)
}

func (h *handlers) write(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil //nolint:nilerr
	}

	written, err := h.svc.Write(ctx, url, content)
	l := log.Event("mcp:site_write", "write").Author(getString(req, "author", "mcp")).URL(url)
	if err == nil {
		l.Path(written.Path)
	}
	l.Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(written)
}

func (h *handlers) edit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}
	opts := edit.Options{
		Old:        getString(req, "old", ""),
		New:        getString(req, "new", ""),
		IgnoreCase: getBool(req, "ignore_case", false),
		Lines:      getString(req, "lines", ""),
	}
	if opts.Lines == "" && opts.Old == "" {
		return mcp.NewToolResultError("old or lines is required"), nil
	}

	written, err := edit.Run(ctx, h.svc, url, opts)
	l := log.Event("mcp:site_edit", "write").Author(getString(req, "author", "mcp")).URL(url)
	if err == nil {
		l.Path(written.Path)
	}
	l.Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(written)
}

func (h *handlers) remove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := h.requireSite(); res != nil {
		return res, nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url is required"), nil //nolint:nilerr
	}

	removed, err := h.svc.Remove(ctx, url)
	l := log.Event("mcp:site_remove", "remove").Author(getString(req, "author", "mcp")).URL(url)
	if err == nil {
		l.Path(removed.Path)
	}
	l.Write(err)
	if err != nil {
		return errResult(err)
	}
	return jsonResult(removed)
}
