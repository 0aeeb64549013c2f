// Package mcp implements the Model Context Protocol server, exposing site
// operations to LLM clients over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/jpl-au/docsite/internal/site"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNoSite is returned by tools when no mkdocs site was found at startup.
const ErrNoSite = "no mkdocs site found - set site.root with site_config_set or the MKDOCS environment variable, then restart the server"

// Serve starts the MCP server over stdio.
//
// Design: the server starts even when no site is found, so a client can fix
// the configuration through site_config_set. Tools that need the site return
// ErrNoSite until then.
func Serve(cfg *config.Config) error {
	// stdout carries JSON-RPC; logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	h := &handlers{}

	svc, err := site.New(cfg)
	if err != nil && !errors.Is(err, site.ErrNoSite) {
		slog.Error("failed to open site", "error", err)
		return err
	}
	if err == nil {
		defer svc.Close()
		log.SetProject(svc.Root())
		h.svc = svc
		h.extCtx = extension.NewContext(svc, cfg)
		svc.SetExtensionContext(h.extCtx)
		if err := initExtensions(h.extCtx); err != nil {
			return err
		}
	} else {
		slog.Warn("starting without a site", "error", err)
	}

	s := newServer(h)
	slog.Info("docsite MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// initExtensions hands the shared context to every Initializable extension.
func initExtensions(ctx extension.Context) error {
	for _, ext := range extension.All() {
		if init, ok := ext.(extension.Initializable); ok {
			if err := init.Init(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// newServer builds the MCP server with every resource and tool registered.
func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"docsite",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	registerExtensionTools(s, h)
	return s
}

// handlers serves MCP requests. svc is nil when no site was found.
type handlers struct {
	svc    service.Service
	extCtx extension.Context
}

// requireSite returns an error result when no site is open.
func (h *handlers) requireSite() *mcp.CallToolResult {
	if h.svc == nil {
		return mcp.NewToolResultError(ErrNoSite)
	}
	return nil
}

func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"docsite://pages/{url}",
			"Page",
			mcp.WithTemplateDescription("Read a page's markdown by its nav identifier"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readPage,
	)
}

func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("site_tree",
			mcp.WithDescription("Return the site's navigation tree: sections, subsections and pages with their files"),
		),
		h.tree,
	)

	s.AddTool(
		mcp.NewTool("site_find",
			mcp.WithDescription("Find the file backing a page. Identifiers match case-insensitively with underscores as spaces (getting_started finds 'Getting Started')"),
			mcp.WithString("url", mcp.Required(), mcp.Description("Page identifier")),
			mcp.WithString("html", mcp.Description("Content to echo back in the result; the nav tree is returned when omitted")),
		),
		h.find,
	)

	s.AddTool(
		mcp.NewTool("site_read",
			mcp.WithDescription("Read a page's markdown"),
			mcp.WithString("url", mcp.Required(), mcp.Description("Page identifier")),
			mcp.WithBoolean("html", mcp.Description("Also return the page rendered as HTML")),
		),
		h.read,
	)

	s.AddTool(
		mcp.NewTool("site_validate",
			mcp.WithDescription("Check whether a new section, subsection or page name collides with the nav"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Proposed name")),
			mcp.WithString("path", mcp.Description("Parent: a section, or section/subsection for pages in a subsection")),
			mcp.WithBoolean("section", mcp.Description("Propose a section (no path) or subsection (with path) instead of a page")),
		),
		h.validate,
	)

	s.AddTool(
		mcp.NewTool("site_create",
			mcp.WithDescription("Create a section, subsection or page and add it to the nav. Validates first"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new node")),
			mcp.WithString("path", mcp.Description("Parent: a section, or section/subsection")),
			mcp.WithBoolean("section", mcp.Description("Create a section or subsection instead of a page")),
			mcp.WithString("content", mcp.Description("Initial page markdown (default: a heading)")),
			mcp.WithString("author", mcp.Description("Author recorded in the audit log")),
		),
		h.create,
	)

	s.AddTool(
		mcp.NewTool("site_write",
			mcp.WithDescription("Replace a page's markdown. Returns a diff of the change"),
			mcp.WithString("url", mcp.Required(), mcp.Description("Page identifier")),
			mcp.WithString("content", mcp.Required(), mcp.Description("New markdown")),
			mcp.WithString("author", mcp.Description("Author recorded in the audit log")),
		),
		h.write,
	)

	s.AddTool(
		mcp.NewTool("site_edit",
			mcp.WithDescription("Edit part of a page: replace the first occurrence of old with new, or replace a line range with new. Returns a diff of the change"),
			mcp.WithString("url", mcp.Required(), mcp.Description("Page identifier")),
			mcp.WithString("old", mcp.Description("Text to replace")),
			mcp.WithString("new", mcp.Description("Replacement text")),
			mcp.WithString("lines", mcp.Description("Line range start:end to replace instead of old text")),
			mcp.WithBoolean("ignore_case", mcp.Description("Match old text ignoring case")),
			mcp.WithString("author", mcp.Description("Author recorded in the audit log")),
		),
		h.edit,
	)

	s.AddTool(
		mcp.NewTool("site_grep",
			mcp.WithDescription("Search page content with a regular expression. Returns matching lines per page"),
			mcp.WithString("pattern", mcp.Required(), mcp.Description("Regular expression")),
			mcp.WithString("glob", mcp.Description("Only search pages whose file matches, e.g. guides/**")),
			mcp.WithBoolean("ignore_case", mcp.Description("Case-insensitive matching")),
		),
		h.grep,
	)

	s.AddTool(
		mcp.NewTool("site_remove",
			mcp.WithDescription("Delete a page's file and remove it from the nav"),
			mcp.WithString("url", mcp.Required(), mcp.Description("Page identifier")),
			mcp.WithString("author", mcp.Description("Author recorded in the audit log")),
		),
		h.remove,
	)

	s.AddTool(
		mcp.NewTool("site_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (site.root, build.command, ...) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("site_config_set",
			mcp.WithDescription("Set a configuration value in the global config"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("site_guide",
			mcp.WithDescription("Get usage guides for docsite"),
			mcp.WithString("topic", mcp.Description("Guide topic (find, validate, new, write, build, config) or empty for the overview")),
		),
		h.getGuide,
	)
}

// registerExtensionTools adds the tools extensions contribute. They share
// the handlers' extension context.
func registerExtensionTools(s *server.MCPServer, h *handlers) {
	for _, t := range extension.Tools() {
		handler := t.Handler
		s.AddTool(t.Tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if res := h.requireSite(); res != nil {
				return res, nil
			}
			return handler(ctx, h.extCtx, req)
		})
	}
}
