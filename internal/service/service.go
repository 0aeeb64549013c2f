// Package service defines the shared interface for site operations.
// Commands, MCP tools and HTTP handlers depend on this interface rather than
// on the concrete implementation in package site.
package service

import (
	"context"
	"io"

	"github.com/jpl-au/docsite/internal/build"
	"github.com/jpl-au/docsite/internal/diff"
	"github.com/jpl-au/docsite/internal/nav"
)

// Service defines all site operations.
//
// The navigation tree is loaded from mkdocs.yml on every call, so edits made
// outside docsite are always seen. Always call Close() when done.
//
//	svc, err := site.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer svc.Close()
//	page, err := svc.Page(ctx, "getting_started")
type Service interface {
	// Close releases resources held by the service.
	Close() error

	// Root returns the absolute site root.
	Root() string

	// Tree loads the navigation tree.
	Tree(ctx context.Context) (nav.Tree, error)

	// Find locates the file backing url. The result content is *html when
	// html is non-nil, even if empty, otherwise the navigation tree itself.
	// Returns nav.ErrNotFound when no entry matches.
	Find(ctx context.Context, url string, html *string) (nav.Result[any], error)

	// Page finds url and reads its backing file.
	Page(ctx context.Context, url string) (Page, error)

	// Pages reads the pages whose file path matches a glob pattern, in nav
	// order. An empty pattern selects every page.
	Pages(ctx context.Context, pattern string) ([]Page, error)

	// Validate checks a proposal for name collisions. Returns the proposal
	// unchanged when it is clear, or a *nav.DuplicateError.
	Validate(ctx context.Context, p nav.Proposal) (nav.Proposal, error)

	// Create validates p, creates its directory or page file and adds it to
	// the navigation. content seeds a new page; empty content gets a heading.
	Create(ctx context.Context, p nav.Proposal, content string) (Created, error)

	// Write replaces the content of the page backing url and returns the
	// change it made.
	Write(ctx context.Context, url, content string) (Written, error)

	// Remove deletes the file backing url and its navigation entry.
	Remove(ctx context.Context, url string) (Removed, error)

	// Build runs the configured build command in the site root. A non-zero
	// exit is reported in the result, not as an error. When stream is
	// non-nil, output is copied to it as it is produced.
	Build(ctx context.Context, stream io.Writer) (build.Result, error)

	// Zip writes a zip archive of the built site to w and returns the
	// number of files written.
	Zip(ctx context.Context, w io.Writer) (int, error)

	// ReloadConfig re-reads configuration from disk.
	ReloadConfig() error
}

// Page is a located page with its content.
type Page struct {
	URL     string `json:"url"`
	Section string `json:"section"` // matched nav identifier
	Path    string `json:"path"`    // file path relative to the docs directory
	Content string `json:"content"`
}

// Created describes a node added by Create.
type Created struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // section, subsection or page
	Path string `json:"path"` // directory for sections, file for pages
}

// Written describes a page write.
type Written struct {
	URL  string      `json:"url"`
	Path string      `json:"path"`
	Diff diff.Result `json:"diff"`
}

// Removed describes a page removal.
type Removed struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}
