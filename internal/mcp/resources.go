// resources.go implements MCP resource access to page content.
//
// Resources let a client pull a page into context without a tool call.
// URIs follow docsite://pages/{url}, where url is the page identifier
// resolved the same way site_find resolves it.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyURL indicates a resource URI without a page identifier.
	ErrEmptyURL = errors.New("empty page url")
)

func (h *handlers) readPage(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.svc == nil {
		return nil, errors.New(ErrNoSite)
	}
	u, err := parsePageURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	page, err := h.svc.Page(ctx, u)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     page.Content,
		},
	}, nil
}

// parsePageURI extracts the page identifier from docsite://pages/{url}.
// The identifier may be percent-encoded.
func parsePageURI(uri string) (string, error) {
	const prefix = "docsite://pages/"
	if !strings.HasPrefix(uri, prefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	rest := strings.TrimPrefix(uri, prefix)
	if rest == "" {
		return "", ErrEmptyURL
	}
	u, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	return u, nil
}
