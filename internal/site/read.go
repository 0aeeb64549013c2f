// read.go implements the read-only site operations: locating pages,
// reading their content and checking proposals for collisions.

package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jpl-au/docsite/internal/glob"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/jpl-au/docsite/internal/validate"
)

// Find locates the file backing url. The result carries *html when html is
// set, otherwise the tree the lookup ran against.
func (s *Service) Find(ctx context.Context, url string, html *string) (nav.Result[any], error) {
	t, err := s.Tree(ctx)
	if err != nil {
		return nav.Result[any]{}, err
	}
	var content any = t
	if html != nil {
		content = *html
	}
	return nav.Find(t, url, content)
}

// Page locates url and reads its backing file.
func (s *Service) Page(ctx context.Context, url string) (service.Page, error) {
	t, err := s.Tree(ctx)
	if err != nil {
		return service.Page{}, err
	}
	res, err := nav.Find(t, url, struct{}{})
	if err != nil {
		return service.Page{}, err
	}
	content, err := s.docs.ReadFile(ctx, res.Path)
	if err != nil {
		return service.Page{}, fmt.Errorf("page %q: %w", url, err)
	}
	return service.Page{URL: url, Section: res.Section, Path: res.Path, Content: content}, nil
}

// Pages reads every page in nav order whose file path matches pattern.
// An empty pattern matches all pages. Listed pages with no file on disk are
// skipped.
func (s *Service) Pages(ctx context.Context, pattern string) ([]service.Page, error) {
	t, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	var out []service.Page
	for _, leaf := range t.Leaves() {
		if pattern != "" {
			ok, err := glob.Match(pattern, leaf.Path)
			if err != nil {
				return nil, fmt.Errorf("pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}
		}
		content, err := s.docs.ReadFile(ctx, leaf.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, service.Page{URL: leaf.Identifier, Section: leaf.Identifier, Path: leaf.Path, Content: content})
	}
	return out, nil
}

// Validate checks p for malformed input, then for collisions with the
// current tree.
func (s *Service) Validate(ctx context.Context, p nav.Proposal) (nav.Proposal, error) {
	if err := validate.Proposal(p); err != nil {
		return p, err
	}
	t, err := s.Tree(ctx)
	if err != nil {
		return p, err
	}
	return nav.Validate(t, p)
}
