// write.go implements the mutating site operations: creating sections,
// subsections and pages, replacing page content and removing pages.
//
// Design: every mutation follows the same order. The tree change is
// computed in memory first, so a proposal with no parent fails before
// anything touches the disk. The filesystem effect comes next, and
// mkdocs.yml is rewritten last, so the navigation never lists a file that
// failed to be created. If the rewrite fails, Create removes what it made.

package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/diff"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/jpl-au/docsite/internal/path"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/jpl-au/docsite/internal/validate"
	"github.com/lithammer/dedent"
)

// ErrFileExists is returned by Create when the page file is already on disk
// but not listed in the navigation.
var ErrFileExists = errors.New("page file already exists")

// pageTemplate seeds pages created without content.
var pageTemplate = strings.TrimLeft(dedent.Dedent(`
	# %s

	`), "\n")

// Create validates p, creates its directory or page file, and adds it to the
// navigation.
func (s *Service) Create(ctx context.Context, p nav.Proposal, content string) (service.Created, error) {
	if err := validate.Proposal(p); err != nil {
		return service.Created{}, err
	}
	if err := validate.Content(content, s.maxContent); err != nil {
		return service.Created{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, t, err := s.readNav(ctx)
	if err != nil {
		return service.Created{}, err
	}
	if _, err := nav.Validate(t, p); err != nil {
		return service.Created{}, err
	}

	kind := p.Kind()
	out := service.Created{Name: nav.TitleCase(p.Name), Kind: kind.String()}

	if kind == nav.KindPage {
		out.Path, err = path.PagePath(p.Path, p.Name)
	} else {
		out.Path, err = path.DirPath(p.Path, p.Name)
	}
	if err != nil {
		return service.Created{}, err
	}

	file := ""
	if kind == nav.KindPage {
		file = out.Path
	}
	updated, err := t.Insert(p, file)
	if err != nil {
		return service.Created{}, err
	}

	existed, err := s.docs.Exists(out.Path)
	if err != nil {
		return service.Created{}, err
	}
	if kind == nav.KindPage {
		if existed {
			return service.Created{}, fmt.Errorf("%w: %s", ErrFileExists, out.Path)
		}
		if content == "" {
			content = fmt.Sprintf(pageTemplate, out.Name)
		}
		if err := s.docs.WriteFile(ctx, out.Path, content); err != nil {
			return service.Created{}, err
		}
	} else if err := s.docs.CreateDirectory(ctx, out.Path); err != nil {
		return service.Created{}, err
	}

	if err := s.writeNav(data, updated); err != nil {
		// Only undo what this call created; a pre-existing directory stays.
		if !existed {
			if rmErr := s.docs.RemovePath(ctx, out.Path); rmErr != nil {
				return service.Created{}, errors.Join(err, fmt.Errorf("removing %s: %w", out.Path, rmErr))
			}
		}
		return service.Created{}, err
	}

	s.fireEvent(extension.PageCreateEvent{Name: out.Name, Kind: out.Kind, Path: out.Path})
	return out, nil
}

// Write replaces the content of the page backing url. A backing file that
// is listed but missing on disk is created.
func (s *Service) Write(ctx context.Context, url, content string) (service.Written, error) {
	if err := validate.Content(content, s.maxContent); err != nil {
		return service.Written{}, err
	}

	t, err := s.Tree(ctx)
	if err != nil {
		return service.Written{}, err
	}
	res, err := nav.Find(t, url, struct{}{})
	if err != nil {
		return service.Written{}, err
	}

	old, err := s.docs.ReadFile(ctx, res.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return service.Written{}, err
	}
	if err := s.docs.WriteFile(ctx, res.Path, content); err != nil {
		return service.Written{}, err
	}

	out := service.Written{
		URL:  url,
		Path: res.Path,
		Diff: diff.Compute(old, content, res.Path+" (before)", res.Path+" (after)"),
	}
	s.fireEvent(extension.PageWriteEvent{URL: url, Path: res.Path, Content: content})
	return out, nil
}

// Remove deletes the file backing url and drops its navigation entry.
func (s *Service) Remove(ctx context.Context, url string) (service.Removed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, t, err := s.readNav(ctx)
	if err != nil {
		return service.Removed{}, err
	}
	updated, entry, err := t.Remove(url)
	if err != nil {
		return service.Removed{}, err
	}

	if err := s.docs.RemovePath(ctx, entry.Path); err != nil {
		return service.Removed{}, err
	}
	if err := s.writeNav(data, updated); err != nil {
		return service.Removed{}, err
	}

	s.fireEvent(extension.PageRemoveEvent{URL: url, Path: entry.Path})
	return service.Removed{URL: url, Path: entry.Path}, nil
}
