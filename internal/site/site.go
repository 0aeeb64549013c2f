// Package site implements service.Service over an MkDocs site on disk: the
// navigation in mkdocs.yml, page sources under the docs directory and the
// built output directory.
package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/jpl-au/docsite/internal/service"
	"github.com/jpl-au/docsite/internal/sitefs"
)

// ErrNoSite is returned by New when the site config file does not exist.
var ErrNoSite = errors.New("no mkdocs site found")

// Service provides site operations. Safe for concurrent use; changes to
// mkdocs.yml are serialised.
type Service struct {
	root       string
	navFile    string
	docs       *sitefs.FS
	output     string
	buildCmd   string
	maxContent int64

	mu     sync.Mutex // guards read-modify-write of navFile
	extCtx extension.Context
}

var _ service.Service = (*Service)(nil)

// New opens the site described by cfg.
// Without an explicit root it searches upward from the working directory
// for the site config file.
func New(cfg *config.Config) (*Service, error) {
	root, err := filepath.Abs(cfg.Root())
	if err != nil {
		return nil, fmt.Errorf("resolving site root: %w", err)
	}
	if !cfg.RootSet() && !filepath.IsAbs(cfg.SiteConfigName()) {
		if found, err := Discover(root, cfg.SiteConfigName()); err == nil {
			root = found
		}
	}
	s := &Service{root: root}
	s.apply(cfg)

	if _, err := os.Stat(s.navFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSite, s.navFile)
		}
		return nil, fmt.Errorf("checking site config: %w", err)
	}
	return s, nil
}

func (s *Service) apply(base *config.Config) {
	cfg := *base
	cfg.Site.Root = s.root
	s.navFile = absUnder(s.root, cfg.SiteConfig())
	s.docs = sitefs.New(absUnder(s.root, cfg.DocsDir()))
	s.output = absUnder(s.root, cfg.Output())
	s.buildCmd = cfg.BuildCommand()
	s.maxContent = cfg.MaxContent()
}

func absUnder(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Join(root, p)
}

// Close releases resources. The service holds no open handles between
// calls, so Close only exists to satisfy service.Service.
func (s *Service) Close() error { return nil }

// Root returns the absolute site root.
func (s *Service) Root() string { return s.root }

// DocsDir returns the absolute docs directory.
func (s *Service) DocsDir() string { return s.docs.Dir }

// Output returns the absolute build output directory.
func (s *Service) Output() string { return s.output }

// ReloadConfig re-reads configuration. The site root stays fixed.
func (s *Service) ReloadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(cfg)
	return nil
}

// SetExtensionContext sets the context events are delivered with.
func (s *Service) SetExtensionContext(ctx extension.Context) {
	s.extCtx = ctx
}

// Tree loads the navigation tree from mkdocs.yml.
func (s *Service) Tree(ctx context.Context) (nav.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nav.Tree{}, err
	}
	return nav.Load(s.navFile)
}

// readNav returns the raw mkdocs.yml and its parsed tree. Callers that
// write the file back must hold mu.
func (s *Service) readNav(ctx context.Context) ([]byte, nav.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, nav.Tree{}, err
	}
	data, err := os.ReadFile(s.navFile)
	if err != nil {
		return nil, nav.Tree{}, fmt.Errorf("reading %s: %w", filepath.Base(s.navFile), err)
	}
	t, err := nav.Parse(data)
	if err != nil {
		return nil, nav.Tree{}, fmt.Errorf("%s: %w", filepath.Base(s.navFile), err)
	}
	return data, t, nil
}

// writeNav replaces the navigation in data with t and writes the result
// through a temporary file so readers never see a partial config.
func (s *Service) writeNav(data []byte, t nav.Tree) error {
	out, err := nav.Replace(data, t)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(s.navFile); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.navFile), ".docsite-nav-*")
	if err != nil {
		return fmt.Errorf("writing nav: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		return fmt.Errorf("writing nav: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("writing nav: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing nav: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.navFile); err != nil {
		return fmt.Errorf("writing nav: %w", err)
	}
	return nil
}

// fireEvent notifies every extension implementing extension.EventHandler.
//
// Design: handler errors are logged, not returned. The change is already on
// disk and events cannot veto it.
func (s *Service) fireEvent(e extension.Event) {
	if s.extCtx == nil {
		return
	}
	for _, ext := range extension.All() {
		if h, ok := ext.(extension.EventHandler); ok {
			if err := h.HandleEvent(s.extCtx, e); err != nil {
				log.Event("event:error", "error").
					Detail("ext", ext.Name()).
					Detail("event", string(e.EventType())).
					Path(e.EventPath()).
					Write(err)
			}
		}
	}
}
