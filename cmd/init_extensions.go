/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go opens the site and wires up extensions.
//
// Separated from root.go to isolate locating the site, loading config and
// injecting the shared context.
//
// Design: extensions register their commands in init() but are only
// initialised when a command that needs the site runs. The service is
// created once and shared through extension.Context.

package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jpl-au/docsite/extension"
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/site"
)

// noSiteCommands lists commands that run without an opened site. Built
// from the bootstrap commands plus those extensions declare via
// extension.Siteless.
var noSiteCommands map[string]bool

// authorRequiredCommands lists commands that change the site. They refuse
// to run without an author so every change in the audit log is attributed.
var authorRequiredCommands = map[string]bool{
	"new":   true,
	"write": true,
	"edit":  true,
	"rm":    true,
}

// buildNoSiteCommands returns the set of commands that skip site
// initialisation. Help and shell completion must work anywhere.
func buildNoSiteCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}
	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Siteless); ok {
			for _, name := range s.NoSiteCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

var (
	extContext extension.Context
	extService *site.Service
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config, opens the site and injects the shared
// context into every Initializable extension. It runs at most once per
// process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		svc, err := site.New(cfg)
		if err != nil {
			if errors.Is(err, site.ErrNoSite) {
				initErr = fmt.Errorf("%w (pass --site, set site.root or MKDOCS, or run from the site directory)", err)
				return
			}
			initErr = fmt.Errorf("opening site: %w", err)
			return
		}
		extService = svc
		log.SetProject(svc.Root())

		extContext = extension.NewContext(svc, cfg)
		svc.SetExtensionContext(extContext)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds the commands of every registered extension.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noSiteCommands = buildNoSiteCommands()
	})
}
