// context.go defines the Context interface for extension access to docsite
// internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// Extensions get the site service and configuration through Context rather
// than reaching into internal packages.
//
// Design: Extensions receive Context during Init(), not at construction,
// because they register in init() before the site has been located.

package extension

import (
	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/service"
)

// Context provides extensions controlled access to docsite internals.
type Context interface {
	// Service returns the site service.
	Service() service.Service

	// Config returns the loaded configuration.
	Config() *config.Config
}

type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{
		svc: svc,
		cfg: cfg,
	}
}

func (c *extContext) Service() service.Service { return c.svc }

func (c *extContext) Config() *config.Config { return c.cfg }
