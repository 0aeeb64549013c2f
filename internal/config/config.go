// Package config provides reading and writing of docsite configuration.
// Supports both global (~/.docsite/config.yaml) and local (.docsite/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// The MKDOCS and MKDOCS_SITE environment variables override site.root and
// site.output respectively, so existing deployments keep working unchanged.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Environment variables that override file configuration.
const (
	EnvRoot   = "MKDOCS"
	EnvOutput = "MKDOCS_SITE"
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.docsite/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is site-specific config in .docsite/config.yaml
	ScopeLocal
)

// Author represents the author recorded in the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Site locates the documentation site on disk.
type Site struct {
	Root    string `yaml:"root,omitempty"`     // directory holding mkdocs.yml
	Config  string `yaml:"config,omitempty"`   // mkdocs config file, relative to Root
	DocsDir string `yaml:"docs_dir,omitempty"` // page sources, relative to Root
	Output  string `yaml:"output,omitempty"`   // built site, relative to Root unless absolute
}

// Build holds the static-site build settings.
type Build struct {
	Command string `yaml:"command,omitempty"`
	Auto    bool   `yaml:"auto,omitempty"` // rebuild after page changes
}

// HTTP holds settings for the HTTP API server.
type HTTP struct {
	Addr   string `yaml:"addr,omitempty"`
	APIKey string `yaml:"api_key,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxContent *int64 `yaml:"max_content,omitempty"`
}

// Defaults applied when not configured.
const (
	DefaultRoot         = "."
	DefaultSiteConfig   = "mkdocs.yml"
	DefaultDocsDir      = "docs"
	DefaultOutput       = "site"
	DefaultBuildCommand = "mkdocs build"
	DefaultHTTPAddr     = "127.0.0.1:8080"
	DefaultMaxContent   = 10 * 1024 * 1024 // 10 MB
)

// Validation bounds for configuration values.
const (
	MinMaxContent = 1
	MaxMaxContent = 1024 * 1024 * 1024 // 1 GB
)

// Config contains configuration for docsite.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Site   Site   `yaml:"site,omitempty"`
	Build  Build  `yaml:"build,omitempty"`
	HTTP   HTTP   `yaml:"http,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxContent != nil {
		v := *c.Limits.MaxContent
		if v < MinMaxContent || v > MaxMaxContent {
			return fmt.Errorf("%w: max_content must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxContent, MaxMaxContent, v)
		}
	}
	return nil
}

// Root returns the site root directory. MKDOCS takes precedence.
func (c *Config) Root() string {
	if v := os.Getenv(EnvRoot); v != "" {
		return v
	}
	if c.Site.Root == "" {
		return DefaultRoot
	}
	return c.Site.Root
}

// RootSet reports whether the site root was given explicitly, by MKDOCS or
// site.root, rather than defaulted.
func (c *Config) RootSet() bool {
	return os.Getenv(EnvRoot) != "" || c.Site.Root != ""
}

// SiteConfigName returns the configured mkdocs.yml name as given, without
// joining it to the root.
func (c *Config) SiteConfigName() string {
	if c.Site.Config == "" {
		return DefaultSiteConfig
	}
	return c.Site.Config
}

// SiteConfig returns the path to mkdocs.yml.
func (c *Config) SiteConfig() string {
	return c.underRoot(c.SiteConfigName())
}

// DocsDir returns the directory holding page sources.
func (c *Config) DocsDir() string {
	name := c.Site.DocsDir
	if name == "" {
		name = DefaultDocsDir
	}
	return c.underRoot(name)
}

// Output returns the directory the build writes to. MKDOCS_SITE takes
// precedence.
func (c *Config) Output() string {
	if v := os.Getenv(EnvOutput); v != "" {
		return v
	}
	name := c.Site.Output
	if name == "" {
		name = DefaultOutput
	}
	return c.underRoot(name)
}

// BuildCommand returns the shell command that builds the site.
func (c *Config) BuildCommand() string {
	if c.Build.Command == "" {
		return DefaultBuildCommand
	}
	return c.Build.Command
}

// AutoBuild reports whether the site is rebuilt after every page change.
func (c *Config) AutoBuild() bool { return c.Build.Auto }

// HTTPAddr returns the listen address for the HTTP API.
func (c *Config) HTTPAddr() string {
	if c.HTTP.Addr == "" {
		return DefaultHTTPAddr
	}
	return c.HTTP.Addr
}

// MaxContent returns the maximum page size in bytes (defaults to 10 MB).
func (c *Config) MaxContent() int64 {
	if c.Limits.MaxContent == nil {
		return DefaultMaxContent
	}
	return *c.Limits.MaxContent
}

func (c *Config) underRoot(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Root(), name)
}

// LocalPath returns the path to the local (site) config file.
func LocalPath() string {
	return filepath.Join(".docsite", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.docsite/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".docsite", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
