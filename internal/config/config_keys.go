// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the config command and the MCP server, where config
// is addressed by dotted keys (e.g., "site.docs_dir").

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"site.root", "site.config", "site.docs_dir", "site.output",
		"build.command", "build.auto",
		"http.addr", "http.api_key",
		"limits.max_content",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the effective value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "site.root":
		return c.Root(), nil
	case "site.config":
		return c.SiteConfig(), nil
	case "site.docs_dir":
		return c.DocsDir(), nil
	case "site.output":
		return c.Output(), nil
	case "build.command":
		return c.BuildCommand(), nil
	case "build.auto":
		return strconv.FormatBool(c.Build.Auto), nil
	case "http.addr":
		return c.HTTPAddr(), nil
	case "http.api_key":
		return c.HTTP.APIKey, nil
	case "limits.max_content":
		return strconv.FormatInt(c.MaxContent(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "site.root":
		c.Site.Root = value
	case "site.config":
		c.Site.Config = value
	case "site.docs_dir":
		c.Site.DocsDir = value
	case "site.output":
		c.Site.Output = value
	case "build.command":
		c.Build.Command = value
	case "build.auto":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: build.auto must be true or false", ErrInvalidValue)
		}
		c.Build.Auto = b
	case "http.addr":
		c.HTTP.Addr = value
	case "http.api_key":
		c.HTTP.APIKey = value
	case "limits.max_content":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < MinMaxContent || n > MaxMaxContent {
			return fmt.Errorf("%w: limits.max_content must be between %d and %d", ErrInvalidValue, MinMaxContent, MaxMaxContent)
		}
		c.Limits.MaxContent = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all effective configuration values as a map. The API key is
// masked.
func (c *Config) All() map[string]string {
	m := make(map[string]string, len(ValidKeys()))
	for _, k := range ValidKeys() {
		v, _ := c.Get(k)
		m[k] = v
	}
	if m["http.api_key"] != "" {
		m["http.api_key"] = "********"
	}
	return m
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "site.root":
		return c.Site.Root != ""
	case "site.config":
		return c.Site.Config != ""
	case "site.docs_dir":
		return c.Site.DocsDir != ""
	case "site.output":
		return c.Site.Output != ""
	case "build.command":
		return c.Build.Command != ""
	case "build.auto":
		return c.Build.Auto
	case "http.addr":
		return c.HTTP.Addr != ""
	case "http.api_key":
		return c.HTTP.APIKey != ""
	case "limits.max_content":
		return c.Limits.MaxContent != nil
	default:
		return false
	}
}
