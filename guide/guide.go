// Package guide provides the embedded help pages shown by "docsite guide"
// and the site_guide MCP tool.
package guide

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var files embed.FS

// ErrNotFound is returned by Get for an unknown topic.
var ErrNotFound = errors.New("guide not found")

// Get returns the guide page for name. An empty name returns the overview.
func Get(name string) (string, error) {
	if name == "" {
		name = "guide"
	}
	data, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available topic names, excluding the overview.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "guide" {
			names = append(names, name)
		}
	}
	return names, nil
}
