// discover.go locates the site root by walking up the directory tree, the
// way git finds its repository from any subdirectory.

package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// Discover walks up from dir until it finds a directory containing name
// (normally mkdocs.yml) and returns that directory. Returns ErrNoSite when
// the filesystem root is reached.
func Discover(dir, name string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in this directory or any parent", ErrNoSite, name)
		}
		dir = parent
	}
}
