// Package path derives and normalises the on-disk paths of site pages and
// directories.
//
// Every path handed to the filesystem layer passes through this package.
// Paths are relative to the docs directory, use forward slashes, and never
// contain "." or ".." components. Combined with os.Root in the sitefs
// package this keeps every effect inside the site.
//
// Names become path components in snake form: a page "Getting Started" in
// section "User Guide" lives at user_guide/getting_started.md.
package path

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/jpl-au/docsite/internal/nav"
)

// ErrInvalid indicates the provided path is invalid.
var ErrInvalid = errors.New("invalid site path")

// Ext is the extension of page source files.
const Ext = ".md"

// Normalise cleans and validates a site-relative path.
// Backslashes are treated as separators so paths written on Windows resolve
// the same everywhere.
func Normalise(p string) (string, error) {
	if p == "" {
		return "", ErrInvalid
	}

	p = strings.ReplaceAll(p, "\\", "/")
	p = filepath.ToSlash(filepath.Clean(p))
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")

	if p == "" || p == "." || p == ".." {
		return "", ErrInvalid
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", ErrInvalid
		}
	}
	return p, nil
}

// DirPath returns the directory for a node called name below parent.
// Each "/"-separated component of parent is converted to snake form on its
// own, so "User Guide/Advanced" becomes user_guide/advanced. An empty parent
// places the directory at the top of the docs tree.
func DirPath(parent, name string) (string, error) {
	var parts []string
	if parent != "" {
		for _, c := range strings.Split(strings.ReplaceAll(parent, "\\", "/"), "/") {
			if s := nav.Snake(c); s != "" {
				parts = append(parts, s)
			}
		}
	}
	n := nav.Snake(name)
	if n == "" {
		return "", ErrInvalid
	}
	parts = append(parts, n)
	return Normalise(strings.Join(parts, "/"))
}

// PagePath returns the source file for a page called name below parent.
func PagePath(parent, name string) (string, error) {
	dir, err := DirPath(parent, name)
	if err != nil {
		return "", err
	}
	return dir + Ext, nil
}

// IsPage reports whether p names a page source file.
func IsPage(p string) bool {
	return strings.EqualFold(filepath.Ext(p), Ext)
}
