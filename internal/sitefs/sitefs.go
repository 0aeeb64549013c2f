// Package sitefs performs the filesystem effects on a site's docs directory:
// creating directories, removing paths, and reading and writing page files.
//
// Security: All operations use os.Root for path confinement. Names are
// resolved inside the docs directory and cannot escape it through "..",
// absolute paths or symlinks, regardless of what the navigation tree says.
// This is defence-in-depth alongside path validation.
package sitefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/docsite/internal/path"
)

// FS is a docs directory on disk. The zero value is not usable.
type FS struct {
	Dir string
}

// New returns an FS rooted at dir.
func New(dir string) *FS {
	return &FS{Dir: dir}
}

// open opens the docs directory as an os.Root, creating it if create is set.
func (f *FS) open(create bool) (*os.Root, error) {
	if create {
		if err := os.MkdirAll(f.Dir, 0755); err != nil {
			return nil, fmt.Errorf("creating docs directory: %w", err)
		}
	}
	root, err := os.OpenRoot(f.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening docs directory: %w", err)
	}
	return root, nil
}

// name validates p and converts it to the OS form os.Root expects.
func name(p string) (string, error) {
	norm, err := path.Normalise(p)
	if err != nil {
		return "", fmt.Errorf("%q: %w", p, err)
	}
	return filepath.FromSlash(norm), nil
}

// CreateDirectory creates p and any missing parents. An existing directory
// is not an error.
func (f *FS) CreateDirectory(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := name(p)
	if err != nil {
		return err
	}
	root, err := f.open(true)
	if err != nil {
		return err
	}
	defer root.Close()

	if err := root.MkdirAll(n, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", p, err)
	}
	return nil
}

// RemovePath removes p and everything below it. A missing path is not an
// error.
func (f *FS) RemovePath(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := name(p)
	if err != nil {
		return err
	}
	root, err := f.open(false)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer root.Close()

	if err := root.RemoveAll(n); err != nil {
		return fmt.Errorf("removing %s: %w", p, err)
	}
	return nil
}

// ReadFile returns the content of the file at p.
func (f *FS) ReadFile(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n, err := name(p)
	if err != nil {
		return "", err
	}
	root, err := f.open(false)
	if err != nil {
		return "", err
	}
	defer root.Close()

	data, err := root.ReadFile(n)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", p, err)
	}
	return string(data), nil
}

// WriteFile writes content to p, creating parent directories as needed and
// truncating any existing file.
func (f *FS) WriteFile(ctx context.Context, p, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := name(p)
	if err != nil {
		return err
	}
	root, err := f.open(true)
	if err != nil {
		return err
	}
	defer root.Close()

	if dir := filepath.Dir(n); dir != "." {
		if err := root.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := root.WriteFile(n, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

// Exists reports whether p exists.
func (f *FS) Exists(p string) (bool, error) {
	n, err := name(p)
	if err != nil {
		return false, err
	}
	root, err := f.open(false)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer root.Close()

	_, err = root.Stat(n)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}
