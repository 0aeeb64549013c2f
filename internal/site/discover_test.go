package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/docsite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "mkdocs.yml"), []byte("nav: []\n"), 0644))
	deep := filepath.Join(root, "docs", "guides", "advanced")
	require.NoError(t, os.MkdirAll(deep, 0755))

	got, err := Discover(deep, "mkdocs.yml")
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = Discover(root, "mkdocs.yml")
	require.NoError(t, err)
	assert.Equal(t, root, got)

	_, err = Discover(deep, "no-such-config.yml")
	assert.ErrorIs(t, err, ErrNoSite)
}

func TestNew_DiscoversFromSubdirectory(t *testing.T) {
	_, root := newSite(t)
	t.Chdir(filepath.Join(root, "docs", "guides"))

	svc, err := New(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, root, svc.Root())
	assert.Equal(t, filepath.Join(root, "docs"), svc.DocsDir())
	assert.Equal(t, filepath.Join(root, "site"), svc.Output())

	page, err := svc.Page(t.Context(), "install")
	require.NoError(t, err)
	assert.Equal(t, "guides/install.md", page.Path)
}
