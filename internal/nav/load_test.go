package nav_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/docsite/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mkdocs = `site_name: Example
theme:
  name: material
# navigation below
nav:
  - Home: index.md
  - Guides:
      - Install: guides/install.md
      - Advanced:
          - Tuning: guides/advanced/tuning.md
  - Empty: []
markdown_extensions:
  - toc
`

func TestParse(t *testing.T) {
	tree, err := nav.Parse([]byte(mkdocs))
	require.NoError(t, err)
	require.Len(t, tree.Sections, 3)

	assert.Equal(t, nav.Section{Title: "Home", Entries: []nav.Entry{nav.Leaf("Home", "index.md")}, Inline: true}, tree.Sections[0])

	guides := tree.Sections[1]
	assert.Equal(t, "Guides", guides.Title)
	require.Len(t, guides.Entries, 2)
	assert.False(t, guides.Entries[0].IsGroup())
	assert.True(t, guides.Entries[1].IsGroup())
	assert.Equal(t, "guides/advanced/tuning.md", guides.Entries[1].Children[0].Path)

	assert.Equal(t, "Empty", tree.Sections[2].Title)
	assert.Empty(t, tree.Sections[2].Entries)
}

func TestParse_LegacyPagesKey(t *testing.T) {
	tree, err := nav.Parse([]byte("site_name: x\npages:\n  - Guides:\n      - Install: install.md\n"))
	require.NoError(t, err)
	got, err := nav.Find(tree, "install", "")
	require.NoError(t, err)
	assert.Equal(t, "install.md", got.Path)
}

func TestParse_BareSequence(t *testing.T) {
	tree, err := nav.Parse([]byte("- Guides:\n    - Install: install.md\n- readme.md\n"))
	require.NoError(t, err)
	require.Len(t, tree.Sections, 2)
	assert.True(t, tree.Sections[1].Inline)
	assert.Equal(t, "readme.md", tree.Sections[1].Entries[0].Path)
}

func TestParse_NoNav(t *testing.T) {
	tree, err := nav.Parse([]byte("site_name: x\n"))
	require.NoError(t, err)
	assert.Empty(t, tree.Sections)

	tree, err = nav.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, tree.Sections)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		in   string
		want error
	}{
		"invalid yaml":   {"nav: [", nav.ErrMalformed},
		"two keys":       {"nav:\n  - A: a.md\n    B: b.md\n", nav.ErrMalformed},
		"nested section": {"nav:\n  - A:\n      - B:\n          - C:\n              - D: d.md\n", nav.ErrTooDeep},
		"mapping value":  {"nav:\n  - A:\n      x: y\n", nav.ErrMalformed},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := nav.Parse([]byte(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "mkdocs.yml")
	require.NoError(t, os.WriteFile(p, []byte(mkdocs), 0644))

	tree, err := nav.Load(p)
	require.NoError(t, err)
	assert.Len(t, tree.Sections, 3)

	_, err = nav.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReplace_RoundTrip(t *testing.T) {
	tree, err := nav.Parse([]byte(mkdocs))
	require.NoError(t, err)

	out, err := nav.Replace([]byte(mkdocs), tree)
	require.NoError(t, err)

	again, err := nav.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, tree, again)

	s := string(out)
	assert.Contains(t, s, "site_name: Example")
	assert.Contains(t, s, "# navigation below")
	assert.Contains(t, s, "markdown_extensions:")
	assert.Contains(t, s, "- Home: index.md")
}

func TestReplace_AddsNavKey(t *testing.T) {
	tree := nav.Tree{Sections: []nav.Section{{Title: "Guides", Entries: []nav.Entry{nav.Leaf("Install", "install.md")}}}}

	out, err := nav.Replace([]byte("site_name: x\n"), tree)
	require.NoError(t, err)
	assert.Contains(t, string(out), "nav:")

	again, err := nav.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, tree, again)
}

func TestReplace_KeepsLegacyKey(t *testing.T) {
	in := "pages:\n  - Guides:\n      - Install: install.md\n"
	tree, err := nav.Parse([]byte(in))
	require.NoError(t, err)

	out, err := nav.Replace([]byte(in), tree)
	require.NoError(t, err)
	assert.Contains(t, string(out), "pages:")
	assert.NotContains(t, string(out), "nav:")
}

const untitled = `nav:
  - index.md
  - Guides:
      - guides/install.md
      - Advanced:
          - guides/advanced/getting_started.md
`

func TestParse_UntitledPages(t *testing.T) {
	tree, err := nav.Parse([]byte(untitled))
	require.NoError(t, err)
	require.Len(t, tree.Sections, 2)
	assert.Equal(t, "Index", tree.Sections[0].Title)
	assert.True(t, tree.Sections[0].Inline)

	tests := []struct {
		url, path string
	}{
		{"index", "index.md"},
		{"Install", "guides/install.md"},
		{"getting_started", "guides/advanced/getting_started.md"},
	}
	for _, tt := range tests {
		got, err := nav.Find(tree, tt.url, "")
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.path, got.Path)
	}

	_, err = nav.Find(tree, "", "")
	assert.ErrorIs(t, err, nav.ErrNotFound)
}

func TestReplace_KeepsUntitledPages(t *testing.T) {
	tree, err := nav.Parse([]byte(untitled))
	require.NoError(t, err)

	out, err := nav.Replace([]byte(untitled), tree)
	require.NoError(t, err)
	assert.Contains(t, string(out), "- index.md\n")
	assert.Contains(t, string(out), "- guides/install.md\n")
	assert.NotContains(t, string(out), "Index:")

	again, err := nav.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, tree, again)
}
