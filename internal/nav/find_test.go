package nav_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jpl-au/docsite/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample mirrors a small but complete mkdocs nav: a plain section, a section
// with a group, and a top-level page.
func sample() nav.Tree {
	return nav.Tree{Sections: []nav.Section{
		{Title: "Home", Entries: []nav.Entry{nav.Leaf("Home", "index.md")}, Inline: true},
		{Title: "Guides", Entries: []nav.Entry{
			nav.Leaf("Install", "guides/install.md"),
			nav.Group("Advanced",
				nav.Leaf("Tuning", "guides/advanced/tuning.md"),
				nav.Leaf("Getting Started", "guides/advanced/getting_started.md"),
			),
			nav.Leaf("Upgrade", "guides/upgrade.md"),
		}},
		{Title: "Reference", Entries: []nav.Entry{
			nav.Leaf("CLI", "reference/cli.md"),
			nav.Leaf("Install", "reference/install.md"),
		}},
	}}
}

func TestFind(t *testing.T) {
	tree := sample()

	tests := []struct {
		name    string
		url     string
		path    string
		section string
	}{
		{"leaf", "install", "guides/install.md", "Install"},
		{"nested leaf", "tuning", "guides/advanced/tuning.md", "Tuning"},
		{"underscore slug", "Getting_Started", "guides/advanced/getting_started.md", "Getting Started"},
		{"spaced", "getting started", "guides/advanced/getting_started.md", "Getting Started"},
		{"sibling after group", "UPGRADE", "guides/upgrade.md", "Upgrade"},
		{"top-level page", "home", "index.md", "Home"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nav.Find(tree, tt.url, "body")
			require.NoError(t, err)
			assert.Equal(t, tt.path, got.Path)
			assert.Equal(t, tt.section, got.Section)
			assert.Equal(t, "body", got.Content)
		})
	}
}

func TestFind_ExampleScenario(t *testing.T) {
	tree := nav.Tree{Sections: []nav.Section{
		{Title: "Guides", Entries: []nav.Entry{nav.Leaf("Install", "guides/install.md")}},
	}}

	got, err := nav.Find(tree, "install", tree)
	require.NoError(t, err)
	assert.Equal(t, "guides/install.md", got.Path)
	assert.Equal(t, "Install", got.Section)
	assert.Equal(t, tree, got.Content)

	_, err = nav.Find(tree, "missing_page", tree)
	require.ErrorIs(t, err, nav.ErrNotFound)
	assert.Equal(t, "Could not associate path", err.Error())
}

func TestFind_FirstMatchWins(t *testing.T) {
	// "Install" appears in both Guides and Reference.
	for range 5 {
		got, err := nav.Find(sample(), "install", 0)
		require.NoError(t, err)
		assert.Equal(t, "guides/install.md", got.Path)
	}
}

func TestFind_GroupIdentifierNotMatched(t *testing.T) {
	_, err := nav.Find(sample(), "advanced", "")
	assert.True(t, errors.Is(err, nav.ErrNotFound), "group identifiers are not pages")
}

func TestFind_SectionTitleNotMatched(t *testing.T) {
	_, err := nav.Find(sample(), "reference", "")
	assert.ErrorIs(t, err, nav.ErrNotFound)
}

func TestFind_EmptyTree(t *testing.T) {
	_, err := nav.Find(nav.Tree{}, "anything", "")
	assert.ErrorIs(t, err, nav.ErrNotFound)
}

func TestFind_Concurrent(t *testing.T) {
	tree := sample()
	want, err := nav.Find(tree, "tuning", "")
	require.NoError(t, err)
	_, wantErr := nav.Validate(tree, nav.Proposal{Name: "Tuning", Path: "Advanced"})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := nav.Find(tree, "tuning", "")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
			_, err = nav.Validate(tree, nav.Proposal{Name: "Tuning", Path: "Advanced"})
			assert.Equal(t, wantErr, err)
		}()
	}
	wg.Wait()
}
