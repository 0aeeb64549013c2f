package format

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/jpl-au/docsite/internal/build"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() nav.Tree {
	return nav.Tree{Sections: []nav.Section{
		{Title: "Home", Inline: true, Entries: []nav.Entry{nav.Leaf("Home", "index.md")}},
		{Title: "Guides", Entries: []nav.Entry{
			nav.Leaf("Install", "guides/install.md"),
			nav.Group("Advanced", nav.Leaf("Tuning", "guides/advanced/tuning.md")),
		}},
	}}
}

func TestTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Tree(&buf, sample(), "mkdocs.yml"))

	out := buf.String()
	assert.Contains(t, out, "mkdocs.yml")
	assert.Contains(t, out, "Home (index.md)")
	assert.Contains(t, out, "Guides/")
	assert.Contains(t, out, "Install (guides/install.md)")
	assert.Contains(t, out, "Advanced/")
	assert.Contains(t, out, "Tuning (guides/advanced/tuning.md)")
	assert.NotContains(t, out, "Home/", "inline pages are not drawn as sections")
}

func TestPaths(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Paths(&buf, sample()))
	assert.Equal(t, "index.md\nguides/install.md\nguides/advanced/tuning.md\n", buf.String())
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	entries := []log.Entry{
		{Source: "page:cat", Action: "read", URL: "install", Path: "guides/install.md", Success: true},
		{Source: "page:rm", Action: "remove", URL: "gone", Error: errors.New("Could not associate path").Error()},
	}
	require.NoError(t, Log(&buf, entries))

	out := buf.String()
	assert.Contains(t, out, "install -> guides/install.md")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "(Could not associate path)")
}

func TestBuild(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build(&buf, build.Result{Command: "mkdocs build", Output: "INFO done\n", Duration: time.Second}))
	assert.Equal(t, "mkdocs build succeeded in 1s\nINFO done\n", buf.String())

	buf.Reset()
	require.NoError(t, Build(&buf, build.Result{Command: "mkdocs build", ExitCode: 2}))
	assert.Contains(t, buf.String(), "failed (exit 2)")
}
