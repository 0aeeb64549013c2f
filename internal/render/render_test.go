package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML(t *testing.T) {
	out, err := HTML("# Install\n\nRun `make`.\n")
	require.NoError(t, err)
	assert.Contains(t, out, `<h1 id="install">Install</h1>`)
	assert.Contains(t, out, "<code>make</code>")
}

func TestHTML_Table(t *testing.T) {
	out, err := HTML("| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestTerminal_NotTTY(t *testing.T) {
	src := "# Title\n"
	assert.Equal(t, src, Terminal(src, false))
}

func TestTerminal_TTY(t *testing.T) {
	out := Terminal("# Title\n", true)
	assert.Contains(t, out, "Title")
}
