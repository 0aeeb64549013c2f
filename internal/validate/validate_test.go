package validate

import (
	"strings"
	"testing"

	"github.com/jpl-au/docsite/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.NoError(t, Name("Getting Started"))
	assert.NoError(t, Name("v2"))

	for _, bad := range []string{"", "   ", "a/b", "a\x00b", "---"} {
		assert.ErrorIs(t, Name(bad), ErrInvalidName, "Name(%q)", bad)
	}
}

func TestPath(t *testing.T) {
	got, err := Path("/guides/install.md")
	require.NoError(t, err)
	assert.Equal(t, "guides/install.md", got)

	for _, bad := range []string{"", "a\x00b", "../x.md"} {
		_, err := Path(bad)
		assert.ErrorIs(t, err, ErrInvalidPath, "Path(%q)", bad)
	}
}

func TestContent(t *testing.T) {
	assert.NoError(t, Content("hello", 0))
	assert.NoError(t, Content("hello", 5))
	assert.ErrorIs(t, Content(strings.Repeat("x", 6), 5), ErrContentTooLarge)
}

func TestProposal(t *testing.T) {
	assert.NoError(t, Proposal(nav.Proposal{Name: "Guides", Section: true}))
	assert.NoError(t, Proposal(nav.Proposal{Name: "Advanced", Path: "Guides", Section: true}))
	assert.NoError(t, Proposal(nav.Proposal{Name: "Tuning", Path: "Guides/Advanced"}))

	assert.ErrorIs(t, Proposal(nav.Proposal{Name: ""}), ErrInvalidName)
	assert.ErrorIs(t, Proposal(nav.Proposal{Name: "x", Path: "a/b/c"}), ErrInvalidPath)
	assert.ErrorIs(t, Proposal(nav.Proposal{Name: "x", Path: "a/b", Section: true}), ErrInvalidPath)
}
