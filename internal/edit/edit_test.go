package edit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/docsite/internal/config"
	"github.com/jpl-au/docsite/internal/site"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineRange(t *testing.T) {
	tests := []struct {
		input      string
		start, end int
		errMsg     string
	}{
		{input: "5:10", start: 5, end: 10},
		{input: "1:1", start: 1, end: 1},
		{input: ":10", end: 10},
		{input: "5:", start: 5},
		{input: ":", errMsg: "at least start or end line required"},
		{input: "5", errMsg: "expected start:end"},
		{input: "1:2:3", errMsg: "expected start:end"},
		{input: "a:3", errMsg: `invalid start line "a"`},
		{input: "1:b", errMsg: `invalid end line "b"`},
		{input: "0:3", errMsg: "start line must be >= 1"},
		{input: "9:3", errMsg: "start line 9 is greater than end line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			start, end, err := ParseLineRange(tt.input)
			if tt.errMsg != "" {
				require.ErrorIs(t, err, ErrInvalidLineRange)
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestReplace(t *testing.T) {
	got, err := Replace("a b a", "a", "x", false)
	require.NoError(t, err)
	assert.Equal(t, "x b a", got)

	got, err = Replace("Hello World", "world", "There", true)
	require.NoError(t, err)
	assert.Equal(t, "Hello There", got)

	_, err = Replace("Hello", "world", "x", false)
	assert.ErrorIs(t, err, ErrTextNotFound)

	_, err = Replace("Hello", "", "x", false)
	assert.ErrorIs(t, err, ErrTextNotFound)
}

func TestReplaceLines(t *testing.T) {
	content := "one\ntwo\nthree\nfour"
	tests := []struct {
		name        string
		start, end  int
		replacement string
		want        string
	}{
		{"middle", 2, 3, "TWO\n", "one\nTWO\nfour"},
		{"open start", 0, 1, "ONE", "ONE\ntwo\nthree\nfour"},
		{"open end", 3, 0, "END", "one\ntwo\nEND"},
		{"clamped", 4, 99, "4", "one\ntwo\nthree\n4"},
		{"delete", 2, 2, "", "one\nthree\nfour"},
		{"expand", 1, 1, "a\nb", "a\nb\ntwo\nthree\nfour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReplaceLines(content, tt.start, tt.end, tt.replacement)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ReplaceLines(content, 9, 0, "x")
	assert.ErrorIs(t, err, ErrInvalidLineRange)
}

func TestRun(t *testing.T) {
	t.Setenv(config.EnvRoot, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mkdocs.yml"), []byte("nav:\n  - Home: index.md\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0755))
	page := filepath.Join(dir, "docs", "index.md")
	require.NoError(t, os.WriteFile(page, []byte("# Home\n\nDraft text.\n"), 0644))

	svc, err := site.New(&config.Config{Site: config.Site{Root: dir}})
	require.NoError(t, err)
	ctx := context.Background()

	res, err := Run(ctx, svc, "home", Options{Old: "draft", New: "Final", IgnoreCase: true})
	require.NoError(t, err)
	assert.Equal(t, "index.md", res.Path)
	assert.True(t, res.Diff.Changed())

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, "# Home\n\nFinal text.\n", string(data))

	_, err = Run(ctx, svc, "home", Options{Lines: "1:1", New: "# Welcome"})
	require.NoError(t, err)
	data, err = os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, "# Welcome\n\nFinal text.\n", string(data))

	_, err = Run(ctx, svc, "home", Options{Old: "missing", New: "x"})
	assert.ErrorIs(t, err, ErrTextNotFound)

	_, err = Run(ctx, svc, "nowhere", Options{Old: "a", New: "b"})
	assert.Error(t, err)
}
