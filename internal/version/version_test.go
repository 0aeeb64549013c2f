package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v1.2.3"

	i := Get()
	assert.Equal(t, "v1.2.3", i.Version)
	assert.Equal(t, runtime.Version(), i.GoVersion)
	assert.Contains(t, i.Platform, runtime.GOOS)
	assert.Equal(t, "v1.2.3", Short())
}

func TestString(t *testing.T) {
	s := Info{Version: "v1", BuildTime: "now", GitCommit: "abc", GoVersion: "go1", Platform: "linux amd64"}.String()
	assert.Contains(t, s, "Version:    v1\n")
	assert.Contains(t, s, "Git Commit: abc\n")
	assert.Contains(t, s, "Platform:   linux amd64\n")
}
