// Package version reports build information for docsite.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/jpl-au/docsite/internal/version.Version=v1.0.0 \
//	  -X github.com/jpl-au/docsite/internal/version.GitCommit=abc123 \
//	  -X github.com/jpl-au/docsite/internal/version.BuildTime=2026-01-15T10:30:00Z"
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Build information. Set via ldflags at build time.
var (
	Version   = "dev"     // release tag
	GitCommit = "unknown" // short commit hash
	BuildTime = "unknown" // RFC3339
)

// Info holds structured version information.
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"` // e.g. "linux amd64"
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the information for display, one field per line.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version:    %s\n", i.Version)
	fmt.Fprintf(&b, "Build Time: %s\n", i.BuildTime)
	fmt.Fprintf(&b, "Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "Platform:   %s\n", i.Platform)
	fmt.Fprintf(&b, "Git Commit: %s\n", i.GitCommit)
	return b.String()
}

// Short returns just the version tag.
func Short() string {
	return Version
}
