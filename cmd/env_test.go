// The cmd tests are CLI integration tests: each builds the docsite binary
// once and runs it against a fresh MkDocs site in a temp directory. HOME
// points at a temp directory too, so the audit log and global config never
// touch the real ones.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the docsite binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "docsite-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		name := "docsite"
		if os.PathSeparator == '\\' {
			name = "docsite.exe"
		}
		binaryPath = filepath.Join(tmpDir, name)

		wd, err := os.Getwd()
		if err != nil {
			buildErr = err
			return
		}

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = filepath.Dir(wd)
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

const testMkdocs = `site_name: Test Site
theme: material
nav:
  - Home: index.md
  - Guides:
      - Install: guides/install.md
      - Advanced:
          - Tuning: guides/advanced/tuning.md
          - Getting Started: guides/advanced/getting_started.md
      - Upgrade: guides/upgrade.md
  - Reference:
      - CLI: reference/cli.md
`

var testPages = map[string]string{
	"index.md":                           "# Home\n\nWelcome.\n",
	"guides/install.md":                  "# Install\n\nRun the installer.\n",
	"guides/advanced/tuning.md":          "# Tuning\n",
	"guides/advanced/getting_started.md": "# Getting Started\n\nFirst steps.\n",
	"guides/upgrade.md":                  "# Upgrade\n",
	"reference/cli.md":                   "# CLI\n",
}

// testEnv is a site directory plus the binary to run in it.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a site with testMkdocs and testPages and an author
// configured in the local config.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{t: t, dir: t.TempDir(), home: t.TempDir(), binary: buildBinary(t)}
	env.writeFile("mkdocs.yml", testMkdocs)
	for p, c := range testPages {
		env.writeFile(filepath.Join("docs", p), c)
	}
	env.run("config", "--local", "author.name", "tester")
	return env
}

// newEmptyEnv creates a directory without a site.
func newEmptyEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, dir: t.TempDir(), home: t.TempDir(), binary: buildBinary(t)}
}

func (e *testEnv) writeFile(rel, content string) {
	e.t.Helper()
	full := filepath.Join(e.dir, filepath.FromSlash(rel))
	require.NoError(e.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(e.t, os.WriteFile(full, []byte(content), 0644))
}

func (e *testEnv) readFile(rel string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, filepath.FromSlash(rel)))
	require.NoError(e.t, err)
	return string(data)
}

func (e *testEnv) exists(rel string) bool {
	_, err := os.Stat(filepath.Join(e.dir, filepath.FromSlash(rel)))
	return err == nil
}

func (e *testEnv) command(stdin string, args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), "HOME="+e.home, "USERPROFILE="+e.home, "MKDOCS=", "MKDOCS_SITE=")
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	return cmd
}

// run executes docsite and fails the test on error.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("docsite %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes docsite and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command("", args...).CombinedOutput()
	return string(out), err
}

// runStdin executes docsite with input on stdin.
func (e *testEnv) runStdin(input string, args ...string) string {
	e.t.Helper()
	out, err := e.command(input, args...).CombinedOutput()
	if err != nil {
		e.t.Fatalf("docsite %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
