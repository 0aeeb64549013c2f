package cmd

import (
	"archive/zip"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("build commands use sh")
	}

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "--local", "build.command", "mkdir -p site && echo '<h1>Home</h1>' > site/index.html && echo built")

		out := env.run("build")
		env.contains(out, "built")
		env.contains(out, "succeeded")
		if !env.exists("site/index.html") {
			t.Error("build output missing")
		}
	})

	t.Run("failure exits non-zero", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "--local", "build.command", "echo broken >&2; exit 3")

		out, err := env.runErr("build")
		if err == nil {
			t.Fatal("failing build should exit non-zero")
		}
		env.contains(out, "broken")
		env.contains(out, "failed (exit 3)")
	})

	t.Run("JSON", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "--local", "build.command", "echo hi")

		out := env.run("build", "-o", "json")
		env.contains(out, `"exit_code":0`)
		env.contains(out, `"output":"hi\n"`)
	})

	t.Run("auto build after write", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "--local", "build.command", "touch built.marker")
		env.run("config", "--local", "build.auto", "true")

		env.run("write", "install", "# Install\n")
		if !env.exists("built.marker") {
			t.Error("write did not trigger a build")
		}
	})
}

func TestZip(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runErr("zip")
	if err == nil {
		t.Fatal("zip without build output should fail")
	}
	if env.exists("site.zip") {
		t.Error("failed zip left a file behind")
	}

	env.writeFile("site/index.html", "<h1>Home</h1>")
	env.writeFile("site/guides/install/index.html", "<h1>Install</h1>")

	out := env.run("zip", "-f", "out.zip")
	env.contains(out, "Wrote out.zip (2 files)")

	zr, err := zip.OpenReader(filepath.Join(env.dir, "out.zip"))
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, "/") {
			names = append(names, f.Name)
		}
	}
	require.ElementsMatch(t, []string{"index.html", "guides/install/index.html"}, names)
}
