package cmd

import (
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("section", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("new", "How To", "--section")
		env.contains(out, "Created section how_to")
		if !env.exists("docs/how_to") {
			t.Error("section directory not created")
		}
		env.contains(env.readFile("mkdocs.yml"), "How To")

		// the new section is now a collision
		_, err := env.runErr("validate", "how to", "--section")
		if err == nil {
			t.Error("new section should collide after creation")
		}
	})

	t.Run("subsection", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("new", "Basics", "--path", "Guides", "--section")
		if !env.exists("docs/guides/basics") {
			t.Error("subsection directory not created")
		}
	})

	t.Run("page gets heading", func(t *testing.T) {
		env := newTestEnv(t)

		env.run("new", "Deploy", "--path", "Guides")
		env.equals(env.readFile("docs/guides/deploy.md"), "# Deploy")
		env.equals(env.run("find", "deploy"), "guides/deploy.md")
	})

	t.Run("page with content", func(t *testing.T) {
		env := newTestEnv(t)

		env.runStdin("# Profiling\n\nUse pprof.\n", "new", "Profiling", "--path", "Guides/Advanced")
		env.contains(env.readFile("docs/guides/advanced/profiling.md"), "Use pprof.")
		env.equals(env.run("find", "profiling"), "guides/advanced/profiling.md")
	})

	t.Run("collision leaves nothing behind", func(t *testing.T) {
		env := newTestEnv(t)
		before := env.readFile("mkdocs.yml")

		out, err := env.runErr("new", "Install", "--path", "Guides")
		if err == nil {
			t.Fatal("duplicate page should fail")
		}
		env.contains(out, "A page in that section already exists!")
		env.equals(env.readFile("mkdocs.yml"), before)
	})

	t.Run("dry run", func(t *testing.T) {
		env := newTestEnv(t)
		before := env.readFile("mkdocs.yml")

		out := env.run("new", "Deploy", "--path", "Guides", "--dry-run")
		env.contains(out, `Would create page "Deploy"`)
		if env.exists("docs/guides/deploy.md") {
			t.Error("dry run created a file")
		}
		env.equals(env.readFile("mkdocs.yml"), before)
	})

	t.Run("unknown parent", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("new", "Orphan", "--path", "Nowhere")
		if err == nil {
			t.Error("page under a missing section should fail")
		}
		if env.exists("docs/nowhere/orphan.md") {
			t.Error("file created for a missing parent")
		}
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("new", "Deploy", "--path", "Guides", "-o", "json")
		env.contains(out, `"kind":"page"`)
		env.contains(out, `"path":"guides/deploy.md"`)
	})

	t.Run("requires author", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "--local", "author.name", "")

		out, err := env.runErr("new", "Deploy", "--path", "Guides")
		if err == nil {
			t.Fatal("new without an author should fail")
		}
		env.contains(out, "author not configured")

		env.run("new", "Deploy", "--path", "Guides", "-a", "someone")
	})
}

func TestNew_TopLevelPage(t *testing.T) {
	env := newTestEnv(t)
	env.writeFile("mkdocs.yml", "site_name: Test Site\nnav:\n  - index.md\n  - Guides:\n      - Install: guides/install.md\n")

	out := env.run("new", "About")
	env.contains(out, "Created page about.md")
	env.contains(env.readFile("mkdocs.yml"), "- index.md\n")
	env.contains(env.readFile("mkdocs.yml"), "- About: about.md")

	env.equals(env.run("find", "index"), "index.md")
	env.equals(env.run("find", "about"), "about.md")
}
