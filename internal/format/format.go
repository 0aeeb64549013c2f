// Package format provides output formatting for CLI display.
//
// Centralises presentation so command implementations only deal with the
// site service: the navigation tree view, audit log listings and build
// summaries are all rendered here.
package format

import (
	"fmt"
	"io"
	"time"

	"github.com/disiqueira/gotree/v3"
	"github.com/jpl-au/docsite/internal/build"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
)

// Tree prints the navigation tree under a root labelled label. Leaves show
// their backing file, groups a trailing slash.
func Tree(w io.Writer, t nav.Tree, label string) error {
	root := gotree.New(label)
	for _, s := range t.Sections {
		if s.Inline && len(s.Entries) == 1 {
			addEntry(root, s.Entries[0])
			continue
		}
		addEntries(root.Add(s.Title+"/"), s.Entries)
	}
	_, err := io.WriteString(w, root.Print())
	return err
}

func addEntries(parent gotree.Tree, entries []nav.Entry) {
	for _, e := range entries {
		addEntry(parent, e)
	}
}

func addEntry(parent gotree.Tree, e nav.Entry) {
	if e.IsGroup() {
		addEntries(parent.Add(e.Identifier+"/"), e.Children)
		return
	}
	if e.Identifier == "" {
		parent.Add(e.Path)
		return
	}
	parent.Add(fmt.Sprintf("%s (%s)", e.Identifier, e.Path))
}

// Paths prints the backing file of every page, one per line, in nav order.
func Paths(w io.Writer, t nav.Tree) error {
	for _, e := range t.Leaves() {
		if _, err := fmt.Fprintln(w, e.Path); err != nil {
			return err
		}
	}
	return nil
}

// Log prints audit entries, newest first.
func Log(w io.Writer, entries []log.Entry) error {
	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "FAIL"
		}
		target := e.URL
		if e.Path != "" && e.Path != e.URL {
			target += " -> " + e.Path
		}
		if target == "" {
			target = "-"
		}
		line := fmt.Sprintf("%s  %-4s  %-16s  %-8s  %s",
			time.UnixMilli(e.Start).Format("2006-01-02 15:04:05"),
			status, e.Source, e.Action, target)
		if e.Error != "" {
			line += "  (" + e.Error + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Build prints a summary of a build run followed by its captured output.
func Build(w io.Writer, r build.Result) error {
	status := "succeeded"
	if !r.OK() {
		status = fmt.Sprintf("failed (exit %d)", r.ExitCode)
	}
	if _, err := fmt.Fprintf(w, "%s %s in %s\n", r.Command, status, r.Duration.Round(time.Millisecond)); err != nil {
		return err
	}
	if r.Output == "" {
		return nil
	}
	_, err := io.WriteString(w, r.Output)
	return err
}
