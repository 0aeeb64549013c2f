// Package diff computes and formats the change a page write makes, so the
// write and edit commands and the API can show what was replaced.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// context is the number of unchanged lines kept on each side of a change.
// Longer unchanged runs collapse to "...".
const context = 3

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// Result is a line diff between two versions of a page.
type Result struct {
	Old     string `json:"old"` // label of the previous version
	New     string `json:"new"` // label of the written version
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Diff    string `json:"diff"` // "- ", "+ " and "  " prefixed lines
}

// Changed reports whether any line was added or removed.
func (r Result) Changed() bool { return r.Added+r.Removed > 0 }

// Compute diffs oldContent against newContent line by line.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, index := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), index)

	r := Result{Old: oldLabel, New: newLabel}
	var sb strings.Builder
	for _, d := range dmp.DiffCleanupSemantic(diffs) {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			r.Removed += len(lines)
			writePrefixed(&sb, "- ", lines)
		case diffmatchpatch.DiffInsert:
			r.Added += len(lines)
			writePrefixed(&sb, "+ ", lines)
		default:
			if len(lines) > 2*context {
				writePrefixed(&sb, "  ", lines[:context])
				sb.WriteString("  ...\n")
				lines = lines[len(lines)-context:]
			}
			writePrefixed(&sb, "  ", lines)
		}
	}
	r.Diff = sb.String()
	return r
}

// Format returns the diff under a "---"/"+++" header, with removed lines
// in red and added lines in green when colour is set.
func (r Result) Format(colour bool) string {
	var sb strings.Builder
	sb.WriteString("--- " + r.Old + "\n+++ " + r.New + "\n")
	for _, line := range splitLines(r.Diff) {
		switch {
		case !colour:
		case strings.HasPrefix(line, "- "):
			line = ansiRed + line + ansiReset
		case strings.HasPrefix(line, "+ "):
			line = ansiGreen + line + ansiReset
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// splitLines splits text into lines without a trailing empty element.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func writePrefixed(sb *strings.Builder, prefix string, lines []string) {
	for _, l := range lines {
		sb.WriteString(prefix + l + "\n")
	}
}
