// Package render turns page markdown into HTML or terminal output.
//
// HTML uses goldmark with the GitHub-flavoured extensions MkDocs sites
// commonly rely on (tables, strikethrough, task lists, autolinks). Terminal
// output uses glamour and only applies when stdout is a TTY, so pipes and
// redirects get the raw markdown.
package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/term"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// HTML converts markdown to an HTML fragment.
func HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Terminal renders markdown for display when tty is true. Rendering
// failures fall back to the raw content.
func Terminal(content string, tty bool) string {
	if !tty {
		return content
	}
	out, err := glamour.Render(content, "dark")
	if err != nil {
		return content
	}
	return out
}
