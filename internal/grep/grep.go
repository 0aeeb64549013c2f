// Package grep searches page content with regular expressions.
//
// Output follows grep: "path:line:text" for matches, "path-line-text" for
// context lines and "--" between separate context groups.
package grep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jpl-au/docsite/internal/service"
)

// Options configures a search.
type Options struct {
	Glob       string // restrict to pages whose file matches
	IgnoreCase bool   // -i
	Invert     bool   // -v
	PathsOnly  bool   // -l
	CountOnly  bool   // -c
	Context    int    // -C lines around each match
}

// Match is one matching line.
type Match struct {
	Line    int    `json:"line"` // 1-indexed
	Content string `json:"content"`
}

// Hit holds the matches within one page.
type Hit struct {
	URL     string  `json:"url"`
	Path    string  `json:"path"`
	Matches []Match `json:"matches"`
}

// maxLine bounds the scanner buffer; pages are capped by limits.max_content.
const maxLine = 10 * 1024 * 1024

// Search returns the pages with at least one matching line, in nav order.
func Search(ctx context.Context, svc service.Service, pattern string, opts Options) ([]Hit, error) {
	if opts.IgnoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}

	pages, err := svc.Pages(ctx, opts.Glob)
	if err != nil {
		return nil, err
	}

	hits := []Hit{}
	for _, p := range pages {
		matches, err := matchLines(re, p.Content, opts.Invert)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", p.Path, err)
		}
		if len(matches) > 0 {
			hits = append(hits, Hit{URL: p.URL, Path: p.Path, Matches: matches})
		}
	}
	return hits, nil
}

// Run searches and writes grep-style output to w.
func Run(ctx context.Context, w io.Writer, svc service.Service, pattern string, opts Options) ([]Hit, error) {
	hits, err := Search(ctx, svc, pattern, opts)
	if err != nil {
		return nil, err
	}

	switch {
	case opts.PathsOnly:
		for _, h := range hits {
			fmt.Fprintln(w, h.Path)
		}
	case opts.CountOnly:
		for _, h := range hits {
			fmt.Fprintf(w, "%s:%d\n", h.Path, len(h.Matches))
		}
	case opts.Context > 0:
		pages, err := svc.Pages(ctx, opts.Glob)
		if err != nil {
			return hits, err
		}
		content := make(map[string]string, len(pages))
		for _, p := range pages {
			content[p.Path] = p.Content
		}
		for _, h := range hits {
			lines := strings.Split(strings.TrimSuffix(content[h.Path], "\n"), "\n")
			writeContext(w, h, lines, opts.Context)
		}
	default:
		for _, h := range hits {
			for _, m := range h.Matches {
				fmt.Fprintf(w, "%s:%d:%s\n", h.Path, m.Line, m.Content)
			}
		}
	}
	return hits, nil
}

func writeContext(w io.Writer, h Hit, lines []string, n int) {
	printed := make(map[int]bool)
	last := -1
	for _, m := range h.Matches {
		start := max(m.Line-1-n, 0)
		end := min(m.Line+n, len(lines))
		if last >= 0 && start > last+1 {
			fmt.Fprintln(w, "--")
		}
		for i := start; i < end; i++ {
			if printed[i] {
				continue
			}
			printed[i] = true
			sep := "-"
			if i+1 == m.Line {
				sep = ":"
			}
			fmt.Fprintf(w, "%s%s%d%s%s\n", h.Path, sep, i+1, sep, lines[i])
			last = i
		}
	}
}

// matchLines returns the lines of content that match re, or that do not
// when invert is set.
func matchLines(re *regexp.Regexp, content string, invert bool) ([]Match, error) {
	var matches []Match
	sc := bufio.NewScanner(strings.NewReader(content))
	sc.Buffer(make([]byte, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		if line := sc.Text(); re.MatchString(line) != invert {
			matches = append(matches, Match{Line: n, Content: line})
		}
	}
	return matches, sc.Err()
}
