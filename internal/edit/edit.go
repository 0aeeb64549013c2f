// Package edit applies in-place edits to page content: search/replace of
// a single occurrence, or replacement of a line range.
package edit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/docsite/internal/service"
)

var (
	// ErrTextNotFound is returned when the search text is not on the page.
	ErrTextNotFound = errors.New("text not found")
	// ErrInvalidLineRange is returned when a line range is malformed.
	ErrInvalidLineRange = errors.New("invalid line range")
)

// Options selects the edit. When Lines is set, the range is replaced by
// New and Old is ignored.
type Options struct {
	Old        string
	New        string
	IgnoreCase bool
	Lines      string // "start:end", either side may be empty
}

// Run reads the page backing url, applies the edit and writes it back.
func Run(ctx context.Context, svc service.Service, url string, opts Options) (service.Written, error) {
	page, err := svc.Page(ctx, url)
	if err != nil {
		return service.Written{}, err
	}

	var content string
	if opts.Lines != "" {
		start, end, err := ParseLineRange(opts.Lines)
		if err != nil {
			return service.Written{}, err
		}
		content, err = ReplaceLines(page.Content, start, end, opts.New)
		if err != nil {
			return service.Written{}, err
		}
	} else {
		content, err = Replace(page.Content, opts.Old, opts.New, opts.IgnoreCase)
		if err != nil {
			return service.Written{}, err
		}
	}
	return svc.Write(ctx, url, content)
}

// Replace substitutes the first occurrence of old. With ignoreCase the
// match ignores case and newStr is inserted as given.
func Replace(content, old, newStr string, ignoreCase bool) (string, error) {
	if old == "" {
		return "", fmt.Errorf("%w: empty search text", ErrTextNotFound)
	}
	idx := strings.Index(content, old)
	if ignoreCase {
		idx = strings.Index(strings.ToLower(content), strings.ToLower(old))
	}
	if idx == -1 {
		return "", fmt.Errorf("%w: %q", ErrTextNotFound, old)
	}
	return content[:idx] + newStr + content[idx+len(old):], nil
}

// ReplaceLines replaces lines start through end (1-indexed, inclusive).
// A zero start means the first line and a zero end the last; an end past
// the last line is clamped.
func ReplaceLines(content string, start, end int, replacement string) (string, error) {
	lines := strings.Split(content, "\n")
	if start == 0 {
		start = 1
	}
	if end == 0 || end > len(lines) {
		end = len(lines)
	}
	if start > len(lines) {
		return "", fmt.Errorf("%w: start line %d exceeds page length %d", ErrInvalidLineRange, start, len(lines))
	}
	if end < start {
		return "", fmt.Errorf("%w: end line %d before start line %d", ErrInvalidLineRange, end, start)
	}

	out := make([]string, 0, len(lines))
	out = append(out, lines[:start-1]...)
	if r := strings.TrimSuffix(replacement, "\n"); r != "" {
		out = append(out, strings.Split(r, "\n")...)
	}
	out = append(out, lines[end:]...)
	return strings.Join(out, "\n"), nil
}

// ParseLineRange parses "5:10", "5:" or ":10". Zero means unspecified.
func ParseLineRange(s string) (start, end int, err error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(to, ":") {
		return 0, 0, fmt.Errorf("%w: %q (expected start:end)", ErrInvalidLineRange, s)
	}
	if from == "" && to == "" {
		return 0, 0, fmt.Errorf("%w: %q (at least start or end line required)", ErrInvalidLineRange, s)
	}
	if start, err = lineNumber(from, "start"); err != nil {
		return 0, 0, err
	}
	if end, err = lineNumber(to, "end"); err != nil {
		return 0, 0, err
	}
	if start > 0 && end > 0 && start > end {
		return 0, 0, fmt.Errorf("%w: start line %d is greater than end line %d", ErrInvalidLineRange, start, end)
	}
	return start, end, nil
}

func lineNumber(s, which string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s line %q", ErrInvalidLineRange, which, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s line must be >= 1, got %d", ErrInvalidLineRange, which, n)
	}
	return n, nil
}
