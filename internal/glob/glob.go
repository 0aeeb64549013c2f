// Package glob matches page file paths against shell patterns.
//
// Patterns use path.Match syntax on slash-separated paths relative to the
// docs directory, plus "**" for any number of directories: "guides/**"
// selects every page under guides, "**/index.md" every index page.
package glob

import (
	"path"
	"strings"
)

// Match reports whether p matches pattern. A pattern without a slash is
// also tried against the file name alone, so "install*" finds
// guides/install.md. Malformed patterns return path.ErrBadPattern.
func Match(pattern, p string) (bool, error) {
	pattern = strings.TrimPrefix(pattern, "./")

	if before, after, ok := strings.Cut(pattern, "**"); ok {
		prefix := strings.TrimSuffix(before, "/")
		suffix := strings.TrimPrefix(after, "/")

		if prefix != "" && p != prefix && !strings.HasPrefix(p, prefix+"/") {
			return false, nil
		}
		if suffix == "" {
			return true, nil
		}
		rest := strings.TrimPrefix(strings.TrimPrefix(p, prefix), "/")
		segments := strings.Split(rest, "/")
		for i := range segments {
			m, err := path.Match(suffix, strings.Join(segments[i:], "/"))
			if err != nil || m {
				return m, err
			}
		}
		return false, nil
	}

	m, err := path.Match(pattern, p)
	if err != nil || m || strings.Contains(pattern, "/") {
		return m, err
	}
	return path.Match(pattern, path.Base(p))
}
