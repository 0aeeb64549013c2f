// find.go implements the Locator: resolving a requested page identifier to
// the file that backs it.

package nav

import "errors"

// ErrNotFound is returned by Find when no leaf matches the identifier.
var ErrNotFound = errors.New("Could not associate path") //nolint:staticcheck // message surfaced to API clients verbatim

// Result is a located page. Content is whatever the caller passed to Find,
// returned unchanged.
type Result[C any] struct {
	Path    string `json:"path"`
	Section string `json:"section"`
	Content C      `json:"content"`
}

// Find walks the tree depth first and returns the first leaf whose identifier
// matches url under Slug comparison. A group's children are checked before
// the group's following siblings. Section titles are never matched; Section
// in the result holds the matched entry's identifier.
//
// When identifiers are duplicated the first one in traversal order wins, so
// repeated calls against the same tree always return the same leaf.
func Find[C any](t Tree, url string, content C) (Result[C], error) {
	want := Slug(url)
	for _, s := range t.Sections {
		for _, e := range s.Entries {
			if e.IsGroup() {
				for _, child := range e.Children {
					if child.IsGroup() {
						continue
					}
					if Slug(child.Identifier) == want {
						return Result[C]{Path: child.Path, Section: child.Identifier, Content: content}, nil
					}
				}
				continue
			}
			if Slug(e.Identifier) == want {
				return Result[C]{Path: e.Path, Section: e.Identifier, Content: content}, nil
			}
		}
	}
	return Result[C]{}, ErrNotFound
}
