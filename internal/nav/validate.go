// validate.go implements the collision validator: before a section,
// subsection or page is created, check that no sibling at the same level
// already carries the same name.
//
// Design: all comparisons are made on TitleCase of both sides, since stored
// keys are display strings and proposed names arrive in any form. The scan
// fails on the first collision but only succeeds after every section has been
// visited.

package nav

import (
	"errors"
	"strings"
)

// ErrDuplicate matches every DuplicateError under errors.Is.
var ErrDuplicate = errors.New("duplicate name")

// Kind identifies the level at which a collision was found.
type Kind int

const (
	KindSection Kind = iota
	KindSubsection
	KindPage
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindSubsection:
		return "subsection"
	case KindPage:
		return "page"
	default:
		return "unknown"
	}
}

// DuplicateError reports that a proposed name already exists.
type DuplicateError struct {
	Kind Kind
}

func (e *DuplicateError) Error() string {
	switch e.Kind {
	case KindSection:
		return "That section already exists!"
	case KindSubsection:
		return "That sub-section already exists!"
	default:
		return "A page in that section already exists!"
	}
}

// Is makes errors.Is(err, ErrDuplicate) true for any DuplicateError.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// Proposal describes a node about to be created.
//
// Section marks the proposal as a section (Path empty) or a subsection of the
// section named by Path. Without Section the proposal is a page inside Path,
// which names a section, or a subsection when it contains a "/" or matches a
// group identifier. A page with an empty Path is a top-level page.
type Proposal struct {
	Name    string `json:"name" validate:"required"`
	Path    string `json:"path,omitempty"`
	Section bool   `json:"section,omitempty"`
}

// Kind returns the level the proposal would be created at.
func (p Proposal) Kind() Kind {
	switch {
	case p.Section && p.Path == "":
		return KindSection
	case p.Section:
		return KindSubsection
	default:
		return KindPage
	}
}

// Validate returns p unchanged if it collides with nothing in t, otherwise a
// *DuplicateError of the matching kind.
func Validate(t Tree, p Proposal) (Proposal, error) {
	name := TitleCase(p.Name)
	path := TitleCase(p.Path)
	tertiary := !p.Section && t.IsTertiary(p.Path)

	for _, s := range t.Sections {
		title := TitleCase(s.Title)

		switch {
		case p.Section && p.Path != "":
			if title != path {
				continue
			}
			if hasIdentifier(s.Entries, name) {
				return p, &DuplicateError{Kind: KindSubsection}
			}

		case p.Section:
			if title == name {
				return p, &DuplicateError{Kind: KindSection}
			}

		case tertiary:
			for _, e := range s.Entries {
				if e.IsGroup() && hasIdentifier(e.Children, name) {
					return p, &DuplicateError{Kind: KindPage}
				}
			}

		case p.Path == "":
			// A top-level page takes a slot beside the sections.
			if title == name {
				return p, &DuplicateError{Kind: KindPage}
			}

		default:
			if title != path {
				continue
			}
			if hasIdentifier(s.Entries, name) {
				return p, &DuplicateError{Kind: KindPage}
			}
		}
	}
	return p, nil
}

// IsTertiary reports whether path addresses a group below a section rather
// than a section itself: either a "section/group" location or the name of an
// existing group entry.
func (t Tree) IsTertiary(path string) bool {
	if path == "" {
		return false
	}
	if strings.Contains(path, "/") {
		return true
	}
	want := TitleCase(path)
	for _, s := range t.Sections {
		for _, e := range s.Entries {
			if e.IsGroup() && TitleCase(e.Identifier) == want {
				return true
			}
		}
	}
	return false
}

// hasIdentifier reports whether any entry's TitleCase identifier equals name.
func hasIdentifier(entries []Entry, name string) bool {
	for _, e := range entries {
		if TitleCase(e.Identifier) == name {
			return true
		}
	}
	return false
}
