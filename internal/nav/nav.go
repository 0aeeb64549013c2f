// Package nav models the navigation tree of a documentation site and answers
// the two questions the rest of docsite asks of it: which file backs a
// requested page (Find), and would a proposed section, subsection or page
// collide with an existing name (Validate).
//
// The tree is read from mkdocs.yml by the loader in load.go and is never
// mutated by Find or Validate. Insert and Remove return modified copies.
//
// # Shape
//
// A Tree is an ordered list of sections. Each section holds an ordered list
// of entries, and an entry is either a leaf (identifier -> file path) or a
// group (identifier -> child entries). Only one level of grouping below a
// section is modelled:
//
//	nav:
//	  - Guides:
//	      - Install: guides/install.md
//	      - Advanced:
//	          - Tuning: guides/advanced/tuning.md
package nav

import (
	"path"
	"strings"
)

// Tree is the canonical navigation tree. Section order is display order.
type Tree struct {
	Sections []Section `json:"sections"`
}

// Section is a top-level named group of entries.
//
// Inline marks a page listed directly at the top level ("- Home: index.md" or
// "- index.md"). It is held as a section with a single leaf of the same name
// so that Find reaches it, and is written back in its original form. A
// section title is never empty.
type Section struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
	Inline  bool    `json:"inline,omitempty"`
}

// Entry is a leaf page or a group of pages within a section.
// Children is nil for a leaf; a group always has a non-nil Children slice,
// even when empty.
//
// Bare marks a leaf listed without a title ("- guides/install.md"). Its
// identifier is taken from the file name and it is written back untitled.
type Entry struct {
	Identifier string  `json:"identifier"`
	Path       string  `json:"path,omitempty"`
	Children   []Entry `json:"children,omitempty"`
	Bare       bool    `json:"bare,omitempty"`
}

// Leaf returns a leaf entry backed by path.
func Leaf(identifier, path string) Entry {
	return Entry{Identifier: identifier, Path: path}
}

// BareLeaf returns an untitled leaf backed by file, identified by the
// title-cased file stem: guides/getting_started.md is "Getting Started".
func BareLeaf(file string) Entry {
	id := TitleCase(strings.TrimSuffix(path.Base(file), path.Ext(file)))
	if id == "" {
		id = file
	}
	return Entry{Identifier: id, Path: file, Bare: true}
}

// Group returns a group entry holding children.
func Group(identifier string, children ...Entry) Entry {
	if children == nil {
		children = []Entry{}
	}
	return Entry{Identifier: identifier, Children: children}
}

// IsGroup reports whether the entry holds nested entries instead of a path.
func (e Entry) IsGroup() bool { return e.Children != nil }

// Leaves returns every leaf in traversal order: sections in order, and within
// a section each group's children before the group's following siblings.
func (t Tree) Leaves() []Entry {
	var out []Entry
	for _, s := range t.Sections {
		for _, e := range s.Entries {
			if e.IsGroup() {
				out = append(out, e.Children...)
				continue
			}
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a deep copy so callers can derive a modified tree without
// touching the original.
func (t Tree) Clone() Tree {
	c := Tree{Sections: make([]Section, len(t.Sections))}
	for i, s := range t.Sections {
		c.Sections[i] = Section{Title: s.Title, Entries: cloneEntries(s.Entries), Inline: s.Inline}
	}
	return c
}

func cloneEntries(in []Entry) []Entry {
	if in == nil {
		return nil
	}
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = Entry{Identifier: e.Identifier, Path: e.Path, Children: cloneEntries(e.Children), Bare: e.Bare}
	}
	return out
}
