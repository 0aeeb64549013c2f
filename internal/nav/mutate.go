// mutate.go derives modified trees for create and delete operations.
//
// Find and Validate never change a tree. Insert and Remove work on a Clone
// and return it, so the tree a caller validated against stays intact.

package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoParent is returned by Insert when the proposal's path names no
// existing section or group.
var ErrNoParent = errors.New("parent not found")

// Insert returns a copy of t with the proposed node appended at the end of
// its parent. A page without a path becomes a top-level page. Names are stored in TitleCase. file is the leaf path for pages
// and is ignored for sections and subsections. Insert does not check for
// collisions; call Validate first.
func (t Tree) Insert(p Proposal, file string) (Tree, error) {
	c := t.Clone()
	name := TitleCase(p.Name)

	switch p.Kind() {
	case KindSection:
		c.Sections = append(c.Sections, Section{Title: name, Entries: []Entry{}})
		return c, nil

	case KindSubsection:
		s := c.section(p.Path)
		if s == nil {
			return t, fmt.Errorf("%w: section %q", ErrNoParent, p.Path)
		}
		s.Entries = append(s.Entries, Group(name))
		return c, nil
	}

	leaf := Leaf(name, file)
	if p.Path == "" {
		c.Sections = append(c.Sections, Section{Title: name, Entries: []Entry{leaf}, Inline: true})
		return c, nil
	}
	if sec, grp, ok := strings.Cut(p.Path, "/"); ok {
		s := c.section(sec)
		if s == nil {
			return t, fmt.Errorf("%w: section %q", ErrNoParent, sec)
		}
		g := group(s.Entries, grp)
		if g == nil {
			return t, fmt.Errorf("%w: group %q in section %q", ErrNoParent, grp, sec)
		}
		g.Children = append(g.Children, leaf)
		return c, nil
	}

	if s := c.section(p.Path); s != nil {
		s.Inline = false
		s.Entries = append(s.Entries, leaf)
		return c, nil
	}
	for i := range c.Sections {
		if g := group(c.Sections[i].Entries, p.Path); g != nil {
			g.Children = append(g.Children, leaf)
			return c, nil
		}
	}
	return t, fmt.Errorf("%w: %q", ErrNoParent, p.Path)
}

// Remove returns a copy of t without the leaf Find would return for url,
// along with the removed entry. A top-level page that becomes empty is
// dropped entirely.
func (t Tree) Remove(url string) (Tree, Entry, error) {
	c := t.Clone()
	want := Slug(url)
	for si := range c.Sections {
		s := &c.Sections[si]
		for ei := range s.Entries {
			e := &s.Entries[ei]
			if e.IsGroup() {
				for ci, child := range e.Children {
					if !child.IsGroup() && Slug(child.Identifier) == want {
						e.Children = append(e.Children[:ci:ci], e.Children[ci+1:]...)
						return c, child, nil
					}
				}
				continue
			}
			if Slug(e.Identifier) == want {
				removed := *e
				s.Entries = append(s.Entries[:ei:ei], s.Entries[ei+1:]...)
				if s.Inline && len(s.Entries) == 0 {
					c.Sections = append(c.Sections[:si:si], c.Sections[si+1:]...)
				}
				return c, removed, nil
			}
		}
	}
	return t, Entry{}, ErrNotFound
}

// section returns the first section whose TitleCase title matches name.
func (t *Tree) section(name string) *Section {
	want := TitleCase(name)
	for i := range t.Sections {
		if TitleCase(t.Sections[i].Title) == want {
			return &t.Sections[i]
		}
	}
	return nil
}

// group returns the first group entry whose TitleCase identifier matches name.
func group(entries []Entry, name string) *Entry {
	want := TitleCase(name)
	for i := range entries {
		if entries[i].IsGroup() && TitleCase(entries[i].Identifier) == want {
			return &entries[i]
		}
	}
	return nil
}
