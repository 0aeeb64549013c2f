// load.go reads and writes the navigation tree held in mkdocs.yml.
//
// Separated from nav.go because this is the only place that knows about the
// on-disk shape: arrays of single-key mappings, the "nav" key (or the legacy
// "pages" key older mkdocs versions used), and bare sequences. Everything
// past this file sees only the typed Tree.
//
// Design: parsing goes through yaml.Node rather than map[string]any so that
// key order is kept and Replace can rewrite the nav while leaving every other
// key, comment and custom tag in mkdocs.yml untouched.

package nav

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformed is returned when the nav does not have the expected shape.
	ErrMalformed = errors.New("malformed navigation")
	// ErrTooDeep is returned when entries nest below section -> group -> page.
	ErrTooDeep = errors.New("navigation nested too deeply")
)

// Keys checked for the navigation, in order.
var navKeys = []string{"nav", "pages"}

// Load reads the navigation tree from an mkdocs.yml file.
func Load(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tree{}, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tree{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a navigation tree from mkdocs.yml content. The document may be
// a mapping with a "nav" or "pages" key, or a bare sequence of sections.
// A mapping with neither key yields an empty tree.
func Parse(data []byte) (Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Tree{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	seq := findNav(&doc)
	if seq == nil {
		return Tree{}, nil
	}
	return decodeSections(seq)
}

// findNav returns the sequence node holding the navigation, or nil.
func findNav(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return root
	case yaml.MappingNode:
		for _, key := range navKeys {
			if v := mappingValue(root, key); v != nil && v.Kind == yaml.SequenceNode {
				return v
			}
		}
	}
	return nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func decodeSections(seq *yaml.Node) (Tree, error) {
	t := Tree{Sections: make([]Section, 0, len(seq.Content))}
	for _, item := range seq.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			// An untitled page at the top level ("- index.md").
			leaf := BareLeaf(item.Value)
			t.Sections = append(t.Sections, Section{Title: leaf.Identifier, Entries: []Entry{leaf}, Inline: true})

		case yaml.MappingNode:
			if len(item.Content) != 2 {
				return Tree{}, fmt.Errorf("%w: line %d: section must have exactly one key", ErrMalformed, item.Line)
			}
			title, val := item.Content[0].Value, item.Content[1]
			switch {
			case val.Kind == yaml.ScalarNode && val.Tag != "!!null":
				// A top-level page ("- Home: index.md").
				t.Sections = append(t.Sections, Section{Title: title, Entries: []Entry{Leaf(title, val.Value)}, Inline: true})
			case val.Kind == yaml.ScalarNode:
				t.Sections = append(t.Sections, Section{Title: title, Entries: []Entry{}})
			case val.Kind == yaml.SequenceNode:
				entries, err := decodeEntries(val, 1)
				if err != nil {
					return Tree{}, fmt.Errorf("section %q: %w", title, err)
				}
				t.Sections = append(t.Sections, Section{Title: title, Entries: entries})
			default:
				return Tree{}, fmt.Errorf("%w: line %d: section %q has unsupported value", ErrMalformed, val.Line, title)
			}

		default:
			return Tree{}, fmt.Errorf("%w: line %d: unexpected node", ErrMalformed, item.Line)
		}
	}
	return t, nil
}

// decodeEntries decodes a section's entries (depth 1) or a group's children
// (depth 2).
func decodeEntries(seq *yaml.Node, depth int) ([]Entry, error) {
	entries := make([]Entry, 0, len(seq.Content))
	for _, item := range seq.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			entries = append(entries, BareLeaf(item.Value))

		case yaml.MappingNode:
			if len(item.Content) != 2 {
				return nil, fmt.Errorf("%w: line %d: entry must have exactly one key", ErrMalformed, item.Line)
			}
			id, val := item.Content[0].Value, item.Content[1]
			switch val.Kind {
			case yaml.ScalarNode:
				entries = append(entries, Leaf(id, val.Value))
			case yaml.SequenceNode:
				if depth > 1 {
					return nil, fmt.Errorf("%w: line %d: %q", ErrTooDeep, val.Line, id)
				}
				children, err := decodeEntries(val, depth+1)
				if err != nil {
					return nil, fmt.Errorf("group %q: %w", id, err)
				}
				entries = append(entries, Group(id, children...))
			default:
				return nil, fmt.Errorf("%w: line %d: entry %q has unsupported value", ErrMalformed, val.Line, id)
			}

		default:
			return nil, fmt.Errorf("%w: line %d: unexpected node", ErrMalformed, item.Line)
		}
	}
	return entries, nil
}

// Encode returns the tree as a yaml sequence node in mkdocs nav form.
func Encode(t Tree) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, s := range t.Sections {
		if s.Inline && len(s.Entries) == 1 && !s.Entries[0].IsGroup() {
			seq.Content = append(seq.Content, encodeLeaf(s.Entries[0]))
			continue
		}
		seq.Content = append(seq.Content, pair(s.Title, encodeEntries(s.Entries)))
	}
	return seq
}

func encodeEntries(entries []Entry) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(entries) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for _, e := range entries {
		if e.IsGroup() {
			seq.Content = append(seq.Content, pair(e.Identifier, encodeEntries(e.Children)))
			continue
		}
		seq.Content = append(seq.Content, encodeLeaf(e))
	}
	return seq
}

func encodeLeaf(e Entry) *yaml.Node {
	if e.Bare || e.Identifier == "" {
		return scalar(e.Path)
	}
	return pair(e.Identifier, scalar(e.Path))
}

func pair(key string, val *yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{scalar(key), val}}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// Replace returns mkdocs.yml content with its navigation replaced by t.
// The key the nav was read from is kept; a mapping without one gets a "nav"
// key appended. Other keys are left as they were.
func Replace(data []byte, t Tree) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	enc := Encode(t)

	switch {
	case doc.Kind != yaml.DocumentNode || len(doc.Content) == 0:
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{
			{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{scalar("nav"), enc}},
		}}

	case doc.Content[0].Kind == yaml.SequenceNode:
		doc.Content[0] = enc

	case doc.Content[0].Kind == yaml.MappingNode:
		root := doc.Content[0]
		replaced := false
		for _, key := range navKeys {
			for i := 0; i+1 < len(root.Content); i += 2 {
				if root.Content[i].Value == key {
					root.Content[i+1] = enc
					replaced = true
					break
				}
			}
			if replaced {
				break
			}
		}
		if !replaced {
			root.Content = append(root.Content, scalar("nav"), enc)
		}

	default:
		return nil, fmt.Errorf("%w: document root must be a mapping or sequence", ErrMalformed)
	}

	var buf bytes.Buffer
	e := yaml.NewEncoder(&buf)
	e.SetIndent(2)
	if err := e.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding navigation: %w", err)
	}
	if err := e.Close(); err != nil {
		return nil, fmt.Errorf("encoding navigation: %w", err)
	}
	return buf.Bytes(), nil
}
