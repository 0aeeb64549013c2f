// name.go validates names of proposed sections, subsections and pages.
//
// Names end up both as nav keys and, in snake form, as path components, so
// they must survive the trip to disk: a name made only of punctuation would
// produce an empty path component.

package validate

import (
	"fmt"
	"strings"

	"github.com/jpl-au/docsite/internal/nav"
)

// Name validates a proposed node name.
//
// Validation rules:
//   - Empty or blank names rejected
//   - Null bytes and "/" rejected ("/" is the parent separator)
//   - Names with no letters or digits rejected (no usable path component)
func Name(n string) error {
	if strings.TrimSpace(n) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.ContainsRune(n, 0) {
		return fmt.Errorf("%w: null byte in name", ErrInvalidName)
	}
	if strings.Contains(n, "/") {
		return fmt.Errorf("%w: %q contains '/'", ErrInvalidName, n)
	}
	if nav.Snake(n) == "" {
		return fmt.Errorf("%w: %q has no letters or digits", ErrInvalidName, n)
	}
	return nil
}

// Proposal validates every field of a nav.Proposal that reaches the disk.
func Proposal(p nav.Proposal) error {
	if err := Name(p.Name); err != nil {
		return err
	}
	if strings.ContainsRune(p.Path, 0) {
		return fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	if strings.Count(p.Path, "/") > 1 {
		return fmt.Errorf("%w: %q nests deeper than section/group", ErrInvalidPath, p.Path)
	}
	if p.Section && strings.Contains(p.Path, "/") {
		return fmt.Errorf("%w: subsections belong directly to a section", ErrInvalidPath)
	}
	return nil
}
