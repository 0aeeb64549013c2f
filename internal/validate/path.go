package validate

import (
	"fmt"
	"strings"

	"github.com/jpl-au/docsite/internal/path"
)

// Path validates a site-relative path and returns the normalised form.
//
// Validation rules:
//   - Empty paths rejected
//   - Null bytes rejected (prevents path injection)
//   - Path normalisation via path.Normalise (rejects traversal out of the site)
func Path(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}
	norm, err := path.Normalise(p)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	return norm, nil
}
