// errors.go defines sentinel errors for validation failures.
//
// Sentinel errors (not error types) because validation failures don't carry
// additional context beyond the category. Detailed messages are provided by
// wrapping these with fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	ErrInvalidPath     = errors.New("invalid path")
	ErrInvalidName     = errors.New("invalid name")
	ErrContentTooLarge = errors.New("content too large")
)
