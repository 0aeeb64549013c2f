package validate

import "fmt"

// Content validates page content size. maxLen <= 0 means no limit.
// Format is not checked; pages are whatever markdown the author writes.
func Content(content string, maxLen int64) error {
	if maxLen > 0 && int64(len(content)) > maxLen {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrContentTooLarge, len(content), maxLen)
	}
	return nil
}
