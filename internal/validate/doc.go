// Package validate provides input validation for docsite's domain types.
//
// This package enforces safety rules at the boundary between user input and
// the filesystem. Each validation function returns nil on success or a
// descriptive error on failure.
//
// # Design Philosophy
//
// Validation is minimal by design. We reject clearly dangerous inputs (null
// bytes, path traversal, excessive sizes) but leave naming to the author.
// Name collisions are not checked here; that is nav.Validate's job.
//
// # Validation Functions
//
// Path validates and normalises site-relative paths with traversal protection.
// Name validates the name of a proposed section, subsection or page.
// Content validates page body size limits.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go
// (ErrInvalidPath, ErrInvalidName, etc.). Use errors.Is() for type-safe
// error checking:
//
//	if errors.Is(err, validate.ErrInvalidName) {
//	    // handle invalid name
//	}
package validate
