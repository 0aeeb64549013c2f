// errors.go maps service errors onto HTTP responses.
//
// The mapping is by sentinel: nav.ErrNotFound and missing files are 404,
// name collisions are 409, and malformed input is 400. The error text is
// passed through unchanged so clients see the same messages as the CLI.

package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jpl-au/docsite/internal/nav"
	"github.com/jpl-au/docsite/internal/path"
	"github.com/jpl-au/docsite/internal/site"
	"github.com/jpl-au/docsite/internal/validate"
)

// statusFor returns the HTTP status for err.
func statusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, nav.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, nav.ErrDuplicate), errors.Is(err, site.ErrFileExists):
		return http.StatusConflict
	case errors.Is(err, validate.ErrContentTooLarge), errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, validate.ErrInvalidName),
		errors.Is(err, validate.ErrInvalidPath),
		errors.Is(err, path.ErrInvalid),
		errors.Is(err, nav.ErrNoParent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err with the status statusFor chooses.
func writeError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
		}
		jsonError(w, "validation failed on "+strings.Join(fields, ", "), http.StatusBadRequest)
		return
	}
	jsonError(w, err.Error(), statusFor(err))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
