package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/render"
)

type writeRequest struct {
	Content *string `json:"content" validate:"required"`
}

// pageURL returns the {url} route parameter, percent-decoded.
func pageURL(r *http.Request) string {
	raw := chi.URLParam(r, "url")
	if u, err := url.PathUnescape(raw); err == nil {
		return u
	}
	return raw
}

// decode reads a JSON body into v and validates it.
func (s *Server) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest{fmt.Errorf("invalid request body: %w", err)}
	}
	return s.validate.Struct(v)
}

// badRequest marks decode failures as client errors.
type badRequest struct{ err error }

func (e badRequest) Error() string { return e.err.Error() }
func (e badRequest) Unwrap() error { return e.err }

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Tree(r.Context())
	log.Event("http:tree", "read").Author("http").Write(err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	u := pageURL(r)
	page, err := s.svc.Page(r.Context(), u)
	l := log.Event("http:pages", "read").Author("http").URL(u)
	if err == nil {
		l.Path(page.Path)
	}
	l.Write(err)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]any{
		"url":     page.URL,
		"section": page.Section,
		"path":    page.Path,
		"content": page.Content,
	}
	if r.URL.Query().Get("html") != "" {
		html, err := render.HTML(page.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		resp["html"] = html
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePutPage(w http.ResponseWriter, r *http.Request) {
	u := pageURL(r)
	var req writeRequest
	if err := s.decode(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	written, err := s.svc.Write(r.Context(), u, *req.Content)
	l := log.Event("http:pages", "write").Author("http").URL(u)
	if err == nil {
		l.Path(written.Path)
	}
	l.Write(err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, written)
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	u := pageURL(r)
	removed, err := s.svc.Remove(r.Context(), u)
	l := log.Event("http:pages", "remove").Author("http").URL(u)
	if err == nil {
		l.Path(removed.Path)
	}
	l.Write(err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, removed)
}

// writeDecodeError reports body decoding and validation failures as 400,
// or 413 when the body exceeded the size limit.
func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	if code := statusFor(err); code == http.StatusRequestEntityTooLarge {
		jsonError(w, err.Error(), code)
		return
	}
	var br badRequest
	if errors.As(err, &br) {
		jsonError(w, br.Error(), http.StatusBadRequest)
		return
	}
	writeError(w, err)
}
