package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/jpl-au/docsite/internal/log"
)

// handleBuild runs the build and returns its result. A failing build is
// still a 200; the exit code is in the body.
func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.Build(r.Context(), nil)
	log.Event("http:build", "build").Author("http").Detail("exit_code", res.ExitCode).Write(err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleDownload sends the built site as a zip. The archive is assembled in
// memory so a missing output directory still gets a JSON error.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	n, err := s.svc.Zip(r.Context(), &buf)
	log.Event("http:download", "zip").Author("http").Detail("files", n).Write(err)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="site.zip"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
