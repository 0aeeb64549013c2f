package api

import (
	"net/http"

	"github.com/jpl-au/docsite/internal/log"
	"github.com/jpl-au/docsite/internal/nav"
)

type proposalRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Path    string `json:"path" validate:"max=400"`
	Section bool   `json:"section"`
}

type createRequest struct {
	proposalRequest
	Content string `json:"content"`
}

func (p proposalRequest) proposal() nav.Proposal {
	return nav.Proposal{Name: p.Name, Path: p.Path, Section: p.Section}
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req proposalRequest
	if err := s.decode(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}
	p := req.proposal()

	got, err := s.svc.Validate(r.Context(), p)
	log.Event("http:validate", "validate").Author("http").URL(p.Path).Kind(p.Kind().String()).
		Detail("name", p.Name).Write(err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true, "kind": got.Kind().String(), "proposal": got})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := s.decode(r, &req); err != nil {
		s.writeDecodeError(w, err)
		return
	}
	p := req.proposal()

	created, err := s.svc.Create(r.Context(), p, req.Content)
	l := log.Event("http:nodes", "create").Author("http").URL(p.Path).Kind(p.Kind().String()).
		Detail("name", p.Name)
	if err == nil {
		l.Path(created.Path)
	}
	l.Write(err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
