package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// currentUser returns the authenticated caller. Routes using it sit behind the auth middleware.
func currentUser(r *http.Request) uuid.UUID {
	sess, _ := middleware.SessionFrom(r.Context())
	return sess.UserID
}

// gatewayFor scopes résumé persistence to the caller.
func (s *Server) gatewayFor(r *http.Request) gateway.Gateway {
	return gateway.NewStoreGateway(s.store, currentUser(r))
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.ListResumes(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, fmt.Errorf("failed to list resumes: %w", err))
		return
	}
	if list == nil {
		list = []types.ResumeSummary{}
	}
	s.jsonResponse(w, http.StatusOK, list)
}

func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var doc types.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc.ID = ""

	saved, err := s.gatewayFor(r).SaveResume(r.Context(), &doc)
	if err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, saved)
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	doc, err := s.gatewayFor(r).LoadResume(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	var doc types.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	doc.ID = r.PathValue("id")

	saved, err := s.gatewayFor(r).SaveResume(r.Context(), &doc)
	if err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, saved)
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := s.gatewayFor(r).DeleteResume(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePreviewResume returns the rendered view of a stored résumé as JSON.
func (s *Server) handlePreviewResume(w http.ResponseWriter, r *http.Request) {
	tmpl, err := types.ParseTemplate(r.URL.Query().Get("template"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	doc, err := s.gatewayFor(r).LoadResume(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	s.writePreview(w, doc, tmpl)
}

// handleExportResume downloads a stored résumé as HTML, text or PDF.
func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	format, tmpl, ok := s.exportParams(w, r)
	if !ok {
		return
	}
	doc, err := s.gatewayFor(r).LoadResume(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	s.writeExport(r.Context(), w, doc, tmpl, format)
}

func (s *Server) exportParams(w http.ResponseWriter, r *http.Request) (rendering.Format, types.Template, bool) {
	q := r.URL.Query()
	format, err := rendering.ParseFormat(q.Get("format"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	tmpl, err := types.ParseTemplate(q.Get("template"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	return format, tmpl, true
}

func (s *Server) writePreview(w http.ResponseWriter, doc *types.Document, tmpl types.Template) {
	view, err := rendering.Render(doc, tmpl)
	if err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

func (s *Server) writeExport(ctx context.Context, w http.ResponseWriter, doc *types.Document, tmpl types.Template, format rendering.Format) {
	data, err := s.exporter.Export(ctx, doc, tmpl, format)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format != rendering.FormatHTML {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rendering.Filename(doc, format)))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[export] failed to write %s response: %v", format, err)
	}
}
