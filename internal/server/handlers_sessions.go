package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

func sessionResponse(sess *editor.Session) types.SessionResponse {
	snap := sess.Model.Snapshot()
	return types.SessionResponse{
		ID:            sess.ID,
		Document:      snap.Document,
		Template:      snap.Template,
		ActiveSection: snap.ActiveSection,
		Loading:       snap.Loading,
	}
}

// lookupSession resolves the {id} path value to one of the caller's sessions.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*editor.Session, bool) {
	sess, err := s.sessions.Get(currentUser(r), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) parseSection(w http.ResponseWriter, raw string) (types.Section, bool) {
	section, err := types.ParseSection(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return section, true
}

// handleOpenSession starts an editing session on a blank document, or on a
// stored résumé when resume_id is given. The body is optional.
func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	var req types.OpenSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	tmpl, err := types.ParseTemplate(req.Template)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	m := editor.NewModel(s.gatewayFor(r), editor.WithTemplate(tmpl))
	if req.ResumeID != "" {
		if _, err := m.Load(r.Context(), req.ResumeID); err != nil {
			writeError(w, err)
			return
		}
	}

	sess := s.sessions.Open(currentUser(r), m)
	s.jsonResponse(w, http.StatusCreated, sessionResponse(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

// handleCloseSession discards the session and any unsaved edits.
func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Close(currentUser(r), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEditField(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req types.FieldEditRequest
	if !decodeAndValidate(w, r, s.validator, &req) {
		return
	}
	section, ok := s.parseSection(w, req.Section)
	if !ok {
		return
	}
	value, err := req.DecodeValue(section)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := sess.Model.SetField(section, req.Field, value, req.Index); err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req types.SectionRequest
	if !decodeAndValidate(w, r, s.validator, &req) {
		return
	}
	section, ok := s.parseSection(w, req.Section)
	if !ok {
		return
	}

	if err := sess.Model.AddItem(section); err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

// handleRemoveItem removes one entry. The last entry of a list is kept unless
// force=true is passed.
func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	section, ok := s.parseSection(w, r.PathValue("section"))
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid index")
		return
	}

	remove := sess.Model.GuardedRemove
	if force, _ := strconv.ParseBool(r.URL.Query().Get("force")); force {
		remove = sess.Model.RemoveItem
	}
	if err := remove(section, index); err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req types.TemplateRequest
	if !decodeAndValidate(w, r, s.validator, &req) {
		return
	}
	tmpl, err := types.ParseTemplate(req.Template)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.Model.SetTemplate(tmpl)
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

func (s *Server) handleSetSection(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req types.SectionRequest
	if !decodeAndValidate(w, r, s.validator, &req) {
		return
	}
	section, ok := s.parseSection(w, req.Section)
	if !ok {
		return
	}

	if err := sess.Model.SetActiveSection(section); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

// handleSuggest generates suggestion text for a section without applying it.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req types.SectionRequest
	if !decodeAndValidate(w, r, s.validator, &req) {
		return
	}
	section, ok := s.parseSection(w, req.Section)
	if !ok {
		return
	}

	text, err := s.suggestions.Suggest(r.Context(), section, sess.Model.Document())
	if err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.SuggestionResponse{Section: section, Text: text})
}

func (s *Server) handleApplySuggestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req types.ApplySuggestionRequest
	if !decodeAndValidate(w, r, s.validator, &req) {
		return
	}
	section, ok := s.parseSection(w, req.Section)
	if !ok {
		return
	}

	if err := sess.Model.ApplySuggestion(section, req.Text); err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

// handlePreviewSession renders the working document with the session template
// unless ?template= overrides it.
func (s *Server) handlePreviewSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	tmpl, ok := s.sessionTemplate(w, r, sess)
	if !ok {
		return
	}
	s.writePreview(w, sess.Model.Document(), tmpl)
}

func (s *Server) handleExportSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	format, err := rendering.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	tmpl, ok := s.sessionTemplate(w, r, sess)
	if !ok {
		return
	}
	s.writeExport(r.Context(), w, sess.Model.Document(), tmpl, format)
}

func (s *Server) sessionTemplate(w http.ResponseWriter, r *http.Request, sess *editor.Session) (types.Template, bool) {
	raw := r.URL.Query().Get("template")
	if raw == "" {
		return sess.Model.Template(), true
	}
	tmpl, err := types.ParseTemplate(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return tmpl, true
}

// handleSaveSession persists the working document. The first save assigns the ID.
func (s *Server) handleSaveSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if _, err := sess.Model.Save(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}
