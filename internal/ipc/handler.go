// Package ipc provides the HTTP API for the ICP engine.
package ipc

import (
	"encoding/json"
	"net/http"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/report"
	"github.com/gtm-studio/icp-engine/internal/workflow"
)

// Handler holds all dependencies for the HTTP handlers.
type Handler struct {
	Sessions *workflow.SessionManager
}

// APIError is a structured error response.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.Sessions.Count(),
	})
}

// CreateSession handles POST /api/v1/sessions.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.Sessions.Create()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess.State())
}

// ListSessions handles GET /api/v1/sessions.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Sessions.List())
}

// GetSession handles GET /api/v1/sessions/{sessionID}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// DeleteSession handles DELETE /api/v1/sessions/{sessionID}.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(r.PathValue("sessionID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Advance handles POST /api/v1/sessions/{sessionID}/advance.
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := sess.Advance(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// Back handles POST /api/v1/sessions/{sessionID}/back.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := sess.Back(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// EditRequest is the body for POST /api/v1/sessions/{sessionID}/edit.
type EditRequest struct {
	GroupID string `json:"groupId"`
}

// RequestEdit handles POST /api/v1/sessions/{sessionID}/edit.
func (h *Handler) RequestEdit(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req EditRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if req.GroupID == "" {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "groupId is required"})
		return
	}
	if err := sess.RequestGroupEdit(req.GroupID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// EndEdit handles POST /api/v1/sessions/{sessionID}/edit/return.
func (h *Handler) EndEdit(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.EndGroupEdit(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// Complete handles POST /api/v1/sessions/{sessionID}/complete.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.Complete(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// NamingRequest is the body for PUT /api/v1/sessions/{sessionID}/naming.
type NamingRequest struct {
	Convention domain.NamingConvention `json:"convention"`
}

// SetNaming handles PUT /api/v1/sessions/{sessionID}/naming.
func (h *Handler) SetNaming(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req NamingRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.SetNamingConvention(req.Convention); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

// GetSnapshot handles GET /api/v1/sessions/{sessionID}/snapshot.
func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// GetReport handles GET /api/v1/sessions/{sessionID}/report. The
// response is the rendered Markdown document, not JSON.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	doc := report.Generate(sess.Snapshot())
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

func (h *Handler) session(r *http.Request) (*workflow.Session, error) {
	return h.Sessions.Get(r.PathValue("sessionID"))
}

// decodeBody parses a JSON request body, writing a 400 response on
// failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, APIError{Code: 400, Message: "invalid request body"})
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if engErr, ok := err.(*domain.EngineError); ok {
		status := http.StatusInternalServerError
		switch engErr.Code {
		case domain.ErrSessionNotFound.Code,
			domain.ErrBucketNotFound.Code,
			domain.ErrPersonaNotFound.Code,
			domain.ErrSegmentNotFound.Code,
			domain.ErrGroupNotFound.Code,
			domain.ErrStageNotFound.Code,
			domain.ErrAssessmentNotFound.Code:
			status = http.StatusNotFound
		case domain.ErrSessionLimit.Code:
			status = http.StatusTooManyRequests
		case domain.ErrInvalidTransition.Code,
			domain.ErrStepGateBlocked.Code,
			domain.ErrStepNotActive.Code,
			domain.ErrNoEditInProgress.Code,
			domain.ErrEditInProgress.Code:
			status = http.StatusUnprocessableEntity
		case domain.ErrInvalidStep.Code,
			domain.ErrUnknownLevelTag.Code,
			domain.ErrUnknownFunctionKey.Code,
			domain.ErrScoreOutOfRange.Code,
			domain.ErrInvalidPriorityLevel.Code,
			domain.ErrInvalidMaturity.Code,
			domain.ErrConfigInvalid.Code:
			status = http.StatusBadRequest
		}
		writeJSON(w, status, APIError{Code: engErr.Code, Message: engErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, APIError{Code: -1, Message: err.Error()})
}
