package ipc

import (
	"net/http"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/store"
)

// GroupRequest is the body for group create and update calls.
type GroupRequest struct {
	Name             *string `json:"name"`
	Color            *string `json:"color"`
	AccountSegmentID *string `json:"accountSegmentId"`
	StrategicContext *string `json:"strategicContext"`
	PainPoints       *string `json:"painPoints"`
	ValueProps       *string `json:"valueProps"`
	CRMList          *string `json:"crmList"`
	Assets           *string `json:"assets"`
}

// CreateGroup handles POST /api/v1/sessions/{sessionID}/groups.
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req GroupRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	g, err := sess.CreateGroup(strOr(req.Name))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

// ListGroups handles GET /api/v1/sessions/{sessionID}/groups.
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.ListGroups())
}

// UpdateGroup handles PATCH /api/v1/sessions/{sessionID}/groups/{groupID}.
func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req GroupRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	upd := store.GroupUpdate{
		Name:             req.Name,
		Color:            req.Color,
		AccountSegmentID: req.AccountSegmentID,
		StrategicContext: req.StrategicContext,
		PainPoints:       req.PainPoints,
		ValueProps:       req.ValueProps,
		CRMList:          req.CRMList,
		Assets:           req.Assets,
	}
	if err := sess.UpdateGroup(r.PathValue("groupID"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteGroup handles DELETE /api/v1/sessions/{sessionID}/groups/{groupID}.
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.DeleteGroup(r.PathValue("groupID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GroupPersonaRequest is the body for POST .../groups/{groupID}/personas.
type GroupPersonaRequest struct {
	PersonaID string `json:"personaId"`
}

// AddGroupPersona handles POST /api/v1/sessions/{sessionID}/groups/{groupID}/personas.
func (h *Handler) AddGroupPersona(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req GroupPersonaRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.AddPersonaToGroup(r.PathValue("groupID"), req.PersonaID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveGroupPersona handles DELETE /api/v1/sessions/{sessionID}/groups/{groupID}/personas/{personaID}.
func (h *Handler) RemoveGroupPersona(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.RemovePersonaFromGroup(r.PathValue("groupID"), r.PathValue("personaID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PriorityRequest is the body for PUT .../priorities/{groupID}.
type PriorityRequest struct {
	Level domain.PriorityLevel `json:"level"`
}

// GetPriorities handles GET /api/v1/sessions/{sessionID}/priorities.
func (h *Handler) GetPriorities(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.PriorityBoard())
}

// AssignPriority handles PUT /api/v1/sessions/{sessionID}/priorities/{groupID}.
func (h *Handler) AssignPriority(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req PriorityRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.AssignPriority(r.PathValue("groupID"), req.Level); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.PriorityBoard())
}

// UnassignPriority handles DELETE /api/v1/sessions/{sessionID}/priorities/{groupID}.
func (h *Handler) UnassignPriority(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.UnassignPriority(r.PathValue("groupID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.PriorityBoard())
}

// SurveyResponse wraps the survey with its touched flag.
type SurveyResponse struct {
	Survey  domain.StrategicWorkflowSurvey `json:"survey"`
	Touched bool                           `json:"touched"`
}

// GetSurvey handles GET /api/v1/sessions/{sessionID}/survey.
func (h *Handler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sv, touched := sess.GetSurvey()
	writeJSON(w, http.StatusOK, SurveyResponse{Survey: sv, Touched: touched})
}

// PutSurvey handles PUT /api/v1/sessions/{sessionID}/survey.
func (h *Handler) PutSurvey(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var sv domain.StrategicWorkflowSurvey
	if err := decodeBody(w, r, &sv); err != nil {
		return
	}
	if err := sess.PutSurvey(sv); err != nil {
		writeError(w, err)
		return
	}
	got, touched := sess.GetSurvey()
	writeJSON(w, http.StatusOK, SurveyResponse{Survey: got, Touched: touched})
}

// StageRequest is the body for stage create and update calls.
type StageRequest struct {
	Name                 *string   `json:"name"`
	Description          *string   `json:"description"`
	ExitCriteria         *string   `json:"exitCriteria"`
	RequiredActivities   *string   `json:"requiredActivities"`
	TrainingRequirements *string   `json:"trainingRequirements"`
	LinkedAssetIDs       *[]string `json:"linkedAssetIds"`
}

// ReorderRequest is the body for POST .../stages/{stageID}/reorder.
type ReorderRequest struct {
	Position int `json:"position"`
}

// CreateStage handles POST /api/v1/sessions/{sessionID}/stages.
func (h *Handler) CreateStage(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req StageRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	st, err := sess.CreateStage(strOr(req.Name))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

// StageDefaults handles POST /api/v1/sessions/{sessionID}/stages/defaults.
func (h *Handler) StageDefaults(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	stages, err := sess.UseDefaultStages()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stages)
}

// ListStages handles GET /api/v1/sessions/{sessionID}/stages.
func (h *Handler) ListStages(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.ListStages())
}

// UpdateStage handles PATCH /api/v1/sessions/{sessionID}/stages/{stageID}.
func (h *Handler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req StageRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	upd := store.StageUpdate{
		Name:                 req.Name,
		Description:          req.Description,
		ExitCriteria:         req.ExitCriteria,
		RequiredActivities:   req.RequiredActivities,
		TrainingRequirements: req.TrainingRequirements,
		LinkedAssetIDs:       req.LinkedAssetIDs,
	}
	if err := sess.UpdateStage(r.PathValue("stageID"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteStage handles DELETE /api/v1/sessions/{sessionID}/stages/{stageID}.
func (h *Handler) DeleteStage(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.DeleteStage(r.PathValue("stageID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderStage handles POST /api/v1/sessions/{sessionID}/stages/{stageID}/reorder.
func (h *Handler) ReorderStage(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req ReorderRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.ReorderStage(r.PathValue("stageID"), req.Position); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.ListStages())
}

// DiagnosticRequest is the body for PATCH .../diagnostics/{assessmentID}.
type DiagnosticRequest struct {
	MaturityAnswer *string `json:"maturityAnswer"`
	Impact         *int    `json:"impact"`
	Feasibility    *int    `json:"feasibility"`
}

// ListDiagnostics handles GET /api/v1/sessions/{sessionID}/diagnostics.
func (h *Handler) ListDiagnostics(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.ListDiagnostics())
}

// UpdateDiagnostic handles PATCH /api/v1/sessions/{sessionID}/diagnostics/{assessmentID}.
func (h *Handler) UpdateDiagnostic(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req DiagnosticRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	upd := store.DiagnosticUpdate{
		MaturityAnswer: req.MaturityAnswer,
		Impact:         req.Impact,
		Feasibility:    req.Feasibility,
	}
	if err := sess.UpdateDiagnostic(r.PathValue("assessmentID"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
