package ipc

import (
	"net/http"

	"github.com/gtm-studio/icp-engine/internal/store"
)

// Entity endpoints. Mutations are rejected with 422 when the owning
// wizard step is not active; see workflow.Session.

// BucketRequest is the body for bucket create and update calls.
type BucketRequest struct {
	Name           *string `json:"name"`
	SecondaryLabel *string `json:"secondaryLabel"`
}

// MoveLevelRequest is the body for POST .../seniority-levels/move.
type MoveLevelRequest struct {
	LevelID  string `json:"levelId"`
	BucketID string `json:"bucketId"`
}

// CreateSeniorityBucket handles POST /api/v1/sessions/{sessionID}/seniority-buckets.
func (h *Handler) CreateSeniorityBucket(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req BucketRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	b, err := sess.CreateSeniorityBucket(strOr(req.Name), strOr(req.SecondaryLabel))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// SeniorityDefaults handles POST /api/v1/sessions/{sessionID}/seniority-buckets/defaults.
func (h *Handler) SeniorityDefaults(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	buckets, err := sess.SeniorityFromDefaults()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buckets)
}

// ListSeniorityBuckets handles GET /api/v1/sessions/{sessionID}/seniority-buckets.
func (h *Handler) ListSeniorityBuckets(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.ListSeniorityBuckets())
}

// UpdateSeniorityBucket handles PATCH /api/v1/sessions/{sessionID}/seniority-buckets/{bucketID}.
func (h *Handler) UpdateSeniorityBucket(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req BucketRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	upd := store.SeniorityUpdate{Name: req.Name, SecondaryLabel: req.SecondaryLabel}
	if err := sess.UpdateSeniorityBucket(r.PathValue("bucketID"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSeniorityBucket handles DELETE /api/v1/sessions/{sessionID}/seniority-buckets/{bucketID}.
func (h *Handler) DeleteSeniorityBucket(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.DeleteSeniorityBucket(r.PathValue("bucketID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveLevel handles POST /api/v1/sessions/{sessionID}/seniority-levels/move.
func (h *Handler) MoveLevel(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req MoveLevelRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.MoveLevel(req.LevelID, req.BucketID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveLevel handles POST /api/v1/sessions/{sessionID}/seniority-levels/remove.
func (h *Handler) RemoveLevel(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req MoveLevelRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.RemoveLevel(req.LevelID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveFunctionRequest is the body for POST .../functions/move.
type MoveFunctionRequest struct {
	FunctionKey string `json:"functionKey"`
	BucketID    string `json:"bucketId"`
}

// AssignDepartmentRequest is the body for POST .../functions/assign-department.
type AssignDepartmentRequest struct {
	Department string `json:"department"`
	BucketID   string `json:"bucketId"`
}

// CreateFunctionBucket handles POST /api/v1/sessions/{sessionID}/function-buckets.
func (h *Handler) CreateFunctionBucket(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req BucketRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	b, err := sess.CreateDepartmentBucket(strOr(req.Name), strOr(req.SecondaryLabel))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// ListFunctionBuckets handles GET /api/v1/sessions/{sessionID}/function-buckets.
func (h *Handler) ListFunctionBuckets(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.ListDepartmentBuckets())
}

// UpdateFunctionBucket handles PATCH /api/v1/sessions/{sessionID}/function-buckets/{bucketID}.
func (h *Handler) UpdateFunctionBucket(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req BucketRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	upd := store.DepartmentUpdate{Name: req.Name, SecondaryLabel: req.SecondaryLabel}
	if err := sess.UpdateDepartmentBucket(r.PathValue("bucketID"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteFunctionBucket handles DELETE /api/v1/sessions/{sessionID}/function-buckets/{bucketID}.
func (h *Handler) DeleteFunctionBucket(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.DeleteDepartmentBucket(r.PathValue("bucketID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoveFunction handles POST /api/v1/sessions/{sessionID}/functions/move.
func (h *Handler) MoveFunction(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req MoveFunctionRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.MoveFunction(req.FunctionKey, req.BucketID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFunction handles POST /api/v1/sessions/{sessionID}/functions/remove.
func (h *Handler) RemoveFunction(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req MoveFunctionRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	if err := sess.RemoveFunction(req.FunctionKey); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignDepartment handles POST /api/v1/sessions/{sessionID}/functions/assign-department.
func (h *Handler) AssignDepartment(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req AssignDepartmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	added, err := sess.AssignDepartment(req.Department, req.BucketID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": added})
}

// PersonaRequest is the body for persona create and update calls.
type PersonaRequest struct {
	Name               *string `json:"name"`
	SeniorityBucketID  *string `json:"seniorityBucketId"`
	DepartmentBucketID *string `json:"departmentBucketId"`
}

// GeneratePersonasRequest is the body for POST .../personas/generate.
type GeneratePersonasRequest struct {
	SeniorityBucketIDs  []string `json:"seniorityBucketIds"`
	DepartmentBucketIDs []string `json:"departmentBucketIds"`
}

// CreatePersona handles POST /api/v1/sessions/{sessionID}/personas.
func (h *Handler) CreatePersona(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req PersonaRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	p, err := sess.CreatePersona(strOr(req.Name), strOr(req.SeniorityBucketID), strOr(req.DepartmentBucketID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GeneratePersonas handles POST /api/v1/sessions/{sessionID}/personas/generate.
func (h *Handler) GeneratePersonas(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req GeneratePersonasRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	created, err := sess.GeneratePersonas(req.SeniorityBucketIDs, req.DepartmentBucketIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// ListPersonas handles GET /api/v1/sessions/{sessionID}/personas.
// With ?resolve=1 the bucket references are resolved to names.
func (h *Handler) ListPersonas(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if r.URL.Query().Get("resolve") != "" {
		writeJSON(w, http.StatusOK, sess.PersonaViews())
		return
	}
	writeJSON(w, http.StatusOK, sess.ListPersonas())
}

// UpdatePersona handles PATCH /api/v1/sessions/{sessionID}/personas/{personaID}.
func (h *Handler) UpdatePersona(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req PersonaRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	upd := store.PersonaUpdate{
		Name:               req.Name,
		SeniorityBucketID:  req.SeniorityBucketID,
		DepartmentBucketID: req.DepartmentBucketID,
	}
	if err := sess.UpdatePersona(r.PathValue("personaID"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeletePersona handles DELETE /api/v1/sessions/{sessionID}/personas/{personaID}.
func (h *Handler) DeletePersona(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.DeletePersona(r.PathValue("personaID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SegmentRequest is the body for segment create and update calls.
type SegmentRequest struct {
	Name           *string   `json:"name"`
	Industries     *[]string `json:"industries"`
	EmployeeCounts *[]string `json:"employeeCounts"`
	RevenueBands   *[]string `json:"revenueBands"`
}

// CreateSegment handles POST /api/v1/sessions/{sessionID}/segments.
func (h *Handler) CreateSegment(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req SegmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	seg, err := sess.CreateSegment(strOr(req.Name))
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Industries != nil || req.EmployeeCounts != nil || req.RevenueBands != nil {
		upd := store.SegmentUpdate{
			Industries:     req.Industries,
			EmployeeCounts: req.EmployeeCounts,
			RevenueBands:   req.RevenueBands,
		}
		if err := sess.UpdateSegment(seg.ID, upd); err != nil {
			writeError(w, err)
			return
		}
		if fresh, ok := sess.GetSegment(seg.ID); ok {
			seg = fresh
		}
	}
	writeJSON(w, http.StatusCreated, seg)
}

// ListSegments handles GET /api/v1/sessions/{sessionID}/segments.
func (h *Handler) ListSegments(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.ListSegments())
}

// UpdateSegment handles PATCH /api/v1/sessions/{sessionID}/segments/{segmentID}.
func (h *Handler) UpdateSegment(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req SegmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		return
	}
	upd := store.SegmentUpdate{
		Name:           req.Name,
		Industries:     req.Industries,
		EmployeeCounts: req.EmployeeCounts,
		RevenueBands:   req.RevenueBands,
	}
	if err := sess.UpdateSegment(r.PathValue("segmentID"), upd); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteSegment handles DELETE /api/v1/sessions/{sessionID}/segments/{segmentID}.
func (h *Handler) DeleteSegment(w http.ResponseWriter, r *http.Request) {
	sess, err := h.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := sess.DeleteSegment(r.PathValue("segmentID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func strOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
