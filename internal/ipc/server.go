package ipc

import (
	"context"
	"net/http"
)

// Server wraps an HTTP server with engine-specific routing.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server that binds to the given address.
func NewServer(h *Handler, listenAddr string) *Server {
	srv := &http.Server{
		Addr:    listenAddr,
		Handler: corsMiddleware(NewMux(h)),
	}

	return &Server{
		httpServer: srv,
	}
}

// NewMux builds the route table. Exposed separately so tests can
// exercise routing without binding a socket.
func NewMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Health endpoint.
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Session lifecycle.
	mux.HandleFunc("POST /api/v1/sessions", h.CreateSession)
	mux.HandleFunc("GET /api/v1/sessions", h.ListSessions)
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}", h.GetSession)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}", h.DeleteSession)

	// Navigation.
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/advance", h.Advance)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/back", h.Back)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/edit", h.RequestEdit)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/edit/return", h.EndEdit)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/complete", h.Complete)
	mux.HandleFunc("PUT /api/v1/sessions/{sessionID}/naming", h.SetNaming)

	// Seniority buckets and level tags.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/seniority-buckets", h.ListSeniorityBuckets)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/seniority-buckets", h.CreateSeniorityBucket)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/seniority-buckets/defaults", h.SeniorityDefaults)
	mux.HandleFunc("PATCH /api/v1/sessions/{sessionID}/seniority-buckets/{bucketID}", h.UpdateSeniorityBucket)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/seniority-buckets/{bucketID}", h.DeleteSeniorityBucket)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/seniority-levels/move", h.MoveLevel)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/seniority-levels/remove", h.RemoveLevel)

	// Function buckets and function keys.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/function-buckets", h.ListFunctionBuckets)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/function-buckets", h.CreateFunctionBucket)
	mux.HandleFunc("PATCH /api/v1/sessions/{sessionID}/function-buckets/{bucketID}", h.UpdateFunctionBucket)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/function-buckets/{bucketID}", h.DeleteFunctionBucket)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/functions/move", h.MoveFunction)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/functions/remove", h.RemoveFunction)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/functions/assign-department", h.AssignDepartment)

	// Personas.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/personas", h.ListPersonas)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/personas", h.CreatePersona)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/personas/generate", h.GeneratePersonas)
	mux.HandleFunc("PATCH /api/v1/sessions/{sessionID}/personas/{personaID}", h.UpdatePersona)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/personas/{personaID}", h.DeletePersona)

	// Account segments.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/segments", h.ListSegments)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/segments", h.CreateSegment)
	mux.HandleFunc("PATCH /api/v1/sessions/{sessionID}/segments/{segmentID}", h.UpdateSegment)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/segments/{segmentID}", h.DeleteSegment)

	// ICP segment groups.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/groups", h.ListGroups)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/groups", h.CreateGroup)
	mux.HandleFunc("PATCH /api/v1/sessions/{sessionID}/groups/{groupID}", h.UpdateGroup)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/groups/{groupID}", h.DeleteGroup)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/groups/{groupID}/personas", h.AddGroupPersona)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/groups/{groupID}/personas/{personaID}", h.RemoveGroupPersona)

	// Priority board.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/priorities", h.GetPriorities)
	mux.HandleFunc("PUT /api/v1/sessions/{sessionID}/priorities/{groupID}", h.AssignPriority)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/priorities/{groupID}", h.UnassignPriority)

	// Strategic workflow survey.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/survey", h.GetSurvey)
	mux.HandleFunc("PUT /api/v1/sessions/{sessionID}/survey", h.PutSurvey)

	// Sales process stages.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/stages", h.ListStages)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/stages", h.CreateStage)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/stages/defaults", h.StageDefaults)
	mux.HandleFunc("PATCH /api/v1/sessions/{sessionID}/stages/{stageID}", h.UpdateStage)
	mux.HandleFunc("DELETE /api/v1/sessions/{sessionID}/stages/{stageID}", h.DeleteStage)
	mux.HandleFunc("POST /api/v1/sessions/{sessionID}/stages/{stageID}/reorder", h.ReorderStage)

	// Diagnostic assessment.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/diagnostics", h.ListDiagnostics)
	mux.HandleFunc("PATCH /api/v1/sessions/{sessionID}/diagnostics/{assessmentID}", h.UpdateDiagnostic)

	// Snapshot and report.
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/snapshot", h.GetSnapshot)
	mux.HandleFunc("GET /api/v1/sessions/{sessionID}/report", h.GetReport)

	// Built-in catalogs.
	mux.HandleFunc("GET /api/v1/taxonomy/levels", h.GetLevels)
	mux.HandleFunc("GET /api/v1/taxonomy/departments", h.GetDepartments)
	mux.HandleFunc("GET /api/v1/taxonomy/diagnostics", h.GetDiagnosticFramework)
	mux.HandleFunc("GET /api/v1/taxonomy/assets", h.GetAssets)
	mux.HandleFunc("GET /api/v1/taxonomy/options", h.GetOptions)

	return mux
}

// Start begins listening for HTTP connections. Blocks until the server stops.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// corsMiddleware adds CORS headers for local desktop app access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
