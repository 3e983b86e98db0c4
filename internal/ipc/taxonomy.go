package ipc

import (
	"net/http"

	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

// Read-only catalog endpoints. These serve the built-in reference
// data a client needs to render pickers; they are not session scoped.

// GetLevels handles GET /api/v1/taxonomy/levels.
func (h *Handler) GetLevels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, taxonomy.SeniorityLevels())
}

// GetDepartments handles GET /api/v1/taxonomy/departments.
func (h *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, taxonomy.Departments())
}

// GetDiagnosticFramework handles GET /api/v1/taxonomy/diagnostics.
func (h *Handler) GetDiagnosticFramework(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, taxonomy.DiagnosticFramework())
}

// GetAssets handles GET /api/v1/taxonomy/assets.
func (h *Handler) GetAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, taxonomy.AssetLibrary())
}

// GetOptions handles GET /api/v1/taxonomy/options. One payload with
// every picklist the survey and segment forms use.
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"industries":               taxonomy.DefaultIndustries(),
		"employeeCounts":           taxonomy.EmployeeCountBands(),
		"revenueBands":             taxonomy.RevenueBands(),
		"languages":                taxonomy.TopLanguages(),
		"salesEngagement":          taxonomy.SalesEngagementPlatforms(),
		"outreachErrorLogs":        taxonomy.OutreachErrorLogOptions(),
		"conversationIntelligence": taxonomy.ConversationIntelligenceTools(),
		"marketingAutomation":      taxonomy.MarketingAutomationPlatforms(),
		"websiteConversionTools":   taxonomy.WebsiteConversionTools(),
		"dataSources":              taxonomy.DataSources(),
		"aiIntegrations":           taxonomy.AIIntegrations(),
		"automationTools":          taxonomy.AutomationTools(),
	})
}
