package taxonomy

// Account segmentation suggestion lists. These are defaults, not
// constraints: segments accept arbitrary values alongside them.

// DefaultIndustries returns the suggested industry list.
func DefaultIndustries() []string {
	return []string{"Technology", "Healthcare", "Finance", "Manufacturing", "Retail", "Education", "Real Estate", "Professional Services"}
}

// EmployeeCountBands returns the suggested employee count bands.
func EmployeeCountBands() []string {
	return []string{"1-10", "11-50", "51-200", "201-1,000", "1,001-5,000", "5,001+"}
}

// RevenueBands returns the suggested annual revenue bands.
func RevenueBands() []string {
	return []string{"<$1M", "$1M-$10M", "$10M-$50M", "$50M-$250M", "$250M+"}
}

var groupColors = []string{"#3B82F6", "#10B981", "#8B5CF6", "#F59E0B", "#EF4444", "#6366F1", "#14B8A6"}

// GroupColor returns the palette color for the i-th ICP segment
// group.
func GroupColor(i int) string {
	return groupColors[i%len(groupColors)]
}

// DefaultStage is a seed entry for the buyer journey.
type DefaultStage struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultSalesStages returns the standard five buyer journey stages.
func DefaultSalesStages() []DefaultStage {
	return []DefaultStage{
		{Name: "Problem Awareness", Description: "Buyer realizes they have a problem and begins researching its impact."},
		{Name: "Solution Research", Description: "Buyer defines their problem and researches potential solution categories."},
		{Name: "Vendor Evaluation", Description: "Buyer actively compares different solutions and vendors."},
		{Name: "Decision Making", Description: "Buyer has a preferred vendor and is building a business case for internal approval."},
		{Name: "Contract Negotiation", Description: "Buyer is working through final approvals and negotiations."},
	}
}

// AssetEntry is one item of the enablement asset library.
type AssetEntry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AssetLibrary returns the enablement assets that can be linked to
// sales stages.
func AssetLibrary() []AssetEntry {
	return []AssetEntry{
		{ID: "asset-strategy-1", Name: "Competitive Analysis", Category: "Strategy Assets"},
		{ID: "asset-strategy-2", Name: "Market Research Report", Category: "Strategy Assets"},
		{ID: "asset-strategy-3", Name: "Ideal Customer Profile", Category: "Strategy Assets"},
		{ID: "asset-sales-1", Name: "Discovery Call Script", Category: "Sales Assets"},
		{ID: "asset-sales-2", Name: "Product Demo Deck", Category: "Sales Assets"},
		{ID: "asset-sales-3", Name: "ROI Calculator", Category: "Sales Assets"},
		{ID: "asset-sales-4", Name: "Negotiation Guide", Category: "Sales Assets"},
		{ID: "asset-marketing-1", Name: "Case Study - Enterprise", Category: "Marketing Assets"},
		{ID: "asset-marketing-2", Name: "Case Study - SMB", Category: "Marketing Assets"},
		{ID: "asset-marketing-3", Name: "Whitepaper - Industry Trends", Category: "Marketing Assets"},
		{ID: "asset-marketing-4", Name: "Webinar Recording", Category: "Marketing Assets"},
		{ID: "asset-ai-1", Name: "AI-Generated Email Template", Category: "AI Assets"},
		{ID: "asset-ai-2", Name: "AI Persona Insights", Category: "AI Assets"},
		{ID: "asset-ai-3", Name: "AI-Generated Call Script", Category: "AI Assets"},
	}
}

// Survey option lists.

// TopLanguages returns the prospecting language checklist.
func TopLanguages() []string {
	return []string{"English", "Spanish", "Mandarin", "Hindi", "French", "Arabic", "Bengali", "Russian", "Portuguese", "German"}
}

// SalesEngagementPlatforms returns the sales engagement platform
// options.
func SalesEngagementPlatforms() []string {
	return []string{"Outreach", "SalesLoft", "Apollo", "Groove", "Mixmax", "None", "Other"}
}

// OutreachErrorLogOptions returns the answers to the Outreach error
// log question.
func OutreachErrorLogOptions() []string {
	return []string{"Yes", "No", "Need to check with admin"}
}

// ConversationIntelligenceTools returns the conversation
// intelligence options.
func ConversationIntelligenceTools() []string {
	return []string{"Gong", "Chorus", "Dialpad", "None", "Other"}
}

// MarketingAutomationPlatforms returns the marketing automation
// options.
func MarketingAutomationPlatforms() []string {
	return []string{"Marketo", "HubSpot", "Pardot", "Eloqua", "None", "Other"}
}

// WebsiteConversionTools returns the website conversion tool options.
func WebsiteConversionTools() []string {
	return []string{"Drift", "Intercom", "ZoomInfo FormComplete", "Qualified", "None", "Other"}
}

// DataSources returns the data source options.
func DataSources() []string {
	return []string{"ZoomInfo", "DiscoverOrg", "LinkedIn Sales Navigator", "Clearbit", "Internal database", "Other"}
}

// AIIntegrations returns the AI tooling options.
func AIIntegrations() []string {
	return []string{"ChatGPT/GPT tools", "Claude/Anthropic", "Custom AI solutions", "None", "Other"}
}

// AutomationTools returns the workflow automation options.
func AutomationTools() []string {
	return []string{"Zapier", "Workato", "Custom integrations", "None", "Other"}
}
