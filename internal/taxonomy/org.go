// Package taxonomy holds the fixed reference data consumed by the
// wizard: seniority levels, the department/function catalog, the
// diagnostic framework, and the option lists used by segments,
// stages, and the survey. Everything here is static and read-only.
package taxonomy

// Level is one rung of the seniority ladder.
type Level struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var seniorityLevels = []Level{
	{ID: "c-level", Name: "C-Level"},
	{ID: "vp", Name: "VP"},
	{ID: "director", Name: "Director"},
	{ID: "manager", Name: "Manager"},
	{ID: "individual", Name: "Individual Contributor"},
}

// SeniorityLevels returns the five seniority levels in ladder order.
func SeniorityLevels() []Level {
	out := make([]Level, len(seniorityLevels))
	copy(out, seniorityLevels)
	return out
}

// LevelName returns the display name for a level tag, or "" if the
// tag is unknown.
func LevelName(id string) string {
	for _, l := range seniorityLevels {
		if l.ID == id {
			return l.Name
		}
	}
	return ""
}

// IsLevel reports whether id is a known seniority level tag.
func IsLevel(id string) bool {
	return LevelName(id) != ""
}

// Function is one job function within a department.
type Function struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Department is a named group of functions in the org catalog.
type Department struct {
	Name      string     `json:"name"`
	Functions []Function `json:"functions"`
}

var departments = []Department{
	{Name: "Executive & Leadership", Functions: []Function{
		{Key: "c_suite", Name: "C-Suite / Founders"},
		{Key: "corp_strategy", Name: "Corporate Strategy & Development"},
	}},
	{Name: "Go-to-Market (GTM)", Functions: []Function{
		{Key: "sales_dev", Name: "Sales / Business Development"},
		{Key: "account_management", Name: "Account Management & Expansion"},
		{Key: "channel_partnerships", Name: "Channel & Partnerships"},
		{Key: "pre_sales", Name: "Pre-Sales & Sales Engineering"},
		{Key: "sales_ops", Name: "Sales Operations & Revenue Operations (RevOps)"},
		{Key: "sales_enablement", Name: "Sales Enablement"},
		{Key: "marketing_leadership", Name: "Marketing Leadership (CMO/VP)"},
		{Key: "product_marketing", Name: "Product Marketing"},
		{Key: "digital_marketing", Name: "Digital Marketing"},
		{Key: "content_comms", Name: "Content & Communications"},
		{Key: "campaigns_abm", Name: "Campaigns & ABM"},
		{Key: "field_events", Name: "Field Marketing & Events"},
		{Key: "creative_services", Name: "Creative Services"},
		{Key: "customer_success", Name: "Customer Success Management"},
		{Key: "customer_support", Name: "Customer Support & Service Desk"},
		{Key: "cx", Name: "Customer Experience (CX)"},
		{Key: "field_service", Name: "Field Service & Technical Support"},
	}},
	{Name: "Technology", Functions: []Function{
		{Key: "software_engineering", Name: "Software Engineering"},
		{Key: "devops_sre", Name: "DevOps / Site Reliability Engineering (SRE)"},
		{Key: "qa", Name: "Quality Assurance (QA)"},
		{Key: "solutions_architecture", Name: "Solutions Architecture"},
		{Key: "it_sysadmin", Name: "IT & Systems Administration"},
		{Key: "infra_netops", Name: "Infrastructure & Network Operations"},
		{Key: "enterprise_apps", Name: "Enterprise Applications / Business Systems"},
		{Key: "itsm", Name: "IT Service Management (ITSM)"},
	}},
	{Name: "Product", Functions: []Function{
		{Key: "product_management", Name: "Product Management"},
		{Key: "ux_ui", Name: "UX/UI Design & Research"},
	}},
	{Name: "Data & Analytics", Functions: []Function{
		{Key: "data_engineering", Name: "Data Engineering & Infrastructure"},
		{Key: "data_science", Name: "Data Science & AI/Machine Learning"},
		{Key: "bi_analytics", Name: "BI & Data Analytics"},
		{Key: "data_governance", Name: "Data Governance & Stewardship"},
		{Key: "mdm", Name: "Master Data Management (MDM)"},
	}},
	{Name: "Finance & Administration", Functions: []Function{
		{Key: "finance_accounting", Name: "Finance & Accounting"},
		{Key: "treasury", Name: "Treasury"},
		{Key: "investor_relations", Name: "Investor Relations (IR)"},
		{Key: "internal_audit", Name: "Internal Audit"},
		{Key: "admin_services", Name: "Administrative Services"},
	}},
	{Name: "People & Talent", Functions: []Function{
		{Key: "hr_people_ops", Name: "Human Resources (HR) & People Operations"},
		{Key: "hrbp", Name: "HR Business Partner (HRBP)"},
		{Key: "employee_relations", Name: "Employee Relations"},
		{Key: "talent_acquisition", Name: "Talent Acquisition & Recruiting"},
		{Key: "learning_dev", Name: "Learning & Development (L&D)"},
		{Key: "comp_ben", Name: "Compensation & Benefits"},
		{Key: "hris_analytics", Name: "HRIS / People Analytics"},
	}},
	{Name: "Legal, Risk & Compliance", Functions: []Function{
		{Key: "legal_counsel", Name: "Legal & Counsel"},
		{Key: "contracts", Name: "Contracts Management"},
		{Key: "ip_law", Name: "Intellectual Property (IP) Law"},
		{Key: "grc", Name: "Governance, Risk & Compliance (GRC)"},
	}},
	{Name: "Security", Functions: []Function{
		{Key: "security_leadership", Name: "Security Leadership (CISO)"},
		{Key: "cybersecurity_infosec", Name: "Cybersecurity & InfoSec"},
		{Key: "secops", Name: "Security Operations (SecOps / SOC)"},
	}},
	{Name: "Operations, Supply Chain & Manufacturing", Functions: []Function{
		{Key: "bizops", Name: "Business Operations"},
		{Key: "pmo_transformation", Name: "Project Management Office (PMO) & Digital Transformation"},
		{Key: "supply_chain", Name: "Supply Chain & Logistics"},
		{Key: "manufacturing", Name: "Manufacturing & Production"},
		{Key: "qc", Name: "Quality Control (QC)"},
		{Key: "facilities", Name: "Facilities & Maintenance"},
	}},
	{Name: "Research & Development (R&D)", Functions: []Function{
		{Key: "scientific_research", Name: "Scientific Research"},
		{Key: "hardware_dev", Name: "Hardware & Physical Product Development"},
	}},
	{Name: "Public Affairs & Non-Profit", Functions: []Function{
		{Key: "public_affairs", Name: "Policy & Public Affairs"},
		{Key: "nonprofit_program", Name: "Program Management (Non-Profit)"},
		{Key: "fundraising", Name: "Fundraising & Development"},
	}},
	{Name: "Media & Creative Production", Functions: []Function{
		{Key: "creative_direction", Name: "Creative Direction"},
		{Key: "production", Name: "Production (Video, Audio, Events)"},
	}},
}

// Departments returns the full department/function catalog.
func Departments() []Department {
	out := make([]Department, len(departments))
	copy(out, departments)
	return out
}

// FindDepartment returns the department with the given name.
func FindDepartment(name string) (Department, bool) {
	for _, d := range departments {
		if d.Name == name {
			return d, true
		}
	}
	return Department{}, false
}

// FindFunction locates a function key in the catalog and returns the
// function plus the name of the department it belongs to.
func FindFunction(key string) (Function, string, bool) {
	for _, d := range departments {
		for _, f := range d.Functions {
			if f.Key == key {
				return f, d.Name, true
			}
		}
	}
	return Function{}, "", false
}

// Bucket color palettes, cycled by creation index.

var seniorityBucketColors = []string{
	"#8B5CF6", "#3B82F6", "#10B981", "#F59E0B", "#6B7280", "#EC4899", "#6366F1",
}

var departmentBucketColors = []string{
	"#3B82F6", "#10B981", "#8B5CF6", "#F59E0B", "#EC4899", "#6366F1", "#EAB308", "#EF4444",
}

// SeniorityBucketColor returns the palette color for the i-th
// seniority bucket.
func SeniorityBucketColor(i int) string {
	return seniorityBucketColors[i%len(seniorityBucketColors)]
}

// DepartmentBucketColor returns the palette color for the i-th
// department bucket.
func DepartmentBucketColor(i int) string {
	return departmentBucketColors[i%len(departmentBucketColors)]
}
