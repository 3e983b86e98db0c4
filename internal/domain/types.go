// Package domain defines the core types for the ICP wizard engine.
package domain

// Step identifies a screen in the wizard flow.
type Step string

const (
	StepChoice            Step = "choice"
	StepSeniority         Step = "seniority"
	StepDepartment        Step = "department"
	StepPersona           Step = "persona"
	StepAccount           Step = "account"
	StepICP               Step = "icp"
	StepPrioritization    Step = "prioritization"
	StepStrategicWorkflow Step = "strategicWorkflow"
	StepSalesProcess      Step = "salesProcess"
	StepDiagnostic        Step = "diagnostic"
	StepHolisticSummary   Step = "holisticSummary"
)

// NamingConvention controls how generated personas are named.
type NamingConvention string

const (
	NamingAuto   NamingConvention = "auto"
	NamingCustom NamingConvention = "custom"
)

// TriState is a three-valued answer. Surveys must distinguish an
// explicit "no" from a question that was never answered.
type TriState string

const (
	Unanswered TriState = "unanswered"
	Yes        TriState = "yes"
	No         TriState = "no"
)

// GateDecision is the result of evaluating step exit conditions.
type GateDecision struct {
	Allow    bool     `json:"allow"`
	Blockers []string `json:"blockers,omitempty"`
}

// SeniorityBucket groups org-chart seniority levels under one label.
// A level tag belongs to at most one bucket at any time.
type SeniorityBucket struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	SecondaryLabel string   `json:"secondaryLabel"`
	Color          string   `json:"color"`
	Levels         []string `json:"levels"`
}

// FunctionRef is a job function pulled from the department taxonomy.
type FunctionRef struct {
	Key              string `json:"key"`
	Name             string `json:"name"`
	SourceDepartment string `json:"sourceDepartment"`
}

// DepartmentBucket groups job functions under one label.
// A function key belongs to at most one bucket at any time.
type DepartmentBucket struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	SecondaryLabel string        `json:"secondaryLabel"`
	Color          string        `json:"color"`
	Functions      []FunctionRef `json:"functions"`
}

// PersonaBucket is a (seniority, department) pairing. Generated
// personas carry a canonical ID derived from the pair so that
// regeneration is idempotent.
type PersonaBucket struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	SeniorityBucketID  string `json:"seniorityBucketId"`
	DepartmentBucketID string `json:"departmentBucketId"`
}

// AccountSegment describes a slice of the target market. The
// criteria lists are open string sets: defaults are suggestions,
// arbitrary values are accepted.
type AccountSegment struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Industries     []string `json:"industries"`
	EmployeeCounts []string `json:"employeeCounts"`
	RevenueBands   []string `json:"revenueBands"`
}

// ICPSegmentGroup ties personas and an account segment together with
// messaging context. AccountSegmentID and PersonaIDs are soft
// references: deleting the target does not clear them.
type ICPSegmentGroup struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Color            string   `json:"color"`
	AccountSegmentID string   `json:"accountSegmentId"`
	PersonaIDs       []string `json:"personaIds"`
	StrategicContext string   `json:"strategicContext"`
	PainPoints       string   `json:"painPoints"`
	ValueProps       string   `json:"valueProps"`
	CRMList          string   `json:"crmList"`
	Assets           string   `json:"assets"`
}

// PriorityLevel is one of the three ranking tiers.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// PriorityBoard partitions ICP group IDs across the three tiers.
// A group appears in at most one tier; absence means unassigned.
type PriorityBoard struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

// DiagnosticAssessment is one focus area of the maturity diagnostic.
// The population is fixed at session creation: assessments are
// updated in place, never created or deleted. Maturity is nil until
// the user picks an answer.
type DiagnosticAssessment struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	FocusArea     string   `json:"focusArea"`
	Question      string   `json:"question"`
	Maturity      *float64 `json:"maturity"`
	MaturityLabel string   `json:"maturityLabel"`
	Impact        int      `json:"impact"`
	Feasibility   int      `json:"feasibility"`
}

// LinkedAsset is a sales enablement asset that can be attached to a
// sales stage.
type LinkedAsset struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SalesStage is one step of the structured sales process, ordered by
// Position.
type SalesStage struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Position             int      `json:"position"`
	Description          string   `json:"description"`
	ExitCriteria         string   `json:"exitCriteria"`
	RequiredActivities   string   `json:"requiredActivities"`
	TrainingRequirements string   `json:"trainingRequirements"`
	LinkedAssetIDs       []string `json:"linkedAssetIds"`
}

// InboundAnswers covers the inbound lead handling section of the
// survey.
type InboundAnswers struct {
	ContactsLeads           TriState `json:"contactsLeads"`
	ReliancePercentage      int      `json:"reliancePercentage"`
	AEsAndSDRsGetLeads      TriState `json:"aesAndSdrsGetLeads"`
	HasHighPriorityLeads    TriState `json:"hasHighPriorityLeads"`
	AEsGetHighPriorityLeads TriState `json:"aesGetHighPriorityLeads"`
	HasSpecialCampaigns     TriState `json:"hasSpecialCampaigns"`
}

// EventAnswers covers the events section of the survey.
type EventAnswers struct {
	UsesEvents             TriState `json:"usesEvents"`
	TeamsInviteAndFollowUp TriState `json:"teamsInviteAndFollowUp"`
}

// TacticAnswers covers outbound tactics.
type TacticAnswers struct {
	UsesPhoneCalls             TriState `json:"usesPhoneCalls"`
	ColdCallingImportance      int      `json:"coldCallingImportance"`
	HasAutomatedEmailSequences TriState `json:"hasAutomatedEmailSequences"`
}

// TeamAnswers covers team composition.
type TeamAnswers struct {
	AECount              int      `json:"aeCount"`
	SDRCount             int      `json:"sdrCount"`
	CSMCount             int      `json:"csmCount"`
	HasInternationalReps TriState `json:"hasInternationalReps"`
	ProspectingLanguages []string `json:"prospectingLanguages"`
	OtherLanguages       string   `json:"otherLanguages"`
	SupportRoleCount     int      `json:"supportRoleCount"`
}

// SequenceAnswers covers which outreach sequence types are in use.
type SequenceAnswers struct {
	FollowUp      TriState `json:"followUp"`
	EventInvite   TriState `json:"eventInvite"`
	EventFollowUp TriState `json:"eventFollowUp"`
	ReEngage      TriState `json:"reEngage"`
	Nurture       TriState `json:"nurture"`
	Expansion     TriState `json:"expansion"`
	Renewal       TriState `json:"renewal"`
}

// SystemAnswers covers the tooling landscape. The *Other fields hold
// free text when "Other" is selected.
type SystemAnswers struct {
	SalesEngagementPlatform       string   `json:"salesEngagementPlatform"`
	SalesEngagementPlatformOther  string   `json:"salesEngagementPlatformOther"`
	OutreachErrorLogs             string   `json:"outreachErrorLogs"`
	ConversationIntelligence      string   `json:"conversationIntelligence"`
	ConversationIntelligenceOther string   `json:"conversationIntelligenceOther"`
	MarketingAutomation           string   `json:"marketingAutomation"`
	MarketingAutomationOther      string   `json:"marketingAutomationOther"`
	WebsiteConversionTools        []string `json:"websiteConversionTools"`
	WebsiteConversionToolsOther   string   `json:"websiteConversionToolsOther"`
	DataSources                   []string `json:"dataSources"`
	DataSourcesOther              string   `json:"dataSourcesOther"`
	AIIntegrations                []string `json:"aiIntegrations"`
	AIIntegrationsOther           string   `json:"aiIntegrationsOther"`
	AIUseCases                    string   `json:"aiUseCases"`
	AutomationTools               []string `json:"automationTools"`
	AutomationToolsOther          string   `json:"automationToolsOther"`
}

// StrategicWorkflowSurvey is the singleton survey record for a
// session.
type StrategicWorkflowSurvey struct {
	Inbound   InboundAnswers  `json:"inbound"`
	Events    EventAnswers    `json:"events"`
	Tactics   TacticAnswers   `json:"tactics"`
	Team      TeamAnswers     `json:"team"`
	Sequences SequenceAnswers `json:"sequences"`
	Systems   SystemAnswers   `json:"systems"`
}

// Snapshot is a point-in-time copy of every collection in a session,
// consumed by the report generator.
type Snapshot struct {
	SeniorityBuckets  []SeniorityBucket       `json:"seniorityBuckets"`
	DepartmentBuckets []DepartmentBucket      `json:"departmentBuckets"`
	Personas          []PersonaBucket         `json:"personas"`
	AccountSegments   []AccountSegment        `json:"accountSegments"`
	Groups            []ICPSegmentGroup       `json:"groups"`
	Priorities        PriorityBoard           `json:"priorities"`
	Diagnostics       []DiagnosticAssessment  `json:"diagnostics"`
	Stages            []SalesStage            `json:"stages"`
	Assets            []LinkedAsset           `json:"assets"`
	Survey            StrategicWorkflowSurvey `json:"survey"`
	SurveyTouched     bool                    `json:"surveyTouched"`
}
