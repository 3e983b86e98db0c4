package taxonomy

// MaturityOption is one picklist answer with its mapped score.
type MaturityOption struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// FocusArea is one assessed dimension of GTM health.
type FocusArea struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Question string           `json:"question"`
	Picklist []MaturityOption `json:"picklist"`
}

// DiagnosticCategory groups related focus areas.
type DiagnosticCategory struct {
	Name       string      `json:"name"`
	FocusAreas []FocusArea `json:"focusAreas"`
}

var diagnosticFramework = []DiagnosticCategory{
	{
		Name: "ICP & GTM Data Foundation",
		FocusAreas: []FocusArea{
			{
				ID:       "accountAssignments",
				Name:     "Account Assignments & Tiering",
				Question: "What is the current state of account and territory assignments?",
				Picklist: []MaturityOption{
					{Text: "Strategic, tiered, and balanced", Score: 9.0},
					{Text: "Assignments are balanced but not strategically tiered", Score: 6.0},
					{Text: "Significant imbalance or universally overloaded reps", Score: 3.0},
					{Text: "No formal assignment process (chaotic)", Score: 1.0},
				},
			},
			{
				ID:       "dataEnrichment",
				Name:     "Data Enrichment & Sourcing",
				Question: "How effective is the process for acquiring and enriching prospect data?",
				Picklist: []MaturityOption{
					{Text: "Automated enrichment with high accuracy (>90%)", Score: 9.0},
					{Text: "Process is manual but data is generally accurate", Score: 5.0},
					{Text: "Data accuracy is inconsistent and a known issue", Score: 3.0},
					{Text: "No reliable data source or process", Score: 1.0},
				},
			},
			{
				ID:       "dataHygiene",
				Name:     "Data Hygiene (Duplicates)",
				Question: "How is data duplication managed within the CRM?",
				Picklist: []MaturityOption{
					{Text: "Proactive management with automated tools", Score: 9.0},
					{Text: "Reactive, manual cleanup efforts", Score: 5.0},
					{Text: "High rate of known duplicates with no process", Score: 2.0},
				},
			},
		},
	},
	{
		Name: "Systems & Technology Stack",
		FocusAreas: []FocusArea{
			{
				ID:       "lifecycleProcess",
				Name:     "Lead/Contact Lifecycle Process",
				Question: "How are person records (Leads/Contacts) managed in the CRM?",
				Picklist: []MaturityOption{
					{Text: "Clear, automated lifecycle is followed", Score: 9.0},
					{Text: "Process is defined but manual/inconsistent", Score: 5.0},
					{Text: "Systematic duplicates from poor process", Score: 3.0},
					{Text: "No defined lifecycle process exists", Score: 1.0},
				},
			},
			{
				ID:       "salesEngagementSync",
				Name:     "Sales Engagement Sync",
				Question: "How reliable is the data sync between the CRM and Sales Engagement platform?",
				Picklist: []MaturityOption{
					{Text: "Reliable, real-time sync with minimal errors", Score: 9.0},
					{Text: "Occasional sync delays or minor errors", Score: 6.0},
					{Text: "Frequent errors requiring manual intervention", Score: 3.0},
					{Text: "Sync is fundamentally broken or untrusted", Score: 1.0},
				},
			},
			{
				ID:       "leadRouting",
				Name:     "Lead Routing Automation",
				Question: "How are new inbound leads assigned to the sales team?",
				Picklist: []MaturityOption{
					{Text: "Fully automated, fast (< 5 min), and accurate", Score: 9.0},
					{Text: "Semi-automated or rules-based but slow (> 1 hr)", Score: 5.0},
					{Text: "Primarily manual, slow, and inconsistent", Score: 2.0},
				},
			},
			{
				ID:       "techAdoption",
				Name:     "Tech Stack Adoption & ROI",
				Question: "How well is the existing tech stack utilized by the team?",
				Picklist: []MaturityOption{
					{Text: "High adoption with clear ROI on all major tools", Score: 9.0},
					{Text: "Adoption is inconsistent; some tools are underutilized", Score: 5.0},
					{Text: "Key tools have low adoption (< 60%)", Score: 3.0},
					{Text: "Redundant tools exist with unclear purpose", Score: 2.0},
				},
			},
		},
	},
	{
		Name: "Process & Execution",
		FocusAreas: []FocusArea{
			{
				ID:       "taskManagement",
				Name:     "Task Management",
				Question: "How effectively do reps manage their daily tasks (on-time completion, past due)?",
				Picklist: []MaturityOption{
					{Text: "Consistently managed; past-due tasks are rare", Score: 9.0},
					{Text: "Moderate number of past-due tasks (< 2 days old)", Score: 5.0},
					{Text: "High volume of skipped tasks is common", Score: 4.0},
					{Text: "Chronic issue with aging past-due tasks (> 3 days)", Score: 2.0},
				},
			},
			{
				ID:       "sequenceStrategy",
				Name:     "Sequence Strategy",
				Question: "How effective and personalized are the sales sequences?",
				Picklist: []MaturityOption{
					{Text: "Persona-based, A/B tested, multi-channel", Score: 9.0},
					{Text: "Generic, email-only, or \"one-size-fits-all\"", Score: 4.0},
					{Text: "No structured sequences; reps do their own thing", Score: 2.0},
				},
			},
			{
				ID:       "mktSdrHandoff",
				Name:     "MKT > SDR Handoff (MQL)",
				Question: "What is the quality and efficiency of the Marketing-to-SDR handoff?",
				Picklist: []MaturityOption{
					{Text: "Seamless with clear MQL definition and SLAs", Score: 9.0},
					{Text: "Definition of MQL is unclear or disputed", Score: 5.0},
					{Text: "Significant lead leakage or delays at handoff", Score: 3.0},
				},
			},
			{
				ID:       "sdrSalesHandoff",
				Name:     "SDR > Sales Handoff (SQL)",
				Question: "What is the quality and efficiency of the SDR-to-AE handoff?",
				Picklist: []MaturityOption{
					{Text: "Seamless with high AE acceptance rate (>90%)", Score: 9.0},
					{Text: "Definition of SQL is unclear or disputed", Score: 5.0},
					{Text: "High AE rejection rate of meetings (< 70%)", Score: 3.0},
				},
			},
		},
	},
	{
		Name: "Reporting & Analytics",
		FocusAreas: []FocusArea{
			{
				ID:       "meetingTracking",
				Name:     "Meeting Tracking",
				Question: "How well does the process allow for tracking \"Meetings Set\" vs. \"Meetings Held\"?",
				Picklist: []MaturityOption{
					{Text: "Automated tracking with clear dispositions", Score: 9.0},
					{Text: "Tracking is manual and relies on rep input", Score: 5.0},
					{Text: "Data is untrustworthy or non-existent", Score: 2.0},
				},
			},
			{
				ID:       "funnelAnalytics",
				Name:     "Funnel Analytics",
				Question: "How visible and reliable are the conversion rates throughout the sales funnel?",
				Picklist: []MaturityOption{
					{Text: "Clear, trusted dashboards for all stages", Score: 9.0},
					{Text: "Data exists but is fragmented across systems", Score: 6.0},
					{Text: "Key conversion metrics are unknown or untrusted", Score: 3.0},
				},
			},
			{
				ID:       "managerCoaching",
				Name:     "Manager Coaching Dashboards",
				Question: "Do managers have the reporting they need for effective, data-driven coaching?",
				Picklist: []MaturityOption{
					{Text: "Yes, dedicated dashboards for coaching exist", Score: 9.0},
					{Text: "Managers use rep-level reports, but they aren't optimized for coaching", Score: 5.0},
					{Text: "No, managers lack visibility into key coaching metrics", Score: 2.0},
				},
			},
		},
	},
	{
		Name: "Strategy & Enablement",
		FocusAreas: []FocusArea{
			{
				ID:       "salesPlaybook",
				Name:     "Sales Playbook",
				Question: "How mature and utilized is the sales playbook?",
				Picklist: []MaturityOption{
					{Text: "Living, centralized playbook is widely used", Score: 9.0},
					{Text: "Playbook exists but is outdated or ignored", Score: 4.0},
					{Text: "No formal playbook exists", Score: 1.0},
				},
			},
			{
				ID:       "onboarding",
				Name:     "Onboarding & Ongoing Training",
				Question: "How effective is the sales onboarding and ongoing enablement program?",
				Picklist: []MaturityOption{
					{Text: "Structured, effective, and continuous", Score: 9.0},
					{Text: "Strong onboarding but weak ongoing training", Score: 6.0},
					{Text: "Onboarding is informal and inconsistent", Score: 3.0},
					{Text: "No formal training program exists", Score: 1.0},
				},
			},
			{
				ID:       "compPlan",
				Name:     "Compensation Plan Alignment",
				Question: "Does the compensation plan directly incentivize the desired behaviors and outcomes?",
				Picklist: []MaturityOption{
					{Text: "Yes, it aligns perfectly with strategic goals", Score: 9.0},
					{Text: "It rewards activity more than outcomes", Score: 4.0},
					{Text: "It creates perverse incentives or team conflict", Score: 2.0},
				},
			},
		},
	},
}

// DiagnosticFramework returns the full category/focus-area framework.
func DiagnosticFramework() []DiagnosticCategory {
	out := make([]DiagnosticCategory, len(diagnosticFramework))
	copy(out, diagnosticFramework)
	return out
}

// FindFocusArea looks up a focus area by its id.
func FindFocusArea(id string) (FocusArea, string, bool) {
	for _, c := range diagnosticFramework {
		for _, f := range c.FocusAreas {
			if f.ID == id {
				return f, c.Name, true
			}
		}
	}
	return FocusArea{}, "", false
}

// MaturityScore maps a picklist answer to its score for a focus
// area. The bool result is false when the answer is not in the
// picklist.
func MaturityScore(focusAreaID, text string) (float64, bool) {
	area, _, ok := FindFocusArea(focusAreaID)
	if !ok {
		return 0, false
	}
	for _, opt := range area.Picklist {
		if opt.Text == text {
			return opt.Score, true
		}
	}
	return 0, false
}
