// Package report renders the exported Markdown summary from a
// session snapshot. Output is a pure function of the snapshot: no
// clock, no randomness, so identical snapshots produce byte-identical
// documents.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/scoring"
)

// Placeholder strings rendered when a section has no data or a
// reference cannot be resolved. These are part of the exported
// document format.
const (
	NoGroupsPlaceholder     = "_No groups in this priority level._"
	NoPrioritiesPlaceholder = "_No high-priority items identified._"
	NoStagesPlaceholder     = "_No stages defined._"
	NoSurveyPlaceholder     = "_Survey not completed._"
	UnresolvedRef           = "N/A"
	AnyValue                = "Any"
)

// Generate renders the full five-part summary document.
func Generate(snap domain.Snapshot) string {
	var b strings.Builder
	b.WriteString("# GTM Strategy & Diagnostics Summary\n\n")
	writeOrganizationalModel(&b, snap)
	writePrioritizedGroups(&b, snap)
	writeSalesProcess(&b, snap)
	writeSurveyData(&b, snap)
	writeDiagnostics(&b, snap)
	return b.String()
}

func writeOrganizationalModel(b *strings.Builder, snap domain.Snapshot) {
	b.WriteString("## Part 1: ICP & Organizational Model\n\n")

	b.WriteString("### Seniority Buckets\n")
	for _, bk := range snap.SeniorityBuckets {
		fmt.Fprintf(b, "- **%s**: %s (Levels: %s)\n", bk.Name, bk.SecondaryLabel, strings.Join(bk.Levels, ", "))
	}

	b.WriteString("\n### Function Buckets\n")
	for _, bk := range snap.DepartmentBuckets {
		fmt.Fprintf(b, "- **%s**: %s (%d functions)\n", bk.Name, bk.SecondaryLabel, len(bk.Functions))
	}

	b.WriteString("\n### Personas\n")
	for _, p := range snap.Personas {
		sen := seniorityName(snap, p.SeniorityBucketID)
		fun := departmentName(snap, p.DepartmentBucketID)
		fmt.Fprintf(b, "- **%s** (Seniority: %s, Function: %s)\n", p.Name, sen, fun)
	}

	b.WriteString("\n### Account Segments\n")
	for _, s := range snap.AccountSegments {
		fmt.Fprintf(b, "#### %s\n", s.Name)
		fmt.Fprintf(b, "- **Industries**: %s\n", joinOr(s.Industries, AnyValue))
		fmt.Fprintf(b, "- **Employee Count**: %s\n", joinOr(s.EmployeeCounts, AnyValue))
		fmt.Fprintf(b, "- **Revenue Bands**: %s\n\n", joinOr(s.RevenueBands, AnyValue))
	}
	if len(snap.AccountSegments) == 0 {
		b.WriteString("\n")
	}
}

func writePrioritizedGroups(b *strings.Builder, snap domain.Snapshot) {
	b.WriteString("## Part 2: Prioritized ICP Groups\n\n")
	writePriorityTier(b, snap, "High Priority", snap.Priorities.High)
	writePriorityTier(b, snap, "Medium Priority", snap.Priorities.Medium)
	writePriorityTier(b, snap, "Low Priority", snap.Priorities.Low)
}

func writePriorityTier(b *strings.Builder, snap domain.Snapshot, title string, ids []string) {
	fmt.Fprintf(b, "### %s\n", title)
	if len(ids) == 0 {
		b.WriteString(NoGroupsPlaceholder + "\n\n")
		return
	}
	for _, id := range ids {
		g, ok := findGroup(snap, id)
		if !ok {
			// Deleted group still assigned; skip rather than fail.
			continue
		}
		fmt.Fprintf(b, "#### %s\n", g.Name)
		if seg, ok := findSegment(snap, g.AccountSegmentID); ok {
			fmt.Fprintf(b, "- **Linked Account Segment**: %s\n", seg.Name)
		} else {
			b.WriteString("- **Linked Account Segment**: None\n")
		}
		b.WriteString("- **Personas**:\n")
		for _, pid := range g.PersonaIDs {
			if p, ok := findPersona(snap, pid); ok {
				fmt.Fprintf(b, "  - %s\n", p.Name)
			}
		}
		fmt.Fprintf(b, "- **Strategic Context**: %s\n", orFallback(g.StrategicContext, UnresolvedRef))
		fmt.Fprintf(b, "- **Pain Points**: %s\n", orFallback(g.PainPoints, UnresolvedRef))
		fmt.Fprintf(b, "- **Value Propositions**: %s\n\n", orFallback(g.ValueProps, UnresolvedRef))
	}
}

func writeSalesProcess(b *strings.Builder, snap domain.Snapshot) {
	b.WriteString("## Part 3: Structured Sales Process\n\n")
	if len(snap.Stages) == 0 {
		b.WriteString(NoStagesPlaceholder + "\n\n")
		return
	}
	for i, s := range snap.Stages {
		fmt.Fprintf(b, "%d. **%s**\n", i+1, s.Name)
		fmt.Fprintf(b, "   - **Description**: %s\n", orFallback(s.Description, UnresolvedRef))
		fmt.Fprintf(b, "   - **Exit Criteria**: %s\n", orFallback(s.ExitCriteria, UnresolvedRef))
		fmt.Fprintf(b, "   - **Required Activities**: %s\n", orFallback(s.RequiredActivities, UnresolvedRef))
		fmt.Fprintf(b, "   - **Training Requirements**: %s\n", orFallback(s.TrainingRequirements, UnresolvedRef))
		fmt.Fprintf(b, "   - **Linked Assets**: %s\n", joinOr(assetNames(snap, s.LinkedAssetIDs), "None"))
	}
	b.WriteString("\n")
}

func writeSurveyData(b *strings.Builder, snap domain.Snapshot) {
	b.WriteString("## Part 4: GTM Survey Data\n\n")
	if !snap.SurveyTouched {
		b.WriteString(NoSurveyPlaceholder + "\n\n")
		return
	}
	sv := snap.Survey

	b.WriteString("### Team & Operations\n")
	fmt.Fprintf(b, "- **Inbound Reliance**: %d%%\n", sv.Inbound.ReliancePercentage)
	fmt.Fprintf(b, "- **Team Size**: %d AEs, %d SDRs, %d CSMs\n", sv.Team.AECount, sv.Team.SDRCount, sv.Team.CSMCount)
	fmt.Fprintf(b, "- **Supporting Roles**: %d\n", sv.Team.SupportRoleCount)
	fmt.Fprintf(b, "- **International Reps**: %s\n", triStateLabel(sv.Team.HasInternationalReps))
	fmt.Fprintf(b, "- **Prospecting Languages**: %s\n", joinOr(sv.Team.ProspectingLanguages, "None"))

	b.WriteString("\n### Systems & Processes\n")
	fmt.Fprintf(b, "- **Sales Engagement**: %s\n", platformLabel(sv.Systems.SalesEngagementPlatform, sv.Systems.SalesEngagementPlatformOther))
	fmt.Fprintf(b, "- **Conversation Intelligence**: %s\n", platformLabel(sv.Systems.ConversationIntelligence, sv.Systems.ConversationIntelligenceOther))
	fmt.Fprintf(b, "- **Marketing Automation**: %s\n", platformLabel(sv.Systems.MarketingAutomation, sv.Systems.MarketingAutomationOther))
	fmt.Fprintf(b, "- **Website Conversion Tools**: %s\n", joinOr(sv.Systems.WebsiteConversionTools, "None"))
	fmt.Fprintf(b, "- **Data Sources**: %s\n", joinOr(sv.Systems.DataSources, "None"))
	fmt.Fprintf(b, "- **AI Integrations**: %s\n", joinOr(sv.Systems.AIIntegrations, "None"))
	fmt.Fprintf(b, "- **Automation Tools**: %s\n\n", joinOr(sv.Systems.AutomationTools, "None"))
}

func writeDiagnostics(b *strings.Builder, snap domain.Snapshot) {
	b.WriteString("## Part 5: Diagnostic Assessment\n\n")
	b.WriteString("### Top Priority Action Items\n")
	top := scoring.TopPriorities(snap.Diagnostics)
	if len(top) == 0 {
		b.WriteString(NoPrioritiesPlaceholder + "\n")
		return
	}
	for i, a := range top {
		fmt.Fprintf(b, "%d. **%s** (Impact: %d, Feasibility: %d, Maturity: %s)\n",
			i+1, a.FocusArea, a.Impact, a.Feasibility, formatMaturity(a.Maturity))
	}
}

func seniorityName(snap domain.Snapshot, id string) string {
	for _, bk := range snap.SeniorityBuckets {
		if bk.ID == id {
			return bk.Name
		}
	}
	return UnresolvedRef
}

func departmentName(snap domain.Snapshot, id string) string {
	for _, bk := range snap.DepartmentBuckets {
		if bk.ID == id {
			return bk.Name
		}
	}
	return UnresolvedRef
}

func findGroup(snap domain.Snapshot, id string) (domain.ICPSegmentGroup, bool) {
	for _, g := range snap.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return domain.ICPSegmentGroup{}, false
}

func findSegment(snap domain.Snapshot, id string) (domain.AccountSegment, bool) {
	for _, s := range snap.AccountSegments {
		if s.ID == id {
			return s, true
		}
	}
	return domain.AccountSegment{}, false
}

func findPersona(snap domain.Snapshot, id string) (domain.PersonaBucket, bool) {
	for _, p := range snap.Personas {
		if p.ID == id {
			return p, true
		}
	}
	return domain.PersonaBucket{}, false
}

func assetNames(snap domain.Snapshot, ids []string) []string {
	var names []string
	for _, id := range ids {
		for _, a := range snap.Assets {
			if a.ID == id {
				names = append(names, a.Name)
				break
			}
		}
	}
	return names
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func triStateLabel(t domain.TriState) string {
	switch t {
	case domain.Yes:
		return "Yes"
	case domain.No:
		return "No"
	default:
		return "Not Set"
	}
}

func platformLabel(selected, other string) string {
	if selected == "Other" && other != "" {
		return other
	}
	if selected == "" {
		return "Not Set"
	}
	return selected
}

func formatMaturity(m *float64) string {
	if m == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*m, 'f', -1, 64)
}
