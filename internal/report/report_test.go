package report

import (
	"strings"
	"testing"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/store"
)

// buildScenario assembles a session store with data in every part of
// the report.
func buildScenario(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()

	sen := s.Seniority.Create("Executives", "Top brass")
	if err := s.Seniority.CommitMove("c-level", sen.ID); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}
	dept := s.Departments.Create("Revenue Team", "Sellers")
	if err := s.Departments.CommitMove("sales_dev", dept.ID); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}

	personas := s.GeneratePersonas([]string{sen.ID}, []string{dept.ID})
	if len(personas) != 1 {
		t.Fatalf("persona count = %d, want 1", len(personas))
	}

	seg := s.Segments.Create("Mid-Market SaaS")
	industries := []string{"SaaS"}
	s.Segments.Update(seg.ID, store.SegmentUpdate{Industries: &industries})

	g := s.Groups.Create("Enterprise Land")
	segID := seg.ID
	ctx := "Expansion targets"
	s.Groups.Update(g.ID, store.GroupUpdate{AccountSegmentID: &segID, StrategicContext: &ctx})
	if err := s.AddPersonaToGroup(g.ID, personas[0].ID); err != nil {
		t.Fatalf("AddPersonaToGroup: %v", err)
	}
	if err := s.Priorities.Assign(g.ID, domain.PriorityHigh); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	s.Stages.UseDefaults()

	var sv domain.StrategicWorkflowSurvey
	sv.Inbound.ReliancePercentage = 70
	sv.Team.AECount = 4
	sv.Team.SDRCount = 2
	sv.Team.CSMCount = 1
	sv.Team.HasInternationalReps = domain.Yes
	sv.Systems.SalesEngagementPlatform = "Other"
	sv.Systems.SalesEngagementPlatformOther = "HomegrownCRM"
	s.Survey.Put(sv)

	answer := "No formal assignment process (chaotic)"
	impact := 9
	feas := 8
	if _, err := s.Diagnostics.Update("accountAssignments", store.DiagnosticUpdate{
		MaturityAnswer: &answer,
		Impact:         &impact,
		Feasibility:    &feas,
	}); err != nil {
		t.Fatalf("Diagnostics.Update: %v", err)
	}

	return s
}

func TestGenerate_FullScenario(t *testing.T) {
	s := buildScenario(t)
	doc := Generate(s.Snapshot())

	wantLines := []string{
		"# GTM Strategy & Diagnostics Summary",
		"## Part 1: ICP & Organizational Model",
		"- **Executives**: Top brass (Levels: c-level)",
		"- **Revenue Team**: Sellers (1 functions)",
		"- **Executives - Revenue Team** (Seniority: Executives, Function: Revenue Team)",
		"#### Mid-Market SaaS",
		"- **Industries**: SaaS",
		"- **Employee Count**: Any",
		"## Part 2: Prioritized ICP Groups",
		"#### Enterprise Land",
		"- **Linked Account Segment**: Mid-Market SaaS",
		"  - Executives - Revenue Team",
		"- **Strategic Context**: Expansion targets",
		"- **Pain Points**: N/A",
		"## Part 3: Structured Sales Process",
		"1. **Problem Awareness**",
		"## Part 4: GTM Survey Data",
		"- **Inbound Reliance**: 70%",
		"- **Team Size**: 4 AEs, 2 SDRs, 1 CSMs",
		"- **International Reps**: Yes",
		"- **Sales Engagement**: HomegrownCRM",
		"## Part 5: Diagnostic Assessment",
		"1. **Account Assignments & Tiering** (Impact: 9, Feasibility: 8, Maturity: 1)",
	}
	for _, line := range wantLines {
		if !strings.Contains(doc, line) {
			t.Errorf("report missing line %q", line)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	s := buildScenario(t)
	snap := s.Snapshot()
	if Generate(snap) != Generate(snap) {
		t.Error("identical snapshots produced different documents")
	}
}

func TestGenerate_EmptyPlaceholders(t *testing.T) {
	doc := Generate(store.New().Snapshot())

	for _, want := range []string{
		NoGroupsPlaceholder,
		NoStagesPlaceholder,
		NoSurveyPlaceholder,
		NoPrioritiesPlaceholder,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("empty report missing placeholder %q", want)
		}
	}
}

func TestGenerate_SkipsDanglingGroupAssignments(t *testing.T) {
	s := store.New()
	g := s.Groups.Create("Doomed")
	if err := s.Priorities.Assign(g.ID, domain.PriorityHigh); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	s.Groups.Delete(g.ID)

	doc := Generate(s.Snapshot())
	if strings.Contains(doc, "Doomed") {
		t.Error("deleted group rendered in report")
	}
	// The tier still renders; the dangling entry is skipped silently.
	if !strings.Contains(doc, "### High Priority") {
		t.Error("high priority tier heading missing")
	}
}

func TestGenerate_UnresolvedPersonaRefsRenderNA(t *testing.T) {
	s := store.New()
	s.Personas.Create("Orphan Buyer", "ghost-sen", "ghost-dept")

	doc := Generate(s.Snapshot())
	if !strings.Contains(doc, "- **Orphan Buyer** (Seniority: N/A, Function: N/A)") {
		t.Error("unresolved persona refs did not render as N/A")
	}
}

func TestGenerate_NotSetPlatforms(t *testing.T) {
	s := store.New()
	s.Survey.Put(domain.StrategicWorkflowSurvey{})

	doc := Generate(s.Snapshot())
	if !strings.Contains(doc, "- **Marketing Automation**: Not Set") {
		t.Error("empty platform did not render as Not Set")
	}
	if !strings.Contains(doc, "- **International Reps**: Not Set") {
		t.Error("unanswered tri-state did not render as Not Set")
	}
}
