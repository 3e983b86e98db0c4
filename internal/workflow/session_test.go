package workflow

import (
	"testing"

	"go.uber.org/zap"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/store"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession("test-session", domain.NamingAuto, zap.NewNop())
}

// advanceThrough walks the wizard forward to target, seeding each
// gated step's collection along the way.
func advanceThrough(t *testing.T, s *Session, target domain.Step) {
	t.Helper()
	for s.State().CurrentStep != target {
		switch s.State().CurrentStep {
		case domain.StepSeniority:
			if _, err := s.CreateSeniorityBucket("Leaders", ""); err != nil {
				t.Fatalf("seed seniority: %v", err)
			}
		case domain.StepDepartment:
			if _, err := s.CreateDepartmentBucket("Sellers", ""); err != nil {
				t.Fatalf("seed department: %v", err)
			}
		case domain.StepPersona:
			if _, err := s.CreatePersona("Buyer", "", ""); err != nil {
				t.Fatalf("seed persona: %v", err)
			}
		case domain.StepAccount:
			if _, err := s.CreateSegment("Mid-Market"); err != nil {
				t.Fatalf("seed segment: %v", err)
			}
		case domain.StepICP:
			if _, err := s.CreateGroup("Enterprise"); err != nil {
				t.Fatalf("seed group: %v", err)
			}
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("advance from %s: %v", s.State().CurrentStep, err)
		}
	}
}

func TestSession_StartsAtChoice(t *testing.T) {
	s := newTestSession(t)
	state := s.State()
	if state.CurrentStep != domain.StepChoice {
		t.Errorf("CurrentStep = %s, want choice", state.CurrentStep)
	}
	if !state.CanAdvance.Allow {
		t.Error("choice step should always allow advancing")
	}
}

func TestSession_GateBlocksEmptyCollection(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance from choice: %v", err)
	}

	// Seniority step with no buckets.
	_, err := s.Advance()
	engErr, ok := err.(*domain.EngineError)
	if !ok {
		t.Fatalf("err = %v, want EngineError", err)
	}
	if engErr.Code != domain.ErrStepGateBlocked.Code {
		t.Errorf("Code = %d, want gate blocked", engErr.Code)
	}

	if _, err := s.CreateSeniorityBucket("Leaders", ""); err != nil {
		t.Fatalf("CreateSeniorityBucket: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Errorf("advance with a bucket: %v", err)
	}
}

func TestSession_GateReblocksWhenCollectionEmptied(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance from choice: %v", err)
	}

	bucket, err := s.CreateSeniorityBucket("Leaders", "")
	if err != nil {
		t.Fatalf("CreateSeniorityBucket: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("advance with a bucket: %v", err)
	}
	if _, err := s.Back(); err != nil {
		t.Fatalf("back to seniority: %v", err)
	}

	// Deleting the only bucket re-blocks the gate.
	if err := s.DeleteSeniorityBucket(bucket.ID); err != nil {
		t.Fatalf("DeleteSeniorityBucket: %v", err)
	}
	if s.State().CanAdvance.Allow {
		t.Error("CanAdvance.Allow = true after emptying the collection")
	}
	_, err = s.Advance()
	engErr, ok := err.(*domain.EngineError)
	if !ok {
		t.Fatalf("err = %v, want EngineError", err)
	}
	if engErr.Code != domain.ErrStepGateBlocked.Code {
		t.Errorf("Code = %d, want gate blocked", engErr.Code)
	}
}

func TestSession_BackFromChoiceFails(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Back(); err == nil {
		t.Error("Back from choice succeeded")
	}
}

func TestSession_MutationRequiresOwningStep(t *testing.T) {
	s := newTestSession(t)

	// Still on choice; seniority mutations are rejected.
	_, err := s.CreateSeniorityBucket("Leaders", "")
	engErr, ok := err.(*domain.EngineError)
	if !ok {
		t.Fatalf("err = %v, want EngineError", err)
	}
	if engErr.Code != domain.ErrStepNotActive.Code {
		t.Errorf("Code = %d, want step not active", engErr.Code)
	}

	// Reads work from any step.
	if got := s.ListSeniorityBuckets(); len(got) != 0 {
		t.Errorf("ListSeniorityBuckets = %v, want empty", got)
	}
}

func TestSession_GroupEditDetour(t *testing.T) {
	s := newTestSession(t)
	advanceThrough(t, s, domain.StepPrioritization)

	groups := s.ListGroups()
	if len(groups) != 1 {
		t.Fatalf("group count = %d, want 1", len(groups))
	}
	groupID := groups[0].ID

	if err := s.RequestGroupEdit(groupID); err != nil {
		t.Fatalf("RequestGroupEdit: %v", err)
	}
	state := s.State()
	if state.CurrentStep != domain.StepICP {
		t.Errorf("CurrentStep = %s, want icp", state.CurrentStep)
	}
	if state.EditingGroupID != groupID {
		t.Errorf("EditingGroupID = %q, want %q", state.EditingGroupID, groupID)
	}

	// Group mutations work during the detour.
	ctx := "expansion play"
	if err := s.UpdateGroup(groupID, store.GroupUpdate{StrategicContext: &ctx}); err != nil {
		t.Fatalf("UpdateGroup during edit: %v", err)
	}

	// Advancing is blocked until the edit ends.
	if _, err := s.Advance(); err != domain.ErrEditInProgress {
		t.Errorf("Advance during edit: err = %v, want ErrEditInProgress", err)
	}

	if err := s.EndGroupEdit(); err != nil {
		t.Fatalf("EndGroupEdit: %v", err)
	}
	state = s.State()
	if state.CurrentStep != domain.StepPrioritization {
		t.Errorf("CurrentStep = %s after edit, want prioritization", state.CurrentStep)
	}
	if state.EditingGroupID != "" {
		t.Errorf("EditingGroupID = %q after edit, want empty", state.EditingGroupID)
	}
}

func TestSession_GroupEditGuards(t *testing.T) {
	s := newTestSession(t)
	advanceThrough(t, s, domain.StepPrioritization)
	groupID := s.ListGroups()[0].ID

	if err := s.EndGroupEdit(); err != domain.ErrNoEditInProgress {
		t.Errorf("EndGroupEdit without edit: err = %v, want ErrNoEditInProgress", err)
	}
	if err := s.RequestGroupEdit("missing"); err != domain.ErrGroupNotFound {
		t.Errorf("edit of missing group: err = %v, want ErrGroupNotFound", err)
	}
	if err := s.RequestGroupEdit(groupID); err != nil {
		t.Fatalf("RequestGroupEdit: %v", err)
	}
	if err := s.RequestGroupEdit(groupID); err != domain.ErrEditInProgress {
		t.Errorf("second edit request: err = %v, want ErrEditInProgress", err)
	}
}

func TestSession_BackAbandonsEdit(t *testing.T) {
	s := newTestSession(t)
	advanceThrough(t, s, domain.StepPrioritization)
	groupID := s.ListGroups()[0].ID

	if err := s.RequestGroupEdit(groupID); err != nil {
		t.Fatalf("RequestGroupEdit: %v", err)
	}
	step, err := s.Back()
	if err != nil {
		t.Fatalf("Back during edit: %v", err)
	}
	if step != domain.StepPrioritization {
		t.Errorf("Back landed on %s, want prioritization", step)
	}
	if s.State().EditingGroupID != "" {
		t.Error("edit marker survived Back")
	}
}

func TestSession_CompleteResetsNavigationKeepsEntities(t *testing.T) {
	s := newTestSession(t)
	advanceThrough(t, s, domain.StepHolisticSummary)

	if err := s.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if s.State().CurrentStep != domain.StepChoice {
		t.Errorf("CurrentStep = %s after complete, want choice", s.State().CurrentStep)
	}

	snap := s.Snapshot()
	if len(snap.SeniorityBuckets) == 0 || len(snap.Groups) == 0 {
		t.Error("entities discarded by Complete")
	}
}

func TestSession_CompleteOnlyFromSummary(t *testing.T) {
	s := newTestSession(t)
	if err := s.Complete(); err != domain.ErrStepNotActive {
		t.Errorf("Complete from choice: err = %v, want ErrStepNotActive", err)
	}
}

func TestSession_SetNamingConvention(t *testing.T) {
	s := newTestSession(t)
	if err := s.SetNamingConvention(domain.NamingCustom); err != nil {
		t.Fatalf("SetNamingConvention: %v", err)
	}
	if s.State().NamingConvention != domain.NamingCustom {
		t.Errorf("NamingConvention = %s, want custom", s.State().NamingConvention)
	}
	if err := s.SetNamingConvention("freestyle"); err == nil {
		t.Error("unknown convention accepted")
	}

	// Only settable on the choice step.
	if _, err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if err := s.SetNamingConvention(domain.NamingAuto); err == nil {
		t.Error("SetNamingConvention off the choice step succeeded")
	}
}

func TestSession_PersonaViewsResolveBuckets(t *testing.T) {
	s := newTestSession(t)
	advanceThrough(t, s, domain.StepPersona)

	sen := s.ListSeniorityBuckets()[0]
	dept := s.ListDepartmentBuckets()[0]
	if _, err := s.GeneratePersonas([]string{sen.ID}, []string{dept.ID}); err != nil {
		t.Fatalf("GeneratePersonas: %v", err)
	}

	views := s.PersonaViews()
	found := false
	for _, v := range views {
		if v.SeniorityName == sen.Name && v.DepartmentName == dept.Name {
			found = true
		}
	}
	if !found {
		t.Errorf("no view resolved to %s/%s: %+v", sen.Name, dept.Name, views)
	}

	// The manually seeded persona has no buckets and renders Not Set.
	for _, v := range views {
		if v.Name == "Buyer" && (v.SeniorityName != "Not Set" || v.DepartmentName != "Not Set") {
			t.Errorf("unresolved refs = %s/%s, want Not Set", v.SeniorityName, v.DepartmentName)
		}
	}
}
