package store

import (
	"testing"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

func TestSurveyState_InitialValues(t *testing.T) {
	s := NewSurveyState()

	sv, touched := s.Get()
	if touched {
		t.Error("fresh survey reports touched")
	}
	if sv.Inbound.ReliancePercentage != 50 {
		t.Errorf("ReliancePercentage = %d, want 50", sv.Inbound.ReliancePercentage)
	}
	if sv.Tactics.ColdCallingImportance != 5 {
		t.Errorf("ColdCallingImportance = %d, want 5", sv.Tactics.ColdCallingImportance)
	}
	if sv.Inbound.ContactsLeads != domain.Unanswered {
		t.Errorf("ContactsLeads = %q, want unanswered", sv.Inbound.ContactsLeads)
	}
}

func TestSurveyState_PutNormalizesTriStates(t *testing.T) {
	s := NewSurveyState()

	var sv domain.StrategicWorkflowSurvey
	sv.Inbound.ContactsLeads = domain.Yes
	sv.Sequences.Renewal = "maybe"
	s.Put(sv)

	got, touched := s.Get()
	if !touched {
		t.Error("survey not marked touched after Put")
	}
	if got.Inbound.ContactsLeads != domain.Yes {
		t.Errorf("ContactsLeads = %q, want yes", got.Inbound.ContactsLeads)
	}
	if got.Sequences.Renewal != domain.Unanswered {
		t.Errorf("Renewal = %q, want unanswered after normalization", got.Sequences.Renewal)
	}
	// Untouched zero values normalize too.
	if got.Team.HasInternationalReps != domain.Unanswered {
		t.Errorf("HasInternationalReps = %q, want unanswered", got.Team.HasInternationalReps)
	}
}

func TestSurveyState_GetReturnsCopy(t *testing.T) {
	s := NewSurveyState()

	var sv domain.StrategicWorkflowSurvey
	sv.Systems.DataSources = []string{"ZoomInfo"}
	s.Put(sv)

	got, _ := s.Get()
	got.Systems.DataSources[0] = "mutated"

	fresh, _ := s.Get()
	if fresh.Systems.DataSources[0] != "ZoomInfo" {
		t.Error("mutation of returned survey leaked into state")
	}
}
