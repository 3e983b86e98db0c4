package store

import "github.com/gtm-studio/icp-engine/internal/domain"

// SurveyState is the singleton survey record for a session.
type SurveyState struct {
	survey  domain.StrategicWorkflowSurvey
	touched bool
}

// NewSurveyState returns the initial survey: every yes/no question
// unanswered, sliders at their midpoints.
func NewSurveyState() *SurveyState {
	return &SurveyState{survey: initialSurvey()}
}

// Get returns a copy of the survey plus whether it was ever saved.
func (s *SurveyState) Get() (domain.StrategicWorkflowSurvey, bool) {
	return copySurvey(s.survey), s.touched
}

// Put replaces the survey. Unanswered tri-state fields are
// normalized so a zero value never masquerades as an answer.
func (s *SurveyState) Put(survey domain.StrategicWorkflowSurvey) {
	normalizeSurvey(&survey)
	s.survey = copySurvey(survey)
	s.touched = true
}

func initialSurvey() domain.StrategicWorkflowSurvey {
	var sv domain.StrategicWorkflowSurvey
	sv.Inbound.ReliancePercentage = 50
	sv.Tactics.ColdCallingImportance = 5
	sv.Team.ProspectingLanguages = []string{}
	sv.Systems.WebsiteConversionTools = []string{}
	sv.Systems.DataSources = []string{}
	sv.Systems.AIIntegrations = []string{}
	sv.Systems.AutomationTools = []string{}
	normalizeSurvey(&sv)
	return sv
}

func normalizeSurvey(sv *domain.StrategicWorkflowSurvey) {
	tris := []*domain.TriState{
		&sv.Inbound.ContactsLeads,
		&sv.Inbound.AEsAndSDRsGetLeads,
		&sv.Inbound.HasHighPriorityLeads,
		&sv.Inbound.AEsGetHighPriorityLeads,
		&sv.Inbound.HasSpecialCampaigns,
		&sv.Events.UsesEvents,
		&sv.Events.TeamsInviteAndFollowUp,
		&sv.Tactics.UsesPhoneCalls,
		&sv.Tactics.HasAutomatedEmailSequences,
		&sv.Team.HasInternationalReps,
		&sv.Sequences.FollowUp,
		&sv.Sequences.EventInvite,
		&sv.Sequences.EventFollowUp,
		&sv.Sequences.ReEngage,
		&sv.Sequences.Nurture,
		&sv.Sequences.Expansion,
		&sv.Sequences.Renewal,
	}
	for _, t := range tris {
		switch *t {
		case domain.Yes, domain.No:
		default:
			*t = domain.Unanswered
		}
	}
}

func copySurvey(sv domain.StrategicWorkflowSurvey) domain.StrategicWorkflowSurvey {
	out := sv
	out.Team.ProspectingLanguages = append([]string{}, sv.Team.ProspectingLanguages...)
	out.Systems.WebsiteConversionTools = append([]string{}, sv.Systems.WebsiteConversionTools...)
	out.Systems.DataSources = append([]string{}, sv.Systems.DataSources...)
	out.Systems.AIIntegrations = append([]string{}, sv.Systems.AIIntegrations...)
	out.Systems.AutomationTools = append([]string{}, sv.Systems.AutomationTools...)
	return out
}
