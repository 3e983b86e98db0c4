package store

import (
	"fmt"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

// Store aggregates every collection of a wizard session. It is not
// safe for concurrent use; the owning session serializes access.
type Store struct {
	Seniority   *SeniorityRepo
	Departments *DepartmentRepo
	Personas    *PersonaRepo
	Segments    *SegmentRepo
	Groups      *GroupRepo
	Priorities  *PriorityBoardState
	Diagnostics *DiagnosticRepo
	Stages      *StageRepo
	Survey      *SurveyState
}

// New creates a store with empty collections and the seeded
// diagnostic population.
func New() *Store {
	return &Store{
		Seniority:   NewSeniorityRepo(),
		Departments: NewDepartmentRepo(),
		Personas:    NewPersonaRepo(),
		Segments:    NewSegmentRepo(),
		Groups:      NewGroupRepo(),
		Priorities:  NewPriorityBoardState(),
		Diagnostics: NewDiagnosticRepo(),
		Stages:      NewStageRepo(),
		Survey:      NewSurveyState(),
	}
}

// PersonaPairID is the canonical ID for a generated
// (seniority, department) persona. Regeneration of the same pair
// reuses it, which is what makes bulk generation idempotent.
func PersonaPairID(seniorityBucketID, departmentBucketID string) string {
	return fmt.Sprintf("persona-%s-%s", seniorityBucketID, departmentBucketID)
}

// GeneratePersonas creates one persona per (seniority, department)
// pair of the selected buckets, auto-named "<Seniority> - <Department>".
// Unknown bucket IDs are skipped, as are pairs that already exist.
// Returns the personas created by this call. Empty selections yield
// nothing.
func (s *Store) GeneratePersonas(seniorityIDs, departmentIDs []string) []domain.PersonaBucket {
	var created []domain.PersonaBucket
	for _, senID := range seniorityIDs {
		sen, ok := s.Seniority.FindByID(senID)
		if !ok {
			continue
		}
		for _, deptID := range departmentIDs {
			dept, ok := s.Departments.FindByID(deptID)
			if !ok {
				continue
			}
			id := PersonaPairID(senID, deptID)
			name := fmt.Sprintf("%s - %s", sen.Name, dept.Name)
			if s.Personas.Upsert(id, name, senID, deptID) {
				p, _ := s.Personas.FindByID(id)
				created = append(created, p)
			}
		}
	}
	return created
}

// AddPersonaToGroup links a persona into a group. The persona must
// exist at add time; membership may dangle later if the persona is
// deleted.
func (s *Store) AddPersonaToGroup(groupID, personaID string) error {
	if _, ok := s.Personas.FindByID(personaID); !ok {
		return domain.ErrPersonaNotFound
	}
	return s.Groups.AddPersona(groupID, personaID)
}

// Snapshot copies every collection for report generation. The asset
// library rides along so the report can resolve linked asset names.
func (s *Store) Snapshot() domain.Snapshot {
	survey, touched := s.Survey.Get()
	assets := make([]domain.LinkedAsset, 0)
	for _, a := range taxonomy.AssetLibrary() {
		assets = append(assets, domain.LinkedAsset{ID: a.ID, Name: a.Name, Category: a.Category})
	}
	return domain.Snapshot{
		SeniorityBuckets:  s.Seniority.List(),
		DepartmentBuckets: s.Departments.List(),
		Personas:          s.Personas.List(),
		AccountSegments:   s.Segments.List(),
		Groups:            s.Groups.List(),
		Priorities:        s.Priorities.Board(),
		Diagnostics:       s.Diagnostics.List(),
		Stages:            s.Stages.List(),
		Assets:            assets,
		Survey:            survey,
		SurveyTouched:     touched,
	}
}
