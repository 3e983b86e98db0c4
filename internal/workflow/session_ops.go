package workflow

import (
	"go.uber.org/zap"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/store"
)

// Entity operations. Mutations are only accepted while the owning
// step is active; reads are allowed from any step.

// SetNamingConvention picks how generated personas are named. Only
// available on the choice step, before any authoring begins.
func (s *Session) SetNamingConvention(c domain.NamingConvention) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepChoice); err != nil {
		return err
	}
	switch c {
	case domain.NamingAuto, domain.NamingCustom:
		s.convention = c
		return nil
	default:
		return domain.NewEngineError(domain.ErrConfigInvalid.Code, "unknown naming convention "+string(c))
	}
}

// ---- Seniority buckets ----

func (s *Session) CreateSeniorityBucket(name, secondaryLabel string) (domain.SeniorityBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSeniority); err != nil {
		return domain.SeniorityBucket{}, err
	}
	b := s.store.Seniority.Create(name, secondaryLabel)
	s.log.Debug("seniority bucket created", zap.String("id", b.ID))
	return *b, nil
}

// SeniorityFromDefaults replaces the buckets with one per level.
func (s *Session) SeniorityFromDefaults() ([]domain.SeniorityBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSeniority); err != nil {
		return nil, err
	}
	return s.store.Seniority.CreateFromDefaults(), nil
}

func (s *Session) UpdateSeniorityBucket(id string, upd store.SeniorityUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSeniority); err != nil {
		return err
	}
	s.store.Seniority.Update(id, upd)
	return nil
}

func (s *Session) DeleteSeniorityBucket(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSeniority); err != nil {
		return err
	}
	s.store.Seniority.Delete(id)
	return nil
}

// MoveLevel reassigns a level tag to a bucket atomically.
func (s *Session) MoveLevel(levelID, bucketID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSeniority); err != nil {
		return err
	}
	return s.store.Seniority.CommitMove(levelID, bucketID)
}

// RemoveLevel returns a level tag to the unassigned pool.
func (s *Session) RemoveLevel(levelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSeniority); err != nil {
		return err
	}
	s.store.Seniority.RemoveLevel(levelID)
	return nil
}

func (s *Session) ListSeniorityBuckets() []domain.SeniorityBucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Seniority.List()
}

// ---- Function buckets ----

func (s *Session) CreateDepartmentBucket(name, secondaryLabel string) (domain.DepartmentBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepDepartment); err != nil {
		return domain.DepartmentBucket{}, err
	}
	b := s.store.Departments.Create(name, secondaryLabel)
	s.log.Debug("function bucket created", zap.String("id", b.ID))
	return *b, nil
}

func (s *Session) UpdateDepartmentBucket(id string, upd store.DepartmentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepDepartment); err != nil {
		return err
	}
	s.store.Departments.Update(id, upd)
	return nil
}

func (s *Session) DeleteDepartmentBucket(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepDepartment); err != nil {
		return err
	}
	s.store.Departments.Delete(id)
	return nil
}

// MoveFunction reassigns a function key to a bucket atomically.
func (s *Session) MoveFunction(functionKey, bucketID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepDepartment); err != nil {
		return err
	}
	return s.store.Departments.CommitMove(functionKey, bucketID)
}

// AssignDepartment drops a whole catalog department onto a bucket,
// skipping functions already held elsewhere.
func (s *Session) AssignDepartment(departmentName, bucketID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepDepartment); err != nil {
		return 0, err
	}
	return s.store.Departments.AssignDepartment(departmentName, bucketID)
}

func (s *Session) RemoveFunction(functionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepDepartment); err != nil {
		return err
	}
	s.store.Departments.RemoveFunction(functionKey)
	return nil
}

func (s *Session) ListDepartmentBuckets() []domain.DepartmentBucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Departments.List()
}

// ---- Personas ----

func (s *Session) CreatePersona(name, seniorityBucketID, departmentBucketID string) (domain.PersonaBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepPersona); err != nil {
		return domain.PersonaBucket{}, err
	}
	p := s.store.Personas.Create(name, seniorityBucketID, departmentBucketID)
	return *p, nil
}

// GeneratePersonas bulk-creates personas for every pair of the
// selected buckets. Re-running with the same selection creates
// nothing new.
func (s *Session) GeneratePersonas(seniorityIDs, departmentIDs []string) ([]domain.PersonaBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepPersona); err != nil {
		return nil, err
	}
	created := s.store.GeneratePersonas(seniorityIDs, departmentIDs)
	s.log.Info("personas generated", zap.Int("created", len(created)))
	return created, nil
}

func (s *Session) UpdatePersona(id string, upd store.PersonaUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepPersona); err != nil {
		return err
	}
	s.store.Personas.Update(id, upd)
	return nil
}

func (s *Session) DeletePersona(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepPersona); err != nil {
		return err
	}
	s.store.Personas.Delete(id)
	return nil
}

func (s *Session) ListPersonas() []domain.PersonaBucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Personas.List()
}

// PersonaView is a persona with its bucket references resolved for
// display. Unresolved references render as "Not Set" rather than
// failing.
type PersonaView struct {
	domain.PersonaBucket
	SeniorityName  string `json:"seniorityName"`
	DepartmentName string `json:"departmentName"`
}

func (s *Session) PersonaViews() []PersonaView {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]PersonaView, 0)
	for _, p := range s.store.Personas.List() {
		v := PersonaView{PersonaBucket: p, SeniorityName: "Not Set", DepartmentName: "Not Set"}
		if b, ok := s.store.Seniority.FindByID(p.SeniorityBucketID); ok {
			v.SeniorityName = b.Name
		}
		if b, ok := s.store.Departments.FindByID(p.DepartmentBucketID); ok {
			v.DepartmentName = b.Name
		}
		views = append(views, v)
	}
	return views
}

// ---- Account segments ----

func (s *Session) CreateSegment(name string) (domain.AccountSegment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepAccount); err != nil {
		return domain.AccountSegment{}, err
	}
	seg := s.store.Segments.Create(name)
	return *seg, nil
}

func (s *Session) UpdateSegment(id string, upd store.SegmentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepAccount); err != nil {
		return err
	}
	s.store.Segments.Update(id, upd)
	return nil
}

func (s *Session) DeleteSegment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepAccount); err != nil {
		return err
	}
	s.store.Segments.Delete(id)
	return nil
}

func (s *Session) ListSegments() []domain.AccountSegment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Segments.List()
}

func (s *Session) GetSegment(id string) (domain.AccountSegment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Segments.FindByID(id)
}

// ---- ICP segment groups ----

func (s *Session) CreateGroup(name string) (domain.ICPSegmentGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepICP); err != nil {
		return domain.ICPSegmentGroup{}, err
	}
	g := s.store.Groups.Create(name)
	return *g, nil
}

func (s *Session) UpdateGroup(id string, upd store.GroupUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepICP); err != nil {
		return err
	}
	s.store.Groups.Update(id, upd)
	return nil
}

func (s *Session) DeleteGroup(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepICP); err != nil {
		return err
	}
	s.store.Groups.Delete(id)
	return nil
}

// AddPersonaToGroup links an existing persona into a group.
func (s *Session) AddPersonaToGroup(groupID, personaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepICP); err != nil {
		return err
	}
	return s.store.AddPersonaToGroup(groupID, personaID)
}

func (s *Session) RemovePersonaFromGroup(groupID, personaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepICP); err != nil {
		return err
	}
	return s.store.Groups.RemovePersona(groupID, personaID)
}

func (s *Session) ListGroups() []domain.ICPSegmentGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Groups.List()
}

// ---- Prioritization ----

// AssignPriority places a group into a tier, removing it from any
// other tier in the same operation.
func (s *Session) AssignPriority(groupID string, level domain.PriorityLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepPrioritization); err != nil {
		return err
	}
	if _, ok := s.store.Groups.FindByID(groupID); !ok {
		return domain.ErrGroupNotFound
	}
	return s.store.Priorities.Assign(groupID, level)
}

func (s *Session) UnassignPriority(groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepPrioritization); err != nil {
		return err
	}
	s.store.Priorities.Unassign(groupID)
	return nil
}

func (s *Session) PriorityBoard() domain.PriorityBoard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Priorities.Board()
}

// ---- Survey ----

func (s *Session) GetSurvey() (domain.StrategicWorkflowSurvey, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Survey.Get()
}

func (s *Session) PutSurvey(sv domain.StrategicWorkflowSurvey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepStrategicWorkflow); err != nil {
		return err
	}
	s.store.Survey.Put(sv)
	return nil
}

// ---- Sales process ----

func (s *Session) CreateStage(name string) (domain.SalesStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSalesProcess); err != nil {
		return domain.SalesStage{}, err
	}
	st := s.store.Stages.Create(name)
	return *st, nil
}

// UseDefaultStages replaces all stages with the standard buyer
// journey.
func (s *Session) UseDefaultStages() ([]domain.SalesStage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSalesProcess); err != nil {
		return nil, err
	}
	return s.store.Stages.UseDefaults(), nil
}

func (s *Session) UpdateStage(id string, upd store.StageUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSalesProcess); err != nil {
		return err
	}
	s.store.Stages.Update(id, upd)
	return nil
}

func (s *Session) DeleteStage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSalesProcess); err != nil {
		return err
	}
	s.store.Stages.Delete(id)
	return nil
}

func (s *Session) ReorderStage(id string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepSalesProcess); err != nil {
		return err
	}
	s.store.Stages.Reorder(id, position)
	return nil
}

func (s *Session) ListStages() []domain.SalesStage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Stages.List()
}

// ---- Diagnostics ----

func (s *Session) UpdateDiagnostic(id string, upd store.DiagnosticUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireStep(domain.StepDiagnostic); err != nil {
		return err
	}
	_, err := s.store.Diagnostics.Update(id, upd)
	return err
}

func (s *Session) ListDiagnostics() []domain.DiagnosticAssessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Diagnostics.List()
}
