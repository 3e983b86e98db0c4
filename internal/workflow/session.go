package workflow

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/store"
)

// Session is one user's pass through the wizard: a store of entities
// plus the current position in the step machine. All access is
// serialized by the session mutex (single writer per session); the
// repositories themselves are not concurrency-safe.
type Session struct {
	ID string

	mu             sync.Mutex
	store          *store.Store
	gates          *StepGateRegistry
	current        domain.Step
	editingGroupID string
	convention     domain.NamingConvention
	log            *zap.Logger
}

// SessionState is the navigable view of a session. StepIndex is the
// zero-based position on the linear path, for progress display.
type SessionState struct {
	ID               string                  `json:"id"`
	CurrentStep      domain.Step             `json:"currentStep"`
	StepIndex        int                     `json:"stepIndex"`
	StepCount        int                     `json:"stepCount"`
	EditingGroupID   string                  `json:"editingGroupId,omitempty"`
	NamingConvention domain.NamingConvention `json:"namingConvention"`
	CanAdvance       domain.GateDecision     `json:"canAdvance"`
}

// NewSession creates a session positioned at the choice step.
func NewSession(id string, convention domain.NamingConvention, log *zap.Logger) *Session {
	if convention == "" {
		convention = domain.NamingAuto
	}
	return &Session{
		ID:         id,
		store:      store.New(),
		gates:      NewStepGateRegistry(),
		current:    domain.StepChoice,
		convention: convention,
		log:        log.With(zap.String("session", id)),
	}
}

// State returns the current navigation state, including whether the
// active step's gate would allow advancing right now. Callers use
// the decision to disable forward navigation before the user tries
// it.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		ID:               s.ID,
		CurrentStep:      s.current,
		StepIndex:        stepIndex(s.current),
		StepCount:        len(stepOrder),
		EditingGroupID:   s.editingGroupID,
		NamingConvention: s.convention,
		CanAdvance:       s.evaluateGate(),
	}
}

// Advance moves to the next step if the current step's gate allows
// it.
func (s *Session) Advance() (domain.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editingGroupID != "" {
		return "", domain.ErrEditInProgress
	}

	decision := s.evaluateGate()
	if !decision.Allow {
		return "", domain.NewEngineError(
			domain.ErrStepGateBlocked.Code,
			fmt.Sprintf("gate blocked advance: %v", decision.Blockers),
		)
	}

	next, err := nextStep(s.current)
	if err != nil {
		return "", err
	}
	if !IsValidTransition(s.current, next) {
		return "", domain.NewEngineError(
			domain.ErrInvalidTransition.Code,
			fmt.Sprintf("illegal transition %s -> %s", s.current, next),
		)
	}

	s.log.Info("step advance", zap.String("from", string(s.current)), zap.String("to", string(next)))
	s.current = next
	return next, nil
}

// Back moves to the previous step. Backing out of an in-progress
// group edit abandons the edit and returns to prioritization.
func (s *Session) Back() (domain.Step, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editingGroupID != "" && s.current == domain.StepICP {
		s.log.Info("group edit abandoned", zap.String("group", s.editingGroupID))
		s.editingGroupID = ""
		s.current = domain.StepPrioritization
		return s.current, nil
	}

	prev, err := prevStep(s.current)
	if err != nil {
		return "", err
	}
	s.log.Info("step back", zap.String("from", string(s.current)), zap.String("to", string(prev)))
	s.current = prev
	return prev, nil
}

// RequestGroupEdit jumps from prioritization back to the icp step to
// edit one group, remembering where to return.
func (s *Session) RequestGroupEdit(groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != domain.StepPrioritization {
		return domain.ErrStepNotActive
	}
	if s.editingGroupID != "" {
		return domain.ErrEditInProgress
	}
	if _, ok := s.store.Groups.FindByID(groupID); !ok {
		return domain.ErrGroupNotFound
	}
	s.log.Info("group edit requested", zap.String("group", groupID))
	s.editingGroupID = groupID
	s.current = domain.StepICP
	return nil
}

// EndGroupEdit returns from the edit detour to prioritization.
// Repository writes made during the detour stand; there is no
// rollback here, drafts are the caller's concern.
func (s *Session) EndGroupEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editingGroupID == "" {
		return domain.ErrNoEditInProgress
	}
	s.log.Info("group edit finished", zap.String("group", s.editingGroupID))
	s.editingGroupID = ""
	s.current = domain.StepPrioritization
	return nil
}

// Complete finishes the wizard from the summary step. Navigation
// resets to choice; entities are retained so the report stays
// reproducible until the session is deleted.
func (s *Session) Complete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != domain.StepHolisticSummary {
		return domain.ErrStepNotActive
	}
	s.log.Info("wizard completed")
	s.current = domain.StepChoice
	s.editingGroupID = ""
	return nil
}

// Snapshot copies the full entity state. Available at any step.
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

func (s *Session) evaluateGate() domain.GateDecision {
	gate, err := s.gates.Get(s.current)
	if err != nil {
		return domain.GateDecision{Allow: false, Blockers: []string{err.Error()}}
	}
	return gate.Evaluate(s.store)
}

// requireStep enforces step ownership for mutations: a collection is
// writable only while its owning step is active. The icp edit detour
// lands on the icp step itself, so group edits need no special case.
func (s *Session) requireStep(owner domain.Step) error {
	if s.current != owner {
		return domain.NewEngineError(
			domain.ErrStepNotActive.Code,
			fmt.Sprintf("operation belongs to step %s, current step is %s", owner, s.current),
		)
	}
	return nil
}
