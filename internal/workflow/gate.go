package workflow

import (
	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/store"
)

// Gate evaluates whether a session can exit its current step.
type Gate interface {
	Name() string
	Evaluate(st *store.Store) domain.GateDecision
}

// openGate always allows the transition. Later wizard steps have no
// exit precondition.
type openGate struct{}

func (openGate) Name() string { return "open" }

func (openGate) Evaluate(*store.Store) domain.GateDecision {
	return domain.GateDecision{Allow: true}
}

// collectionGate blocks until the step's collection is non-empty.
// It checks presence only; entity validity is the repository's
// business.
type collectionGate struct {
	name    string
	blocker string
	count   func(*store.Store) int
}

func (g *collectionGate) Name() string { return g.name }

func (g *collectionGate) Evaluate(st *store.Store) domain.GateDecision {
	if g.count(st) > 0 {
		return domain.GateDecision{Allow: true}
	}
	return domain.GateDecision{Allow: false, Blockers: []string{g.blocker}}
}

// StepGateRegistry maps each step to its exit gate.
type StepGateRegistry struct {
	gates map[domain.Step]Gate
}

// NewStepGateRegistry creates the registry with the wizard's default
// gating: the five entity-authoring steps require at least one entity
// before advancing, every other step is always passable.
func NewStepGateRegistry() *StepGateRegistry {
	open := openGate{}
	gates := map[domain.Step]Gate{
		domain.StepChoice: open,
		domain.StepSeniority: &collectionGate{
			name:    "seniority",
			blocker: "at least one seniority bucket is required",
			count:   func(st *store.Store) int { return len(st.Seniority.List()) },
		},
		domain.StepDepartment: &collectionGate{
			name:    "department",
			blocker: "at least one function bucket is required",
			count:   func(st *store.Store) int { return len(st.Departments.List()) },
		},
		domain.StepPersona: &collectionGate{
			name:    "persona",
			blocker: "at least one persona is required",
			count:   func(st *store.Store) int { return len(st.Personas.List()) },
		},
		domain.StepAccount: &collectionGate{
			name:    "account",
			blocker: "at least one account segment is required",
			count:   func(st *store.Store) int { return len(st.Segments.List()) },
		},
		domain.StepICP: &collectionGate{
			name:    "icp",
			blocker: "at least one ICP segment group is required",
			count:   func(st *store.Store) int { return len(st.Groups.List()) },
		},
		domain.StepPrioritization:    open,
		domain.StepStrategicWorkflow: open,
		domain.StepSalesProcess:      open,
		domain.StepDiagnostic:        open,
		domain.StepHolisticSummary:   open,
	}
	return &StepGateRegistry{gates: gates}
}

// Register sets a custom gate for a step.
func (r *StepGateRegistry) Register(step domain.Step, gate Gate) {
	r.gates[step] = gate
}

// Get returns the gate for a step, or an error if none is
// registered.
func (r *StepGateRegistry) Get(step domain.Step) (Gate, error) {
	g, ok := r.gates[step]
	if !ok {
		return nil, domain.ErrGateNotRegistered
	}
	return g, nil
}
