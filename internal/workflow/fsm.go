// Package workflow implements the wizard's step state machine and
// the sessions that drive it.
package workflow

import (
	"fmt"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

// stepOrder is the linear forward path through the wizard.
var stepOrder = []domain.Step{
	domain.StepChoice,
	domain.StepSeniority,
	domain.StepDepartment,
	domain.StepPersona,
	domain.StepAccount,
	domain.StepICP,
	domain.StepPrioritization,
	domain.StepStrategicWorkflow,
	domain.StepSalesProcess,
	domain.StepDiagnostic,
	domain.StepHolisticSummary,
}

// validTransitions defines the legal step transitions.
// Each key is a source step, and the value is the set of valid
// target steps. Besides the linear path, prioritization may jump
// back to icp for a group edit, and the final summary resets to
// choice on completion.
var validTransitions = buildTransitions()

func buildTransitions() map[domain.Step]map[domain.Step]bool {
	t := make(map[domain.Step]map[domain.Step]bool)
	for i, s := range stepOrder {
		t[s] = make(map[domain.Step]bool)
		if i+1 < len(stepOrder) {
			t[s][stepOrder[i+1]] = true
		}
		if i > 0 {
			t[s][stepOrder[i-1]] = true
		}
	}
	// prioritization -> icp is already a backward neighbor; keep the
	// entry explicit since the edit detour depends on it.
	t[domain.StepPrioritization][domain.StepICP] = true
	t[domain.StepHolisticSummary][domain.StepChoice] = true
	return t
}

// IsValidTransition checks if a step transition is legal.
func IsValidTransition(from, to domain.Step) bool {
	targets, ok := validTransitions[from]
	if !ok {
		return false
	}
	return targets[to]
}

// IsStep reports whether s names a wizard step.
func IsStep(s domain.Step) bool {
	_, ok := validTransitions[s]
	return ok
}

// nextStep returns the forward neighbor of current.
func nextStep(current domain.Step) (domain.Step, error) {
	for i, s := range stepOrder {
		if s == current {
			if i+1 == len(stepOrder) {
				return "", domain.NewEngineError(
					domain.ErrInvalidTransition.Code,
					fmt.Sprintf("no forward transition from step %s", current),
				)
			}
			return stepOrder[i+1], nil
		}
	}
	return "", domain.ErrInvalidStep
}

// prevStep returns the backward neighbor of current.
func prevStep(current domain.Step) (domain.Step, error) {
	for i, s := range stepOrder {
		if s == current {
			if i == 0 {
				return "", domain.NewEngineError(
					domain.ErrInvalidTransition.Code,
					fmt.Sprintf("no backward transition from step %s", current),
				)
			}
			return stepOrder[i-1], nil
		}
	}
	return "", domain.ErrInvalidStep
}

// stepIndex returns the position of s on the linear path, or -1.
func stepIndex(s domain.Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}
