package domain

import "fmt"

// EngineError is the unified error type for the engine.
// Each error has a numeric code and human-readable message.
type EngineError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("engine error %d: %s", e.Code, e.Message)
}

// NewEngineError creates a new EngineError.
func NewEngineError(code int, msg string) *EngineError {
	return &EngineError{Code: code, Message: msg}
}

// WrapEngineError creates an EngineError that includes a cause.
func WrapEngineError(code int, msg string, cause error) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf("%s: %v", msg, cause)}
}

// ---- Wizard / FSM / Gate errors (-32010 to -32039) ----

var (
	ErrInvalidTransition = &EngineError{Code: -32010, Message: "invalid step transition"}
	ErrStepGateBlocked   = &EngineError{Code: -32011, Message: "step gate blocked advance"}
	ErrSessionNotFound   = &EngineError{Code: -32012, Message: "wizard session not found"}
	ErrStepNotActive     = &EngineError{Code: -32013, Message: "operation not allowed on inactive step"}
	ErrNoEditInProgress  = &EngineError{Code: -32014, Message: "no group edit in progress"}
	ErrEditInProgress    = &EngineError{Code: -32015, Message: "a group edit is already in progress"}
	ErrInvalidStep       = &EngineError{Code: -32016, Message: "invalid step value"}
	ErrGateNotRegistered = &EngineError{Code: -32017, Message: "no gate registered for step"}
	ErrSessionLimit      = &EngineError{Code: -32018, Message: "maximum concurrent sessions reached"}
)

// ---- Repository errors (-32040 to -32069) ----

var (
	ErrBucketNotFound       = &EngineError{Code: -32040, Message: "bucket not found"}
	ErrPersonaNotFound      = &EngineError{Code: -32041, Message: "persona not found"}
	ErrSegmentNotFound      = &EngineError{Code: -32042, Message: "account segment not found"}
	ErrGroupNotFound        = &EngineError{Code: -32043, Message: "segment group not found"}
	ErrStageNotFound        = &EngineError{Code: -32044, Message: "sales stage not found"}
	ErrAssessmentNotFound   = &EngineError{Code: -32045, Message: "diagnostic assessment not found"}
	ErrUnknownLevelTag      = &EngineError{Code: -32046, Message: "unknown seniority level tag"}
	ErrUnknownFunctionKey   = &EngineError{Code: -32047, Message: "unknown function key"}
	ErrScoreOutOfRange      = &EngineError{Code: -32048, Message: "score must be between 1 and 10"}
	ErrInvalidPriorityLevel = &EngineError{Code: -32049, Message: "invalid priority level"}
	ErrInvalidMaturity      = &EngineError{Code: -32050, Message: "maturity answer not in picklist"}
)

// ---- Config errors (-32130 to -32159) ----

var (
	ErrConfigInvalid = &EngineError{Code: -32136, Message: "invalid configuration"}
)
