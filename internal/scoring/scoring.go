// Package scoring ranks diagnostic assessments by weighted priority.
package scoring

import (
	"sort"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

// Weights of the priority formula. Higher impact and feasibility
// raise the score; existing maturity lowers it, since mature areas
// need less attention.
const (
	impactWeight      = 0.6
	feasibilityWeight = 0.4
	maturityWeight    = 0.1
)

// Thresholds for the top-priority shortlist.
const (
	topImpactMin      = 7
	topFeasibilityMin = 6
	topLimit          = 5
)

// PriorityScore computes the weighted score for one assessment.
// Assessments without a maturity answer score zero and are excluded
// from ranking.
func PriorityScore(a domain.DiagnosticAssessment) float64 {
	if a.Maturity == nil {
		return 0
	}
	return float64(a.Impact)*impactWeight + float64(a.Feasibility)*feasibilityWeight - *a.Maturity*maturityWeight
}

// Rank returns the answered assessments sorted by descending
// priority score. The sort is stable so equal scores keep framework
// order, which keeps report output deterministic.
func Rank(assessments []domain.DiagnosticAssessment) []domain.DiagnosticAssessment {
	ranked := make([]domain.DiagnosticAssessment, 0, len(assessments))
	for _, a := range assessments {
		if a.Maturity != nil {
			ranked = append(ranked, a)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return PriorityScore(ranked[i]) > PriorityScore(ranked[j])
	})
	return ranked
}

// TopPriorities returns at most five ranked assessments that clear
// the impact and feasibility thresholds.
func TopPriorities(assessments []domain.DiagnosticAssessment) []domain.DiagnosticAssessment {
	var top []domain.DiagnosticAssessment
	for _, a := range Rank(assessments) {
		if a.Impact >= topImpactMin && a.Feasibility >= topFeasibilityMin {
			top = append(top, a)
		}
		if len(top) == topLimit {
			break
		}
	}
	return top
}
