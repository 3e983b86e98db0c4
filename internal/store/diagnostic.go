package store

import (
	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

// DiagnosticRepo holds the fixed set of diagnostic assessments. The
// population is seeded from the framework at construction and is
// update-only: no assessment is ever created or deleted afterwards.
type DiagnosticRepo struct {
	assessments []*domain.DiagnosticAssessment
}

// NewDiagnosticRepo seeds one assessment per framework focus area.
// Maturity starts unanswered; impact and feasibility start at the
// midpoint.
func NewDiagnosticRepo() *DiagnosticRepo {
	r := &DiagnosticRepo{}
	for _, cat := range taxonomy.DiagnosticFramework() {
		for _, area := range cat.FocusAreas {
			r.assessments = append(r.assessments, &domain.DiagnosticAssessment{
				ID:          area.ID,
				Category:    cat.Name,
				FocusArea:   area.Name,
				Question:    area.Question,
				Maturity:    nil,
				Impact:      5,
				Feasibility: 5,
			})
		}
	}
	return r
}

// DiagnosticUpdate is a partial update. Nil fields are untouched.
// MaturityAnswer must be one of the focus area's picklist texts.
type DiagnosticUpdate struct {
	MaturityAnswer *string
	Impact         *int
	Feasibility    *int
}

// Update applies a partial update. Unknown IDs are a silent no-op;
// invalid values are rejected before anything is written.
func (r *DiagnosticRepo) Update(id string, upd DiagnosticUpdate) (bool, error) {
	a := r.find(id)
	if a == nil {
		return false, nil
	}
	if upd.Impact != nil && (*upd.Impact < 1 || *upd.Impact > 10) {
		return false, domain.ErrScoreOutOfRange
	}
	if upd.Feasibility != nil && (*upd.Feasibility < 1 || *upd.Feasibility > 10) {
		return false, domain.ErrScoreOutOfRange
	}
	var maturity *float64
	if upd.MaturityAnswer != nil {
		score, ok := taxonomy.MaturityScore(id, *upd.MaturityAnswer)
		if !ok {
			return false, domain.ErrInvalidMaturity
		}
		maturity = &score
	}
	if upd.Impact != nil {
		a.Impact = *upd.Impact
	}
	if upd.Feasibility != nil {
		a.Feasibility = *upd.Feasibility
	}
	if maturity != nil {
		a.Maturity = maturity
		a.MaturityLabel = *upd.MaturityAnswer
	}
	return true, nil
}

// FindByID returns a copy of the assessment, or false.
func (r *DiagnosticRepo) FindByID(id string) (domain.DiagnosticAssessment, bool) {
	a := r.find(id)
	if a == nil {
		return domain.DiagnosticAssessment{}, false
	}
	return copyAssessment(a), true
}

// List returns copies of all assessments in framework order.
func (r *DiagnosticRepo) List() []domain.DiagnosticAssessment {
	out := make([]domain.DiagnosticAssessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		out = append(out, copyAssessment(a))
	}
	return out
}

func (r *DiagnosticRepo) find(id string) *domain.DiagnosticAssessment {
	for _, a := range r.assessments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func copyAssessment(a *domain.DiagnosticAssessment) domain.DiagnosticAssessment {
	out := *a
	if a.Maturity != nil {
		m := *a.Maturity
		out.Maturity = &m
	}
	return out
}
