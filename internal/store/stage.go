package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

// StageRepo holds the sales process stages. Slice order is stage
// order; Position is recomputed after every mutation.
type StageRepo struct {
	stages []*domain.SalesStage
}

// NewStageRepo creates an empty repo.
func NewStageRepo() *StageRepo {
	return &StageRepo{}
}

// Create appends a new stage at the end of the process.
func (r *StageRepo) Create(name string) *domain.SalesStage {
	if name == "" {
		name = fmt.Sprintf("New Stage %d", len(r.stages)+1)
	}
	s := &domain.SalesStage{
		ID:             "stage-" + uuid.NewString(),
		Name:           name,
		LinkedAssetIDs: []string{},
	}
	r.stages = append(r.stages, s)
	r.renumber()
	return s
}

// UseDefaults replaces all stages with the standard buyer journey.
func (r *StageRepo) UseDefaults() []domain.SalesStage {
	defaults := taxonomy.DefaultSalesStages()
	r.stages = make([]*domain.SalesStage, 0, len(defaults))
	for i, d := range defaults {
		r.stages = append(r.stages, &domain.SalesStage{
			ID:             fmt.Sprintf("stage-default-%d", i),
			Name:           d.Name,
			Description:    d.Description,
			LinkedAssetIDs: []string{},
		})
	}
	r.renumber()
	return r.List()
}

// StageUpdate is a partial update. Nil fields are untouched.
type StageUpdate struct {
	Name                 *string
	Description          *string
	ExitCriteria         *string
	RequiredActivities   *string
	TrainingRequirements *string
	LinkedAssetIDs       *[]string
}

// Update applies a partial update. Unknown IDs are a silent no-op.
// Linked assets outside the asset library are dropped.
func (r *StageRepo) Update(id string, upd StageUpdate) bool {
	s := r.find(id)
	if s == nil {
		return false
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.ExitCriteria != nil {
		s.ExitCriteria = *upd.ExitCriteria
	}
	if upd.RequiredActivities != nil {
		s.RequiredActivities = *upd.RequiredActivities
	}
	if upd.TrainingRequirements != nil {
		s.TrainingRequirements = *upd.TrainingRequirements
	}
	if upd.LinkedAssetIDs != nil {
		s.LinkedAssetIDs = filterKnownAssets(*upd.LinkedAssetIDs)
	}
	return true
}

// Delete removes a stage and closes the ordering gap.
func (r *StageRepo) Delete(id string) bool {
	for i, s := range r.stages {
		if s.ID == id {
			r.stages = append(r.stages[:i], r.stages[i+1:]...)
			r.renumber()
			return true
		}
	}
	return false
}

// Reorder moves a stage to the given zero-based position. Positions
// past the end clamp to the end.
func (r *StageRepo) Reorder(id string, position int) bool {
	idx := -1
	for i, s := range r.stages {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s := r.stages[idx]
	r.stages = append(r.stages[:idx], r.stages[idx+1:]...)
	if position < 0 {
		position = 0
	}
	if position > len(r.stages) {
		position = len(r.stages)
	}
	r.stages = append(r.stages[:position], append([]*domain.SalesStage{s}, r.stages[position:]...)...)
	r.renumber()
	return true
}

// FindByID returns a copy of the stage, or false.
func (r *StageRepo) FindByID(id string) (domain.SalesStage, bool) {
	s := r.find(id)
	if s == nil {
		return domain.SalesStage{}, false
	}
	return copyStage(s), true
}

// List returns copies of all stages in process order.
func (r *StageRepo) List() []domain.SalesStage {
	out := make([]domain.SalesStage, 0, len(r.stages))
	for _, s := range r.stages {
		out = append(out, copyStage(s))
	}
	return out
}

func (r *StageRepo) renumber() {
	for i, s := range r.stages {
		s.Position = i + 1
	}
}

func (r *StageRepo) find(id string) *domain.SalesStage {
	for _, s := range r.stages {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func copyStage(s *domain.SalesStage) domain.SalesStage {
	out := *s
	out.LinkedAssetIDs = append([]string{}, s.LinkedAssetIDs...)
	return out
}

func filterKnownAssets(ids []string) []string {
	known := make(map[string]bool)
	for _, a := range taxonomy.AssetLibrary() {
		known[a.ID] = true
	}
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !known[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
