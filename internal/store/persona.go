package store

import (
	"github.com/google/uuid"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

// PersonaRepo holds the persona buckets.
type PersonaRepo struct {
	personas []*domain.PersonaBucket
}

// NewPersonaRepo creates an empty repo.
func NewPersonaRepo() *PersonaRepo {
	return &PersonaRepo{}
}

// Create adds a manually authored persona.
func (r *PersonaRepo) Create(name, seniorityBucketID, departmentBucketID string) *domain.PersonaBucket {
	p := &domain.PersonaBucket{
		ID:                 "persona-" + uuid.NewString(),
		Name:               name,
		SeniorityBucketID:  seniorityBucketID,
		DepartmentBucketID: departmentBucketID,
	}
	r.personas = append(r.personas, p)
	return p
}

// Upsert inserts a persona with a caller-chosen ID unless that ID
// already exists. Used by bulk generation: the canonical pair ID
// makes regeneration idempotent.
func (r *PersonaRepo) Upsert(id, name, seniorityBucketID, departmentBucketID string) bool {
	if r.find(id) != nil {
		return false
	}
	r.personas = append(r.personas, &domain.PersonaBucket{
		ID:                 id,
		Name:               name,
		SeniorityBucketID:  seniorityBucketID,
		DepartmentBucketID: departmentBucketID,
	})
	return true
}

// PersonaUpdate is a partial update. Nil fields are untouched.
type PersonaUpdate struct {
	Name               *string
	SeniorityBucketID  *string
	DepartmentBucketID *string
}

// Update applies a partial update. Unknown IDs are a silent no-op.
func (r *PersonaRepo) Update(id string, upd PersonaUpdate) bool {
	p := r.find(id)
	if p == nil {
		return false
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.SeniorityBucketID != nil {
		p.SeniorityBucketID = *upd.SeniorityBucketID
	}
	if upd.DepartmentBucketID != nil {
		p.DepartmentBucketID = *upd.DepartmentBucketID
	}
	return true
}

// Delete removes a persona. Group memberships that reference it are
// left dangling.
func (r *PersonaRepo) Delete(id string) bool {
	for i, p := range r.personas {
		if p.ID == id {
			r.personas = append(r.personas[:i], r.personas[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a copy of the persona, or false.
func (r *PersonaRepo) FindByID(id string) (domain.PersonaBucket, bool) {
	p := r.find(id)
	if p == nil {
		return domain.PersonaBucket{}, false
	}
	return *p, true
}

// List returns copies of all personas in insertion order.
func (r *PersonaRepo) List() []domain.PersonaBucket {
	out := make([]domain.PersonaBucket, 0, len(r.personas))
	for _, p := range r.personas {
		out = append(out, *p)
	}
	return out
}

func (r *PersonaRepo) find(id string) *domain.PersonaBucket {
	for _, p := range r.personas {
		if p.ID == id {
			return p
		}
	}
	return nil
}
