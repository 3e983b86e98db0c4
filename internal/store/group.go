package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

// GroupRepo holds the ICP segment groups. Persona membership is an
// ordered unique set.
type GroupRepo struct {
	groups []*domain.ICPSegmentGroup
}

// NewGroupRepo creates an empty repo.
func NewGroupRepo() *GroupRepo {
	return &GroupRepo{}
}

// Create adds a group with no members.
func (r *GroupRepo) Create(name string) *domain.ICPSegmentGroup {
	if name == "" {
		name = fmt.Sprintf("ICP Group %d", len(r.groups)+1)
	}
	g := &domain.ICPSegmentGroup{
		ID:         "group-" + uuid.NewString(),
		Name:       name,
		Color:      taxonomy.GroupColor(len(r.groups)),
		PersonaIDs: []string{},
	}
	r.groups = append(r.groups, g)
	return g
}

// GroupUpdate is a partial update. Nil fields are untouched.
type GroupUpdate struct {
	Name             *string
	Color            *string
	AccountSegmentID *string
	StrategicContext *string
	PainPoints       *string
	ValueProps       *string
	CRMList          *string
	Assets           *string
}

// Update applies a partial update. Unknown IDs are a silent no-op.
func (r *GroupRepo) Update(id string, upd GroupUpdate) bool {
	g := r.find(id)
	if g == nil {
		return false
	}
	if upd.Name != nil {
		g.Name = *upd.Name
	}
	if upd.Color != nil {
		g.Color = *upd.Color
	}
	if upd.AccountSegmentID != nil {
		g.AccountSegmentID = *upd.AccountSegmentID
	}
	if upd.StrategicContext != nil {
		g.StrategicContext = *upd.StrategicContext
	}
	if upd.PainPoints != nil {
		g.PainPoints = *upd.PainPoints
	}
	if upd.ValueProps != nil {
		g.ValueProps = *upd.ValueProps
	}
	if upd.CRMList != nil {
		g.CRMList = *upd.CRMList
	}
	if upd.Assets != nil {
		g.Assets = *upd.Assets
	}
	return true
}

// Delete removes a group. Priority assignments that reference it
// survive as dangling IDs until reassigned.
func (r *GroupRepo) Delete(id string) bool {
	for i, g := range r.groups {
		if g.ID == id {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return true
		}
	}
	return false
}

// AddPersona appends a persona ID to the membership set. Adding an
// existing member is a no-op.
func (r *GroupRepo) AddPersona(groupID, personaID string) error {
	g := r.find(groupID)
	if g == nil {
		return domain.ErrGroupNotFound
	}
	for _, id := range g.PersonaIDs {
		if id == personaID {
			return nil
		}
	}
	g.PersonaIDs = append(g.PersonaIDs, personaID)
	return nil
}

// RemovePersona drops a persona ID from the membership set.
func (r *GroupRepo) RemovePersona(groupID, personaID string) error {
	g := r.find(groupID)
	if g == nil {
		return domain.ErrGroupNotFound
	}
	g.PersonaIDs = removeString(g.PersonaIDs, personaID)
	return nil
}

// FindByID returns a copy of the group, or false.
func (r *GroupRepo) FindByID(id string) (domain.ICPSegmentGroup, bool) {
	g := r.find(id)
	if g == nil {
		return domain.ICPSegmentGroup{}, false
	}
	return copyGroup(g), true
}

// List returns copies of all groups in insertion order.
func (r *GroupRepo) List() []domain.ICPSegmentGroup {
	out := make([]domain.ICPSegmentGroup, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, copyGroup(g))
	}
	return out
}

func (r *GroupRepo) find(id string) *domain.ICPSegmentGroup {
	for _, g := range r.groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func copyGroup(g *domain.ICPSegmentGroup) domain.ICPSegmentGroup {
	out := *g
	out.PersonaIDs = append([]string{}, g.PersonaIDs...)
	return out
}
