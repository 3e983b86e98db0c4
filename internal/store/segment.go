package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

// SegmentRepo holds the account segments. Criteria lists are open
// string sets: callers may pass values outside the suggested bands.
type SegmentRepo struct {
	segments []*domain.AccountSegment
}

// NewSegmentRepo creates an empty repo.
func NewSegmentRepo() *SegmentRepo {
	return &SegmentRepo{}
}

// Create adds a segment with empty criteria.
func (r *SegmentRepo) Create(name string) *domain.AccountSegment {
	if name == "" {
		name = fmt.Sprintf("Segment %d", len(r.segments)+1)
	}
	s := &domain.AccountSegment{
		ID:             "segment-" + uuid.NewString(),
		Name:           name,
		Industries:     []string{},
		EmployeeCounts: []string{},
		RevenueBands:   []string{},
	}
	r.segments = append(r.segments, s)
	return s
}

// SegmentUpdate is a partial update. Nil fields are untouched.
type SegmentUpdate struct {
	Name           *string
	Industries     *[]string
	EmployeeCounts *[]string
	RevenueBands   *[]string
}

// Update applies a partial update. Unknown IDs are a silent no-op.
// List fields replace wholesale with duplicates removed, keeping
// first-seen order.
func (r *SegmentRepo) Update(id string, upd SegmentUpdate) bool {
	s := r.find(id)
	if s == nil {
		return false
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Industries != nil {
		s.Industries = dedupe(*upd.Industries)
	}
	if upd.EmployeeCounts != nil {
		s.EmployeeCounts = dedupe(*upd.EmployeeCounts)
	}
	if upd.RevenueBands != nil {
		s.RevenueBands = dedupe(*upd.RevenueBands)
	}
	return true
}

// Delete removes a segment. Group links that reference it are left
// dangling.
func (r *SegmentRepo) Delete(id string) bool {
	for i, s := range r.segments {
		if s.ID == id {
			r.segments = append(r.segments[:i], r.segments[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a copy of the segment, or false.
func (r *SegmentRepo) FindByID(id string) (domain.AccountSegment, bool) {
	s := r.find(id)
	if s == nil {
		return domain.AccountSegment{}, false
	}
	return copySegment(s), true
}

// List returns copies of all segments in insertion order.
func (r *SegmentRepo) List() []domain.AccountSegment {
	out := make([]domain.AccountSegment, 0, len(r.segments))
	for _, s := range r.segments {
		out = append(out, copySegment(s))
	}
	return out
}

func (r *SegmentRepo) find(id string) *domain.AccountSegment {
	for _, s := range r.segments {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func copySegment(s *domain.AccountSegment) domain.AccountSegment {
	out := *s
	out.Industries = append([]string{}, s.Industries...)
	out.EmployeeCounts = append([]string{}, s.EmployeeCounts...)
	out.RevenueBands = append([]string{}, s.RevenueBands...)
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
