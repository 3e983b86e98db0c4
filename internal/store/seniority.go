// Package store implements the in-memory entity repositories backing
// a wizard session. Collections keep insertion order so report
// output stays deterministic. State lives only for the lifetime of
// the session; closing the engine discards it.
package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

// SeniorityRepo holds the seniority buckets and enforces that each
// level tag lives in at most one bucket.
type SeniorityRepo struct {
	buckets []*domain.SeniorityBucket
}

// NewSeniorityRepo creates an empty repo.
func NewSeniorityRepo() *SeniorityRepo {
	return &SeniorityRepo{}
}

// Create adds an empty bucket. Empty name and label get the stock
// placeholders.
func (r *SeniorityRepo) Create(name, secondaryLabel string) *domain.SeniorityBucket {
	if name == "" {
		name = fmt.Sprintf("Seniority Group %d", len(r.buckets)+1)
	}
	if secondaryLabel == "" {
		secondaryLabel = "Custom Leadership Group"
	}
	b := &domain.SeniorityBucket{
		ID:             "bucket-" + uuid.NewString(),
		Name:           name,
		SecondaryLabel: secondaryLabel,
		Color:          taxonomy.SeniorityBucketColor(len(r.buckets)),
		Levels:         []string{},
	}
	r.buckets = append(r.buckets, b)
	return b
}

// CreateFromDefaults replaces all buckets with one bucket per
// seniority level.
func (r *SeniorityRepo) CreateFromDefaults() []domain.SeniorityBucket {
	levels := taxonomy.SeniorityLevels()
	r.buckets = make([]*domain.SeniorityBucket, 0, len(levels))
	for i, l := range levels {
		r.buckets = append(r.buckets, &domain.SeniorityBucket{
			ID:             "default-" + l.ID,
			Name:           l.Name,
			SecondaryLabel: fmt.Sprintf("All %s roles", l.Name),
			Color:          taxonomy.SeniorityBucketColor(i),
			Levels:         []string{l.ID},
		})
	}
	return r.List()
}

// SeniorityUpdate is a partial update. Nil fields are untouched.
type SeniorityUpdate struct {
	Name           *string
	SecondaryLabel *string
}

// Update applies a partial update. Unknown IDs are a silent no-op.
func (r *SeniorityRepo) Update(id string, upd SeniorityUpdate) bool {
	b := r.find(id)
	if b == nil {
		return false
	}
	if upd.Name != nil {
		b.Name = *upd.Name
	}
	if upd.SecondaryLabel != nil {
		b.SecondaryLabel = *upd.SecondaryLabel
	}
	return true
}

// Delete removes a bucket. Its levels return to the unassigned pool.
// References from personas are left dangling.
func (r *SeniorityRepo) Delete(id string) bool {
	for i, b := range r.buckets {
		if b.ID == id {
			r.buckets = append(r.buckets[:i], r.buckets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a copy of the bucket, or false.
func (r *SeniorityRepo) FindByID(id string) (domain.SeniorityBucket, bool) {
	b := r.find(id)
	if b == nil {
		return domain.SeniorityBucket{}, false
	}
	return copySeniority(b), true
}

// List returns copies of all buckets in insertion order.
func (r *SeniorityRepo) List() []domain.SeniorityBucket {
	out := make([]domain.SeniorityBucket, 0, len(r.buckets))
	for _, b := range r.buckets {
		out = append(out, copySeniority(b))
	}
	return out
}

// CommitMove places a level into the target bucket, removing it from
// any bucket that currently holds it. The reassignment happens in
// one step so no observer sees the level in two buckets or in none.
func (r *SeniorityRepo) CommitMove(levelID, targetBucketID string) error {
	if !taxonomy.IsLevel(levelID) {
		return domain.ErrUnknownLevelTag
	}
	target := r.find(targetBucketID)
	if target == nil {
		return domain.ErrBucketNotFound
	}
	for _, b := range r.buckets {
		b.Levels = removeString(b.Levels, levelID)
	}
	target.Levels = append(target.Levels, levelID)
	return nil
}

// RemoveLevel drops a level back to the unassigned pool.
func (r *SeniorityRepo) RemoveLevel(levelID string) {
	for _, b := range r.buckets {
		b.Levels = removeString(b.Levels, levelID)
	}
}

// AssignedLevels returns every level currently held by a bucket.
func (r *SeniorityRepo) AssignedLevels() []string {
	var out []string
	for _, b := range r.buckets {
		out = append(out, b.Levels...)
	}
	return out
}

func (r *SeniorityRepo) find(id string) *domain.SeniorityBucket {
	for _, b := range r.buckets {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func copySeniority(b *domain.SeniorityBucket) domain.SeniorityBucket {
	out := *b
	out.Levels = append([]string{}, b.Levels...)
	return out
}

func removeString(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
