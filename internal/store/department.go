package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

// DepartmentRepo holds the function buckets and enforces that each
// function key lives in at most one bucket.
type DepartmentRepo struct {
	buckets []*domain.DepartmentBucket
}

// NewDepartmentRepo creates an empty repo.
func NewDepartmentRepo() *DepartmentRepo {
	return &DepartmentRepo{}
}

// Create adds an empty bucket.
func (r *DepartmentRepo) Create(name, secondaryLabel string) *domain.DepartmentBucket {
	if name == "" {
		name = fmt.Sprintf("Function Group %d", len(r.buckets)+1)
	}
	b := &domain.DepartmentBucket{
		ID:             "dept-bucket-" + uuid.NewString(),
		Name:           name,
		SecondaryLabel: secondaryLabel,
		Color:          taxonomy.DepartmentBucketColor(len(r.buckets)),
		Functions:      []domain.FunctionRef{},
	}
	r.buckets = append(r.buckets, b)
	return b
}

// DepartmentUpdate is a partial update. Nil fields are untouched.
type DepartmentUpdate struct {
	Name           *string
	SecondaryLabel *string
}

// Update applies a partial update. Unknown IDs are a silent no-op.
func (r *DepartmentRepo) Update(id string, upd DepartmentUpdate) bool {
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

// Delete removes a bucket. Its functions return to the catalog pool.
func (r *DepartmentRepo) Delete(id string) bool {
	for i, b := range r.buckets {
		if b.ID == id {
			r.buckets = append(r.buckets[:i], r.buckets[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a copy of the bucket, or false.
func (r *DepartmentRepo) FindByID(id string) (domain.DepartmentBucket, bool) {
	b := r.find(id)
	if b == nil {
		return domain.DepartmentBucket{}, false
	}
	return copyDepartment(b), true
}

// List returns copies of all buckets in insertion order.
func (r *DepartmentRepo) List() []domain.DepartmentBucket {
	out := make([]domain.DepartmentBucket, 0, len(r.buckets))
	for _, b := range r.buckets {
		out = append(out, copyDepartment(b))
	}
	return out
}

// CommitMove places a function into the target bucket, removing it
// from any bucket that currently holds it. The catalog supplies the
// display name and source department.
func (r *DepartmentRepo) CommitMove(functionKey, targetBucketID string) error {
	fn, deptName, ok := taxonomy.FindFunction(functionKey)
	if !ok {
		return domain.ErrUnknownFunctionKey
	}
	target := r.find(targetBucketID)
	if target == nil {
		return domain.ErrBucketNotFound
	}
	for _, b := range r.buckets {
		b.Functions = removeFunction(b.Functions, functionKey)
	}
	target.Functions = append(target.Functions, domain.FunctionRef{
		Key:              fn.Key,
		Name:             fn.Name,
		SourceDepartment: deptName,
	})
	return nil
}

// AssignDepartment drops a whole catalog department onto a bucket.
// Functions already held by any bucket are skipped rather than
// moved.
func (r *DepartmentRepo) AssignDepartment(departmentName, targetBucketID string) (int, error) {
	dept, ok := taxonomy.FindDepartment(departmentName)
	if !ok {
		return 0, domain.ErrUnknownFunctionKey
	}
	target := r.find(targetBucketID)
	if target == nil {
		return 0, domain.ErrBucketNotFound
	}
	assigned := r.assignedSet()
	added := 0
	for _, fn := range dept.Functions {
		if assigned[fn.Key] {
			continue
		}
		target.Functions = append(target.Functions, domain.FunctionRef{
			Key:              fn.Key,
			Name:             fn.Name,
			SourceDepartment: dept.Name,
		})
		added++
	}
	return added, nil
}

// RemoveFunction drops a function back to the catalog pool.
func (r *DepartmentRepo) RemoveFunction(functionKey string) {
	for _, b := range r.buckets {
		b.Functions = removeFunction(b.Functions, functionKey)
	}
}

// AssignedFunctionKeys returns every function key currently held by
// a bucket.
func (r *DepartmentRepo) AssignedFunctionKeys() []string {
	var out []string
	for _, b := range r.buckets {
		for _, f := range b.Functions {
			out = append(out, f.Key)
		}
	}
	return out
}

func (r *DepartmentRepo) assignedSet() map[string]bool {
	set := make(map[string]bool)
	for _, k := range r.AssignedFunctionKeys() {
		set[k] = true
	}
	return set
}

func (r *DepartmentRepo) find(id string) *domain.DepartmentBucket {
	for _, b := range r.buckets {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func copyDepartment(b *domain.DepartmentBucket) domain.DepartmentBucket {
	out := *b
	out.Functions = append([]domain.FunctionRef{}, b.Functions...)
	return out
}

func removeFunction(fns []domain.FunctionRef, key string) []domain.FunctionRef {
	for i, f := range fns {
		if f.Key == key {
			return append(fns[:i], fns[i+1:]...)
		}
	}
	return fns
}
