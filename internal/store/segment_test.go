package store

import (
	"reflect"
	"testing"
)

func TestSegmentRepo_UpdateDedupesCriteria(t *testing.T) {
	r := NewSegmentRepo()
	s := r.Create("Mid-Market")

	industries := []string{"SaaS", "Fintech", "SaaS", "Healthcare", "Fintech"}
	if ok := r.Update(s.ID, SegmentUpdate{Industries: &industries}); !ok {
		t.Fatal("Update returned false")
	}

	got, _ := r.FindByID(s.ID)
	want := []string{"SaaS", "Fintech", "Healthcare"}
	if !reflect.DeepEqual(got.Industries, want) {
		t.Errorf("Industries = %v, want %v", got.Industries, want)
	}
}

func TestSegmentRepo_UpdateReplacesWholesale(t *testing.T) {
	r := NewSegmentRepo()
	s := r.Create("Enterprise")

	first := []string{"1-10", "11-50"}
	r.Update(s.ID, SegmentUpdate{EmployeeCounts: &first})
	second := []string{"5,001+"}
	r.Update(s.ID, SegmentUpdate{EmployeeCounts: &second})

	got, _ := r.FindByID(s.ID)
	if !reflect.DeepEqual(got.EmployeeCounts, second) {
		t.Errorf("EmployeeCounts = %v, want %v", got.EmployeeCounts, second)
	}
}

func TestSegmentRepo_EmptyCriteriaMeansAny(t *testing.T) {
	r := NewSegmentRepo()
	s := r.Create("Anyone")

	got, _ := r.FindByID(s.ID)
	if len(got.Industries) != 0 || len(got.EmployeeCounts) != 0 || len(got.RevenueBands) != 0 {
		t.Errorf("fresh segment has criteria: %+v", got)
	}
}

func TestSegmentRepo_DefaultName(t *testing.T) {
	r := NewSegmentRepo()
	s := r.Create("")
	if s.Name != "Segment 1" {
		t.Errorf("Name = %q, want Segment 1", s.Name)
	}
}

func TestSegmentRepo_UpdateMissing_NoOp(t *testing.T) {
	r := NewSegmentRepo()
	name := "whatever"
	if ok := r.Update("missing", SegmentUpdate{Name: &name}); ok {
		t.Error("Update on missing ID returned true")
	}
}
