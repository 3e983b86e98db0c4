package store

import (
	"testing"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

func TestSeniorityRepo_CreateDefaultsNames(t *testing.T) {
	r := NewSeniorityRepo()

	b := r.Create("", "")
	if b.Name != "Seniority Group 1" {
		t.Errorf("Name = %q, want Seniority Group 1", b.Name)
	}
	if b.SecondaryLabel != "Custom Leadership Group" {
		t.Errorf("SecondaryLabel = %q, want Custom Leadership Group", b.SecondaryLabel)
	}
	if len(b.Levels) != 0 {
		t.Errorf("Levels = %v, want empty", b.Levels)
	}

	b2 := r.Create("Execs", "Top brass")
	if b2.Name != "Execs" || b2.SecondaryLabel != "Top brass" {
		t.Errorf("custom fields not kept: %+v", b2)
	}
}

func TestSeniorityRepo_CreateFromDefaults(t *testing.T) {
	r := NewSeniorityRepo()
	r.Create("leftover", "")

	buckets := r.CreateFromDefaults()
	levels := taxonomy.SeniorityLevels()
	if len(buckets) != len(levels) {
		t.Fatalf("bucket count = %d, want %d", len(buckets), len(levels))
	}
	for i, b := range buckets {
		if b.ID != "default-"+levels[i].ID {
			t.Errorf("bucket %d ID = %q, want default-%s", i, b.ID, levels[i].ID)
		}
		if len(b.Levels) != 1 || b.Levels[0] != levels[i].ID {
			t.Errorf("bucket %d Levels = %v, want [%s]", i, b.Levels, levels[i].ID)
		}
	}
}

func TestSeniorityRepo_CommitMove_Exclusive(t *testing.T) {
	r := NewSeniorityRepo()
	a := r.Create("A", "")
	b := r.Create("B", "")

	if err := r.CommitMove("vp", a.ID); err != nil {
		t.Fatalf("CommitMove to A: %v", err)
	}
	if err := r.CommitMove("vp", b.ID); err != nil {
		t.Fatalf("CommitMove to B: %v", err)
	}

	gotA, _ := r.FindByID(a.ID)
	gotB, _ := r.FindByID(b.ID)
	if len(gotA.Levels) != 0 {
		t.Errorf("A still holds %v after move", gotA.Levels)
	}
	if len(gotB.Levels) != 1 || gotB.Levels[0] != "vp" {
		t.Errorf("B Levels = %v, want [vp]", gotB.Levels)
	}
}

func TestSeniorityRepo_CommitMove_Errors(t *testing.T) {
	r := NewSeniorityRepo()
	a := r.Create("A", "")

	if err := r.CommitMove("intern", a.ID); err != domain.ErrUnknownLevelTag {
		t.Errorf("unknown level: err = %v, want ErrUnknownLevelTag", err)
	}
	if err := r.CommitMove("vp", "missing"); err != domain.ErrBucketNotFound {
		t.Errorf("missing bucket: err = %v, want ErrBucketNotFound", err)
	}
	// Failed moves must not disturb current assignment.
	if got, _ := r.FindByID(a.ID); len(got.Levels) != 0 {
		t.Errorf("Levels = %v after failed moves, want empty", got.Levels)
	}
}

func TestSeniorityRepo_RemoveLevel(t *testing.T) {
	r := NewSeniorityRepo()
	a := r.Create("A", "")
	if err := r.CommitMove("director", a.ID); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}

	r.RemoveLevel("director")
	if got, _ := r.FindByID(a.ID); len(got.Levels) != 0 {
		t.Errorf("Levels = %v after remove, want empty", got.Levels)
	}
	if assigned := r.AssignedLevels(); len(assigned) != 0 {
		t.Errorf("AssignedLevels = %v, want empty", assigned)
	}
}

func TestSeniorityRepo_UpdateMissing_NoOp(t *testing.T) {
	r := NewSeniorityRepo()
	name := "whatever"
	if ok := r.Update("missing", SeniorityUpdate{Name: &name}); ok {
		t.Error("Update on missing ID returned true")
	}
}

func TestSeniorityRepo_DeleteReleasesLevels(t *testing.T) {
	r := NewSeniorityRepo()
	a := r.Create("A", "")
	if err := r.CommitMove("manager", a.ID); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}

	if ok := r.Delete(a.ID); !ok {
		t.Fatal("Delete returned false")
	}
	if assigned := r.AssignedLevels(); len(assigned) != 0 {
		t.Errorf("AssignedLevels = %v after delete, want empty", assigned)
	}
	if ok := r.Delete(a.ID); ok {
		t.Error("second Delete returned true")
	}
}

func TestSeniorityRepo_ListInsertionOrder(t *testing.T) {
	r := NewSeniorityRepo()
	r.Create("first", "")
	r.Create("second", "")
	r.Create("third", "")

	got := r.List()
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("List[%d].Name = %q, want %q", i, got[i].Name, name)
		}
	}
}
