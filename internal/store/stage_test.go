package store

import (
	"testing"

	"github.com/gtm-studio/icp-engine/internal/taxonomy"
)

func stageNames(r *StageRepo) []string {
	var names []string
	for _, s := range r.List() {
		names = append(names, s.Name)
	}
	return names
}

func TestStageRepo_PositionsStaySequential(t *testing.T) {
	r := NewStageRepo()
	a := r.Create("Discovery")
	b := r.Create("Demo")
	c := r.Create("Close")

	for i, s := range r.List() {
		if s.Position != i+1 {
			t.Errorf("stage %d Position = %d, want %d", i, s.Position, i+1)
		}
	}

	r.Delete(b.ID)
	got := r.List()
	if len(got) != 2 {
		t.Fatalf("stage count = %d, want 2", len(got))
	}
	if got[0].ID != a.ID || got[0].Position != 1 {
		t.Errorf("first stage = %s pos %d, want %s pos 1", got[0].ID, got[0].Position, a.ID)
	}
	if got[1].ID != c.ID || got[1].Position != 2 {
		t.Errorf("second stage = %s pos %d, want %s pos 2", got[1].ID, got[1].Position, c.ID)
	}
}

func TestStageRepo_Reorder(t *testing.T) {
	r := NewStageRepo()
	r.Create("A")
	r.Create("B")
	last := r.Create("C")

	if ok := r.Reorder(last.ID, 0); !ok {
		t.Fatal("Reorder returned false")
	}
	want := []string{"C", "A", "B"}
	got := stageNames(r)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	// Positions past the end clamp to the end.
	if ok := r.Reorder(last.ID, 99); !ok {
		t.Fatal("clamped Reorder returned false")
	}
	if got := stageNames(r); got[len(got)-1] != "C" {
		t.Errorf("order = %v, want C last", got)
	}

	if ok := r.Reorder("missing", 0); ok {
		t.Error("Reorder on missing ID returned true")
	}
}

func TestStageRepo_UseDefaults(t *testing.T) {
	r := NewStageRepo()
	r.Create("leftover")

	stages := r.UseDefaults()
	defaults := taxonomy.DefaultSalesStages()
	if len(stages) != len(defaults) {
		t.Fatalf("stage count = %d, want %d", len(stages), len(defaults))
	}
	for i, s := range stages {
		if s.Name != defaults[i].Name {
			t.Errorf("stage %d = %q, want %q", i, s.Name, defaults[i].Name)
		}
		if s.Position != i+1 {
			t.Errorf("stage %d Position = %d, want %d", i, s.Position, i+1)
		}
	}
}

func TestStageRepo_UpdateFiltersUnknownAssets(t *testing.T) {
	r := NewStageRepo()
	s := r.Create("Demo")

	known := taxonomy.AssetLibrary()[0].ID
	assets := []string{known, "made-up-asset", known}
	if ok := r.Update(s.ID, StageUpdate{LinkedAssetIDs: &assets}); !ok {
		t.Fatal("Update returned false")
	}

	got, _ := r.FindByID(s.ID)
	if len(got.LinkedAssetIDs) != 1 || got.LinkedAssetIDs[0] != known {
		t.Errorf("LinkedAssetIDs = %v, want [%s]", got.LinkedAssetIDs, known)
	}
}

func TestStageRepo_UpdateMissing_NoOp(t *testing.T) {
	r := NewStageRepo()
	name := "whatever"
	if ok := r.Update("missing", StageUpdate{Name: &name}); ok {
		t.Error("Update on missing ID returned true")
	}
}
