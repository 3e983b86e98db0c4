package store

import (
	"testing"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

func TestGroupRepo_CreateAssignsPaletteColor(t *testing.T) {
	r := NewGroupRepo()
	a := r.Create("First")
	b := r.Create("Second")

	if a.Color == "" || b.Color == "" {
		t.Error("groups created without a color")
	}
	if a.Color == b.Color {
		t.Errorf("consecutive groups share color %q", a.Color)
	}
}

func TestGroupRepo_AddPersona(t *testing.T) {
	r := NewGroupRepo()
	g := r.Create("Enterprise")

	if err := r.AddPersona(g.ID, "p1"); err != nil {
		t.Fatalf("AddPersona: %v", err)
	}
	if err := r.AddPersona(g.ID, "p1"); err != nil {
		t.Fatalf("duplicate AddPersona: %v", err)
	}
	if err := r.AddPersona("missing", "p1"); err != domain.ErrGroupNotFound {
		t.Errorf("missing group: err = %v, want ErrGroupNotFound", err)
	}

	got, _ := r.FindByID(g.ID)
	if len(got.PersonaIDs) != 1 {
		t.Errorf("PersonaIDs = %v, want single membership", got.PersonaIDs)
	}
}

func TestGroupRepo_RemovePersona(t *testing.T) {
	r := NewGroupRepo()
	g := r.Create("Enterprise")
	r.AddPersona(g.ID, "p1")
	r.AddPersona(g.ID, "p2")

	if err := r.RemovePersona(g.ID, "p1"); err != nil {
		t.Fatalf("RemovePersona: %v", err)
	}
	got, _ := r.FindByID(g.ID)
	if len(got.PersonaIDs) != 1 || got.PersonaIDs[0] != "p2" {
		t.Errorf("PersonaIDs = %v, want [p2]", got.PersonaIDs)
	}
	if err := r.RemovePersona("missing", "p2"); err != domain.ErrGroupNotFound {
		t.Errorf("missing group: err = %v, want ErrGroupNotFound", err)
	}
}

func TestGroupRepo_UpdateMessagingFields(t *testing.T) {
	r := NewGroupRepo()
	g := r.Create("Enterprise")

	ctx := "Land and expand"
	pains := "Manual workflows"
	if ok := r.Update(g.ID, GroupUpdate{StrategicContext: &ctx, PainPoints: &pains}); !ok {
		t.Fatal("Update returned false")
	}

	got, _ := r.FindByID(g.ID)
	if got.StrategicContext != ctx || got.PainPoints != pains {
		t.Errorf("messaging fields not applied: %+v", got)
	}
	// Untouched fields keep their values.
	if got.Name != "Enterprise" {
		t.Errorf("Name = %q, want Enterprise", got.Name)
	}
}

func TestGroupRepo_UpdateMissing_NoOp(t *testing.T) {
	r := NewGroupRepo()
	name := "whatever"
	if ok := r.Update("missing", GroupUpdate{Name: &name}); ok {
		t.Error("Update on missing ID returned true")
	}
}
