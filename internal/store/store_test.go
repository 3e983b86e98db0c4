package store

import (
	"testing"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

func TestGeneratePersonas_AutoNamesAndIdempotence(t *testing.T) {
	s := New()
	sen := s.Seniority.Create("VP", "")
	dept := s.Departments.Create("Sales", "")

	created := s.GeneratePersonas([]string{sen.ID}, []string{dept.ID})
	if len(created) != 1 {
		t.Fatalf("created = %d personas, want 1", len(created))
	}
	p := created[0]
	if p.Name != "VP - Sales" {
		t.Errorf("Name = %q, want VP - Sales", p.Name)
	}
	if p.ID != PersonaPairID(sen.ID, dept.ID) {
		t.Errorf("ID = %q, want canonical pair ID", p.ID)
	}

	// Regenerating the same selection creates nothing.
	if again := s.GeneratePersonas([]string{sen.ID}, []string{dept.ID}); len(again) != 0 {
		t.Errorf("regeneration created %d personas, want 0", len(again))
	}
	if got := s.Personas.List(); len(got) != 1 {
		t.Errorf("persona count = %d, want 1", len(got))
	}
}

func TestGeneratePersonas_CrossProduct(t *testing.T) {
	s := New()
	s1 := s.Seniority.Create("VP", "")
	s2 := s.Seniority.Create("Director", "")
	d1 := s.Departments.Create("Sales", "")
	d2 := s.Departments.Create("Marketing", "")

	created := s.GeneratePersonas([]string{s1.ID, s2.ID}, []string{d1.ID, d2.ID})
	if len(created) != 4 {
		t.Fatalf("created = %d personas, want 4", len(created))
	}
}

func TestGeneratePersonas_SkipsUnknownBuckets(t *testing.T) {
	s := New()
	sen := s.Seniority.Create("VP", "")
	dept := s.Departments.Create("Sales", "")

	created := s.GeneratePersonas([]string{sen.ID, "ghost"}, []string{dept.ID, "phantom"})
	if len(created) != 1 {
		t.Errorf("created = %d personas, want 1", len(created))
	}
}

func TestAddPersonaToGroup_RequiresPersona(t *testing.T) {
	s := New()
	g := s.Groups.Create("Enterprise")

	if err := s.AddPersonaToGroup(g.ID, "missing"); err != domain.ErrPersonaNotFound {
		t.Errorf("err = %v, want ErrPersonaNotFound", err)
	}

	p := s.Personas.Create("Buyer", "", "")
	if err := s.AddPersonaToGroup(g.ID, p.ID); err != nil {
		t.Fatalf("AddPersonaToGroup: %v", err)
	}
	// Adding twice keeps membership unique.
	if err := s.AddPersonaToGroup(g.ID, p.ID); err != nil {
		t.Fatalf("second add: %v", err)
	}
	got, _ := s.Groups.FindByID(g.ID)
	if len(got.PersonaIDs) != 1 {
		t.Errorf("PersonaIDs = %v, want single membership", got.PersonaIDs)
	}
}

func TestDeletePersona_LeavesDanglingGroupRef(t *testing.T) {
	s := New()
	g := s.Groups.Create("Enterprise")
	p := s.Personas.Create("Buyer", "", "")
	if err := s.AddPersonaToGroup(g.ID, p.ID); err != nil {
		t.Fatalf("AddPersonaToGroup: %v", err)
	}

	s.Personas.Delete(p.ID)

	// Deletion never cascades; the membership entry stays behind.
	got, _ := s.Groups.FindByID(g.ID)
	if len(got.PersonaIDs) != 1 || got.PersonaIDs[0] != p.ID {
		t.Errorf("PersonaIDs = %v, want dangling [%s]", got.PersonaIDs, p.ID)
	}
}

func TestDeleteGroup_LeavesPriorityAssignment(t *testing.T) {
	s := New()
	g := s.Groups.Create("Enterprise")
	if err := s.Priorities.Assign(g.ID, domain.PriorityHigh); err != nil {
		t.Fatalf("Assign: %v", err)
	}

	s.Groups.Delete(g.ID)

	board := s.Priorities.Board()
	if len(board.High) != 1 || board.High[0] != g.ID {
		t.Errorf("High = %v, want dangling [%s]", board.High, g.ID)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := New()
	b := s.Seniority.Create("VP", "")
	if err := s.Seniority.CommitMove("vp", b.ID); err != nil {
		t.Fatalf("CommitMove: %v", err)
	}

	snap := s.Snapshot()
	snap.SeniorityBuckets[0].Levels[0] = "mutated"

	got, _ := s.Seniority.FindByID(b.ID)
	if got.Levels[0] != "vp" {
		t.Error("snapshot mutation leaked into the store")
	}
}

func TestSnapshot_CarriesAssetLibrary(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	if len(snap.Assets) == 0 {
		t.Fatal("snapshot has no assets")
	}
	for _, a := range snap.Assets {
		if a.ID == "" || a.Name == "" {
			t.Errorf("asset %+v missing ID or name", a)
		}
	}
}
