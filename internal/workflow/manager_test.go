package workflow

import (
	"testing"

	"go.uber.org/zap"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

func TestSessionManager_CreateGetDelete(t *testing.T) {
	m := NewSessionManager(4, domain.NamingAuto, zap.NewNop())

	sess, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID == "" {
		t.Error("session has empty ID")
	}

	got, err := m.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != sess {
		t.Error("Get returned a different session")
	}

	if err := m.Delete(sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(sess.ID); err != domain.ErrSessionNotFound {
		t.Errorf("Get after delete: err = %v, want ErrSessionNotFound", err)
	}
	if err := m.Delete(sess.ID); err != domain.ErrSessionNotFound {
		t.Errorf("second Delete: err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionManager_Limit(t *testing.T) {
	m := NewSessionManager(2, domain.NamingAuto, zap.NewNop())

	first, err := m.Create()
	if err != nil {
		t.Fatalf("Create 1: %v", err)
	}
	if _, err := m.Create(); err != nil {
		t.Fatalf("Create 2: %v", err)
	}
	if _, err := m.Create(); err != domain.ErrSessionLimit {
		t.Errorf("Create over limit: err = %v, want ErrSessionLimit", err)
	}

	// Deleting frees a slot.
	if err := m.Delete(first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Create(); err != nil {
		t.Errorf("Create after delete: %v", err)
	}
}

func TestSessionManager_UnboundedWhenZero(t *testing.T) {
	m := NewSessionManager(0, domain.NamingAuto, zap.NewNop())
	for i := 0; i < 10; i++ {
		if _, err := m.Create(); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	if m.Count() != 10 {
		t.Errorf("Count = %d, want 10", m.Count())
	}
}

func TestSessionManager_DefaultConvention(t *testing.T) {
	m := NewSessionManager(1, domain.NamingCustom, zap.NewNop())
	sess, err := m.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.State().NamingConvention != domain.NamingCustom {
		t.Errorf("NamingConvention = %s, want custom", sess.State().NamingConvention)
	}
}
