package store

import (
	"testing"

	"github.com/gtm-studio/icp-engine/internal/domain"
)

func TestPriorityBoard_AssignMovesBetweenTiers(t *testing.T) {
	s := NewPriorityBoardState()

	if err := s.Assign("g1", domain.PriorityHigh); err != nil {
		t.Fatalf("Assign high: %v", err)
	}
	if err := s.Assign("g1", domain.PriorityLow); err != nil {
		t.Fatalf("Assign low: %v", err)
	}

	board := s.Board()
	if len(board.High) != 0 {
		t.Errorf("High = %v, want empty", board.High)
	}
	if len(board.Low) != 1 || board.Low[0] != "g1" {
		t.Errorf("Low = %v, want [g1]", board.Low)
	}
}

func TestPriorityBoard_ReassignSameTierMovesToEnd(t *testing.T) {
	s := NewPriorityBoardState()
	s.Assign("g1", domain.PriorityHigh)
	s.Assign("g2", domain.PriorityHigh)
	s.Assign("g1", domain.PriorityHigh)

	board := s.Board()
	if len(board.High) != 2 || board.High[0] != "g2" || board.High[1] != "g1" {
		t.Errorf("High = %v, want [g2 g1]", board.High)
	}
}

func TestPriorityBoard_InvalidLevel(t *testing.T) {
	s := NewPriorityBoardState()
	if err := s.Assign("g1", "urgent"); err != domain.ErrInvalidPriorityLevel {
		t.Errorf("err = %v, want ErrInvalidPriorityLevel", err)
	}
}

func TestPriorityBoard_RejectedAssignLeavesBoardUntouched(t *testing.T) {
	s := NewPriorityBoardState()
	if err := s.Assign("g1", domain.PriorityHigh); err != nil {
		t.Fatalf("Assign high: %v", err)
	}

	if err := s.Assign("g1", "critical"); err != domain.ErrInvalidPriorityLevel {
		t.Fatalf("err = %v, want ErrInvalidPriorityLevel", err)
	}
	if level := s.LevelOf("g1"); level != domain.PriorityHigh {
		t.Errorf("LevelOf after rejected assign = %q, want high", level)
	}
	board := s.Board()
	if len(board.High) != 1 || board.High[0] != "g1" {
		t.Errorf("High = %v, want [g1]", board.High)
	}
}

func TestPriorityBoard_Unassign(t *testing.T) {
	s := NewPriorityBoardState()
	s.Assign("g1", domain.PriorityMedium)
	s.Unassign("g1")

	if level := s.LevelOf("g1"); level != "" {
		t.Errorf("LevelOf = %q after unassign, want empty", level)
	}
	// Unassigning an absent group is harmless.
	s.Unassign("ghost")
}

func TestPriorityBoard_LevelOf(t *testing.T) {
	s := NewPriorityBoardState()
	s.Assign("g1", domain.PriorityMedium)
	if level := s.LevelOf("g1"); level != domain.PriorityMedium {
		t.Errorf("LevelOf = %q, want medium", level)
	}
}
