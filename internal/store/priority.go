package store

import "github.com/gtm-studio/icp-engine/internal/domain"

// PriorityBoardState partitions group IDs across high, medium, and
// low. A group ID appears in at most one tier; absence means
// unassigned.
type PriorityBoardState struct {
	board domain.PriorityBoard
}

// NewPriorityBoardState creates an empty board.
func NewPriorityBoardState() *PriorityBoardState {
	return &PriorityBoardState{
		board: domain.PriorityBoard{
			High:   []string{},
			Medium: []string{},
			Low:    []string{},
		},
	}
}

// Assign moves a group ID into the given tier. The level is resolved
// before any mutation, so a rejected assignment leaves the board
// untouched; on success the ID is removed from every tier before
// insertion, keeping the partition invariant at every observation
// point.
func (s *PriorityBoardState) Assign(groupID string, level domain.PriorityLevel) error {
	var tier *[]string
	switch level {
	case domain.PriorityHigh:
		tier = &s.board.High
	case domain.PriorityMedium:
		tier = &s.board.Medium
	case domain.PriorityLow:
		tier = &s.board.Low
	default:
		return domain.ErrInvalidPriorityLevel
	}
	s.removeAll(groupID)
	*tier = append(*tier, groupID)
	return nil
}

// Unassign removes a group ID from every tier.
func (s *PriorityBoardState) Unassign(groupID string) {
	s.removeAll(groupID)
}

// LevelOf returns the tier holding the group ID, or "" when
// unassigned.
func (s *PriorityBoardState) LevelOf(groupID string) domain.PriorityLevel {
	for _, id := range s.board.High {
		if id == groupID {
			return domain.PriorityHigh
		}
	}
	for _, id := range s.board.Medium {
		if id == groupID {
			return domain.PriorityMedium
		}
	}
	for _, id := range s.board.Low {
		if id == groupID {
			return domain.PriorityLow
		}
	}
	return ""
}

// Board returns a copy of the partition.
func (s *PriorityBoardState) Board() domain.PriorityBoard {
	return domain.PriorityBoard{
		High:   append([]string{}, s.board.High...),
		Medium: append([]string{}, s.board.Medium...),
		Low:    append([]string{}, s.board.Low...),
	}
}

func (s *PriorityBoardState) removeAll(groupID string) {
	s.board.High = removeString(s.board.High, groupID)
	s.board.Medium = removeString(s.board.Medium, groupID)
	s.board.Low = removeString(s.board.Low, groupID)
}
