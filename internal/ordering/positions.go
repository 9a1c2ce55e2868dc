// Package ordering keeps card positions dense within each column and column
// positions dense across the board.
//
// A partition is the set of active cards sharing one column_id (nil included).
// After every engine call, reading a partition's active cards by position
// yields exactly 0..n-1. The one exception is MoveCard with a target position
// past the end of the target partition: the card is written at the requested
// number and the gap is left in place.
package ordering

import (
	"sort"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

// MaxPosition is the largest target position a move accepts. It leaves room
// for later shifts to stay inside a 32-bit INTEGER column.
const MaxPosition = 1_000_000

// Assignment is a position to persist for one card or column.
type Assignment struct {
	ID       uuid.UUID
	Position int
}

// Compact renumbers cards 0..n-1 keeping their relative order and returns
// only the assignments that change a stored position. Cards equal to exclude
// are skipped.
func Compact(cards []model.Card, exclude uuid.UUID) []Assignment {
	ordered := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID != exclude {
			ordered = append(ordered, c)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	var changes []Assignment
	for i, c := range ordered {
		if c.Position != i {
			changes = append(changes, Assignment{ID: c.ID, Position: i})
		}
	}
	return changes
}

// CompactColumns is Compact for the board's column list.
func CompactColumns(columns []model.Column) []Assignment {
	ordered := make([]model.Column, len(columns))
	copy(ordered, columns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	var changes []Assignment
	for i, c := range ordered {
		if c.Position != i {
			changes = append(changes, Assignment{ID: c.ID, Position: i})
		}
	}
	return changes
}

// Permutation assigns each id its index. Duplicates are not collapsed: the
// last occurrence wins once the assignments are applied in order.
func Permutation(ids []uuid.UUID) []Assignment {
	out := make([]Assignment, len(ids))
	for i, id := range ids {
		out[i] = Assignment{ID: id, Position: i}
	}
	return out
}

// IsDense reports whether positions, in any order, are exactly 0..n-1.
func IsDense(positions []int) bool {
	seen := make([]bool, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(positions) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
