package usecase

import (
	"fmt"

	"resume-builder/internal/model"
)

// ErrSectionNotFound is returned when a reorder references a section id that
// is not part of the order. Reorder fails loudly on this instead of
// no-opping: a silent drop would leave client drag state out of sync.
var ErrSectionNotFound = fmt.Errorf("section not found")

// ReorderSections moves the section identified by movedID to the slot
// currently occupied by targetID and returns the resulting order. The input
// slice is never modified.
//
// Semantics are a single-element list move, not a swap: the moved section
// lands exactly where the target was and everything between the two
// positions shifts one slot toward the vacated position. movedID == targetID
// is a no-op and returns the input order.
func ReorderSections(order []model.Section, movedID, targetID string) ([]model.Section, error) {
	from := indexOfSection(order, movedID)
	if from < 0 {
		return nil, fmt.Errorf("reorder %q: %w", movedID, ErrSectionNotFound)
	}
	to := indexOfSection(order, targetID)
	if to < 0 {
		return nil, fmt.Errorf("reorder onto %q: %w", targetID, ErrSectionNotFound)
	}
	if from == to {
		return order, nil
	}

	out := make([]model.Section, 0, len(order))
	out = append(out, order[:from]...)
	out = append(out, order[from+1:]...)

	moved := order[from]
	out = append(out, model.Section{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, nil
}

// VisibleSections filters the order down to sections with Visible set, in
// order. Hidden sections keep their slot in the underlying order so toggling
// them back needs no re-sort; only the visible ones take part in drag
// registration and rendering.
func VisibleSections(order []model.Section) []model.Section {
	out := make([]model.Section, 0, len(order))
	for _, s := range order {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}

func indexOfSection(order []model.Section, id string) int {
	for i, s := range order {
		if s.ID == id {
			return i
		}
	}
	return -1
}
