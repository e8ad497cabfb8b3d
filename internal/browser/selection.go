package browser

import "sort"

// Selection maps artwork IDs to their selected state for the whole session.
// Deselected IDs are deleted, never stored as false, so Len is always the
// number of selected artworks.
type Selection struct {
	ids map[int]bool
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{ids: make(map[int]bool)}
}

// Has reports whether id is selected
func (s *Selection) Has(id int) bool {
	return s.ids[id]
}

// Len returns the number of selected IDs
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected IDs in ascending order
func (s *Selection) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Reconcile applies the selection reported for the visible page.
// Only IDs in visible are touched: those in selected are marked,
// the rest are removed. Off-page IDs survive.
func (s *Selection) Reconcile(visible []int, selected []int) {
	chosen := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}

	for _, id := range visible {
		if _, ok := chosen[id]; ok {
			s.ids[id] = true
		} else {
			delete(s.ids, id)
		}
	}
}

// Clear removes every selected ID
func (s *Selection) Clear() {
	clear(s.ids)
}

// Snapshot returns a copy of the underlying map
func (s *Selection) Snapshot() map[int]bool {
	out := make(map[int]bool, len(s.ids))
	for id, v := range s.ids {
		out[id] = v
	}
	return out
}
