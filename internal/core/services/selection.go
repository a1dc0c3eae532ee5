package services

// Selection is the set of record IDs picked for a bulk action. It preserves
// insertion order so batches run in the order the user selected. Not safe
// for concurrent use; the owning caller is the sole mutator.
type Selection struct {
	ids  []int64
	seen map[int64]struct{}
}

// NewSelection builds a selection from the given IDs, deduplicated.
func NewSelection(ids ...int64) *Selection {
	s := &Selection{seen: make(map[int64]struct{})}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts an ID; duplicates are ignored.
func (s *Selection) Add(id int64) {
	if s.seen == nil {
		s.seen = make(map[int64]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

// Toggle adds the ID if absent, removes it if present, and reports whether
// it is selected afterwards.
func (s *Selection) Toggle(id int64) bool {
	if _, ok := s.seen[id]; !ok {
		s.Add(id)
		return true
	}
	delete(s.seen, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return false
}

// Has reports whether the ID is selected.
func (s *Selection) Has(id int64) bool {
	_, ok := s.seen[id]
	return ok
}

// IDs returns the selected IDs in insertion order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected IDs.
func (s *Selection) Len() int { return len(s.ids) }

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = s.ids[:0]
	s.seen = make(map[int64]struct{})
}
