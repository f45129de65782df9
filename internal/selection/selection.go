package selection

import "sort"

// Set tracks the user ids ticked in the list table. The set is global: it
// survives reloads and may hold ids outside the currently displayed page,
// while ToggleAll and AllSelected only look at the displayed ids.
type Set map[uint]struct{}

func New(ids ...uint) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func FromIDs(ids []uint) Set {
	return New(ids...)
}

func (s Set) Has(id uint) bool {
	_, ok := s[id]
	return ok
}

func (s Set) Toggle(id uint) {
	if s.Has(id) {
		delete(s, id)
	} else {
		s[id] = struct{}{}
	}
}

// AllSelected reports whether every displayed id is selected. An empty
// displayed list yields false; partial selection counts as "not all".
func (s Set) AllSelected(displayed []uint) bool {
	if len(displayed) == 0 {
		return false
	}
	for _, id := range displayed {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// ToggleAll selects every displayed id unless all of them are already
// selected, in which case it deselects exactly the displayed ids.
func (s Set) ToggleAll(displayed []uint) {
	if s.AllSelected(displayed) {
		for _, id := range displayed {
			delete(s, id)
		}
		return
	}
	for _, id := range displayed {
		s[id] = struct{}{}
	}
}

// IDs returns the selected ids sorted ascending, for session storage.
func (s Set) IDs() []uint {
	ids := make([]uint, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
