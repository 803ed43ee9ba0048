// Package refs holds the ordered, duplicate-free note reference lists that
// back both the pinned and the recent sections of the dashboard.
package refs

// NoteRef identifies a note by its vault-relative path. Two refs are equal
// only when their strings are byte-for-byte equal.
type NoteRef string

func (r NoteRef) String() string { return string(r) }

// MaxCapacity is the ceiling accepted for any list capacity.
const MaxCapacity = 30

// Store is an ordered sequence of unique NoteRefs bounded by a capacity.
// Position is meaningful: it is the display order for pinned notes and the
// recency order for recent notes.
type Store struct {
	items    []NoteRef
	capacity int
}

// NewStore builds a store from a persisted sequence. Duplicates keep their
// first occurrence, empty refs are dropped and the result is truncated to
// capacity.
func NewStore(initial []NoteRef, capacity int) *Store {
	s := &Store{capacity: clampCapacity(capacity)}
	s.items = dedupe(initial)
	s.truncate()
	return s
}

func clampCapacity(capacity int) int {
	if capacity < 0 {
		return 0
	}
	return capacity
}

func dedupe(in []NoteRef) []NoteRef {
	out := make([]NoteRef, 0, len(in))
	seen := make(map[NoteRef]struct{}, len(in))
	for _, ref := range in {
		if ref == "" {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}

// Len returns the number of stored refs.
func (s *Store) Len() int { return len(s.items) }

// Capacity returns the configured bound.
func (s *Store) Capacity() int { return s.capacity }

// Full reports whether another Append would be rejected for lack of room.
func (s *Store) Full() bool { return len(s.items) >= s.capacity }

// Items returns a copy of the sequence in order.
func (s *Store) Items() []NoteRef {
	out := make([]NoteRef, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) indexOf(ref NoteRef) int {
	for i, item := range s.items {
		if item == ref {
			return i
		}
	}
	return -1
}

// Contains reports exact membership.
func (s *Store) Contains(ref NoteRef) bool {
	return s.indexOf(ref) >= 0
}

// InsertFront moves ref to index 0, inserting it if absent, and trims the
// tail down to capacity. With a zero capacity the store stays empty.
func (s *Store) InsertFront(ref NoteRef) {
	if ref == "" {
		return
	}
	s.removeAt(s.indexOf(ref))

	next := make([]NoteRef, 0, len(s.items)+1)
	next = append(next, ref)
	next = append(next, s.items...)
	s.items = next
	s.truncate()
}

// Append adds ref to the end. It returns false without mutating the store
// when ref is already present or the store is at capacity.
func (s *Store) Append(ref NoteRef) bool {
	if ref == "" || s.Contains(ref) || s.Full() {
		return false
	}
	s.items = append(s.items, ref)
	return true
}

// Remove deletes ref and reports whether it was present.
func (s *Store) Remove(ref NoteRef) bool {
	return s.removeAt(s.indexOf(ref))
}

func (s *Store) removeAt(i int) bool {
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// MoveTo relocates ref so it sits immediately before target. Both refs must
// be present and distinct, otherwise the store is left untouched. It
// reports whether the order changed.
//
// The move removes ref first and then inserts it at the index target
// occupies after the removal.
func (s *Store) MoveTo(ref, target NoteRef) bool {
	if ref == target {
		return false
	}
	from := s.indexOf(ref)
	if from < 0 || s.indexOf(target) < 0 {
		return false
	}

	s.removeAt(from)
	to := s.indexOf(target)

	s.items = append(s.items, "")
	copy(s.items[to+1:], s.items[to:])
	s.items[to] = ref
	return to != from
}

// MoveToEnd relocates ref to the last position. It returns false if ref is
// absent or already last.
func (s *Store) MoveToEnd(ref NoteRef) bool {
	i := s.indexOf(ref)
	if i < 0 || i == len(s.items)-1 {
		return false
	}
	s.removeAt(i)
	s.items = append(s.items, ref)
	return true
}

// Replace substitutes oldRef with newRef at the same position. If newRef is
// already stored elsewhere that other occurrence is dropped so the sequence
// stays duplicate-free. It reports whether the store changed.
func (s *Store) Replace(oldRef, newRef NoteRef) bool {
	if oldRef == newRef || newRef == "" {
		return false
	}
	i := s.indexOf(oldRef)
	if i < 0 {
		return false
	}
	s.items[i] = newRef
	for j, item := range s.items {
		if j != i && item == newRef {
			s.removeAt(j)
			break
		}
	}
	return true
}

// FilterValid partitions the sequence with exists and returns the kept
// refs plus whether anything was dropped. The store itself is not
// modified; callers commit the result with Commit.
func (s *Store) FilterValid(exists func(NoteRef) bool) ([]NoteRef, bool) {
	kept := make([]NoteRef, 0, len(s.items))
	for _, ref := range s.items {
		if exists(ref) {
			kept = append(kept, ref)
		}
	}
	return kept, len(kept) != len(s.items)
}

// Commit replaces the whole sequence, applying the same normalization as
// NewStore.
func (s *Store) Commit(items []NoteRef) {
	s.items = dedupe(items)
	s.truncate()
}

// SetCapacity updates the bound and truncates the tail immediately. It
// reports whether any entries were dropped.
func (s *Store) SetCapacity(capacity int) bool {
	s.capacity = clampCapacity(capacity)
	return s.truncate()
}

func (s *Store) truncate() bool {
	if len(s.items) <= s.capacity {
		return false
	}
	s.items = s.items[:s.capacity]
	return true
}

// Strings converts refs to plain strings for persistence.
func Strings(in []NoteRef) []string {
	out := make([]string, len(in))
	for i, ref := range in {
		out[i] = string(ref)
	}
	return out
}

// FromStrings converts persisted strings to refs.
func FromStrings(in []string) []NoteRef {
	out := make([]NoteRef, len(in))
	for i, s := range in {
		out[i] = NoteRef(s)
	}
	return out
}
