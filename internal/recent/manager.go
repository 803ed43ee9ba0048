// Package recent tracks recently opened notes, most recent first.
package recent

import (
	"sort"
	"time"

	"github.com/Paintersrp/home/internal/refs"
)

type Manager struct {
	store *refs.Store
}

func NewManager(recent []refs.NoteRef, capacity int) *Manager {
	return &Manager{store: refs.NewStore(recent, capacity)}
}

// RecordOpen moves ref to the front, evicting from the tail when the list
// overflows. It reports whether the list changed; a zero capacity or a
// repeat open of the current front note reports false.
func (m *Manager) RecordOpen(ref refs.NoteRef) bool {
	if ref == "" || m.store.Capacity() == 0 {
		return false
	}
	if items := m.store.Items(); len(items) > 0 && items[0] == ref {
		return false
	}
	m.store.InsertFront(ref)
	return true
}

// ReconcileAgainstCatalog drops refs that no longer exist. It only commits
// and reports true when something was removed.
func (m *Manager) ReconcileAgainstCatalog(exists func(refs.NoteRef) bool) bool {
	kept, removed := m.store.FilterValid(exists)
	if !removed {
		return false
	}
	m.store.Commit(kept)
	return true
}

// Candidate is a note considered for first-run seeding.
type Candidate struct {
	Ref          refs.NoteRef
	LastModified time.Time
}

// Seed fills an empty list with the most recently modified candidates. It
// does nothing when the list already holds entries.
func (m *Manager) Seed(candidates []Candidate) bool {
	if m.store.Len() > 0 || len(candidates) == 0 || m.store.Capacity() == 0 {
		return false
	}

	sorted := append([]Candidate(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastModified.After(sorted[j].LastModified)
	})

	seed := make([]refs.NoteRef, 0, m.store.Capacity())
	for _, c := range sorted {
		if len(seed) == m.store.Capacity() {
			break
		}
		seed = append(seed, c.Ref)
	}

	m.store.Commit(seed)
	return m.store.Len() > 0
}

func (m *Manager) List() []refs.NoteRef {
	return m.store.Items()
}

func (m *Manager) Contains(ref refs.NoteRef) bool {
	return m.store.Contains(ref)
}

func (m *Manager) Capacity() int {
	return m.store.Capacity()
}

func (m *Manager) SetCapacity(capacity int) bool {
	return m.store.SetCapacity(capacity)
}

// Clear empties the list and reports whether it held anything.
func (m *Manager) Clear() bool {
	if m.store.Len() == 0 {
		return false
	}
	m.store.Commit(nil)
	return true
}

func (m *Manager) Rename(oldRef, newRef refs.NoteRef) bool {
	return m.store.Replace(oldRef, newRef)
}

func (m *Manager) Remove(ref refs.NoteRef) bool {
	return m.store.Remove(ref)
}
