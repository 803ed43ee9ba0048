package pin

import (
	"errors"
	"fmt"

	"github.com/Paintersrp/home/internal/refs"
)

var (
	// ErrAtCapacity is returned when pinning into a full list.
	ErrAtCapacity = errors.New("pinned notes are at capacity")
	// ErrAlreadyPinned is returned when the note is already pinned.
	ErrAlreadyPinned = errors.New("note is already pinned")
	// ErrNotPinned is returned when unpinning a note that is not pinned.
	ErrNotPinned = errors.New("note is not pinned")
)

// PinManager owns the user curated pinned list. Order is the order notes
// were pinned in, adjusted only by explicit reordering.
type PinManager struct {
	store *refs.Store
}

func NewPinManager(pinned []refs.NoteRef, capacity int) *PinManager {
	return &PinManager{store: refs.NewStore(pinned, capacity)}
}

// Pin appends ref to the end of the pinned list.
func (m *PinManager) Pin(ref refs.NoteRef) error {
	if ref == "" {
		return errors.New("note must be provided")
	}
	if m.store.Contains(ref) {
		return fmt.Errorf("%w: %s", ErrAlreadyPinned, ref)
	}
	if m.store.Full() {
		return fmt.Errorf("%w (%d)", ErrAtCapacity, m.store.Capacity())
	}

	m.store.Append(ref)
	return nil
}

func (m *PinManager) Unpin(ref refs.NoteRef) error {
	if !m.store.Remove(ref) {
		return fmt.Errorf("%w: %s", ErrNotPinned, ref)
	}
	return nil
}

// Reorder moves ref immediately before beforeRef. Invalid refs are ignored;
// the return value only reports whether the order changed.
func (m *PinManager) Reorder(ref, beforeRef refs.NoteRef) bool {
	return m.store.MoveTo(ref, beforeRef)
}

// MoveToEnd is the drop-after-last counterpart of Reorder.
func (m *PinManager) MoveToEnd(ref refs.NoteRef) bool {
	return m.store.MoveToEnd(ref)
}

func (m *PinManager) IsPinned(ref refs.NoteRef) bool {
	return m.store.Contains(ref)
}

func (m *PinManager) List() []refs.NoteRef {
	return m.store.Items()
}

func (m *PinManager) Len() int {
	return m.store.Len()
}

func (m *PinManager) Capacity() int {
	return m.store.Capacity()
}

// Full reports whether Pin would currently fail with ErrAtCapacity.
func (m *PinManager) Full() bool {
	return m.store.Full()
}

func (m *PinManager) SetCapacity(capacity int) bool {
	return m.store.SetCapacity(capacity)
}

// Rename and Remove let the reconciler rewrite the list on vault changes.
func (m *PinManager) Rename(oldRef, newRef refs.NoteRef) bool {
	return m.store.Replace(oldRef, newRef)
}

func (m *PinManager) Remove(ref refs.NoteRef) bool {
	return m.store.Remove(ref)
}
