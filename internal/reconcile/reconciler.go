// Package reconcile keeps the pinned and recent lists consistent with
// renames and deletions in the vault.
package reconcile

import (
	"github.com/Paintersrp/home/internal/refs"
)

// Target is a list the reconciler can rewrite.
type Target interface {
	Rename(oldRef, newRef refs.NoteRef) bool
	Remove(ref refs.NoteRef) bool
}

// Change records which lists a reconciliation touched.
type Change uint8

const (
	ChangedPinned Change = 1 << iota
	ChangedRecent

	NoChange Change = 0
)

func (c Change) Pinned() bool { return c&ChangedPinned != 0 }
func (c Change) Recent() bool { return c&ChangedRecent != 0 }
func (c Change) Any() bool    { return c != NoChange }

type Reconciler struct {
	pinned Target
	recent Target
}

func New(pinned, recent Target) *Reconciler {
	return &Reconciler{pinned: pinned, recent: recent}
}

// HandleRename rewrites oldRef to newRef in place in both lists. Replaying
// the same rename is a no-op.
func (r *Reconciler) HandleRename(oldRef, newRef refs.NoteRef) Change {
	if oldRef == "" || newRef == "" || oldRef == newRef {
		return NoChange
	}

	change := NoChange
	if r.pinned != nil && r.pinned.Rename(oldRef, newRef) {
		change |= ChangedPinned
	}
	if r.recent != nil && r.recent.Rename(oldRef, newRef) {
		change |= ChangedRecent
	}
	return change
}

// HandleDelete drops ref from both lists.
func (r *Reconciler) HandleDelete(ref refs.NoteRef) Change {
	if ref == "" {
		return NoChange
	}

	change := NoChange
	if r.pinned != nil && r.pinned.Remove(ref) {
		change |= ChangedPinned
	}
	if r.recent != nil && r.recent.Remove(ref) {
		change |= ChangedRecent
	}
	return change
}
