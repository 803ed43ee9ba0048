// Package events delivers note lifecycle notifications (open, rename,
// delete) from the vault and the editor to registered handlers.
package events

import (
	"sync"

	"github.com/Paintersrp/home/internal/refs"
)

type Kind int

const (
	Opened Kind = iota
	Renamed
	Deleted
)

func (k Kind) String() string {
	switch k {
	case Opened:
		return "opened"
	case Renamed:
		return "renamed"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event is a single lifecycle notification. OldRef is only set for renames.
type Event struct {
	Kind   Kind
	Ref    refs.NoteRef
	OldRef refs.NoteRef
}

func NoteOpened(ref refs.NoteRef) Event { return Event{Kind: Opened, Ref: ref} }

func NoteRenamed(oldRef, newRef refs.NoteRef) Event {
	return Event{Kind: Renamed, Ref: newRef, OldRef: oldRef}
}

func NoteDeleted(ref refs.NoteRef) Event { return Event{Kind: Deleted, Ref: ref} }

// Handler receives lifecycle events. Implementations must tolerate
// duplicate delivery.
type Handler interface {
	NoteOpened(ref refs.NoteRef)
	NoteRenamed(oldRef, newRef refs.NoteRef)
	NoteDeleted(ref refs.NoteRef)
}

// Publisher accepts events from a source such as the vault watcher.
type Publisher interface {
	Publish(Event)
}

// Bus fans events out to registered handlers in registration order.
type Bus struct {
	mu       sync.RWMutex
	next     int
	handlers map[int]Handler
	order    []int
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[int]Handler)}
}

// Register adds h and returns a function that removes it again.
func (b *Bus) Register(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.handlers[id] = h
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.unregister(id) })
	}
}

func (b *Bus) unregister(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, id)
	for i, existing := range b.order {
		if existing == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *Bus) snapshot() []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.handlers[id])
	}
	return out
}

// Publish delivers e synchronously to every handler.
func (b *Bus) Publish(e Event) {
	for _, h := range b.snapshot() {
		switch e.Kind {
		case Opened:
			h.NoteOpened(e.Ref)
		case Renamed:
			h.NoteRenamed(e.OldRef, e.Ref)
		case Deleted:
			h.NoteDeleted(e.Ref)
		}
	}
}
