// Package home is the note reference list manager behind the dashboard. It
// owns the pinned and recent lists, applies commands and vault events to
// them, writes the settings blob after every committed change and tells
// listeners which sections need re-rendering.
package home

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Paintersrp/home/internal/catalog"
	"github.com/Paintersrp/home/internal/config"
	"github.com/Paintersrp/home/internal/pin"
	"github.com/Paintersrp/home/internal/recent"
	"github.com/Paintersrp/home/internal/reconcile"
	"github.com/Paintersrp/home/internal/refs"
	"github.com/Paintersrp/home/internal/search"
)

// ErrPersistence marks a failed settings write. The in-memory lists stay
// authoritative and the next committed change retries the write.
var ErrPersistence = errors.New("failed to persist settings")

// Catalog is the read-only view of the vault the service depends on.
type Catalog interface {
	List() ([]catalog.Note, error)
	Exists(ref refs.NoteRef) bool
}

// Listener is the rendering side. Each method receives a snapshot of the
// list that changed.
type Listener interface {
	RenderPinned(pinned []refs.NoteRef)
	RenderRecent(recent []refs.NoteRef)
}

type Service struct {
	mu         sync.Mutex
	settings   *config.Settings
	store      config.Store
	catalog    Catalog
	pinned     *pin.PinManager
	recent     *recent.Manager
	reconciler *reconcile.Reconciler
	logger     *zap.Logger
	dirty      bool

	lmu       sync.RWMutex
	listeners map[int]Listener
	nextID    int
}

// NewService takes ownership of settings; callers must not mutate it
// afterwards.
func NewService(
	settings *config.Settings,
	store config.Store,
	cat Catalog,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings.Normalize()

	p := pin.NewPinManager(refs.FromStrings(settings.PinnedNotes), settings.MaxPinnedNotes)
	r := recent.NewManager(refs.FromStrings(settings.LastOpenedFiles), settings.MaxRecentNotes)
	settings.PinnedNotes = refs.Strings(p.List())
	settings.LastOpenedFiles = refs.Strings(r.List())

	return &Service{
		settings:   settings,
		store:      store,
		catalog:    cat,
		pinned:     p,
		recent:     r,
		reconciler: reconcile.New(p, r),
		logger:     logger,
		listeners:  make(map[int]Listener),
	}
}

// Subscribe registers l and returns a function that removes it.
func (s *Service) Subscribe(l Listener) func() {
	s.lmu.Lock()
	defer s.lmu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

// mutate runs fn under the lock. When fn reports a change the settings
// blob is written once and listeners for the changed sections are notified
// after the lock is released.
func (s *Service) mutate(op string, fn func() reconcile.Change) reconcile.Change {
	s.mu.Lock()
	change := fn()
	if !change.Any() {
		s.mu.Unlock()
		return change
	}

	_ = s.persistLocked(op)
	pinned, rec := s.pinned.List(), s.recent.List()
	s.mu.Unlock()

	s.notify(change, pinned, rec)
	return change
}

func (s *Service) persistLocked(op string) error {
	s.settings.PinnedNotes = refs.Strings(s.pinned.List())
	s.settings.LastOpenedFiles = refs.Strings(s.recent.List())
	s.settings.MaxPinnedNotes = s.pinned.Capacity()
	s.settings.MaxRecentNotes = s.recent.Capacity()

	if s.store == nil {
		return nil
	}

	if err := s.store.Save(s.settings.Clone()); err != nil {
		s.dirty = true
		s.logger.Warn("settings write failed",
			zap.String("op", op),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.dirty {
		s.logger.Info("settings write recovered", zap.String("op", op))
	}
	s.dirty = false
	return nil
}

func (s *Service) notify(change reconcile.Change, pinned, rec []refs.NoteRef) {
	s.lmu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.lmu.RUnlock()

	for _, l := range listeners {
		if change.Pinned() {
			l.RenderPinned(append([]refs.NoteRef(nil), pinned...))
		}
		if change.Recent() {
			l.RenderRecent(append([]refs.NoteRef(nil), rec...))
		}
	}
}

// Flush retries a failed settings write.
func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	return s.persistLocked("flush")
}

// Dirty reports whether the last settings write failed.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Pin appends ref to the pinned list. It fails with pin.ErrAtCapacity or
// pin.ErrAlreadyPinned without changing anything.
func (s *Service) Pin(ref refs.NoteRef) error {
	var err error
	s.mutate("pin", func() reconcile.Change {
		if err = s.pinned.Pin(ref); err != nil {
			return reconcile.NoChange
		}
		s.logger.Debug("note pinned", zap.String("ref", ref.String()))
		return reconcile.ChangedPinned
	})
	return err
}

// Unpin removes ref from the pinned list or fails with pin.ErrNotPinned.
func (s *Service) Unpin(ref refs.NoteRef) error {
	var err error
	s.mutate("unpin", func() reconcile.Change {
		if err = s.pinned.Unpin(ref); err != nil {
			return reconcile.NoChange
		}
		s.logger.Debug("note unpinned", zap.String("ref", ref.String()))
		return reconcile.ChangedPinned
	})
	return err
}

// TogglePin pins ref when it is not pinned and unpins it otherwise.
func (s *Service) TogglePin(ref refs.NoteRef) (pinned bool, err error) {
	if s.IsPinned(ref) {
		return false, s.Unpin(ref)
	}
	return true, s.Pin(ref)
}

// Reorder moves ref immediately before beforeRef. Unknown refs are ignored.
func (s *Service) Reorder(ref, beforeRef refs.NoteRef) {
	s.mutate("reorder", func() reconcile.Change {
		if !s.pinned.Reorder(ref, beforeRef) {
			return reconcile.NoChange
		}
		return reconcile.ChangedPinned
	})
}

// MoveToEnd moves ref to the last pinned position.
func (s *Service) MoveToEnd(ref refs.NoteRef) {
	s.mutate("reorder", func() reconcile.Change {
		if !s.pinned.MoveToEnd(ref) {
			return reconcile.NoChange
		}
		return reconcile.ChangedPinned
	})
}

func (s *Service) IsPinned(ref refs.NoteRef) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinned.IsPinned(ref)
}

func (s *Service) Pinned() []refs.NoteRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinned.List()
}

// PinnedFull reports whether a pin would be rejected for capacity.
func (s *Service) PinnedFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pinned.Full()
}

func (s *Service) Recent() []refs.NoteRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recent.List()
}

// RecordOpen moves ref to the front of the recent list.
func (s *Service) RecordOpen(ref refs.NoteRef) {
	s.mutate("record-open", func() reconcile.Change {
		if !s.recent.RecordOpen(ref) {
			return reconcile.NoChange
		}
		return reconcile.ChangedRecent
	})
}

// PruneRecent drops recent entries whose notes no longer exist. Nothing is
// written when every entry is still valid.
func (s *Service) PruneRecent() bool {
	if s.catalog == nil {
		return false
	}
	change := s.mutate("prune-recent", func() reconcile.Change {
		if !s.recent.ReconcileAgainstCatalog(s.catalog.Exists) {
			return reconcile.NoChange
		}
		return reconcile.ChangedRecent
	})
	return change.Any()
}

// ClearRecent empties the recent list.
func (s *Service) ClearRecent() bool {
	change := s.mutate("clear-recent", func() reconcile.Change {
		if !s.recent.Clear() {
			return reconcile.NoChange
		}
		return reconcile.ChangedRecent
	})
	return change.Any()
}

// SeedRecent fills an empty recent list with the most recently modified
// notes of the catalog.
func (s *Service) SeedRecent() (bool, error) {
	if s.catalog == nil || len(s.Recent()) > 0 {
		return false, nil
	}

	notes, err := s.catalog.List()
	if err != nil {
		return false, err
	}

	candidates := make([]recent.Candidate, len(notes))
	for i, n := range notes {
		candidates[i] = recent.Candidate{Ref: n.Ref, LastModified: n.LastModified}
	}

	change := s.mutate("seed-recent", func() reconcile.Change {
		if !s.recent.Seed(candidates) {
			return reconcile.NoChange
		}
		return reconcile.ChangedRecent
	})
	return change.Any(), nil
}

// NoteOpened implements events.Handler.
func (s *Service) NoteOpened(ref refs.NoteRef) {
	s.RecordOpen(ref)
}

// NoteRenamed implements events.Handler. Both lists are rewritten and the
// settings blob is written at most once.
func (s *Service) NoteRenamed(oldRef, newRef refs.NoteRef) {
	change := s.mutate("rename", func() reconcile.Change {
		return s.reconciler.HandleRename(oldRef, newRef)
	})
	if change.Any() {
		s.logger.Info("references renamed",
			zap.String("old_ref", oldRef.String()),
			zap.String("new_ref", newRef.String()),
		)
	}
}

// NoteDeleted implements events.Handler.
func (s *Service) NoteDeleted(ref refs.NoteRef) {
	change := s.mutate("delete", func() reconcile.Change {
		return s.reconciler.HandleDelete(ref)
	})
	if change.Any() {
		s.logger.Info("references removed", zap.String("ref", ref.String()))
	}
}

// Settings returns a copy of the current settings.
func (s *Service) Settings() config.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.settings.Clone()
}

// UpdateSetting validates and applies a single setting. Capacity changes
// trim the matching list immediately. The blob is written on success.
func (s *Service) UpdateSetting(key, value string) error {
	var err error
	s.mutate("settings", func() reconcile.Change {
		if err = s.settings.Set(key, value); err != nil {
			return reconcile.NoChange
		}

		change := reconcile.ChangedPinned | reconcile.ChangedRecent
		switch key {
		case "max_pinned_notes":
			s.pinned.SetCapacity(s.settings.MaxPinnedNotes)
			change = reconcile.ChangedPinned
		case "max_recent_notes":
			s.recent.SetCapacity(s.settings.MaxRecentNotes)
			change = reconcile.ChangedRecent
		}
		return change
	})
	return err
}

func (s *Service) SetMaxPinned(n int) error {
	return s.UpdateSetting("max_pinned_notes", fmt.Sprint(n))
}

func (s *Service) SetMaxRecent(n int) error {
	return s.UpdateSetting("max_recent_notes", fmt.Sprint(n))
}

// Search filters catalog file names. A blank query returns nil without
// listing the catalog.
func (s *Service) Search(query string) ([]search.Entry, error) {
	if strings.TrimSpace(query) == "" || s.catalog == nil {
		return nil, nil
	}

	notes, err := s.catalog.List()
	if err != nil {
		return nil, err
	}
	return search.Search(Entries(notes), query), nil
}

// PinCandidates lists catalog notes that are not pinned yet.
func (s *Service) PinCandidates() ([]catalog.Note, error) {
	if s.catalog == nil {
		return nil, nil
	}
	notes, err := s.catalog.List()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Note, 0, len(notes))
	for _, n := range notes {
		if !s.pinned.IsPinned(n.Ref) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Entries converts catalog notes to search entries.
func Entries(notes []catalog.Note) []search.Entry {
	out := make([]search.Entry, len(notes))
	for i, n := range notes {
		out[i] = search.Entry{Ref: n.Ref, DisplayName: n.DisplayName}
	}
	return out
}
