package events

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Paintersrp/home/internal/constants"
	"github.com/Paintersrp/home/internal/pathutil"
	"github.com/Paintersrp/home/internal/refs"
)

// DefaultRenameWindow is how long a Rename waits for its matching Create.
const DefaultRenameWindow = 250 * time.Millisecond

// Watcher turns fsnotify events under a vault into rename and delete
// events. fsnotify reports a rename as Rename on the old path followed by
// Create on the new one; the two are paired within the rename window, and
// an unpaired Rename (moved out of the vault) becomes a delete.
type Watcher struct {
	watcher *fsnotify.Watcher
	vault   string
	pub     Publisher
	logger  *zap.Logger
	window  time.Duration

	pending *pendingRename
	timer   *time.Timer
}

type pendingRename struct {
	rel   string
	isDir bool
	notes []string
}

func NewWatcher(vault string, pub Publisher, logger *zap.Logger) (*Watcher, error) {
	normalized := pathutil.NormalizePath(vault)
	if normalized == "" {
		return nil, errors.New("vault directory cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		vault:   normalized,
		pub:     pub,
		logger:  logger,
		window:  DefaultRenameWindow,
	}

	if err := w.addRecursive(normalized); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return w, nil
}

// SetRenameWindow overrides DefaultRenameWindow. Call before Run.
func (w *Watcher) SetRenameWindow(d time.Duration) {
	if d > 0 {
		w.window = d
	}
}

// Run processes events until ctx is cancelled, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.timer = time.NewTimer(time.Hour)
	w.timer.Stop()
	defer w.timer.Stop()

	w.logger.Info("watcher started", zap.String("vault", w.vault))

	for {
		select {
		case <-ctx.Done():
			w.expirePending()
			w.logger.Info("watcher stopped")
			return nil

		case <-w.timer.C:
			w.expirePending()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	rel, ok := w.relativePath(event.Name)
	if !ok {
		return
	}

	switch {
	case event.Op&fsnotify.Create != 0:
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", zap.String("path", rel), zap.Error(err))
			}
		}
		w.pairCreate(rel, info.IsDir())

	case event.Op&fsnotify.Rename != 0:
		w.expirePending()
		w.beginRename(rel)

	case event.Op&fsnotify.Remove != 0:
		if w.pending != nil && w.pending.rel == rel {
			return
		}
		if isNote(rel) {
			w.publish(NoteDeleted(refs.NoteRef(rel)))
		}
	}
}

func isNote(rel string) bool {
	return strings.EqualFold(filepath.Ext(rel), constants.NoteExtension)
}

func (w *Watcher) beginRename(rel string) {
	pending := &pendingRename{rel: rel}
	if !isNote(rel) {
		// A directory rename only matters for the notes it contained. The
		// old path is gone, so its notes are recovered from the new location
		// when the Create arrives.
		pending.isDir = true
	}
	w.pending = pending
	w.timer.Reset(w.window)
}

func (w *Watcher) pairCreate(rel string, isDir bool) {
	pending := w.pending
	if pending == nil {
		return
	}

	// Editors that save through a backup rename note.md away and create
	// note.md~ before writing note.md again. Only a note can complete a
	// note rename; anything else waits for the window to expire.
	if !pending.isDir && (isDir || !isNote(rel)) {
		return
	}

	w.pending = nil
	w.timer.Stop()

	switch {
	case !pending.isDir && pending.rel == rel:
		// Rewritten in place.
	case !pending.isDir:
		w.publish(NoteRenamed(refs.NoteRef(pending.rel), refs.NoteRef(rel)))
	case isDir:
		for _, note := range w.notesUnder(rel) {
			suffix := strings.TrimPrefix(note, rel+"/")
			w.publish(NoteRenamed(refs.NoteRef(pending.rel+"/"+suffix), refs.NoteRef(note)))
		}
	}
}

// expirePending flushes an unpaired rename. A note moved out of the vault
// is treated as deleted unless it exists again at its old path; an unpaired
// directory rename is left for lazy pruning since its former contents are
// unknown.
func (w *Watcher) expirePending() {
	pending := w.pending
	if pending == nil {
		return
	}
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
	}
	if pending.isDir {
		return
	}
	if w.exists(pending.rel) {
		w.logger.Debug("renamed note reappeared", zap.String("ref", pending.rel))
		return
	}
	w.publish(NoteDeleted(refs.NoteRef(pending.rel)))
}

func (w *Watcher) exists(rel string) bool {
	info, err := os.Stat(pathutil.Absolute(w.vault, rel))
	return err == nil && !info.IsDir()
}

func (w *Watcher) publish(e Event) {
	w.logger.Debug("vault event",
		zap.Stringer("kind", e.Kind),
		zap.String("ref", e.Ref.String()),
		zap.String("old_ref", e.OldRef.String()),
	)
	if w.pub != nil {
		w.pub.Publish(e)
	}
}

func (w *Watcher) notesUnder(rel string) []string {
	var notes []string
	root := pathutil.Absolute(w.vault, rel)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isNote(path) {
			return nil
		}
		if r, ok := w.relativePath(path); ok {
			notes = append(notes, r)
		}
		return nil
	})
	return notes
}

func (w *Watcher) addRecursive(root string) error {
	normalized := pathutil.NormalizePath(root)
	return filepath.WalkDir(normalized, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		if !d.IsDir() {
			return nil
		}
		if path != normalized && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		return w.watcher.Add(path)
	})
}

func (w *Watcher) relativePath(path string) (string, bool) {
	rel, err := pathutil.VaultRelative(w.vault, pathutil.NormalizePath(path))
	if err != nil || !pathutil.InVault(rel) {
		return "", false
	}
	return rel, true
}
