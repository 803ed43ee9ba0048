package settings

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erikgeiser/promptkit"

	"github.com/Paintersrp/home/internal/config"
)

func newTestStore(t *testing.T) *config.FileStore {
	t.Helper()
	return config.NewFileStore(filepath.Join(t.TempDir(), "home.yaml"))
}

func TestSetThenGet(t *testing.T) {
	store := newTestStore(t)

	var out bytes.Buffer
	if err := runSet(&out, store, []string{"max_recent_notes", "4"}, nil); err != nil {
		t.Fatalf("runSet returned error: %v", err)
	}

	out.Reset()
	if err := runGet(&out, store, []string{"max_recent_notes"}); err != nil {
		t.Fatalf("runGet returned error: %v", err)
	}
	if strings.TrimSpace(out.String()) != "4" {
		t.Fatalf("unexpected value %q", out.String())
	}
}

func TestGetAllListsEveryKey(t *testing.T) {
	store := newTestStore(t)

	var out bytes.Buffer
	if err := runGet(&out, store, nil); err != nil {
		t.Fatalf("runGet returned error: %v", err)
	}
	for _, key := range config.Keys {
		if !strings.Contains(out.String(), key) {
			t.Fatalf("missing key %q in:\n%s", key, out.String())
		}
	}
	if !strings.Contains(out.String(), config.DefaultSearchPlaceholder) {
		t.Fatalf("defaults not shown:\n%s", out.String())
	}
}

func TestSetRejectsInvalidValue(t *testing.T) {
	store := newTestStore(t)

	err := runSet(&bytes.Buffer{}, store, []string{"max_pinned_notes", "99"}, nil)
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}

	s, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if s.MaxPinnedNotes != config.DefaultMaxPinnedNotes {
		t.Fatalf("invalid value persisted: %d", s.MaxPinnedNotes)
	}
}

func TestSetEditorPrompts(t *testing.T) {
	store := newTestStore(t)

	choose := func(key string, choices []string) (string, error) {
		if key != "editor" || len(choices) == 0 {
			t.Fatalf("unexpected prompt for %q with %v", key, choices)
		}
		return "hx", nil
	}

	if err := runSet(&bytes.Buffer{}, store, []string{"editor"}, choose); err != nil {
		t.Fatalf("runSet returned error: %v", err)
	}
	s, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if s.Editor != "hx" {
		t.Fatalf("editor = %q", s.Editor)
	}

	aborted := func(string, []string) (string, error) { return "", promptkit.ErrAborted }
	if err := runSet(&bytes.Buffer{}, store, []string{"editor"}, aborted); err != nil {
		t.Fatalf("aborted prompt returned error: %v", err)
	}
}

func TestSetRequiresValue(t *testing.T) {
	if err := runSet(&bytes.Buffer{}, newTestStore(t), []string{"vault_dir"}, nil); err == nil {
		t.Fatal("expected error without a value")
	}
}
