package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/home/internal/config"
	"github.com/Paintersrp/home/internal/refs"
)

func newTestState(t *testing.T, settings string) (*State, string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	vault := filepath.Join(dir, "vault")
	if err := os.MkdirAll(vault, 0o755); err != nil {
		t.Fatalf("failed to create vault: %v", err)
	}
	for _, name := range []string{"one.md", "two.md"} {
		if err := os.WriteFile(filepath.Join(vault, name), []byte("# "+name), 0o644); err != nil {
			t.Fatalf("failed to write note: %v", err)
		}
	}

	configPath := filepath.Join(dir, "home.yaml")
	content := "vault_dir: " + vault + "\neditor: nano\n" + settings
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	s, err := NewState(Options{ConfigPath: configPath, LogPath: filepath.Join(dir, "home.log")})
	if err != nil {
		t.Fatalf("NewState returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, vault
}

func TestNewStateSeedsRecentOnFirstRun(t *testing.T) {
	s, _ := newTestState(t, "")

	recent := s.Service.Recent()
	if len(recent) != 2 {
		t.Fatalf("expected seeded recent list of 2 notes, got %v", recent)
	}

	loaded, err := s.Store.Load()
	if err != nil {
		t.Fatalf("failed to reload settings: %v", err)
	}
	if len(loaded.LastOpenedFiles) != 2 {
		t.Fatalf("expected seeded list to be persisted, got %v", loaded.LastOpenedFiles)
	}
}

func TestNewStateKeepsExistingRecent(t *testing.T) {
	s, _ := newTestState(t, "last_opened_files: [two.md]\n")

	recent := s.Service.Recent()
	if len(recent) != 1 || recent[0] != "two.md" {
		t.Fatalf("expected persisted recent list, got %v", recent)
	}
}

func TestLaunchRecordsOpen(t *testing.T) {
	s, vault := newTestState(t, "last_opened_files: [two.md]\n")

	launch, err := s.Launch("one.md")
	if err != nil {
		t.Fatalf("Launch returned error: %v", err)
	}
	if got := launch.Cmd.Args[len(launch.Cmd.Args)-1]; got != filepath.Join(vault, "one.md") {
		t.Fatalf("unexpected editor target %q", got)
	}

	recent := s.Service.Recent()
	if recent[0] != refs.NoteRef("one.md") {
		t.Fatalf("expected opened note first, got %v", recent)
	}

	if _, err := s.Launch("missing.md"); err == nil {
		t.Fatal("expected error for missing note")
	}
}

func TestNewStateRequiresVault(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "home.yaml")

	_, err := NewState(Options{ConfigPath: configPath, LogPath: filepath.Join(dir, "home.log")})
	var initErr *config.ConfigInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected ConfigInitError, got %v", err)
	}
}

func TestLoaderReusesState(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	vault := filepath.Join(dir, "vault")
	if err := os.MkdirAll(vault, 0o755); err != nil {
		t.Fatalf("failed to create vault: %v", err)
	}
	configPath := filepath.Join(dir, "home.yaml")
	if err := os.WriteFile(configPath, []byte("vault_dir: "+vault+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	l := &Loader{Options: Options{ConfigPath: configPath, LogPath: filepath.Join(dir, "home.log")}}
	if l.Loaded() != nil {
		t.Fatal("expected no state before Load")
	}

	first, err := l.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	second, err := l.Load()
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}
	if first != second {
		t.Fatal("expected Load to reuse the state")
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if l.Loaded() != nil {
		t.Fatal("expected state to be released after Close")
	}
}
