// Package statetest builds throwaway vaults and states for command tests.
package statetest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/Paintersrp/home/internal/state"
)

// Vault writes notes (vault relative path to content) under a temp
// directory and returns the vault root.
func Vault(t *testing.T, notes map[string]string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "vault")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create vault: %v", err)
	}
	for rel, content := range notes {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create note dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write note: %v", err)
		}
	}
	return root
}

// Loader returns a loader whose settings file points at vault. Extra YAML
// is appended to the settings file verbatim.
func Loader(t *testing.T, vault, extra string) *state.Loader {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "home.yaml")
	content := "vault_dir: " + vault + "\neditor: nano\n" + extra
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	l := &state.Loader{Options: state.Options{
		ConfigPath: configPath,
		LogPath:    filepath.Join(dir, "home.log"),
	}}
	t.Cleanup(func() { _ = l.Close() })
	return l
}

// New loads a state over a fresh vault.
func New(t *testing.T, notes map[string]string, extra string) *state.State {
	t.Helper()

	l := Loader(t, Vault(t, notes), extra)
	s, err := l.Load()
	if err != nil {
		t.Fatalf("failed to load state: %v", err)
	}
	return s
}
