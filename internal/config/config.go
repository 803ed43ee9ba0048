package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/home/internal/refs"
)

const (
	DefaultMaxPinnedNotes    = 10
	DefaultMaxRecentNotes    = 10
	DefaultSearchPlaceholder = "Search notes..."
)

// Settings is the single persisted blob. It is read once at startup and
// rewritten in full after every committed change.
type Settings struct {
	VaultDir          string   `yaml:"vault_dir"            json:"vault_dir"`
	Editor            string   `yaml:"editor"               json:"editor"`
	PinnedNotes       []string `yaml:"pinned_notes"         json:"pinned_notes"`
	LastOpenedFiles   []string `yaml:"last_opened_files"    json:"last_opened_files"`
	MaxPinnedNotes    int      `yaml:"max_pinned_notes"     json:"max_pinned_notes"`
	MaxRecentNotes    int      `yaml:"max_recent_notes"     json:"max_recent_notes"`
	SearchPlaceholder string   `yaml:"search_placeholder"   json:"search_placeholder"`
	OpenHomeOnStartup bool     `yaml:"open_home_on_startup" json:"open_home_on_startup"`
	// ReplaceNewTabPage is kept for blob compatibility and has no effect in the CLI.
	ReplaceNewTabPage bool     `yaml:"replace_new_tab_page" json:"replace_new_tab_page"`
	Ignore            []string `yaml:"ignore"               json:"ignore"`
}

// legacySettings carries keys written by older releases.
type legacySettings struct {
	RecentFiles []string `yaml:"recent_files"`
}

func Defaults() *Settings {
	return &Settings{
		PinnedNotes:       []string{},
		LastOpenedFiles:   []string{},
		MaxPinnedNotes:    DefaultMaxPinnedNotes,
		MaxRecentNotes:    DefaultMaxRecentNotes,
		SearchPlaceholder: DefaultSearchPlaceholder,
		OpenHomeOnStartup: true,
		ReplaceNewTabPage: true,
	}
}

// Clone returns a deep copy so callers can hand snapshots to a writer.
func (s *Settings) Clone() *Settings {
	c := *s
	c.PinnedNotes = append([]string{}, s.PinnedNotes...)
	c.LastOpenedFiles = append([]string{}, s.LastOpenedFiles...)
	c.Ignore = append([]string(nil), s.Ignore...)
	return &c
}

var validEditorNames = []string{"nvim", "vim", "nano", "code", "vscode", "obsidian", "emacs", "hx", "micro"}

// EditorNames lists the accepted values of the editor setting.
func EditorNames() []string {
	return append([]string(nil), validEditorNames...)
}

func validEditors() []interface{} {
	out := make([]interface{}, len(validEditorNames))
	for i, name := range validEditorNames {
		out[i] = name
	}
	return out
}

func (s *Settings) Validate() error {
	err := validation.ValidateStruct(s,
		validation.Field(&s.MaxPinnedNotes, validation.Min(0), validation.Max(refs.MaxCapacity)),
		validation.Field(&s.MaxRecentNotes, validation.Min(0), validation.Max(refs.MaxCapacity)),
		validation.Field(&s.Editor, validation.In(validEditors()...).Error(
			"must be one of "+strings.Join(validEditorNames, ", "),
		)),
		validation.Field(&s.SearchPlaceholder, validation.Length(0, 120)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Normalize clamps capacities into range and fills blank defaults. It
// reports whether anything changed.
func (s *Settings) Normalize() bool {
	changed := false
	clamp := func(v *int) {
		switch {
		case *v < 0:
			*v = 0
			changed = true
		case *v > refs.MaxCapacity:
			*v = refs.MaxCapacity
			changed = true
		}
	}
	clamp(&s.MaxPinnedNotes)
	clamp(&s.MaxRecentNotes)

	if s.PinnedNotes == nil {
		s.PinnedNotes = []string{}
	}
	if s.LastOpenedFiles == nil {
		s.LastOpenedFiles = []string{}
	}
	if strings.TrimSpace(s.SearchPlaceholder) == "" {
		s.SearchPlaceholder = DefaultSearchPlaceholder
		changed = true
	}
	return changed
}

// Store is the persistence collaborator for Settings.
type Store interface {
	Load() (*Settings, error)
	Save(*Settings) error
}

// FileStore keeps Settings as YAML on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Path() string { return fs.path }

// Load reads the blob, layering present keys over Defaults. A missing or
// empty file yields Defaults. Legacy keys are migrated and written back.
func (fs *FileStore) Load() (*Settings, error) {
	settings := Defaults()

	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return settings, nil
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", fs.path, err)
	}

	var legacy legacySettings
	if err := yaml.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", fs.path, err)
	}

	migrated := false
	if len(settings.LastOpenedFiles) == 0 && len(legacy.RecentFiles) > 0 {
		settings.LastOpenedFiles = append([]string{}, legacy.RecentFiles...)
		migrated = true
	}

	changed := settings.Normalize() || migrated

	if changed {
		if err := fs.Save(settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

func (fs *FileStore) Save(s *Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(fs.path, data, 0o644)
}

// Keys lists the settings editable through Get and Set.
var Keys = []string{
	"vault_dir",
	"editor",
	"max_pinned_notes",
	"max_recent_notes",
	"search_placeholder",
	"open_home_on_startup",
	"replace_new_tab_page",
}

func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "vault_dir":
		return s.VaultDir, nil
	case "editor":
		return s.Editor, nil
	case "max_pinned_notes":
		return strconv.Itoa(s.MaxPinnedNotes), nil
	case "max_recent_notes":
		return strconv.Itoa(s.MaxRecentNotes), nil
	case "search_placeholder":
		return s.SearchPlaceholder, nil
	case "open_home_on_startup":
		return strconv.FormatBool(s.OpenHomeOnStartup), nil
	case "replace_new_tab_page":
		return strconv.FormatBool(s.ReplaceNewTabPage), nil
	default:
		return "", fmt.Errorf("%w: unknown key %q", ErrInvalidSettings, key)
	}
}

// Set parses value into key on a copy and only applies it when the result
// validates.
func (s *Settings) Set(key, value string) error {
	next := s.Clone()
	value = strings.TrimSpace(value)

	switch key {
	case "vault_dir":
		next.VaultDir = value
	case "editor":
		next.Editor = value
	case "max_pinned_notes", "max_recent_notes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", ErrInvalidSettings, key)
		}
		if key == "max_pinned_notes" {
			next.MaxPinnedNotes = n
			next.PinnedNotes = truncate(next.PinnedNotes, n)
		} else {
			next.MaxRecentNotes = n
			next.LastOpenedFiles = truncate(next.LastOpenedFiles, n)
		}
	case "search_placeholder":
		next.SearchPlaceholder = value
	case "open_home_on_startup", "replace_new_tab_page":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", ErrInvalidSettings, key)
		}
		if key == "open_home_on_startup" {
			next.OpenHomeOnStartup = b
		} else {
			next.ReplaceNewTabPage = b
		}
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidSettings, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*s = *next
	return nil
}

// truncate drops entries past n, used when a capacity shrinks.
func truncate(list []string, n int) []string {
	if n >= 0 && len(list) > n {
		return list[:n]
	}
	return list
}
