package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Paintersrp/home/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

func GetLogPath(homeDir string) string {
	return filepath.Join(homeDir, constants.ConfigDir, constants.LogFile)
}

// EnsureConfigExists creates an empty settings file when none exists yet.
func EnsureConfigExists(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}

// RequireVault reports a ConfigInitError when no vault directory is set.
func RequireVault(s *Settings) error {
	if strings.TrimSpace(s.VaultDir) == "" {
		return &ConfigInitError{
			msg: `required config variable "vault_dir" is not set (run: home settings set vault_dir <path>)`,
		}
	}
	return nil
}

// InitViper points viper at the settings file and the HOMENOTES_ env
// prefix so flags and environment can override the persisted values.
func InitViper(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(constants.ConfigFileType)
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()
	viper.SetDefault("max_pinned_notes", DefaultMaxPinnedNotes)
	viper.SetDefault("max_recent_notes", DefaultMaxRecentNotes)
}

// ApplyOverrides copies viper level overrides (flags, environment) onto the
// loaded settings. They are written back with the next settings save.
func ApplyOverrides(s *Settings) {
	if vault := strings.TrimSpace(viper.GetString("vault_dir")); vault != "" {
		s.VaultDir = vault
	}
	if editor := strings.TrimSpace(viper.GetString("editor")); editor != "" {
		s.Editor = editor
	}
}

// SyncViper mirrors the active settings into viper for code that reads
// configuration by key.
func SyncViper(s *Settings) {
	viper.Set("vault_dir", s.VaultDir)
	viper.Set("editor", s.Editor)
	viper.Set("max_pinned_notes", s.MaxPinnedNotes)
	viper.Set("max_recent_notes", s.MaxRecentNotes)
	viper.Set("search_placeholder", s.SearchPlaceholder)
	viper.Set("open_home_on_startup", s.OpenHomeOnStartup)
	viper.Set("replace_new_tab_page", s.ReplaceNewTabPage)
}
