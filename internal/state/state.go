package state

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Paintersrp/home/internal/catalog"
	"github.com/Paintersrp/home/internal/config"
	"github.com/Paintersrp/home/internal/editor"
	"github.com/Paintersrp/home/internal/events"
	"github.com/Paintersrp/home/internal/home"
	"github.com/Paintersrp/home/internal/logging"
	"github.com/Paintersrp/home/internal/pathutil"
	"github.com/Paintersrp/home/internal/refs"
)

// Options configures NewState. Empty fields fall back to the defaults
// under the user's home directory.
type Options struct {
	ConfigPath string
	LogPath    string
	Debug      bool
}

type State struct {
	Home       string
	ConfigPath string
	Store      *config.FileStore
	Vault      *catalog.Vault
	Service    *home.Service
	Bus        *events.Bus
	Logger     *zap.Logger

	unregister func()
}

func NewState(opts Options) (*State, error) {
	homeDir, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.GetConfigPath(homeDir)
	}
	logPath := opts.LogPath
	if logPath == "" {
		logPath = config.GetLogPath(homeDir)
	}

	if err := config.EnsureConfigExists(configPath); err != nil {
		return nil, err
	}
	config.InitViper(configPath)

	store := config.NewFileStore(configPath)
	settings, err := store.Load()
	if err != nil {
		return nil, err
	}
	config.ApplyOverrides(settings)
	config.SyncViper(settings)

	if err := config.RequireVault(settings); err != nil {
		return nil, err
	}
	if info, err := os.Stat(settings.VaultDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("vault directory %q does not exist", settings.VaultDir)
	}

	logger := logging.New(logPath, opts.Debug)
	vault := catalog.NewVault(settings.VaultDir, settings.Ignore)
	svc := home.NewService(settings, store, vault, logging.Module(logger, "home"))

	bus := events.NewBus()
	unregister := bus.Register(svc)

	if seeded, err := svc.SeedRecent(); err != nil {
		logger.Warn("failed to seed recent notes", zap.Error(err))
	} else if seeded {
		logger.Info("seeded recent notes from vault")
	}

	return &State{
		Home:       homeDir,
		ConfigPath: configPath,
		Store:      store,
		Vault:      vault,
		Service:    svc,
		Bus:        bus,
		Logger:     logger,
		unregister: unregister,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// NewWatcher creates a vault watcher publishing into the state's bus.
func (s *State) NewWatcher() (*events.Watcher, error) {
	w, err := events.NewWatcher(s.Vault.Root, s.Bus, logging.Module(s.Logger, "watcher"))
	if err != nil {
		return nil, fmt.Errorf("failed to create vault watcher: %w", err)
	}
	return w, nil
}

// Launch prepares the editor for ref and publishes the open so the recent
// list is updated.
func (s *State) Launch(ref refs.NoteRef) (*editor.Launch, error) {
	if !s.Vault.Exists(ref) {
		return nil, fmt.Errorf("note %q does not exist in the vault", ref)
	}

	settings := s.Service.Settings()
	launch, err := editor.Command(settings.Editor, s.Vault.Root, pathutil.Absolute(s.Vault.Root, ref.String()))
	if err != nil {
		return nil, err
	}

	s.Bus.Publish(events.NoteOpened(ref))
	return launch, nil
}

// Close flushes pending settings writes and the logger.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
	if s.Service != nil {
		if err := s.Service.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}

	return errors.Join(errs...)
}
