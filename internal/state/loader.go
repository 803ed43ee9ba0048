package state

import "github.com/Paintersrp/home/internal/config"

// Loader builds the State the first time a command needs it, after cobra
// has parsed the persistent flags into Options.
type Loader struct {
	Options Options

	state *State
}

func (l *Loader) Load() (*State, error) {
	if l.state != nil {
		return l.state, nil
	}

	s, err := NewState(l.Options)
	if err != nil {
		return nil, err
	}
	l.state = s
	return s, nil
}

// Loaded returns the state if Load already succeeded.
func (l *Loader) Loaded() *State {
	return l.state
}

func (l *Loader) Close() error {
	if l.state == nil {
		return nil
	}
	err := l.state.Close()
	l.state = nil
	return err
}

// ConfigPath is the settings file commands read and write, resolving the
// default location when no --config flag was given.
func (l *Loader) ConfigPath() (string, error) {
	if l.Options.ConfigPath != "" {
		return l.Options.ConfigPath, nil
	}
	home, err := GetHomeDir()
	if err != nil {
		return "", err
	}
	return config.GetConfigPath(home), nil
}
