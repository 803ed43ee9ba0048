package settings

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/home/internal/config"
	"github.com/Paintersrp/home/internal/state"
)

// Chooser picks a value for key from choices.
type Chooser func(key string, choices []string) (string, error)

func NewCmdSettings(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "Show or change settings.",
		Long: heredoc.Doc(`
			The settings command reads and writes the settings file directly, so it
			also works before a vault has been configured.

			Examples:
			  home settings get
			  home settings set vault_dir ~/notes
			  home settings set max_pinned_notes 15
			  home settings set editor
		`),
	}

	get := &cobra.Command{
		Use:       "get [key]",
		Short:     "Print one or all settings.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(l)
			if err != nil {
				return err
			}
			return runGet(cmd.OutOrStdout(), store, args)
		},
	}

	set := &cobra.Command{
		Use:       "set {key} [value]",
		Short:     "Change a setting.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: config.Keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStore(l)
			if err != nil {
				return err
			}

			var choose Chooser
			if term.IsTerminal(int(os.Stdin.Fd())) {
				choose = promptChoice
			}
			return runSet(cmd.OutOrStdout(), store, args, choose)
		},
	}

	cmd.AddCommand(get, set)

	return cmd
}

func newStore(l *state.Loader) (*config.FileStore, error) {
	path, err := l.ConfigPath()
	if err != nil {
		return nil, err
	}
	if err := config.EnsureConfigExists(path); err != nil {
		return nil, err
	}
	return config.NewFileStore(path), nil
}

func runGet(out io.Writer, store config.Store, args []string) error {
	s, err := store.Load()
	if err != nil {
		return err
	}

	keys := config.Keys
	if len(args) == 1 {
		keys = args
	}

	for _, key := range keys {
		value, err := s.Get(key)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Fprintln(out, value)
		} else {
			fmt.Fprintf(out, "%-22s %s\n", key, value)
		}
	}
	return nil
}

func runSet(out io.Writer, store config.Store, args []string, choose Chooser) error {
	key := args[0]

	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == "editor" && choose != nil:
		v, err := choose(key, config.EditorNames())
		if err != nil {
			if errors.Is(err, promptkit.ErrAborted) {
				return nil
			}
			return err
		}
		value = v
	default:
		return fmt.Errorf("a value for %s is required", key)
	}

	s, err := store.Load()
	if err != nil {
		return err
	}
	if err := s.Set(key, value); err != nil {
		return err
	}
	if err := store.Save(s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Fprintf(out, "%s = %s\n", key, value)
	return nil
}

func promptChoice(key string, choices []string) (string, error) {
	sp := selection.New(fmt.Sprintf("Select %s:", key), choices)
	sp.PageSize = 10
	return sp.RunPrompt()
}
