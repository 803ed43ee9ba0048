package open

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/fzf"
	"github.com/Paintersrp/home/internal/refs"
	"github.com/Paintersrp/home/internal/state"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
)

// Opener opens ref in the editor. Note is the default; tests swap it.
type Opener func(s *state.State, ref refs.NoteRef) error

// Note launches the configured editor for ref and records the open in the
// recent list.
func Note(s *state.State, ref refs.NoteRef) error {
	launch, err := s.Launch(ref)
	if err != nil {
		return err
	}
	return launch.Run()
}

func NewCmdOpen(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [note|query]",
		Aliases: []string{"o"},
		Short:   "Open a note and add it to the recent list.",
		Long: heredoc.Doc(`
			The open command opens a note in the configured editor and moves it to
			the front of the recent list. When the argument does not name an
			existing note it is used as the query of a fuzzy finder over the vault.

			Examples:
			  home open projects/roadmap
			  home open road
			  home open
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}
			return run(args, s, Note)
		},
	}

	return cmd
}

func run(args []string, s *state.State, open Opener) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
		if ref, err := pkgcmd.ResolveExisting(s, query); err == nil {
			return open(s, ref)
		}
	}

	notes, err := s.Vault.List()
	if err != nil {
		return fmt.Errorf("failed to list vault notes: %w", err)
	}

	finder := fzf.NewFuzzyFinder(s.Vault.Root, notes, "Select a note to open.")
	choice, err := finder.Find(query)
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			return nil
		}
		return err
	}

	return open(s, choice.Ref)
}
