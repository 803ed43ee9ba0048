package pinOpen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/catalog"
	"github.com/Paintersrp/home/internal/fzf"
	"github.com/Paintersrp/home/internal/state"
	"github.com/Paintersrp/home/pkg/cmd/open"
)

func Command(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [position]",
		Aliases: []string{"o"},
		Short:   "Open a pinned note.",
		Long: heredoc.Doc(`
			Pin open gives quick access to the notes you pinned. Pass the position
			shown by "home pin list", or pick from the pinned notes in a fuzzy finder.
		`),
		Example: heredoc.Doc(`
			home pin open 1
			home p o
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}
			return run(args, s, open.Note)
		},
	}

	return cmd
}

func run(args []string, s *state.State, openNote open.Opener) error {
	pinned := s.Service.Pinned()
	if len(pinned) == 0 {
		return errors.New("no pinned notes")
	}

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > len(pinned) {
			return fmt.Errorf("position must be between 1 and %d", len(pinned))
		}
		return openNote(s, pinned[n-1])
	}

	notes := make([]catalog.Note, 0, len(pinned))
	for _, ref := range pinned {
		note, err := s.Vault.Resolve(ref)
		if err != nil {
			return err
		}
		if note != nil {
			notes = append(notes, *note)
		}
	}

	finder := fzf.NewFuzzyFinder(s.Vault.Root, notes, "Select a pinned note to open.")
	choice, err := finder.Find("")
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			return nil
		}
		return err
	}

	return openNote(s, choice.Ref)
}
