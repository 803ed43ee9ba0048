package pinMove

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/home/internal/pathutil"
	"github.com/Paintersrp/home/internal/refs"
	"github.com/Paintersrp/home/internal/state"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
)

const endChoice = "(end of list)"

// Chooser picks the note to move before. It is swapped out in tests.
type Chooser func(prompt string, choices []string) (string, error)

func Command(l *state.Loader) *cobra.Command {
	var toEnd bool

	cmd := &cobra.Command{
		Use:     "move {note} [before-note] [--end]",
		Aliases: []string{"m", "mv"},
		Short:   "Reorder a pinned note.",
		Long: heredoc.Doc(`
			The pin move command places a pinned note immediately before another
			pinned note, or at the end with --end. Without a target and with an
			interactive terminal you are asked to pick one.

			Examples:
			  home pin move roadmap inbox
			  home pin move inbox --end
			  home pin move inbox
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}

			var choose Chooser
			if term.IsTerminal(int(os.Stdin.Fd())) {
				choose = promptChoice
			}
			return run(cmd, args, toEnd, s, choose)
		},
	}

	cmd.Flags().BoolVarP(&toEnd, "end", "e", false, "Move the note to the end of the pinned list")

	return cmd
}

func run(
	cmd *cobra.Command,
	args []string,
	toEnd bool,
	s *state.State,
	choose Chooser,
) error {
	ref, err := pkgcmd.ResolveRef(s, args[0])
	if err != nil {
		return err
	}
	if !s.Service.IsPinned(ref) {
		return fmt.Errorf("%s is not pinned", ref)
	}

	var before refs.NoteRef
	switch {
	case toEnd:
	case len(args) == 2:
		if before, err = pkgcmd.ResolveRef(s, args[1]); err != nil {
			return err
		}
		if !s.Service.IsPinned(before) {
			return fmt.Errorf("%s is not pinned", before)
		}
	case choose == nil:
		return errors.New("a target note or --end is required when not running in a terminal")
	default:
		if before, err = pick(s, ref, choose); err != nil {
			if errors.Is(err, promptkit.ErrAborted) {
				return nil
			}
			return err
		}
	}

	if before == "" {
		s.Service.MoveToEnd(ref)
	} else {
		s.Service.Reorder(ref, before)
	}

	pkgcmd.PrintRefs(cmd.OutOrStdout(), s.Service.Pinned(), "")
	return nil
}

// pick asks for the note to move before. An empty ref means the end.
func pick(s *state.State, ref refs.NoteRef, choose Chooser) (refs.NoteRef, error) {
	pinned := s.Service.Pinned()
	choices := make([]string, 0, len(pinned))
	for _, p := range pinned {
		if p != ref {
			choices = append(choices, p.String())
		}
	}
	choices = append(choices, endChoice)

	prompt := fmt.Sprintf("Move %s before:", pathutil.DisplayName(ref.String()))
	choice, err := choose(prompt, choices)
	if err != nil {
		return "", err
	}
	if choice == endChoice {
		return "", nil
	}
	return refs.NoteRef(choice), nil
}

func promptChoice(prompt string, choices []string) (string, error) {
	sp := selection.New(prompt, choices)
	sp.PageSize = 10
	return sp.RunPrompt()
}
