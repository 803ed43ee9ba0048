package pinAdd

import (
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/fzf"
	"github.com/Paintersrp/home/internal/pin"
	"github.com/Paintersrp/home/internal/refs"
	"github.com/Paintersrp/home/internal/state"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
	"github.com/Paintersrp/home/pkg/flags"
)

func Command(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [query] [--path file_path]",
		Aliases: []string{"a"},
		Short:   "Pin a note to the dashboard.",
		Long: heredoc.Doc(`
			The pin add command appends a note to the pinned list. Without --path a
			fuzzy finder lists the notes that are not pinned yet, optionally
			prefilled with the query.

			Examples:
			  home pin add --path projects/roadmap.md
			  home pin add roadmap
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}
			return run(cmd, args, s)
		},
	}

	flags.AddPath(cmd)

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	out := cmd.OutOrStdout()

	path, err := flags.HandlePath(cmd)
	if err != nil {
		return err
	}
	if path != "" {
		ref, err := pkgcmd.ResolveExisting(s, path)
		if err != nil {
			return err
		}
		return add(out, s, ref)
	}

	if s.Service.PinnedFull() {
		fmt.Fprintf(out, "Pinned list is full (%d). Unpin a note first.\n", s.Service.Settings().MaxPinnedNotes)
		return nil
	}

	candidates, err := s.Service.PinCandidates()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	finder := fzf.NewFuzzyFinder(s.Vault.Root, candidates, "Select a note to pin.")
	choice, err := finder.Find(query)
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			return nil
		}
		return err
	}

	return add(out, s, choice.Ref)
}

// add pins ref, reporting capacity and duplicate pins as information.
func add(out io.Writer, s *state.State, ref refs.NoteRef) error {
	err := s.Service.Pin(ref)
	switch {
	case errors.Is(err, pin.ErrAtCapacity):
		fmt.Fprintf(out, "Pinned list is full (%d). Unpin a note first.\n", s.Service.Settings().MaxPinnedNotes)
		return nil
	case errors.Is(err, pin.ErrAlreadyPinned):
		fmt.Fprintf(out, "%s is already pinned.\n", ref)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Pinned %s\n", ref)
	return nil
}
