package pinRemove

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/pin"
	"github.com/Paintersrp/home/internal/state"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
)

func Command(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove {note}",
		Aliases: []string{"r", "unpin"},
		Short:   "Unpin a note.",
		Long: heredoc.Doc(`
			The pin remove command drops a note from the pinned list. The note
			itself is left untouched.

			Examples:
			  home pin remove inbox
			  home pin remove projects/roadmap.md
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}
			return run(cmd, args[0], s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, arg string, s *state.State) error {
	ref, err := pkgcmd.ResolveRef(s, arg)
	if err != nil {
		return err
	}

	if err := s.Service.Unpin(ref); err != nil {
		if errors.Is(err, pin.ErrNotPinned) {
			return fmt.Errorf("%s is not pinned", ref)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unpinned %s\n", ref)
	return nil
}
