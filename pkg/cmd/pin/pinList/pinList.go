package pinList

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/state"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
)

func Command(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List pinned notes in order.",
		Long: heredoc.Doc(`
			The pin list command prints the pinned notes in dashboard order.

			Examples:
			  home pin list
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}
			return run(cmd, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	out := cmd.OutOrStdout()
	pinned := s.Service.Pinned()

	fmt.Fprintf(out, "Pinned (%d/%d)\n", len(pinned), s.Service.Settings().MaxPinnedNotes)
	pkgcmd.PrintRefs(out, pinned, "  Nothing pinned yet")
	return nil
}
