package dashboard

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/state"
	"github.com/Paintersrp/home/internal/tui/dashboard"
)

func NewCmdDashboard(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"d", "ui"},
		Short:   "Open the home dashboard.",
		Long: heredoc.Doc(`
			The dashboard shows your pinned notes, the notes you opened recently and
			a file name search. Changes made to the vault while it is open, such as
			renames and deletes, are reflected immediately.

			Keys:
			  /        search           enter  open note
			  p        pin / unpin      K / J  move pinned note up / down
			  tab      next section     y      copy note path
			  ?        help             q      quit
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}
			return dashboard.Run(cmd.Context(), s)
		},
	}

	return cmd
}
