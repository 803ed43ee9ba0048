package pin

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/state"
	"github.com/Paintersrp/home/pkg/cmd/pin/pinAdd"
	"github.com/Paintersrp/home/pkg/cmd/pin/pinList"
	"github.com/Paintersrp/home/pkg/cmd/pin/pinMove"
	"github.com/Paintersrp/home/pkg/cmd/pin/pinOpen"
	"github.com/Paintersrp/home/pkg/cmd/pin/pinRemove"
)

func NewCmdPin(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pin",
		Aliases: []string{"p"},
		Short:   "Manage the pinned notes shown at the top of the dashboard.",
		Long: heredoc.Doc(`
			Pinned notes are a small ordered list that stays on the dashboard until
			you unpin them. New pins go to the end of the list.

			Examples:
			  home pin add meeting
			  home pin list
			  home pin move projects/roadmap inbox
			  home pin remove inbox
		`),
	}

	cmd.AddCommand(
		pinAdd.Command(l),
		pinRemove.Command(l),
		pinList.Command(l),
		pinMove.Command(l),
		pinOpen.Command(l),
	)

	return cmd
}
