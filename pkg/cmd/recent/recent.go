package recent

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/state"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
)

func NewCmdRecent(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recent",
		Aliases: []string{"r"},
		Short:   "Inspect and maintain the recently opened notes.",
		Long: heredoc.Doc(`
			The recent list holds the notes you opened last, newest first. Opening
			a note through home moves it to the front; notes past the configured
			maximum fall off the end.

			Examples:
			  home recent
			  home recent prune
			  home recent seed
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withState(l, cmd, list)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"l", "ls"},
			Short:   "List recently opened notes, newest first.",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withState(l, cmd, list)
			},
		},
		&cobra.Command{
			Use:   "prune",
			Short: "Drop recent entries whose notes no longer exist.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withState(l, cmd, prune)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Fill an empty recent list with the most recently modified notes.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withState(l, cmd, seed)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the recent list.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withState(l, cmd, clearRecent)
			},
		},
	)

	return cmd
}

func withState(l *state.Loader, cmd *cobra.Command, fn func(*cobra.Command, *state.State) error) error {
	s, err := l.Load()
	if err != nil {
		return err
	}
	return fn(cmd, s)
}

func list(cmd *cobra.Command, s *state.State) error {
	out := cmd.OutOrStdout()
	s.Service.PruneRecent()
	recent := s.Service.Recent()

	fmt.Fprintf(out, "Recent (%d/%d)\n", len(recent), s.Service.Settings().MaxRecentNotes)
	pkgcmd.PrintRefs(out, recent, "  No recent notes")
	return nil
}

func prune(cmd *cobra.Command, s *state.State) error {
	before := len(s.Service.Recent())
	if !s.Service.PruneRecent() {
		fmt.Fprintln(cmd.OutOrStdout(), "Recent list is up to date.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d missing notes.\n", before-len(s.Service.Recent()))
	return nil
}

func seed(cmd *cobra.Command, s *state.State) error {
	seeded, err := s.Service.SeedRecent()
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Fprintln(cmd.OutOrStdout(), "Recent list already has entries; clear it first to reseed.")
		return nil
	}
	return list(cmd, s)
}

func clearRecent(cmd *cobra.Command, s *state.State) error {
	if s.Service.ClearRecent() {
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared recent notes.")
	}
	return nil
}
