package search

import (
	"fmt"
	"io"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/catalog"
	"github.com/Paintersrp/home/internal/home"
	"github.com/Paintersrp/home/internal/search"
	"github.com/Paintersrp/home/internal/state"
	"github.com/Paintersrp/home/pkg/flags"
)

func NewCmdSearch(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search {query} [--since date]",
		Aliases: []string{"s", "find"},
		Short:   "Find notes whose file name contains the query.",
		Long: heredoc.Doc(`
			The search command matches the query against note file names, ignoring
			case, and prints at most 20 results in vault order. Note contents are
			not searched.

			Examples:
			  home search meeting
			  home search roadmap --since "last month"
			  home search log --since 2024-05-01
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			since, err := flags.HandleSince(cmd)
			if err != nil {
				return err
			}

			s, err := l.Load()
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), s, args[0], since)
		},
	}

	flags.AddSince(cmd)

	return cmd
}

func run(out io.Writer, s *state.State, query string, since time.Time) error {
	notes, err := s.Vault.List()
	if err != nil {
		return fmt.Errorf("failed to list vault notes: %w", err)
	}

	results := search.Search(home.Entries(modifiedSince(notes, since)), query)
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching notes")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(out, "%-30s %s\n", r.DisplayName, r.Ref)
	}
	return nil
}

func modifiedSince(notes []catalog.Note, since time.Time) []catalog.Note {
	if since.IsZero() {
		return notes
	}

	out := notes[:0:0]
	for _, n := range notes {
		if !n.LastModified.Before(since) {
			out = append(out, n)
		}
	}
	return out
}
