package path

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/home/internal/pathutil"
	"github.com/Paintersrp/home/internal/state"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
)

func NewCmdPath(l *state.Loader) *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:   "path {note} [--copy]",
		Short: "Print the absolute path of a note.",
		Long: heredoc.Doc(`
			The path command prints where a note lives on disk, optionally copying
			it to the clipboard.

			Examples:
			  home path inbox
			  home path projects/roadmap --copy
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}

			var copyFn func(string) error
			if copyPath {
				copyFn = clipboard.WriteAll
			}
			return run(cmd.OutOrStdout(), s, args[0], copyFn)
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Copy the path to the clipboard")

	return cmd
}

func run(out io.Writer, s *state.State, arg string, copyFn func(string) error) error {
	ref, err := pkgcmd.ResolveExisting(s, arg)
	if err != nil {
		return err
	}

	abs := pathutil.Absolute(s.Vault.Root, ref.String())
	fmt.Fprintln(out, abs)

	if copyFn != nil {
		if err := copyFn(abs); err != nil {
			return fmt.Errorf("failed to copy path: %w", err)
		}
	}
	return nil
}
