package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/home/internal/constants"
	"github.com/Paintersrp/home/internal/state"
	"github.com/Paintersrp/home/internal/tui/dashboard"
	pkgcmd "github.com/Paintersrp/home/pkg/cmd"
	dashboardCmd "github.com/Paintersrp/home/pkg/cmd/dashboard"
	"github.com/Paintersrp/home/pkg/cmd/open"
	"github.com/Paintersrp/home/pkg/cmd/path"
	"github.com/Paintersrp/home/pkg/cmd/pin"
	"github.com/Paintersrp/home/pkg/cmd/recent"
	"github.com/Paintersrp/home/pkg/cmd/search"
	"github.com/Paintersrp/home/pkg/cmd/settings"
)

func NewCmdRoot(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "home",
		Short:   "A home base for your markdown vault: pinned notes, recent notes and search.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			home keeps a short ordered list of pinned notes and the notes you opened
			most recently, and shows both on a dashboard with a file name search.

			Run without a subcommand to open the dashboard (or print both lists when
			open_home_on_startup is false).

			  home settings set vault_dir ~/notes
			  home pin add roadmap
			  home
		`),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.Load()
			if err != nil {
				return err
			}

			if s.Service.Settings().OpenHomeOnStartup {
				return dashboard.Run(cmd.Context(), s)
			}
			return printLists(cmd, s)
		},
	}

	cmd.PersistentFlags().
		StringVar(
			&l.Options.ConfigPath,
			"config",
			"",
			"Settings file (default $HOME"+constants.ConfigDir+constants.ConfigFile+"."+constants.ConfigFileType+")",
		)
	cmd.PersistentFlags().
		StringP("vault", "v", "", "Vault directory for this run, overriding vault_dir")
	cmd.PersistentFlags().
		String("editor", "", "Editor for this run, overriding the editor setting")
	cmd.PersistentFlags().
		BoolVar(&l.Options.Debug, "debug", false, "Write debug level logs")
	viper.BindPFlag("vault_dir", cmd.PersistentFlags().Lookup("vault"))
	viper.BindPFlag("editor", cmd.PersistentFlags().Lookup("editor"))

	cmd.AddCommand(
		dashboardCmd.NewCmdDashboard(l),
		pin.NewCmdPin(l),
		recent.NewCmdRecent(l),
		open.NewCmdOpen(l),
		search.NewCmdSearch(l),
		settings.NewCmdSettings(l),
		path.NewCmdPath(l),
	)

	return cmd
}

func printLists(cmd *cobra.Command, s *state.State) error {
	out := cmd.OutOrStdout()
	s.Service.PruneRecent()

	fmt.Fprintln(out, "Pinned")
	pkgcmd.PrintRefs(out, s.Service.Pinned(), "  Nothing pinned yet")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recent")
	pkgcmd.PrintRefs(out, s.Service.Recent(), "  No recent notes")
	return nil
}
