package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/careportal/themekit/internal/logging"
	"github.com/careportal/themekit/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the theme diagnostics screen",
	Long: `Launch an interactive screen that previews the active token set, switches
modes, follows the host color scheme, and re-runs the accessibility audit.
Edits to the config file are applied while it runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if IsNonInteractive() {
		return &PreflightError{
			Message:  "the diagnostics screen requires an interactive terminal",
			Hint:     "Run without --non-interactive and with a TTY, or use the CLI subcommands",
			NextStep: "themekit mode status",
		}
	}

	session, err := openThemeSession(cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	return tui.RunWithConfig(tui.Config{
		Resolver:    session.resolver,
		ConfigStore: configStore,
		Logger:      logging.Component("tui"),
	})
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
