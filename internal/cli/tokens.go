package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/theme"
	"github.com/careportal/themekit/internal/tokens"
	"github.com/careportal/themekit/internal/tui/styles"
)

var (
	tokensMode   string
	tokensFormat string
	tokensColors bool
)

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.AddCommand(tokensShowCmd)
	tokensCmd.AddCommand(tokensPathsCmd)
	tokensCmd.AddCommand(tokensGetCmd)

	tokensShowCmd.Flags().StringVarP(&tokensMode, "mode", "m", "", "mode to show (default: active mode)")
	tokensShowCmd.Flags().StringVarP(&tokensFormat, "format", "f", formatTable, "output format: table, json or yaml")
	tokensShowCmd.Flags().BoolVar(&tokensColors, "colors-only", false, "only show color tokens")

	tokensGetCmd.Flags().StringVarP(&tokensMode, "mode", "m", "", "mode to read (default: active mode)")
}

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Inspect design tokens",
}

var tokensShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the token set for a mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(tokensFormat)
		if err != nil {
			return err
		}
		mode, err := modeForTokens(cmd)
		if err != nil {
			return err
		}
		set := tokens.Resolve(mode)
		out := cmd.OutOrStdout()

		switch format {
		case formatJSON:
			return WriteOutput(out, tokenSetOutput{Mode: mode, Tokens: set})
		case formatYAML:
			return writeYAML(out, tokenSetOutput{Mode: mode, Tokens: set})
		}

		entries := set.Flatten()
		if tokensColors {
			entries = set.ColorEntries()
		}
		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			swatch := ""
			if entry.Color && hasTTY() {
				swatch = styles.Swatch(entry.Value)
			}
			rows = append(rows, []string{entry.Path, entry.Value, swatch})
		}
		fmt.Fprintf(out, "Mode: %s\n\n", mode)
		return writeTable(out, []string{"TOKEN", "VALUE", ""}, rows)
	},
}

var tokensPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List every token path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := tokens.Resolve(models.ModeLight).Paths()
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), paths)
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(paths, "\n"))
		return err
	},
}

var tokensGetCmd = &cobra.Command{
	Use:   "get PATH",
	Short: "Print a single token value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeForTokens(cmd)
		if err != nil {
			return err
		}
		value, ok := tokens.Resolve(mode).Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown token path %q (see 'themekit tokens paths')", args[0])
		}
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), tokens.Entry{Path: args[0], Value: value})
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
		return err
	},
}

type tokenSetOutput struct {
	Mode   models.Mode     `json:"mode" yaml:"mode"`
	Tokens tokens.TokenSet `json:"tokens" yaml:"tokens"`
}

// modeForTokens uses --mode when given, otherwise the active mode of the session.
func modeForTokens(cmd *cobra.Command) (models.Mode, error) {
	if strings.TrimSpace(tokensMode) != "" {
		return models.ParseMode(tokensMode)
	}

	session, err := openThemeSession(cmd)
	if err != nil {
		return 0, err
	}
	defer session.Close()

	manager, err := theme.Current()
	if err != nil {
		return 0, err
	}
	return manager.Mode(), nil
}
