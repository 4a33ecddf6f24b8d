package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careportal/themekit/internal/contrast"
	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tui/styles"
)

var contrastLargeText bool

func init() {
	rootCmd.AddCommand(contrastCmd)
	contrastCmd.Flags().BoolVar(&contrastLargeText, "large-text", false, "use large-text thresholds (3.0 AA, 4.5 AAA)")
}

var contrastCmd = &cobra.Command{
	Use:   "contrast FOREGROUND BACKGROUND",
	Short: "Check the contrast ratio of two #RRGGBB colors",
	Example: `  themekit contrast "#767676" "#FFFFFF"
  themekit contrast "#0F766E" "#F8FAFC" --large-text`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []contrast.Option
		if contrastLargeText {
			opts = append(opts, contrast.WithLargeText())
		}

		result, err := contrast.Evaluate(args[0], args[1], opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			return WriteOutput(out, contrastOutput{
				Foreground: args[0],
				Background: args[1],
				LargeText:  contrastLargeText,
				Result:     result,
			})
		}

		s := styles.ForMode(models.ModeLight)
		rows := [][]string{
			{"Foreground", args[0]},
			{"Background", args[1]},
			{"Ratio", fmt.Sprintf("%.2f:1", result.Ratio)},
			{"AA", formatPass(s, result.MeetsAA)},
			{"AAA", formatPass(s, result.MeetsAAA)},
			{"Level", formatLevel(s, result.Level)},
		}
		if hasTTY() {
			rows = append(rows, []string{"Sample", styles.Sample(args[0], args[1], " Aa ")})
		}
		return writeTable(out, nil, rows)
	},
}

type contrastOutput struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	LargeText  bool   `json:"large_text"`
	contrast.Result
}
