package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careportal/themekit/internal/audit"
	"github.com/careportal/themekit/internal/models"
	"github.com/careportal/themekit/internal/tui/styles"
)

var (
	auditMode         string
	auditFailuresOnly bool
)

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.Flags().StringVarP(&auditMode, "mode", "m", "", "audit a single mode (default: all modes)")
	auditCmd.Flags().BoolVar(&auditFailuresOnly, "failures-only", false, "only list failed checks")
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check every mode's token pairs against WCAG AA",
	Long: `Evaluate the foreground/background contrast of every color role and text pair,
and check that high-contrast borders are pure black or white.
Exits non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var reports []audit.Report
		if strings.TrimSpace(auditMode) != "" {
			mode, err := models.ParseMode(auditMode)
			if err != nil {
				return err
			}
			report, err := audit.RunMode(mode)
			if err != nil {
				return err
			}
			reports = []audit.Report{report}
		} else {
			all, err := audit.RunAll()
			if err != nil {
				return err
			}
			reports = all
		}

		failed := 0
		for _, report := range reports {
			failed += len(report.Failures())
		}

		out := cmd.OutOrStdout()
		if IsJSONOutput() {
			if err := WriteOutput(out, reports); err != nil {
				return err
			}
		} else {
			for i, report := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := writeAuditReport(out, report); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "\n%d checks failed\n", failed)
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d checks", ErrAuditFailed, failed)
		}
		return nil
	},
}

func writeAuditReport(out io.Writer, report audit.Report) error {
	s := styles.ForMode(models.ModeLight)
	fmt.Fprintf(out, "Mode: %s\n", report.Mode)

	rows := make([][]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		if auditFailuresOnly && f.Passed {
			continue
		}
		ratio := "-"
		if f.Contrast != nil {
			ratio = fmt.Sprintf("%.2f", f.Contrast.Ratio)
		}
		rows = append(rows, []string{string(f.Check), f.Subject, ratio, formatPass(s, f.Passed), f.Detail})
	}
	return writeTable(out, []string{"CHECK", "SUBJECT", "RATIO", "RESULT", "DETAIL"}, rows)
}
