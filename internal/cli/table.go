package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const tablePadding = 2

// writeTable aligns rows into columns. A nil header prints rows only.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.TrimRight(strings.Join(headers, "\t"), "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.TrimRight(strings.Join(row, "\t"), "\t"))
	}
	return writer.Flush()
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
