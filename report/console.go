package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/reoring/datacontract/codec"
)

// Console renders aligned plain text for terminals.
type Console struct{}

func (Console) Format(r *Result) (string, error) {
	b := &strings.Builder{}
	banner := "Validation Status: " + status(r)
	rule := strings.Repeat("=", len(banner))
	fmt.Fprintf(b, "%s\n%s\n%s\n\n", rule, banner, rule)

	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Data File:\t%s\n", r.DataFile)
	fmt.Fprintf(tw, "Contract:\t%s\n", r.ContractFile)
	fmt.Fprintf(tw, "Total Rows:\t%d\n", r.TotalRows)
	fmt.Fprintf(tw, "Run:\t%s\n", r.RunID)
	fmt.Fprintf(tw, "Timestamp:\t%s\n", codec.FormatDateTime(r.Timestamp))
	if err := tw.Flush(); err != nil {
		return "", err
	}

	if fd := r.FailureDetail; fd != nil {
		fmt.Fprintf(b, "\nError Details: %s\n%s\n", fd.ErrorType, fd.Message)
		if len(fd.Details) > 0 {
			b.WriteString("\n")
			tw = tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ROW\tFIELD\tCHECK\tCATEGORY\tVALUE\tMESSAGE")
			for _, c := range fd.Details {
				row := "-"
				if c.Row >= 0 {
					row = fmt.Sprint(c.Row)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", row, c.Field, c.Check, c.Category, valueText(c.Value), c.Message)
			}
			if err := tw.Flush(); err != nil {
				return "", err
			}
		}
	}
	if len(r.Warnings) > 0 {
		fmt.Fprintf(b, "\nWarnings (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Fprintf(b, "  %s %s: %s\n", w.Path, w.Code, w.Message)
		}
	}
	return b.String(), nil
}
