package report

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/reoring/datacontract/codec"
)

// Markdown renders a human-readable report with a failure case table.
type Markdown struct{}

func (Markdown) Format(r *Result) (string, error) {
	b := &strings.Builder{}
	mark := "✅"
	if !r.IsValid {
		mark = "❌"
	}
	b.WriteString("# Validation Report\n\n")
	b.WriteString("## Summary\n")
	fmt.Fprintf(b, "- File: %s\n", r.DataFile)
	fmt.Fprintf(b, "- Contract: %s\n", r.ContractFile)
	fmt.Fprintf(b, "- Status: %s %s\n", mark, status(r))
	fmt.Fprintf(b, "- Total Rows: %d\n", r.TotalRows)
	fmt.Fprintf(b, "- Run: %s\n", r.RunID)
	fmt.Fprintf(b, "- Timestamp: %s\n", codec.FormatDateTime(r.Timestamp))

	if fd := r.FailureDetail; fd != nil {
		b.WriteString("\n## Error Details\n")
		fmt.Fprintf(b, "### %s\n```\n%s\n```\n", fd.ErrorType, fd.Message)
		if len(fd.Details) > 0 {
			b.WriteString("\n### Failure Cases\n\n")
			b.WriteString("| Row | Field | Check | Value | Message |\n")
			b.WriteString("|---|---|---|---|---|\n")
			for _, c := range fd.Details {
				row := "-"
				if c.Row >= 0 {
					row = fmt.Sprint(c.Row)
				}
				fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
					row, cellText(c.Field), c.Check, cellText(valueText(c.Value)), cellText(c.Message))
			}
		}
	} else {
		b.WriteString("\n## Details\nNo validation errors found.\n")
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n## Warnings\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(b, "- `%s` %s: %s\n", w.Path, w.Code, w.Message)
		}
	}
	return b.String(), nil
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", "")

func cellText(s string) string { return cellEscaper.Replace(s) }

// valueText renders a failure value the way it appears in JSON output.
func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case time.Time:
		return codec.FormatDateTime(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
