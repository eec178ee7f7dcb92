// Package report renders validation outcomes as JSON, Markdown or console
// text.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	dc "github.com/reoring/datacontract"
)

// Result is the envelope printed for one validation run.
type Result struct {
	RunID        string    `json:"run_id"`
	DataFile     string    `json:"data_file"`
	ContractFile string    `json:"contract_file"`
	Timestamp    time.Time `json:"timestamp"`
	*dc.Outcome
}

// NewResult stamps out with a fresh run id and the current time.
func NewResult(dataFile, contractFile string, out *dc.Outcome) *Result {
	if out == nil {
		out = &dc.Outcome{IsValid: true}
	}
	return &Result{
		RunID:        uuid.NewString(),
		DataFile:     dataFile,
		ContractFile: contractFile,
		Timestamp:    time.Now().UTC(),
		Outcome:      out,
	}
}

// Formatter renders a Result.
type Formatter interface {
	Format(r *Result) (string, error)
}

var formatters = map[string]Formatter{
	"json":     JSON{Indent: "  "},
	"markdown": Markdown{},
	"console":  Console{},
}

// ForName returns the formatter registered under name.
func ForName(name string) (Formatter, error) {
	f, ok := formatters[name]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q (want one of %v)", name, Names())
	}
	return f, nil
}

// Names lists the registered formatter names in sorted order.
func Names() []string {
	out := make([]string, 0, len(formatters))
	for k := range formatters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func status(r *Result) string {
	if r.IsValid {
		return "PASSED"
	}
	return "FAILED"
}
