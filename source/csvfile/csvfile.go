// Package csvfile loads delimited text files into a Dataset.
//
// The first record is the header. Each column's type is inferred from its
// non-empty cells: int64 when every cell is an integer, float64 when every
// cell is a number, bool when every cell is true/false, string otherwise.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	dc "github.com/reoring/datacontract"
	"github.com/reoring/datacontract/i18n"
)

// nullMarkers are cell values read as missing.
var nullMarkers = map[string]bool{
	"": true, "NA": true, "N/A": true, "n/a": true, "<NA>": true, "#N/A": true,
	"NULL": true, "null": true, "NaN": true, "nan": true, "None": true,
}

// Load reads the file at path. A zero delimiter means comma.
func Load(path string, delimiter rune) (*dc.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, delimiter)
}

// Read parses CSV from r. Rows shorter than the header are padded with nulls
// and longer rows are truncated; both are recorded as dataset warnings.
func Read(r io.Reader, delimiter rune) (*dc.Dataset, error) {
	reader := csv.NewReader(r)
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty csv file: header row required")
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
		if seen[h] {
			return nil, fmt.Errorf("duplicate header column %q", h)
		}
		seen[h] = true
		header[i] = h
	}

	ds := dc.NewDataset(header...)
	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		if len(rec) != len(header) {
			ds.Warn(dc.Issue{
				Path:     dc.Root().Index(len(records)).Pointer(),
				Code:     dc.CodeRaggedRow,
				Message:  i18n.T(dc.CodeRaggedRow, map[string]string{"got": strconv.Itoa(len(rec)), "want": strconv.Itoa(len(header))}),
				Severity: dc.Warn,
			})
		}
		records = append(records, rec)
	}

	kinds := make([]cellKind, len(header))
	for j := range header {
		kinds[j] = inferColumn(records, j)
	}
	for _, rec := range records {
		row := make(dc.Row, len(header))
		for j, h := range header {
			if j < len(rec) {
				row[h] = convert(rec[j], kinds[j])
			} else {
				row[h] = nil
			}
		}
		ds.Append(row)
	}
	return ds, nil
}

type cellKind int

const (
	kindInt cellKind = iota
	kindFloat
	kindBool
	kindString
)

func cell(rec []string, j int) (string, bool) {
	if j >= len(rec) {
		return "", false
	}
	s := strings.TrimSpace(rec[j])
	if nullMarkers[s] {
		return "", false
	}
	return s, true
}

// inferColumn joins the kinds of every non-empty cell of column j. int
// widens to float; any other mix falls back to string.
func inferColumn(records [][]string, j int) cellKind {
	kind, seen := kindString, false
	for _, rec := range records {
		s, ok := cell(rec, j)
		if !ok {
			continue
		}
		k := classify(s)
		switch {
		case !seen:
			kind, seen = k, true
		case k == kind:
		case k <= kindFloat && kind <= kindFloat:
			kind = kindFloat
		default:
			kind = kindString
		}
		if kind == kindString {
			break
		}
	}
	return kind
}

func classify(s string) cellKind {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return kindInt
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return kindFloat
	}
	if _, ok := parseBool(s); ok {
		return kindBool
	}
	return kindString
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func convert(raw string, k cellKind) any {
	s, ok := cell([]string{raw}, 0)
	if !ok {
		return nil
	}
	switch k {
	case kindInt:
		n, _ := strconv.ParseInt(s, 10, 64)
		return n
	case kindFloat:
		f, _ := strconv.ParseFloat(s, 64)
		return f
	case kindBool:
		b, _ := parseBool(s)
		return b
	default:
		return raw
	}
}
