// Package jsonfile loads JSON record files into a Dataset.
//
// Accepted shapes are an array of objects (records) and an object of
// equal-length arrays (columns). Options.DataPath selects a nested value
// first, e.g. "data.items".
package jsonfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	dc "github.com/reoring/datacontract"
	eng "github.com/reoring/datacontract/internal/engine"
)

const maxDepth = 128

type Options struct {
	// DataPath is a dot-separated path to the records inside the document.
	DataPath string
	// OnDuplicateKey controls repeated keys inside one object. dc.Warn keeps
	// the last value and records a dataset warning; dc.Error fails the load;
	// dc.Ignore keeps the last value silently.
	OnDuplicateKey dc.Severity
}

// Load reads the file at path.
func Load(path string, opt Options) (*dc.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opt)
}

// Read decodes a dataset from r.
func Read(r io.Reader, opt Options) (*dc.Dataset, error) {
	var warnings []dc.Issue
	src := eng.WrapWithEnforcement(eng.NewReader(r), eng.EnforceOptions{
		OnDuplicate: opt.OnDuplicateKey,
		MaxDepth:    maxDepth,
		IssueSink: func(is dc.Issue) {
			if is.Code == dc.CodeDuplicateKey && is.Severity == dc.Warn {
				warnings = append(warnings, is)
			}
		},
	})
	doc, err := eng.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	v, err := descend(doc, opt.DataPath)
	if err != nil {
		return nil, err
	}
	var ds *dc.Dataset
	switch t := v.(type) {
	case []any:
		ds, err = fromRecords(t)
	case *dc.Object:
		ds, err = fromColumns(t)
	default:
		err = fmt.Errorf("expected an array of records or an object of columns, got %T", v)
	}
	if err != nil {
		return nil, err
	}
	if opt.DataPath == "" {
		ds.Warnings = append(ds.Warnings, warnings...)
	} else {
		for _, w := range warnings {
			if rel, ok := relativeTo(w.Path, opt.DataPath); ok {
				w.Path = rel
			}
			ds.Warn(w)
		}
	}
	return ds, nil
}

func descend(v any, path string) (any, error) {
	if path == "" {
		return v, nil
	}
	for _, seg := range strings.Split(path, ".") {
		o, ok := v.(*dc.Object)
		if !ok {
			return nil, fmt.Errorf("data path %q: %q is not inside an object", path, seg)
		}
		if v, ok = o.Get(seg); !ok {
			return nil, fmt.Errorf("data path %q: key %q not found", path, seg)
		}
	}
	return v, nil
}

// relativeTo rewrites a document pointer into a pointer relative to the
// records selected by DataPath.
func relativeTo(ptr, dataPath string) (string, bool) {
	prefix := dc.Root()
	for _, seg := range strings.Split(dataPath, ".") {
		prefix = prefix.Field(seg)
	}
	rel, ok := strings.CutPrefix(ptr, prefix.Pointer())
	if !ok || (rel != "" && rel[0] != '/') {
		return ptr, false
	}
	return rel, true
}

func fromRecords(items []any) (*dc.Dataset, error) {
	ds := dc.NewDataset()
	for i, it := range items {
		o, ok := it.(*dc.Object)
		if !ok {
			return nil, fmt.Errorf("record %d is not an object", i)
		}
		row := make(dc.Row, o.Len())
		for _, k := range o.Keys() {
			ds.AddColumn(k)
			row[k], _ = o.Get(k)
		}
		ds.Append(row)
	}
	return ds, nil
}

func fromColumns(o *dc.Object) (*dc.Dataset, error) {
	ds := dc.NewDataset(o.Keys()...)
	n := -1
	cols := make([][]any, o.Len())
	for i, k := range o.Keys() {
		v, _ := o.Get(k)
		arr, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("column %q is not an array", k)
		}
		if n >= 0 && len(arr) != n {
			return nil, fmt.Errorf("column %q has %d values, expected %d", k, len(arr), n)
		}
		n = len(arr)
		cols[i] = arr
	}
	for r := 0; r < n; r++ {
		row := make(dc.Row, len(cols))
		for i, k := range o.Keys() {
			row[k] = cols[i][r]
		}
		ds.Append(row)
	}
	return ds, nil
}
