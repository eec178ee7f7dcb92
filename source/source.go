// Package source loads datasets for validation. Load picks a loader from the
// location: a database URL (sqlite://, mysql://, postgres://) or a file
// extension (.csv, .json, .parquet).
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	dc "github.com/reoring/datacontract"
	"github.com/reoring/datacontract/source/csvfile"
	"github.com/reoring/datacontract/source/jsonfile"
	"github.com/reoring/datacontract/source/parquetfile"
	"github.com/reoring/datacontract/source/sqltable"
)

// Options tunes the individual loaders. The zero value is ready to use.
type Options struct {
	// Delimiter separates CSV cells (default ',').
	Delimiter rune
	// DataPath selects the records inside a JSON document, e.g. "data.items".
	DataPath string
	// RejectDuplicateKeys fails a JSON load on repeated keys instead of
	// keeping the last value with a warning.
	RejectDuplicateKeys bool
}

// Load reads the dataset at location. Every failure is returned as a
// *datacontract.DatasetLoadError.
func Load(ctx context.Context, location string, opt Options) (*dc.Dataset, error) {
	ds, err := load(ctx, location, opt)
	if err != nil {
		return nil, &dc.DatasetLoadError{Source: location, Err: err}
	}
	return ds, nil
}

func load(ctx context.Context, location string, opt Options) (*dc.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sqltable.IsLocation(location) {
		t, err := sqltable.ParseLocation(location)
		if err != nil {
			return nil, err
		}
		return sqltable.Load(ctx, t)
	}
	switch ext := strings.ToLower(filepath.Ext(location)); ext {
	case ".csv":
		return csvfile.Load(location, opt.Delimiter)
	case ".json":
		jo := jsonfile.Options{DataPath: opt.DataPath, OnDuplicateKey: dc.Warn}
		if opt.RejectDuplicateKeys {
			jo.OnDuplicateKey = dc.Error
		}
		return jsonfile.Load(location, jo)
	case ".parquet":
		return parquetfile.Load(ctx, location)
	default:
		return nil, fmt.Errorf("unsupported data format %q (want .csv, .json, .parquet or a database URL)", ext)
	}
}
