package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	dc "github.com/reoring/datacontract"
	"github.com/reoring/datacontract/source"
)

func TestLoad_Dispatch(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "users.csv")
	if err := os.WriteFile(csvPath, []byte("id|name\n1|a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err := source.Load(context.Background(), csvPath, source.Options{Delimiter: '|'})
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if ds.Rows[0]["id"] != int64(1) || ds.Rows[0]["name"] != "a" {
		t.Fatalf("csv row: %#v", ds.Rows[0])
	}

	jsonPath := filepath.Join(dir, "users.json")
	if err := os.WriteFile(jsonPath, []byte(`{"rows": [{"id": 1, "id": 2}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	ds, err = source.Load(context.Background(), jsonPath, source.Options{DataPath: "rows"})
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(ds.Warnings) != 1 {
		t.Fatalf("expected a duplicate key warning, got %+v", ds.Warnings)
	}
	if _, err := source.Load(context.Background(), jsonPath, source.Options{DataPath: "rows", RejectDuplicateKeys: true}); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestLoad_ErrorsAreDatasetLoadErrors(t *testing.T) {
	dir := t.TempDir()
	for _, loc := range []string{
		filepath.Join(dir, "missing.csv"),
		filepath.Join(dir, "data.xlsx"),
		"sqlite://" + filepath.Join(dir, "x.db"),
	} {
		_, err := source.Load(context.Background(), loc, source.Options{})
		var le *dc.DatasetLoadError
		if !errors.As(err, &le) {
			t.Fatalf("%s: expected DatasetLoadError, got %v", loc, err)
		}
		if le.Source != loc || dc.Category(err) != dc.CategoryDatasetLoad {
			t.Fatalf("%s: unexpected error %+v", loc, le)
		}
	}
}
