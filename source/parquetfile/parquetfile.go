// Package parquetfile loads Parquet files into a Dataset through Apache Arrow.
package parquetfile

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	dc "github.com/reoring/datacontract"
)

// Load reads the whole file at path into memory.
//
// Column values map to int64 (signed and unsigned integers), float64, string
// (utf8 and binary), bool and time.Time in UTC (timestamp, date32, date64).
// Other Arrow types are rendered with their string form.
func Load(ctx context.Context, path string) (*dc.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mem := memory.DefaultAllocator
	tbl, err := pqarrow.ReadTable(ctx, f, parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	defer tbl.Release()
	return FromTable(tbl)
}

// FromTable converts an Arrow table into a Dataset.
func FromTable(tbl arrow.Table) (*dc.Dataset, error) {
	schema := tbl.Schema()
	names := make([]string, schema.NumFields())
	for i, f := range schema.Fields() {
		names[i] = f.Name
	}
	ds := dc.NewDataset(names...)
	if len(ds.Columns) != len(names) {
		return nil, fmt.Errorf("duplicate column names in %v", names)
	}

	nrows := int(tbl.NumRows())
	ds.Rows = make([]dc.Row, nrows)
	for r := range ds.Rows {
		ds.Rows[r] = make(dc.Row, len(names))
	}
	for c, name := range names {
		r := 0
		for _, chunk := range tbl.Column(c).Data().Chunks() {
			for i := 0; i < chunk.Len(); i++ {
				v, err := value(chunk, i)
				if err != nil {
					return nil, fmt.Errorf("column %q row %d: %w", name, r, err)
				}
				ds.Rows[r][name] = v
				r++
			}
		}
	}
	return ds, nil
}

func value(arr arrow.Array, i int) (any, error) {
	if arr.IsNull(i) {
		return nil, nil
	}
	switch a := arr.(type) {
	case *array.Int8:
		return int64(a.Value(i)), nil
	case *array.Int16:
		return int64(a.Value(i)), nil
	case *array.Int32:
		return int64(a.Value(i)), nil
	case *array.Int64:
		return a.Value(i), nil
	case *array.Uint8:
		return int64(a.Value(i)), nil
	case *array.Uint16:
		return int64(a.Value(i)), nil
	case *array.Uint32:
		return int64(a.Value(i)), nil
	case *array.Uint64:
		u := a.Value(i)
		if u > math.MaxInt64 {
			return float64(u), nil
		}
		return int64(u), nil
	case *array.Float32:
		return float64(a.Value(i)), nil
	case *array.Float64:
		return a.Value(i), nil
	case *array.Boolean:
		return a.Value(i), nil
	case *array.String:
		return a.Value(i), nil
	case *array.LargeString:
		return a.Value(i), nil
	case *array.Binary:
		return string(a.Value(i)), nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return a.Value(i).ToTime(unit).UTC(), nil
	case *array.Date32:
		return a.Value(i).ToTime().UTC(), nil
	case *array.Date64:
		return a.Value(i).ToTime().UTC(), nil
	case *array.Time64:
		unit := a.DataType().(*arrow.Time64Type).Unit
		return a.Value(i).ToTime(unit).Format(time.TimeOnly), nil
	default:
		return arr.ValueStr(i), nil
	}
}
