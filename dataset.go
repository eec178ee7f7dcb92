package datacontract

// Row maps column names to typed scalars (string, int64, float64, bool,
// time.Time) or nil. A column missing from the map is treated as null.
type Row map[string]any

// Dataset is an in-memory table handed to Validate. It is read-only once
// loaded.
type Dataset struct {
	Columns []string
	Rows    []Row
	// Warnings are non-fatal notices raised by the loader.
	Warnings []Issue

	seen map[string]bool
}

// NewDataset returns an empty Dataset with the given column order.
// Duplicate column names are kept once, at their first position.
func NewDataset(columns ...string) *Dataset {
	d := &Dataset{}
	for _, c := range columns {
		d.AddColumn(c)
	}
	return d
}

// AddColumn appends name to the column order unless it is already present.
func (d *Dataset) AddColumn(name string) {
	if d.seen == nil {
		d.seen = make(map[string]bool, len(d.Columns)+1)
		for _, c := range d.Columns {
			d.seen[c] = true
		}
	}
	if d.seen[name] {
		return
	}
	d.seen[name] = true
	d.Columns = append(d.Columns, name)
}

// HasColumn reports whether name is one of the dataset's columns.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Append adds a row.
func (d *Dataset) Append(r Row) { d.Rows = append(d.Rows, r) }

// Warn records a loader notice.
func (d *Dataset) Warn(is Issue) { d.Warnings = append(d.Warnings, is) }

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}
