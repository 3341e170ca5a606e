package populate

// Record is one row of the source file keyed by canonical column name.
// Values are raw strings as read from the file; typed conversion happens
// only at the table writer boundary.
type Record map[string]string

// Dataset is the in-memory tabular form of one source file after header
// renaming. Column order is preserved from the file and records are never
// reordered by any stage. A Dataset is owned exclusively by a single
// population run.
type Dataset struct {
	// Columns lists canonical column names in source order. Unmapped
	// source headers are kept here but play no downstream role.
	Columns []string

	// Records holds one entry per data row.
	Records []Record
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}
