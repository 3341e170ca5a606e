// Package source implements the Source Reader stage: it parses a CSV export
// into an in-memory dataset with canonical column names.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

// Reader parses one CSV file into a populate.Dataset.
type Reader struct {
	logger populate.Logger
}

// NewReader creates a new Reader.
// Panics if logger is nil (programmer error, fail fast at construction).
func NewReader(logger populate.Logger) *Reader {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Reader{logger: logger}
}

// Read parses the file at path, renames headers via populate.HeaderMapping,
// and fills blank duration_hours cells with the default. Headers without a
// mapping are carried through unchanged and ignored downstream.
//
// Fails with an error wrapping populate.ErrReadFailed when the file is
// missing, unparsable, or contains no data rows.
func (r *Reader) Read(path string) (*populate.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", populate.ErrReadFailed, path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file %q is empty", populate.ErrReadFailed, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing header of %q: %w", populate.ErrReadFailed, path, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		if canonical, ok := populate.HeaderMapping[h]; ok {
			columns[i] = canonical
		} else {
			columns[i] = h
		}
	}

	ds := &populate.Dataset{Columns: columns}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %w", populate.ErrReadFailed, path, err)
		}

		rec := make(populate.Record, len(columns))
		for i, col := range columns {
			rec[col] = row[i]
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, fmt.Errorf("%w: file %q contains no data rows", populate.ErrReadFailed, path)
	}

	r.logger.Info("Read %d rows and %d columns from %s", len(ds.Records), len(ds.Columns), path)
	r.fillDurationDefaults(ds)

	return ds, nil
}

// fillDurationDefaults replaces blank duration_hours cells with the default
// value and logs how many rows were defaulted.
func (r *Reader) fillDurationDefaults(ds *populate.Dataset) {
	if !ds.HasColumn("duration_hours") {
		return
	}

	defaulted := 0
	for _, rec := range ds.Records {
		if rec["duration_hours"] == "" {
			rec["duration_hours"] = "2"
			defaulted++
		}
	}
	if defaulted > 0 {
		r.logger.Info("Defaulted duration_hours to %.1f for %d row(s)", populate.DefaultDurationHours, defaulted)
	}
}
