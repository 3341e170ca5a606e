// Package writer implements the Table Writer stage: it projects the
// normalized dataset into the two target relations and performs bulk
// insertion with COPY.
package writer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

// Writer performs the two bulk writes of a population run. The table-name
// pair is fixed at construction and immutable for the lifetime of the run.
//
// Thread-Safety: NOT safe for concurrent writes on the same instance.
type Writer struct {
	pool        *pgxpool.Pool
	logger      populate.Logger
	tasksTable  string
	taskerTable string
}

// NewWriter creates a Writer bound to the test or production table pair.
// Panics if pool or logger is nil (programmer error, fail fast at construction).
func NewWriter(pool *pgxpool.Pool, logger populate.Logger, useTestTables bool) *Writer {
	if pool == nil {
		panic("pool cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	tasksTable, taskerTable := populate.TableNames(useTestTables)
	return &Writer{
		pool:        pool,
		logger:      logger,
		tasksTable:  tasksTable,
		taskerTable: taskerTable,
	}
}

// WriteTasks writes the task projection of every record to the tasks table.
// After a successful write, one row's timestamp is read back for diagnostic
// logging only; its failure is non-fatal.
func (w *Writer) WriteTasks(ctx context.Context, ds *populate.Dataset, replace bool) (int64, error) {
	cols := projectColumns(ds, populate.TaskColumns, populate.OptionalTaskColumns)

	n, err := w.write(ctx, w.tasksTable, cols, ds.Records, replace)
	if err != nil {
		return 0, err
	}

	w.verifyTimestamp(ctx)
	return n, nil
}

// WriteTaskerData writes the tasker projection deduplicated by tasker_id.
// When multiple records share a tasker_id, only the first occurrence survives.
func (w *Writer) WriteTaskerData(ctx context.Context, ds *populate.Dataset, replace bool) (int64, error) {
	cols := projectColumns(ds, populate.TaskerColumns, populate.OptionalTaskerColumns)
	return w.write(ctx, w.taskerTable, cols, dedupeByTaskerID(ds.Records), replace)
}

// write prepares the target relation for the requested mode and bulk-inserts
// the projected rows in a single COPY round trip.
func (w *Writer) write(ctx context.Context, table string, cols []string, records []populate.Record, replace bool) (int64, error) {
	if replace {
		w.logger.Verbose("Replacing table %s", table)
		if _, err := w.pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", pgx.Identifier{table}.Sanitize())); err != nil {
			return 0, fmt.Errorf("%w: dropping table %s: %w", populate.ErrWriteFailed, table, err)
		}
		if _, err := w.pool.Exec(ctx, createTableSQL(table, cols)); err != nil {
			return 0, fmt.Errorf("%w: creating table %s: %w", populate.ErrWriteFailed, table, err)
		}
	} else {
		if _, err := w.pool.Exec(ctx, createTableIfNotExistsSQL(table, cols)); err != nil {
			return 0, fmt.Errorf("%w: ensuring table %s exists: %w", populate.ErrWriteFailed, table, err)
		}
	}

	rows := make([][]any, 0, len(records))
	for i, rec := range records {
		row := make([]any, len(cols))
		for j, col := range cols {
			value, err := convertValue(col, rec[col])
			if err != nil {
				w.logger.Warn("row %d: column %s value %q is not a valid %s, storing NULL: %v",
					i, col, rec[col], columnType(col), err)
				value = nil
			}
			row[j] = value
		}
		rows = append(rows, row)
	}

	n, err := w.pool.CopyFrom(ctx, pgx.Identifier{table}, cols, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("%w: bulk insert into %s: %w", populate.ErrWriteFailed, table, err)
	}

	w.logger.Info("✓ Wrote %d row(s) into %s", n, table)
	return n, nil
}

// verifyTimestamp reads back one stored timestamp for diagnostic logging.
// Failures are logged and swallowed.
func (w *Writer) verifyTimestamp(ctx context.Context) {
	query := fmt.Sprintf("SELECT latest_schedule_start_at FROM %s LIMIT 1", pgx.Identifier{w.tasksTable}.Sanitize())

	var ts *time.Time
	if err := w.pool.QueryRow(ctx, query).Scan(&ts); err != nil {
		w.logger.Verbose("Timestamp verification read-back failed (non-fatal): %v", err)
		return
	}
	if ts == nil {
		w.logger.Verbose("Timestamp verification: first stored timestamp is NULL")
		return
	}
	w.logger.Verbose("Timestamp verification: first stored timestamp is %s", ts.Format("2006-01-02T15:04:05"))
}

// projectColumns returns the projection's base columns plus any optional
// columns the dataset actually carries.
func projectColumns(ds *populate.Dataset, base, optional []string) []string {
	cols := append([]string(nil), base...)
	for _, col := range optional {
		if ds.HasColumn(col) {
			cols = append(cols, col)
		}
	}
	return cols
}

// dedupeByTaskerID keeps the first occurrence of each tasker_id, preserving
// record order.
func dedupeByTaskerID(records []populate.Record) []populate.Record {
	seen := make(map[string]bool, len(records))
	out := make([]populate.Record, 0, len(records))
	for _, rec := range records {
		id := rec["tasker_id"]
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, rec)
	}
	return out
}

func createTableSQL(table string, cols []string) string {
	return "CREATE TABLE " + pgx.Identifier{table}.Sanitize() + " " + columnDefs(cols)
}

func createTableIfNotExistsSQL(table string, cols []string) string {
	return "CREATE TABLE IF NOT EXISTS " + pgx.Identifier{table}.Sanitize() + " " + columnDefs(cols)
}

func columnDefs(cols []string) string {
	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = pgx.Identifier{col}.Sanitize() + " " + columnType(col)
	}
	return "(" + strings.Join(defs, ", ") + ")"
}
