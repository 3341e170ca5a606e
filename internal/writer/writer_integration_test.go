package writer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/logging"
	populatetesting "github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/testing"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

func integrationDataset(taskerIDs ...string) *populate.Dataset {
	ds := &populate.Dataset{Columns: append([]string(nil), populate.RequiredColumns...)}
	for i, id := range taskerIDs {
		ds.Records = append(ds.Records, populate.Record{
			"tasker_id":                          id,
			"name":                               "Tasker " + id,
			"email":                              "tasker" + id + "@example.com",
			"phone_number":                       "555-010" + id,
			"tenure_months":                      "12",
			"lifetime_submitted_invoices_bucket": "10-50",
			"metro_name":                         "Springfield",
			"job_id":                             fmt.Sprintf("job-%d", i),
			"postal_code":                        "62704",
			"latitude":                           "39.7817",
			"longitude":                          "-89.6501",
			"country_key":                        "US",
			"latest_schedule_start_at":           "2024-01-01T07:00:00",
			"time_zone":                          "America/New_York",
			"is_job_bundle":                      "false",
			"is_assigned":                        "true",
			"is_accepted":                        "true",
			"is_scheduled":                       "false",
			"marketplace_key":                    "taskrabbit",
			"description":                        "Mount a TV",
			"duration_hours":                     "2",
			"tasker_take_home_pay":               "85.50",
		})
	}
	return ds
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), fmt.Sprintf("SELECT count(*) FROM %q", table)).Scan(&n))
	return n
}

func TestWriter_ReplaceThenAppend(t *testing.T) {
	pool := populatetesting.NewTestPool(t)
	ctx := context.Background()
	w := NewWriter(pool, logging.NewNullLogger(), true)

	ds := integrationDataset("1", "2", "1")

	n, err := w.WriteTasks(ctx, ds, true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = w.WriteTaskerData(ctx, ds, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n, "tasker rows must be deduplicated by tasker_id")

	// Appending the same dataset doubles the task rows and adds the
	// deduplicated tasker rows again.
	n, err = w.WriteTasks(ctx, ds, false)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	assert.Equal(t, 6, countRows(t, pool, populate.TestTasksTable))

	// A fresh replace resets the table.
	_, err = w.WriteTasks(ctx, ds, true)
	require.NoError(t, err)
	assert.Equal(t, 3, countRows(t, pool, populate.TestTasksTable))
}

func TestWriter_TimestampRoundTrip(t *testing.T) {
	pool := populatetesting.NewTestPool(t)
	ctx := context.Background()
	w := NewWriter(pool, logging.NewNullLogger(), true)

	ds := integrationDataset("1")
	_, err := w.WriteTasks(ctx, ds, true)
	require.NoError(t, err)

	var ts time.Time
	query := fmt.Sprintf("SELECT latest_schedule_start_at FROM %q LIMIT 1", populate.TestTasksTable)
	require.NoError(t, pool.QueryRow(ctx, query).Scan(&ts))
	assert.Equal(t, "2024-01-01T07:00:00", ts.Format("2006-01-02T15:04:05"))
}

func TestWriter_UnparsableTypedCellStoredAsNull(t *testing.T) {
	pool := populatetesting.NewTestPool(t)
	ctx := context.Background()
	logger := logging.NewRecordingLogger()
	w := NewWriter(pool, logger, true)

	ds := integrationDataset("1")
	ds.Records[0]["latitude"] = "north-ish"

	_, err := w.WriteTasks(ctx, ds, true)
	require.NoError(t, err)
	require.NotEmpty(t, logger.Warnings())

	var lat *float64
	query := fmt.Sprintf("SELECT latitude FROM %q LIMIT 1", populate.TestTasksTable)
	require.NoError(t, pool.QueryRow(ctx, query).Scan(&lat))
	assert.Nil(t, lat)
}

func TestWriter_OptionalColumnsIncludedWhenPresent(t *testing.T) {
	pool := populatetesting.NewTestPool(t)
	ctx := context.Background()
	w := NewWriter(pool, logging.NewNullLogger(), true)

	ds := integrationDataset("1")
	ds.Columns = append(ds.Columns, "locale", "trimmed_address")
	ds.Records[0]["locale"] = "en"
	ds.Records[0]["trimmed_address"] = "123 Main St"

	_, err := w.WriteTasks(ctx, ds, true)
	require.NoError(t, err)

	var locale, addr string
	query := fmt.Sprintf("SELECT locale, trimmed_address FROM %q LIMIT 1", populate.TestTasksTable)
	require.NoError(t, pool.QueryRow(ctx, query).Scan(&locale, &addr))
	assert.Equal(t, "en", locale)
	assert.Equal(t, "123 Main St", addr)
}
