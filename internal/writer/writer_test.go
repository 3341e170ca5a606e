package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/logging"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

func TestNewWriter_PanicsOnNilDeps(t *testing.T) {
	assert.Panics(t, func() { NewWriter(nil, logging.NewNullLogger(), false) })
}

func TestProjectColumns(t *testing.T) {
	base := populate.Dataset{Columns: populate.RequiredColumns}
	assert.Equal(t, populate.TaskColumns, projectColumns(&base, populate.TaskColumns, populate.OptionalTaskColumns))

	extended := populate.Dataset{Columns: append(append([]string(nil), populate.RequiredColumns...), "locale", "trimmed_address")}
	got := projectColumns(&extended, populate.TaskColumns, populate.OptionalTaskColumns)
	assert.Equal(t, append(append([]string(nil), populate.TaskColumns...), "locale", "trimmed_address"), got)

	taskerGot := projectColumns(&extended, populate.TaskerColumns, populate.OptionalTaskerColumns)
	assert.Equal(t, append(append([]string(nil), populate.TaskerColumns...), "locale"), taskerGot)
}

func TestProjectColumns_DoesNotMutateBase(t *testing.T) {
	ds := populate.Dataset{Columns: append(append([]string(nil), populate.RequiredColumns...), "locale")}
	before := len(populate.TaskerColumns)
	projectColumns(&ds, populate.TaskerColumns, populate.OptionalTaskerColumns)
	assert.Len(t, populate.TaskerColumns, before)
}

func TestDedupeByTaskerID(t *testing.T) {
	records := []populate.Record{
		{"tasker_id": "1", "name": "Ada"},
		{"tasker_id": "2", "name": "Bela"},
		{"tasker_id": "1", "name": "Ada (renamed)"},
		{"tasker_id": "3", "name": "Cato"},
		{"tasker_id": "2", "name": "Bela (renamed)"},
	}

	got := dedupeByTaskerID(records)
	require.Len(t, got, 3)
	assert.Equal(t, "Ada", got[0]["name"])
	assert.Equal(t, "Bela", got[1]["name"])
	assert.Equal(t, "Cato", got[2]["name"])
}

func TestDedupeByTaskerID_Empty(t *testing.T) {
	assert.Empty(t, dedupeByTaskerID(nil))
}

func TestCreateTableSQL(t *testing.T) {
	sql := createTableSQL("test_tbl", []string{"tasker_id", "latitude", "is_assigned", "latest_schedule_start_at"})
	assert.Equal(t, `CREATE TABLE "test_tbl" ("tasker_id" text, "latitude" double precision, "is_assigned" boolean, "latest_schedule_start_at" timestamp)`, sql)
}

func TestCreateTableIfNotExistsSQL(t *testing.T) {
	sql := createTableIfNotExistsSQL("test_tbl", []string{"tasker_id"})
	assert.Equal(t, `CREATE TABLE IF NOT EXISTS "test_tbl" ("tasker_id" text)`, sql)
}
