package populate

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Population completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or connection parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitReadError       = 12 // CSV file missing, unparsable, or empty
	ExitSchemaError     = 13 // Required canonical column missing
	ExitWriteError      = 14 // Bulk insert into a target table failed
)

// Target table names. The test pair and the production pair carry identical
// schemas; a single boolean chosen at construction selects between them and
// the selection is immutable for the lifetime of one run.
const (
	TasksTable          = "taskrabbit_tasks_1"
	TaskerDataTable     = "taskrabbit_tasker_data_1"
	TestTasksTable      = "test_taskrabbit_tasks_1"
	TestTaskerDataTable = "test_taskrabbit_tasker_data_1"
)

const (
	// DefaultDurationHours fills blank duration_hours cells during reading.
	DefaultDurationHours = 2.0

	// DefaultPort is the standard PostgreSQL port.
	DefaultPort = 5432

	// DefaultTimeout is the catastrophic failure protection timeout for a
	// full population run. Not a per-statement timeout.
	DefaultTimeout = 3 * time.Minute
)

// TableNames returns the (tasks, tasker data) table pair for a run.
func TableNames(useTestTables bool) (tasksTable, taskerDataTable string) {
	if useTestTables {
		return TestTasksTable, TestTaskerDataTable
	}
	return TasksTable, TaskerDataTable
}
