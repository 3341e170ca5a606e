package populate

import "context"

// Populator is the main interface for executing a population run.
// Implementations handle the full workflow: connection, CSV reading,
// normalization, schema validation, and the two table writes.
type Populator interface {
	// Populate executes one run using the provided configuration.
	// It returns an error if the run fails at any stage.
	Populate(ctx context.Context, config PopulateConfig) error
}

// SourceReader parses a CSV file into a Dataset with canonical column names.
type SourceReader interface {
	// Read produces the dataset or fails with an error wrapping
	// ErrReadFailed (file missing, unparsable, or empty).
	Read(path string) (*Dataset, error)
}

// RecordNormalizer applies the per-field transformations in place.
// It must not reorder or drop records; per-row anomalies are logged as
// warnings and the original value is retained.
type RecordNormalizer interface {
	Normalize(ds *Dataset)
}

// SchemaValidator confirms the canonical column set is complete before
// any write occurs.
type SchemaValidator interface {
	// Validate returns a *SchemaError naming every missing column,
	// or nil when the dataset is complete.
	Validate(ds *Dataset) error
}

// TableWriter projects the dataset into the two target relations and
// performs the bulk writes. The tasks write always runs first; the tasker
// data write never runs after a failed tasks write.
type TableWriter interface {
	// WriteTasks writes the task projection and returns the row count.
	WriteTasks(ctx context.Context, ds *Dataset, replace bool) (int64, error)

	// WriteTaskerData writes the tasker projection deduplicated by
	// tasker_id (first occurrence wins) and returns the row count.
	WriteTaskerData(ctx context.Context, ds *Dataset, replace bool) (int64, error)
}
