package populate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := populator.Populate(ctx, config)
//	if errors.Is(err, populate.ErrSchemaInvalid) {
//	    // Handle a CSV that lacks required columns
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrConnectionFailed indicates database connection failed.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrReadFailed indicates the CSV source file could not be read.
	ErrReadFailed = errors.New("csv read failed")

	// ErrSchemaInvalid indicates a required canonical column is absent.
	ErrSchemaInvalid = errors.New("schema validation failed")

	// ErrWriteFailed indicates a bulk insert into a target table failed.
	ErrWriteFailed = errors.New("table write failed")
)

// SchemaError reports the canonical columns missing from the dataset after
// renaming and normalization. It unwraps to ErrSchemaInvalid so callers can
// use errors.Is without caring about the concrete type.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaInvalid
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrReadFailed):
		return ExitReadError
	case errors.Is(err, ErrSchemaInvalid):
		return ExitSchemaError
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteError
	}

	// Check for common connection error patterns
	errStr := err.Error()
	if strings.Contains(errStr, "failed to connect") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitConnectionError
	}

	return ExitGeneralError
}
