// Package schema implements the Schema Validator stage: it confirms the
// canonical column set is complete before any write occurs.
package schema

import (
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

// Validator checks a dataset against the required canonical column set.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns a *populate.SchemaError naming every missing required
// column, or nil when the dataset is complete. It runs strictly after
// normalization and before any database interaction; on failure zero rows
// are written.
func (v *Validator) Validate(ds *populate.Dataset) error {
	var missing []string
	for _, col := range populate.RequiredColumns {
		if !ds.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &populate.SchemaError{Missing: missing}
	}
	return nil
}
