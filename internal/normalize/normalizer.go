// Package normalize implements the Field Normalizer stage: timestamp
// timezone conversion, locale canonicalization, and address trimming.
//
// All transformations are capability-gated on column presence, so a source
// file without the optional locale/trimmed_address columns passes through
// with only the timestamp handling applied. Per-row anomalies are logged as
// warnings and the original value is retained; normalization never aborts
// the run.
package normalize

import (
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

// Normalizer applies the per-field transformations to a dataset in place.
type Normalizer struct {
	logger populate.Logger
}

// NewNormalizer creates a new Normalizer.
// Panics if logger is nil (programmer error, fail fast at construction).
func NewNormalizer(logger populate.Logger) *Normalizer {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Normalizer{logger: logger}
}

// Normalize transforms the dataset in place. It never reorders or drops
// records.
func (n *Normalizer) Normalize(ds *populate.Dataset) {
	hasTimestamp := ds.HasColumn("latest_schedule_start_at")
	hasTimeZone := ds.HasColumn("time_zone")
	hasLocale := ds.HasColumn("locale")
	hasAddress := ds.HasColumn("trimmed_address")

	for i, rec := range ds.Records {
		if hasTimestamp {
			n.normalizeTimestamp(i, rec, hasTimeZone)
		}
		if hasLocale {
			rec["locale"] = NormalizeLocale(rec["locale"])
		}
		if hasAddress {
			rec["trimmed_address"] = TrimAddress(rec["trimmed_address"])
		}
	}

	n.logger.Verbose("Normalized %d rows (time_zone=%t locale=%t trimmed_address=%t)",
		len(ds.Records), hasTimeZone, hasLocale, hasAddress)
}
