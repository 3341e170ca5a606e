package writer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// numericColumns map to double precision in the target relations.
var numericColumns = map[string]bool{
	"latitude":             true,
	"longitude":            true,
	"duration_hours":       true,
	"tenure_months":        true,
	"tasker_take_home_pay": true,
}

// booleanColumns map to boolean in the target relations.
var booleanColumns = map[string]bool{
	"is_job_bundle": true,
	"is_assigned":   true,
	"is_accepted":   true,
	"is_scheduled":  true,
}

// timestampLayouts are the zone-naive forms accepted at the write boundary.
// Normalization emits the first layout; the others tolerate sources that
// skipped normalization for a bad row.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// columnType returns the PostgreSQL type for a canonical column.
func columnType(col string) string {
	switch {
	case numericColumns[col]:
		return "double precision"
	case booleanColumns[col]:
		return "boolean"
	case col == "latest_schedule_start_at":
		return "timestamp"
	default:
		return "text"
	}
}

// convertValue converts a raw string cell to the Go value COPY expects for
// the column's type. Blank cells become NULL.
func convertValue(col, raw string) (any, error) {
	if raw == "" {
		return nil, nil
	}

	switch {
	case numericColumns[col]:
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	case booleanColumns[col]:
		return parseBool(raw)
	case col == "latest_schedule_start_at":
		return parseNaiveTimestamp(raw)
	default:
		return raw, nil
	}
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "1", "yes", "y":
		return true, nil
	case "false", "f", "0", "no", "n":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized boolean %q", raw)
	}
}

// parseNaiveTimestamp parses a zone-naive timestamp. The returned value is
// in UTC purely as a container; the timestamp column stores wall-clock time
// with no offset.
func parseNaiveTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(raw))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
