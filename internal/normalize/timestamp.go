package normalize

import (
	"time"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

// NaiveTimestampLayout is the zone-naive form timestamps are stored in.
// The destination column carries no offset; the value is wall-clock time
// in the row's own time zone by convention only.
const NaiveTimestampLayout = "2006-01-02T15:04:05"

// timestampLayouts are the accepted input forms, tried in order. Values
// without an offset are interpreted as UTC wall-clock time.
var timestampLayouts = []string{
	time.RFC3339Nano,
	NaiveTimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeTimestamp converts the row's latest_schedule_start_at from UTC to
// the zone named by its time_zone field and stores it zone-naive. A missing,
// blank, or unrecognized zone leaves the UTC wall-clock value unmodified
// with a warning. When the dataset has no time_zone column at all, values
// are only coerced to a naive form.
func (n *Normalizer) normalizeTimestamp(row int, rec populate.Record, hasTimeZone bool) {
	raw := rec["latest_schedule_start_at"]
	if raw == "" {
		return
	}

	utc, err := parseTimestamp(raw)
	if err != nil {
		n.logger.Warn("row %d: unparsable timestamp %q, keeping original: %v", row, raw, err)
		return
	}

	if !hasTimeZone {
		rec["latest_schedule_start_at"] = utc.Format(NaiveTimestampLayout)
		return
	}

	tzName := rec["time_zone"]
	if tzName == "" {
		n.logger.Warn("row %d: missing time zone, keeping UTC wall-clock value", row)
		rec["latest_schedule_start_at"] = utc.Format(NaiveTimestampLayout)
		return
	}

	loc, err := time.LoadLocation(tzName)
	if err != nil {
		n.logger.Warn("row %d: unrecognized time zone %q, keeping UTC wall-clock value", row, tzName)
		rec["latest_schedule_start_at"] = utc.Format(NaiveTimestampLayout)
		return
	}

	rec["latest_schedule_start_at"] = utc.In(loc).Format(NaiveTimestampLayout)
}

// parseTimestamp parses a raw timestamp and returns it in UTC. Values
// carrying an offset are converted; naive values are taken as UTC.
func parseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
