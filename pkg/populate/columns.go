package populate

// HeaderMapping is the fixed rename table from source CSV headers to
// canonical column names. Headers not listed here are carried through
// unchanged and ignored by every downstream stage.
var HeaderMapping = map[string]string{
	"Tasker ID":                          "tasker_id",
	"Name":                               "name",
	"Email":                              "email",
	"Phone Number":                       "phone_number",
	"Tenure Months":                      "tenure_months",
	"Lifetime Submitted Invoices Bucket": "lifetime_submitted_invoices_bucket",
	"Metro Name":                         "metro_name",
	"Job Id":                             "job_id",
	"Postal Code":                        "postal_code",
	"Latitude":                           "latitude",
	"Longitude":                          "longitude",
	"Country Key":                        "country_key",
	"Latest Schedule Start At":           "latest_schedule_start_at",
	"Time Zone":                          "time_zone",
	"Is Job Bundle":                      "is_job_bundle",
	"Is Assigned":                        "is_assigned",
	"Is Accepted":                        "is_accepted",
	"Is Scheduled":                       "is_scheduled",
	"Marketplace Key":                    "marketplace_key",
	"Description":                        "description",
	"Duration Hours":                     "duration_hours",
	"Tasker Take Home Pay":               "tasker_take_home_pay",
	"Locale":                             "locale",
	"Trimmed Address":                    "trimmed_address",
}

// RequiredColumns is the canonical column set that must be present after
// renaming before any write occurs. The locale and trimmed_address columns
// are deliberately absent: they are optional, capability-gated extensions
// and their normalization only runs when the source file carries them.
var RequiredColumns = []string{
	"tasker_id",
	"name",
	"email",
	"phone_number",
	"tenure_months",
	"lifetime_submitted_invoices_bucket",
	"metro_name",
	"job_id",
	"postal_code",
	"latitude",
	"longitude",
	"country_key",
	"latest_schedule_start_at",
	"time_zone",
	"is_job_bundle",
	"is_assigned",
	"is_accepted",
	"is_scheduled",
	"marketplace_key",
	"description",
	"duration_hours",
	"tasker_take_home_pay",
}

// TaskColumns is the job-related projection written to the tasks table.
// Keyed by job_id; no deduplication is applied (uniqueness is a contract
// of the CSV producer).
var TaskColumns = []string{
	"tasker_id",
	"metro_name",
	"job_id",
	"postal_code",
	"latitude",
	"longitude",
	"country_key",
	"latest_schedule_start_at",
	"time_zone",
	"is_job_bundle",
	"is_assigned",
	"is_accepted",
	"is_scheduled",
	"marketplace_key",
	"description",
	"duration_hours",
	"tasker_take_home_pay",
}

// TaskerColumns is the tasker-identity projection written to the tasker
// data table, deduplicated by tasker_id (first occurrence wins).
var TaskerColumns = []string{
	"tasker_id",
	"name",
	"email",
	"phone_number",
	"tenure_months",
	"lifetime_submitted_invoices_bucket",
}

// OptionalTaskColumns join the task projection when the source carries them.
var OptionalTaskColumns = []string{"locale", "trimmed_address"}

// OptionalTaskerColumns join the tasker projection when the source carries them.
var OptionalTaskerColumns = []string{"locale"}
