package populate

import (
	"errors"
	"fmt"
	"time"
)

// PopulateConfig contains all parameters needed for one population run.
type PopulateConfig struct {
	// CSVPath is the path to the source CSV file
	CSVPath string

	// UseTestTables selects the test table pair instead of production.
	// The selection is immutable for the lifetime of one run.
	UseTestTables bool

	// ReplaceExisting drops and recreates the target tables instead of
	// appending to their existing contents
	ReplaceExisting bool

	// Connection holds the resolved database connection parameters
	Connection ConnectionConfig

	// Timeout is the global timeout for the entire run
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the PopulateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *PopulateConfig) Validate() error {
	var errs []error

	if c.CSVPath == "" {
		errs = append(errs, fmt.Errorf("CSVPath is required: %w", ErrInvalidConfig))
	}

	if c.Connection.Host == "" {
		errs = append(errs, fmt.Errorf("database host is required: %w", ErrInvalidConfig))
	}

	if c.Connection.Database == "" {
		errs = append(errs, fmt.Errorf("database name is required: %w", ErrInvalidConfig))
	}

	if c.Connection.Username == "" {
		errs = append(errs, fmt.Errorf("database user is required: %w", ErrInvalidConfig))
	}

	if c.Connection.Port < 0 || c.Connection.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range: %w", c.Connection.Port, ErrInvalidConfig))
	}

	// Validate timeout if set
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents resolved database connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AppName is reported to PostgreSQL as application_name
	AppName string

	// ConnectTimeout bounds the initial connection attempt
	ConnectTimeout time.Duration
}
