package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/config"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/db"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/logging"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/normalize"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/schema"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/services"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/source"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/internal/writer"
	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
	"github.com/jackc/pgx/v5/pgxpool"
)

var populateCmd = &cobra.Command{
	Use:   "populate <csv_path>",
	Short: "Populate the tasks and tasker data tables from a CSV export",
	Long: `Populate reads the CSV file, normalizes its fields, validates the
canonical column set, and bulk-loads the tasks table followed by the
deduplicated tasker data table.

Arguments:
  csv_path    Path to the CSV export file

Password Authentication:
  For security, the password is NOT accepted as a CLI flag. Set the
  $DB_PASSWORD environment variable, typically via a .env file.

Examples:
  # Load into the production tables, appending to existing data
  dbpopulate populate ./exports/assignments.csv -d tasker_assignments

  # Load into the test tables, replacing their contents
  dbpopulate populate ./exports/assignments.csv -d tasker_assignments --test --replace

  # Use connection parameters from a specific .env file
  dbpopulate populate ./exports/assignments.csv --env-file prod.env`,
	Args: RequireCSVPath,
	RunE: runPopulate,
}

type populateFlagValues struct {
	host, username, database, sslMode string
	port                              int
	test, replace                     bool
	envFile                           string
	timeout                           time.Duration
}

var populateFlags populateFlagValues

func init() {
	rootCmd.AddCommand(populateCmd)

	// Granular connection flags
	// Precedence: flag > environment variable > populate.yaml > default
	populateCmd.Flags().StringVar(&populateFlags.host, "host", "",
		"PostgreSQL server host\n"+
			"Precedence: --host > $DB_HOST > populate.yaml")
	populateCmd.Flags().IntVarP(&populateFlags.port, "port", "p", 0,
		"PostgreSQL server port\n"+
			"Precedence: --port > $DB_PORT > populate.yaml > 5432")
	populateCmd.Flags().StringVarP(&populateFlags.username, "username", "U", "",
		"PostgreSQL user (default: $DB_USER)")
	populateCmd.Flags().StringVarP(&populateFlags.database, "database", "d", "",
		"Target database name (default: $DB_NAME)")
	populateCmd.Flags().StringVar(&populateFlags.sslMode, "sslmode", "",
		"SSL mode: disable|allow|prefer|require|verify-ca|verify-full\n"+
			"(default: driver default, or $DB_SSLMODE)")

	// Run workflow flags
	populateCmd.Flags().BoolVarP(&populateFlags.test, "test", "t", false,
		"Use the test table pair instead of the production pair")
	populateCmd.Flags().BoolVar(&populateFlags.replace, "replace", false,
		"Replace existing table contents instead of appending")
	populateCmd.Flags().StringVar(&populateFlags.envFile, "env-file", "",
		"Path to a .env file with DB_* connection variables (default: .env)")

	// Timeout flag - catastrophic failure protection, not normal timeout control
	populateCmd.Flags().DurationVar(&populateFlags.timeout, "timeout", populate.DefaultTimeout,
		"Catastrophic failure protection timeout (default 3m)\n"+
			"Prevents indefinite hangs from network issues or deadlocks\n"+
			"Examples: 30s, 5m, 1h30m")
}

// buildPopulateConfig builds a PopulateConfig from CLI flags, environment
// variables, and the optional populate.yaml project file.
// This function is extracted for testability and separation of concerns.
func buildPopulateConfig(csvPath string, verbose bool) (populate.PopulateConfig, error) {
	if populateFlags.envFile != "" {
		if err := godotenv.Load(populateFlags.envFile); err != nil {
			return populate.PopulateConfig{}, fmt.Errorf("failed to load env file %q: %w: %w",
				populateFlags.envFile, err, populate.ErrInvalidConfig)
		}
	} else {
		_ = godotenv.Load()
	}

	projectCfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return populate.PopulateConfig{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	connCfg, err := config.ResolveConnection(config.Flags{
		Host:     populateFlags.host,
		Port:     populateFlags.port,
		Username: populateFlags.username,
		Database: populateFlags.database,
		SSLMode:  populateFlags.sslMode,
	}, projectCfg)
	if err != nil {
		return populate.PopulateConfig{}, err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Connection resolved:\n")
		fmt.Fprintf(os.Stderr, "  Host: %s\n", connCfg.Host)
		fmt.Fprintf(os.Stderr, "  Port: %d\n", connCfg.Port)
		fmt.Fprintf(os.Stderr, "  User: %s\n", connCfg.Username)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", connCfg.Database)
		fmt.Fprintf(os.Stderr, "  SSL Mode: %s\n", connCfg.SSLMode)
	}

	return populate.PopulateConfig{
		CSVPath:         csvPath,
		UseTestTables:   populateFlags.test,
		ReplaceExisting: populateFlags.replace,
		Connection:      connCfg,
		Timeout:         populateFlags.timeout,
		Verbose:         verbose,
	}, nil
}

func runPopulate(cmd *cobra.Command, args []string) error {
	csvPath := args[0]
	verbose := getVerboseFlag(cmd)

	cfg, err := buildPopulateConfig(csvPath, verbose)
	if err != nil {
		return err
	}

	// Create dependencies
	logger := logging.NewConsoleLogger(verbose)
	reader := source.NewReader(logger)
	normalizer := normalize.NewNormalizer(logger)
	validator := schema.NewValidator()
	writerFactory := func(pool *pgxpool.Pool, useTestTables bool) populate.TableWriter {
		return writer.NewWriter(pool, logger, useTestTables)
	}

	// Create populator with all dependencies injected
	populator := services.NewPopulationService(
		db.NewConnector,
		reader,
		normalizer,
		validator,
		writerFactory,
		logger,
	)

	// Setup context with timeout and signal handling for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling run...")
		cancel()
	}()

	if err := populator.Populate(ctx, cfg); err != nil {
		return fmt.Errorf("population failed: %w", err)
	}

	return nil
}
