// Package services orchestrates the four pipeline stages of a population
// run: read, normalize, validate, write.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/happyrobot-ai/taskrabbit-tasker-assignment-db-populate/pkg/populate"
)

// WriterFactory builds a TableWriter once the connection pool for the run
// exists. The boolean selects the test table pair.
type WriterFactory func(pool *pgxpool.Pool, useTestTables bool) populate.TableWriter

// PopulationService implements the Populator interface.
// Thread-Safety: NOT safe for concurrent Populate() calls on the same
// instance. Create separate instances for concurrent runs.
type PopulationService struct {
	connectorFactory func(*populate.ConnectionConfig) (populate.Connector, error)
	reader           populate.SourceReader
	normalizer       populate.RecordNormalizer
	validator        populate.SchemaValidator
	writerFactory    WriterFactory
	logger           populate.Logger
}

// NewPopulationService creates a new PopulationService with all dependencies injected.
//
// Panics on nil dependencies: these are programmer errors that should fail
// loudly at application startup. Runtime conditions (bad config, connection
// failures, file errors) are returned as errors instead.
func NewPopulationService(
	connectorFactory func(*populate.ConnectionConfig) (populate.Connector, error),
	reader populate.SourceReader,
	normalizer populate.RecordNormalizer,
	validator populate.SchemaValidator,
	writerFactory WriterFactory,
	logger populate.Logger,
) *PopulationService {
	if connectorFactory == nil {
		panic("connectorFactory cannot be nil")
	}
	if reader == nil {
		panic("reader cannot be nil")
	}
	if normalizer == nil {
		panic("normalizer cannot be nil")
	}
	if validator == nil {
		panic("validator cannot be nil")
	}
	if writerFactory == nil {
		panic("writerFactory cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &PopulationService{
		connectorFactory: connectorFactory,
		reader:           reader,
		normalizer:       normalizer,
		validator:        validator,
		writerFactory:    writerFactory,
		logger:           logger,
	}
}

// Populate executes one population run. Control flow is strictly
// sequential: connect, read, normalize, validate, write tasks, write tasker
// data. Any stage failure aborts the run; the two bulk writes share no
// transaction boundary, so a tasks commit may survive a failed tasker write.
func (s *PopulationService) Populate(ctx context.Context, config populate.PopulateConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	runID := uuid.New()
	tasksTable, taskerTable := populate.TableNames(config.UseTestTables)

	s.logger.Info("Starting population run %s", runID)
	if config.UseTestTables {
		s.logger.Info("Using test tables: %s, %s", tasksTable, taskerTable)
	} else {
		s.logger.Info("Using production tables: %s, %s", tasksTable, taskerTable)
	}
	if config.ReplaceExisting {
		s.logger.Info("Mode: REPLACE existing data")
	} else {
		s.logger.Info("Mode: APPEND to existing data")
	}

	pool, err := s.connect(ctx, config.Connection, runID)
	if err != nil {
		return err
	}
	defer pool.Close()

	ds, err := s.reader.Read(config.CSVPath)
	if err != nil {
		return err
	}

	s.normalizer.Normalize(ds)

	if err := s.validator.Validate(ds); err != nil {
		return err
	}

	w := s.writerFactory(pool, config.UseTestTables)

	taskRows, err := w.WriteTasks(ctx, ds, config.ReplaceExisting)
	if err != nil {
		return err
	}

	taskerRows, err := w.WriteTaskerData(ctx, ds, config.ReplaceExisting)
	if err != nil {
		return err
	}

	s.logger.Info("✓ Population completed successfully (%d task rows, %d tasker rows)", taskRows, taskerRows)
	return nil
}

// connect opens the run's own connection pool. Each invocation connects
// fresh; pools are never reused across runs.
func (s *PopulationService) connect(ctx context.Context, connConfig populate.ConnectionConfig, runID uuid.UUID) (*pgxpool.Pool, error) {
	if connConfig.AppName == "" {
		connConfig.AppName = "dbpopulate-" + runID.String()[:8]
	}

	s.logger.Verbose("Connecting to database '%s' on %s:%d", connConfig.Database, connConfig.Host, connConfig.Port)

	connector, err := s.connectorFactory(&connConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: creating connector: %w", populate.ErrConnectionFailed, err)
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", populate.ErrConnectionFailed, err)
	}

	s.logger.Info("✓ Connected to database '%s'", connConfig.Database)
	return pool, nil
}
