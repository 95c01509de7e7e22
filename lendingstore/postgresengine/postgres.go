package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bookwyrmhq/lending-backend-go/lendingstore"
	"github.com/bookwyrmhq/lending-backend-go/lendingstore/postgresengine/internal/adapters"
)

const (
	logMsgBuildQueryFailed  = "failed to build sql query"
	logMsgDBQueryFailed     = "database query execution failed"
	logMsgDBExecFailed      = "database statement execution failed"
	logMsgCloseRowsFailed   = "failed to close database rows"
	logMsgScanRowFailed     = "failed to scan database row"
	logMsgBeginTxFailed     = "failed to begin transaction"
	logMsgCommitFailed      = "failed to commit transaction"
	logMsgTxCompleted       = "transaction completed"
	logMsgTxRolledBack      = "transaction rolled back"
	logMsgSQLExecuted       = "executed sql for: "
	logAttrError            = "error"
	logAttrQuery            = "query"
	logAttrDurationMS       = "duration_ms"
	logAttrOperation        = "operation"
	metricTxDuration        = "lendingstore_tx_duration"
	metricTxCommitted       = "lendingstore_tx_committed"
	metricTxRolledBack      = "lendingstore_tx_rolled_back"
	labelOutcome            = "outcome"
	spanNameTx              = "lendingstore.transaction"
	dialectPostgres         = "postgres"
	pgCodeSerializationFail = "40001"
	pgCodeDeadlockDetected  = "40P01"
	pgCodeUniqueViolation   = "23505"
)

// Table and column names of the relational schema.
const (
	tableUserAccount  = "user_account"
	tableCategory     = "category"
	tableBook         = "book"
	tableBorrow       = "borrow"
	tableFine         = "fine"
	tableNotification = "notification"
	tableAuditLog     = "lending_audit_log"

	colID = "id"
)

type sqlQueryString = string

// builder is the goqu dialect used for every statement; Prepared SQL only,
// values never end up interpolated into query text.
var builder = goqu.Dialect(dialectPostgres)

// LendingStore implements lendingstore.TxRunner on PostgreSQL.
// It leverages a database adapter and supports customizable logging,
// metrics and tracing via functional options.
type LendingStore struct {
	db      adapters.DBAdapter
	logger  lendingstore.Logger
	metrics lendingstore.MetricsCollector
	tracing lendingstore.TracingCollector
}

// Option defines a functional option for configuring LendingStore.
type Option func(*LendingStore) error

// WithLogger sets the logger for the LendingStore.
//
// Debug level: SQL statements with execution timing (development use)
// Info level: transaction outcomes and durations (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger lendingstore.Logger) Option {
	return func(s *LendingStore) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the LendingStore.
func WithMetrics(collector lendingstore.MetricsCollector) Option {
	return func(s *LendingStore) error {
		s.metrics = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the LendingStore.
func WithTracing(collector lendingstore.TracingCollector) Option {
	return func(s *LendingStore) error {
		s.tracing = collector
		return nil
	}
}

// NewLendingStoreFromPGXPool creates a new LendingStore using a pgx Pool with optional configuration.
func NewLendingStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*LendingStore, error) {
	if db == nil {
		return nil, lendingstore.ErrNilDatabaseConnection
	}

	return newLendingStore(adapters.NewPGXAdapter(db), options...)
}

// NewLendingStoreFromSQLDB creates a new LendingStore using a sql.DB with optional configuration.
func NewLendingStoreFromSQLDB(db *sql.DB, options ...Option) (*LendingStore, error) {
	if db == nil {
		return nil, lendingstore.ErrNilDatabaseConnection
	}

	return newLendingStore(adapters.NewSQLAdapter(db), options...)
}

// NewLendingStoreFromSQLX creates a new LendingStore using a sqlx.DB with optional configuration.
func NewLendingStoreFromSQLX(db *sqlx.DB, options ...Option) (*LendingStore, error) {
	if db == nil {
		return nil, lendingstore.ErrNilDatabaseConnection
	}

	return newLendingStore(adapters.NewSQLXAdapter(db), options...)
}

func newLendingStore(db adapters.DBAdapter, options ...Option) (*LendingStore, error) {
	s := &LendingStore{db: db}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// WithinTx executes fn inside one atomic transaction. Everything fn does
// commits together or rolls back entirely when fn (or the commit) fails.
func (s *LendingStore) WithinTx(ctx context.Context, fn func(tx lendingstore.Tx) error) error {
	start := time.Now()

	ctx, span := s.startSpan(ctx, spanNameTx)

	dbTx, beginErr := s.db.BeginTx(ctx)
	if beginErr != nil {
		s.logError(logMsgBeginTxFailed, beginErr)
		s.finishSpan(span, "error")

		return errors.Join(lendingstore.ErrStorageFailed, beginErr)
	}

	if fnErr := fn(&storeTx{db: dbTx, engine: s}); fnErr != nil {
		if rollbackErr := dbTx.Rollback(ctx); rollbackErr != nil {
			s.logWarn(logMsgTxRolledBack, rollbackErr)
		}

		s.recordTxOutcome(ctx, metricTxRolledBack, time.Since(start))
		s.finishSpan(span, "rolled_back")

		return fnErr
	}

	if commitErr := dbTx.Commit(ctx); commitErr != nil {
		if rollbackErr := dbTx.Rollback(ctx); rollbackErr != nil {
			s.logWarn(logMsgTxRolledBack, rollbackErr)
		}

		s.logError(logMsgCommitFailed, commitErr)
		s.recordTxOutcome(ctx, metricTxRolledBack, time.Since(start))
		s.finishSpan(span, "error")

		return mapStorageError(commitErr)
	}

	duration := time.Since(start)
	s.recordTxOutcome(ctx, metricTxCommitted, duration)
	s.finishSpan(span, "committed")

	if s.logger != nil {
		s.logger.Info(logMsgTxCompleted, logAttrDurationMS, durationToMilliseconds(duration))
	}

	return nil
}

// storeTx implements lendingstore.Tx on top of one open database transaction.
type storeTx struct {
	db     adapters.DBTx
	engine *LendingStore
}

// query executes a parameterized select built by one of the build functions.
func (t *storeTx) query(ctx context.Context, operation string, sqlQuery sqlQueryString, args []any) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := t.db.Query(ctx, sqlQuery, args...)
	t.engine.logQueryWithDuration(sqlQuery, operation, time.Since(start))

	if queryErr != nil {
		t.engine.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return nil, mapStorageError(queryErr)
	}

	return rows, nil
}

// exec executes a parameterized statement and returns the affected row count.
func (t *storeTx) exec(ctx context.Context, operation string, sqlQuery sqlQueryString, args []any) (int64, error) {
	start := time.Now()
	result, execErr := t.db.Exec(ctx, sqlQuery, args...)
	t.engine.logQueryWithDuration(sqlQuery, operation, time.Since(start))

	if execErr != nil {
		t.engine.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return 0, mapStorageError(execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		return 0, mapStorageError(rowsAffectedErr)
	}

	return rowsAffected, nil
}

// queryRowID executes an INSERT ... RETURNING id and scans the generated id.
func (t *storeTx) queryRowID(ctx context.Context, operation string, sqlQuery sqlQueryString, args []any) (int64, error) {
	rows, err := t.query(ctx, operation, sqlQuery, args)
	if err != nil {
		return 0, err
	}
	defer t.closeRows(rows)

	if !rows.Next() {
		return 0, errors.Join(lendingstore.ErrStorageFailed, errors.New("insert returned no id"))
	}

	var id int64
	if scanErr := rows.Scan(&id); scanErr != nil {
		t.engine.logError(logMsgScanRowFailed, scanErr)
		return 0, mapStorageError(scanErr)
	}

	return id, nil
}

// closeRows safely closes database rows and logs any errors.
func (t *storeTx) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		t.engine.logWarn(logMsgCloseRowsFailed, closeErr)
	}
}

// mapStorageError translates driver errors into the lendingstore taxonomy.
// Both pgx and lib/pq error shapes are recognized since the engine can sit
// on either driver.
func mapStorageError(err error) error {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return mapSQLState(pgxErr.Code, err)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return mapSQLState(string(pqErr.Code), err)
	}

	return errors.Join(lendingstore.ErrStorageFailed, err)
}

func mapSQLState(code string, err error) error {
	switch code {
	case pgCodeSerializationFail, pgCodeDeadlockDetected:
		return errors.Join(lendingstore.ErrConcurrencyConflict, err)
	case pgCodeUniqueViolation:
		return errors.Join(lendingstore.ErrUniqueViolation, err)
	default:
		return errors.Join(lendingstore.ErrStorageFailed, err)
	}
}

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (s *LendingStore) logQueryWithDuration(sqlQuery string, operation string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+operation, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

func (s *LendingStore) logError(msg string, err error, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, append([]any{logAttrError, err.Error()}, args...)...)
	}
}

func (s *LendingStore) logWarn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, logAttrError, err.Error())
	}
}

func (s *LendingStore) recordTxOutcome(ctx context.Context, outcome string, duration time.Duration) {
	if s.metrics == nil {
		return
	}

	labels := map[string]string{labelOutcome: outcome}

	if contextual, ok := s.metrics.(lendingstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, outcome, labels)
		contextual.RecordDurationContext(ctx, metricTxDuration, duration, labels)
		return
	}

	s.metrics.IncrementCounter(outcome, labels)
	s.metrics.RecordDuration(metricTxDuration, duration, labels)
}

func (s *LendingStore) startSpan(ctx context.Context, name string) (context.Context, lendingstore.SpanContext) {
	if s.tracing == nil {
		return ctx, nil
	}

	return s.tracing.StartSpan(ctx, name, nil)
}

func (s *LendingStore) finishSpan(span lendingstore.SpanContext, status string) {
	if s.tracing == nil || span == nil {
		return
	}

	s.tracing.FinishSpan(span, status, nil)
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
