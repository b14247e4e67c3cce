// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/tracing"
)

const defaultTxTimeout = time.Minute

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TxTimeout       time.Duration
	TracingEnabled  bool
}

type txScopeKey struct{}

// txScope is the transaction of one WithTx call. It is begun on the first
// statement, so a callback that never touches the store costs nothing.
type txScope struct {
	mu      sync.Mutex
	db      *sql.DB
	timeout time.Duration

	tx     *sql.Tx
	err    error
	cancel context.CancelFunc
}

// runner begins the transaction on first use. The transaction lives on its
// own context so that a cancelled request cannot roll back a commit that is
// already under way.
func (s *txScope) runner() (sq.BaseRunner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx != nil {
		return s.tx, nil
	}
	if s.err != nil {
		return nil, s.err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		s.err = fmt.Errorf("failed to begin transaction: %w", err)
		return nil, s.err
	}

	s.tx, s.cancel = tx, cancel
	return tx, nil
}

func (s *txScope) finish(commit bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		if commit {
			return s.err
		}
		return nil
	}
	defer s.cancel()

	if commit {
		return s.tx.Commit()
	}

	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func scopeFromContext(ctx context.Context) *txScope {
	s, _ := ctx.Value(txScopeKey{}).(*txScope)
	return s
}

type DBClient struct {
	pool      *pgxpool.Pool
	db        *sql.DB
	txTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement never runs outside the transaction of ctx: when it cannot be
// begun every statement of the scope fails with the begin error.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	scope := scopeFromContext(ctx)
	if scope == nil {
		return builder.RunWith(d.db)
	}

	runner, err := scope.runner()
	if err != nil {
		d.logger.Errorf("statement rejected: %v", err)
		return builder.RunWith(failedRunner{err: err})
	}

	return builder.RunWith(runner)
}

// failedRunner answers every statement with the error that prevented its
// transaction from starting.
type failedRunner struct {
	err error
}

func (f failedRunner) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f failedRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedRunner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, f.err
}

func (f failedRunner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedRunner) QueryRowContext(context.Context, string, ...interface{}) sq.RowScanner {
	return failedRow{err: f.err}
}

type failedRow struct {
	err error
}

func (f failedRow) Scan(...interface{}) error {
	return f.err
}

// WithTx runs fn with every statement built from its context in one
// transaction, committed when fn returns nil. A nested call joins the
// enclosing transaction.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if scopeFromContext(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	scope := &txScope{db: d.db, timeout: d.txTimeout}

	if err := fn(context.WithValue(ctx, txScopeKey{}, scope)); err != nil {
		if rerr := scope.finish(false); rerr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rerr)
		}
		return err
	}

	if err := scope.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks the pool can still reach the database and exports the result
// as the postgres availability gauge.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.db.PingContext(ctx)

	available := 1.0
	if err != nil {
		available = 0
	}
	if merr := d.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, available); merr != nil {
		d.logger.Debugf("failed to set postgres availability: %v", merr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func poolConfig(cfg Config) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		pc.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime

	return pc, nil
}

// NewDBClient opens a pgx pool exposed through database/sql, so squirrel
// builders can run on it, and checks the database answers.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	d := new(DBClient)
	d.pool = pool
	d.db = stdlib.OpenDBFromPool(pool)
	d.txTimeout = cfg.TxTimeout
	if d.txTimeout <= 0 {
		d.txTimeout = defaultTxTimeout
	}

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if err := d.db.Ping(); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return d, nil
}
