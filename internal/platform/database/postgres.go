// Package database opens and manages the connection pools behind the catalog store.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jmoiron/sqlx"
	// Registers the "postgres" driver.
	_ "github.com/lib/pq"
)

const (
	// DefaultMaxConnections bounds the pool when Options leaves it unset.
	DefaultMaxConnections = 10

	startupPingTimeout = 5 * time.Second
)

// Options tunes a pool.
type Options struct {
	// MaxConnections bounds concurrently open connections. Zero means DefaultMaxConnections.
	MaxConnections int
	// ForcePlaintext disables transport encryption even for remote hosts.
	ForcePlaintext bool
	// EagerCheck pings the store while opening and fails fast when it is unreachable.
	EagerCheck bool
	// ConnMaxLifetime recycles connections older than this. Zero keeps them forever.
	ConnMaxLifetime time.Duration
	// QueryTimeout bounds every query run through WithConn. Zero means no bound.
	QueryTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxConnections <= 0 {
		o.MaxConnections = DefaultMaxConnections
	}
	return o
}

// Pool is a bounded set of Postgres connections.
type Pool struct {
	db           *sqlx.DB
	target       Target
	queryTimeout time.Duration

	closeOnce sync.Once
	closed    atomic.Bool
	closeErr  error
}

// Open parses raw and opens a Postgres pool for it.
func Open(ctx context.Context, raw string, opts Options) (*Pool, error) {
	target, err := ParseTarget(raw, opts.ForcePlaintext)
	if err != nil {
		return nil, err
	}
	return OpenTarget(ctx, target, opts)
}

// OpenTarget opens a Postgres pool for an already parsed target.
// Connections are established lazily unless opts.EagerCheck is set.
func OpenTarget(ctx context.Context, target Target, opts Options) (*Pool, error) {
	if target.Driver != DriverPostgres {
		return nil, &ConnectionError{
			Op:     "open",
			Target: target.Redacted(),
			Err:    fmt.Errorf("driver %s is not served by the SQL pool", target.Driver),
		}
	}

	db, err := sqlx.Open("postgres", target.DSN)
	if err != nil {
		return nil, &ConnectionError{Op: "open", Target: target.Redacted(), Err: err}
	}

	pool := NewPool(db, opts)
	pool.target = target

	if opts.EagerCheck {
		pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
		defer cancel()

		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, &ConnectionError{Op: "connect", Target: target.Redacted(), Err: err}
		}
	}

	return pool, nil
}

// NewPool wraps an existing handle, applying the pool bounds from opts.
func NewPool(db *sqlx.DB, opts Options) *Pool {
	opts = opts.withDefaults()

	db.SetMaxOpenConns(opts.MaxConnections)
	db.SetMaxIdleConns(opts.MaxConnections)
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return &Pool{
		db:           db,
		queryTimeout: opts.QueryTimeout,
	}
}

// Target returns the parsed target the pool was opened with.
func (p *Pool) Target() Target {
	return p.target
}

// Acquire borrows a connection. Every successful Acquire must be paired with Release.
// Waiting for a free connection honours ctx.
func (p *Pool) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	if p == nil || p.db == nil || p.closed.Load() {
		return nil, ErrPoolClosed
	}

	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, nil
}

// Release returns a borrowed connection to the pool.
func (p *Pool) Release(conn *sqlx.Conn) {
	if conn != nil {
		_ = conn.Close()
	}
}

// WithConn runs fn on a borrowed connection and releases it on every exit path.
//
// Caller cancellation only applies while waiting for a connection. Once fn starts, the
// query runs to completion (bounded by QueryTimeout when set) so a disconnecting client
// can never leak or poison a connection.
func (p *Pool) WithConn(ctx context.Context, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer p.Release(conn)

	queryCtx, cancel := detach(ctx, p.queryTimeout)
	defer cancel()

	return fn(queryCtx, conn)
}

// Ping verifies a connection can be established and used.
func (p *Pool) Ping(ctx context.Context) error {
	return p.WithConn(ctx, func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.PingContext(ctx)
	})
}

// Stats returns database/sql pool statistics.
func (p *Pool) Stats() sql.DBStats {
	if p == nil || p.db == nil {
		return sql.DBStats{}
	}
	return p.db.Stats()
}

// DB exposes the underlying handle for the metrics collector.
func (p *Pool) DB() *sql.DB {
	return p.db.DB
}

// Close drains and terminates all connections. It is idempotent and safe on a nil pool.
func (p *Pool) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		p.closeErr = p.db.Close()
	})
	return p.closeErr
}
