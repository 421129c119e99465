package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker wraps a database connection with circuit breaker
// protection. It satisfies the query interface the persistence
// adapters are written against, so it can stand in for *sql.DB.
type DBCircuitBreaker struct {
	cb   *CircuitBreaker
	conn *sql.DB
}

// DBConfig returns configuration for the database circuit breaker:
// trips after 5 consecutive failures, retries after 30 seconds.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewDBCircuitBreaker wraps the connection with the default database
// circuit breaker configuration.
func NewDBCircuitBreaker(conn *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb:   New(DBConfig()),
		conn: conn,
	}
}

// NewDBCircuitBreakerWithConfig wraps the connection with a custom
// configuration.
func NewDBCircuitBreakerWithConfig(conn *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb:   New(cfg),
		conn: conn,
	}
}

// QueryContext executes a query with circuit breaker protection.
// If the circuit is open, it returns ErrOpenState without hitting the
// database.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.conn.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.conn.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext executes a single-row query. sql.Row defers its
// error to Scan, so the breaker cannot observe the outcome here and
// the call passes through unprotected.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.conn.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the underlying database connection for operations that
// bypass the breaker, such as migrations.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.conn
}
