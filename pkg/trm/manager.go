package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Querier is what *sqlx.DB and *sqlx.Tx have in common.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

// ExtractTx returns the transaction bound to ctx, or nil.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// Conn returns the transaction bound to ctx and falls back to db.
func Conn(ctx context.Context, db *sqlx.DB) Querier {
	if tx := ExtractTx(ctx); tx != nil {
		return tx
	}
	return db
}

type Option func(*sql.TxOptions)

func WithIsolation(level sql.IsolationLevel) Option {
	return func(o *sql.TxOptions) {
		o.Isolation = level
	}
}

// Manager runs callbacks inside a database transaction.
// Repositories pick the transaction up from the context via Conn.
type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type txManager struct {
	db   *sqlx.DB
	opts sql.TxOptions
}

func NewManager(db *sqlx.DB, opts ...Option) Manager {
	m := &txManager{db: db}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, &t.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return context.WithValue(ctx, txKey{}, tx), tx, nil
}

// Do commits when callback returns nil and rolls back otherwise, including
// on panic. Nested calls join the outer transaction.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) (err error) {
	if ExtractTx(ctx) != nil {
		return callback(ctx)
	}

	ctx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := callback(ctx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
