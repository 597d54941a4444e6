package repository

import (
	"context"
	"errors"

	"tictactoe_webapp/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store owns the database handle and scopes every state transition to a
// single transaction. All shared mutable state lives behind it; handlers
// keep no in-process state of their own.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Pool exposes the underlying pool for read-only queries that need no
// transaction scope.
func (s *Store) Pool() *pgxpool.Pool {
	return s.db
}

// RunTransaction executes body within one transaction. If body returns an
// error, every write it performed is rolled back before RunTransaction
// returns; otherwise the writes are committed durably. Rollback always
// completes before the caller regains control, so a response can never race
// an in-flight rollback.
func (s *Store) RunTransaction(ctx context.Context, body func(tx pgx.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	if err := body(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (e.g. inserting a second game with the same name).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
