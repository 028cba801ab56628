package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("not_found")
	ErrInsufficientFunds = errors.New("insufficient_funds")

	// ErrStatusConflict reports that a cashout transition found the request in
	// a status other than the expected one. The caller maps it to the
	// user-facing error.
	ErrStatusConflict = errors.New("status_conflict")
)

// Store wraps DB access. Every balance-changing operation runs as a single
// transaction that locks the affected rows, so the journal and the cached
// balance can never diverge.
type Store struct {
	Pool *pgxpool.Pool
}

func New(dsn string) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{Pool: pool}, nil
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.Pool.Ping(ctx)
}

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
