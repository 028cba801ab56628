package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Store) EnsureAccount(ctx context.Context, accountID string) error {
	_, err := s.Pool.Exec(ctx, `INSERT INTO accounts (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, accountID)
	return err
}

func (s *Store) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT id, balance, verified, created_at, updated_at FROM accounts WHERE id = $1`, accountID)
	var a Account
	if err := row.Scan(&a.ID, &a.Balance, &a.Verified, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

// GetBalance creates the account on first reference, so an unknown id reads
// as a zero balance rather than an error.
func (s *Store) GetBalance(ctx context.Context, accountID string) (int64, error) {
	if err := s.EnsureAccount(ctx, accountID); err != nil {
		return 0, err
	}
	row := s.Pool.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1`, accountID)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

func (s *Store) SetVerified(ctx context.Context, accountID string, verified bool) error {
	if err := s.EnsureAccount(ctx, accountID); err != nil {
		return err
	}
	_, err := s.Pool.Exec(ctx, `UPDATE accounts SET verified = $1, updated_at = now() WHERE id = $2`, verified, accountID)
	return err
}

// Apply records one signed balance change: it locks the account row, rejects
// a change that would drive the balance negative, then updates the balance
// and appends the journal entry in the same transaction. On
// ErrInsufficientFunds nothing is written.
func (s *Store) Apply(ctx context.Context, accountID string, amount int64, kind EntryKind, metadata, refType, refID string) (string, int64, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", 0, err
	}
	defer tx.Rollback(ctx)

	bal, err := lockAccount(ctx, tx, accountID)
	if err != nil {
		return "", 0, err
	}
	newBal := bal + amount
	if newBal < 0 {
		return "", 0, ErrInsufficientFunds
	}
	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = $1, updated_at = now() WHERE id = $2`, newBal, accountID); err != nil {
		return "", 0, err
	}
	entryID, err := appendEntry(ctx, tx, accountID, amount, kind, metadata, refType, refID)
	if err != nil {
		return "", 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return "", 0, err
	}
	return entryID, newBal, nil
}

// lockAccount takes the per-account row lock, creating the row first if this
// is the account's first reference. All mutating paths go through it, which
// linearizes concurrent operations on one account.
func lockAccount(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	if _, err := tx.Exec(ctx, `INSERT INTO accounts (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, accountID); err != nil {
		return 0, err
	}
	row := tx.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		return 0, mapNotFound(err)
	}
	return bal, nil
}

func appendEntry(ctx context.Context, tx pgx.Tx, accountID string, amount int64, kind EntryKind, metadata, refType, refID string) (string, error) {
	id := NewID()
	_, err := tx.Exec(ctx,
		`INSERT INTO journal (id, account_id, kind, amount, status, metadata, ref_type, ref_id) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		id, accountID, string(kind), amount, string(EntryCompleted), metadata, refType, refID)
	return id, err
}
