package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const cashoutColumns = `id, account_id, destination, amount, status, journal_request_id, reason, created_at, updated_at`

// CreateCashout reserves the funds and creates the request in one
// transaction: the account is locked, the reservation debit is journaled, and
// the cashout row is written referencing that entry. ErrInsufficientFunds
// leaves nothing behind.
func (s *Store) CreateCashout(ctx context.Context, accountID, destination string, amount int64, metadata string) (*CashoutRequest, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	bal, err := lockAccount(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if bal < amount {
		return nil, ErrInsufficientFunds
	}
	if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance - $1, updated_at = now() WHERE id = $2`, amount, accountID); err != nil {
		return nil, err
	}

	reqID := NewID()
	entryID, err := appendEntry(ctx, tx, accountID, -amount, KindPayoutRequest, metadata, "cashout", reqID)
	if err != nil {
		return nil, err
	}
	row := tx.QueryRow(ctx,
		`INSERT INTO cashouts (id, account_id, destination, amount, status, journal_request_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING `+cashoutColumns,
		reqID, accountID, destination, amount, string(CashoutQueued), entryID)
	req, err := scanCashout(row)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *Store) GetCashout(ctx context.Context, id string) (*CashoutRequest, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+cashoutColumns+` FROM cashouts WHERE id = $1`, id)
	return scanCashout(row)
}

// TransitionCashout moves a request from one status to another, appending the
// matching journal entry and, when refund is set, crediting the reserved
// amount back — all in one transaction. The status check happens under the
// request's row lock, so two concurrent transitions cannot both succeed.
// Returns ErrNotFound for an unknown id and ErrStatusConflict (with the
// current row) when the request is not in the expected status.
func (s *Store) TransitionCashout(ctx context.Context, id string, from, to CashoutStatus, entryKind EntryKind, metadata, reason string, refund bool) (*CashoutRequest, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+cashoutColumns+` FROM cashouts WHERE id = $1 FOR UPDATE`, id)
	req, err := scanCashout(row)
	if err != nil {
		return nil, err
	}
	if req.Status != from {
		return req, ErrStatusConflict
	}

	entryAmount := int64(0)
	if refund {
		if _, err := lockAccount(ctx, tx, req.AccountID); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = now() WHERE id = $2`, req.Amount, req.AccountID); err != nil {
			return nil, err
		}
		entryAmount = req.Amount
	}
	if _, err := appendEntry(ctx, tx, req.AccountID, entryAmount, entryKind, metadata, "cashout", req.ID); err != nil {
		return nil, err
	}

	row = tx.QueryRow(ctx,
		`UPDATE cashouts SET status = $1, reason = CASE WHEN $2 = '' THEN reason ELSE $2 END, updated_at = now() WHERE id = $3 RETURNING `+cashoutColumns,
		string(to), reason, id)
	updated, err := scanCashout(row)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListCashouts returns an account's requests newest-first.
func (s *Store) ListCashouts(ctx context.Context, accountID string, limit, offset int) ([]CashoutRequest, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT `+cashoutColumns+` FROM cashouts WHERE account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCashouts(rows)
}

// ListQueuedCashouts returns the review queue oldest-first.
func (s *Store) ListQueuedCashouts(ctx context.Context) ([]CashoutRequest, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT `+cashoutColumns+` FROM cashouts WHERE status = $1 ORDER BY created_at ASC, id ASC`,
		string(CashoutQueued))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCashouts(rows)
}

func scanCashout(row pgx.Row) (*CashoutRequest, error) {
	var c CashoutRequest
	if err := row.Scan(&c.ID, &c.AccountID, &c.Destination, &c.Amount, &c.Status, &c.JournalRequestID, &c.Reason, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &c, nil
}

func scanCashouts(rows pgx.Rows) ([]CashoutRequest, error) {
	out := []CashoutRequest{}
	for rows.Next() {
		var c CashoutRequest
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Destination, &c.Amount, &c.Status, &c.JournalRequestID, &c.Reason, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
