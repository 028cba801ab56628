package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const journalColumns = `id, account_id, kind, amount, status, metadata, ref_type, ref_id, created_at`

// ListJournal returns an account's entries newest-first.
func (s *Store) ListJournal(ctx context.Context, accountID string, limit, offset int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT `+journalColumns+` FROM journal WHERE account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListJournalAll returns the global journal view newest-first.
func (s *Store) ListJournalAll(ctx context.Context, limit, offset int) ([]JournalEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT `+journalColumns+` FROM journal ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEntries(rows)
}

// SumJournal adds up every entry for one account. Used to check that the
// cached balance is reconstructible from the journal.
func (s *Store) SumJournal(ctx context.Context, accountID string) (int64, error) {
	row := s.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM journal WHERE account_id = $1`, accountID)
	var sum int64
	if err := row.Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func (s *Store) GetJournalEntry(ctx context.Context, id string) (*JournalEntry, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+journalColumns+` FROM journal WHERE id = $1`, id)
	var e JournalEntry
	if err := row.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.Status, &e.Metadata, &e.RefType, &e.RefID, &e.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]JournalEntry, error) {
	out := []JournalEntry{}
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.Status, &e.Metadata, &e.RefType, &e.RefID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
