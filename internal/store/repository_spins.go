package store

import "context"

func (s *Store) RecordSpin(ctx context.Context, accountID, s1, s2, s3 string, won int64, journalID string) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO spins (id, account_id, s1, s2, s3, won, journal_id) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		id, accountID, s1, s2, s3, won, journalID)
	return id, err
}

// ListSpins returns an account's spins newest-first.
func (s *Store) ListSpins(ctx context.Context, accountID string, limit, offset int) ([]SpinRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx,
		`SELECT id, account_id, s1, s2, s3, won, journal_id, created_at FROM spins WHERE account_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []SpinRecord{}
	for rows.Next() {
		var r SpinRecord
		if err := rows.Scan(&r.ID, &r.AccountID, &r.S1, &r.S2, &r.S3, &r.Won, &r.JournalID, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
