// Package ledger is the only mutation path for account balances. Every
// change goes through the store's Apply transaction, so the cached balance
// always equals the sum of the account's journal entries.
package ledger

import (
	"context"
	"errors"

	"slot-bank/internal/store"
)

var (
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrInvalidAmount     = errors.New("invalid_amount")
)

type Ledger struct {
	Store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{Store: s}
}

func (l *Ledger) EnsureAccount(ctx context.Context, accountID string) error {
	return l.Store.EnsureAccount(ctx, accountID)
}

func (l *Ledger) Balance(ctx context.Context, accountID string) (int64, error) {
	return l.Store.GetBalance(ctx, accountID)
}

// Credit adds amount coins. amount must be positive.
func (l *Ledger) Credit(ctx context.Context, accountID string, amount int64, kind store.EntryKind, metadata, refType, refID string) (string, int64, error) {
	if amount <= 0 {
		return "", 0, ErrInvalidAmount
	}
	return l.ApplyChange(ctx, accountID, amount, kind, metadata, refType, refID)
}

// Debit removes amount coins, failing with ErrInsufficientFunds when the
// balance would go negative. amount must be positive.
func (l *Ledger) Debit(ctx context.Context, accountID string, amount int64, kind store.EntryKind, metadata, refType, refID string) (string, int64, error) {
	if amount <= 0 {
		return "", 0, ErrInvalidAmount
	}
	return l.ApplyChange(ctx, accountID, -amount, kind, metadata, refType, refID)
}

// ApplyChange applies a signed change and appends the journal entry
// atomically. A zero amount is legal: it records an auditable event (for
// example a losing spin) without moving the balance.
func (l *Ledger) ApplyChange(ctx context.Context, accountID string, amount int64, kind store.EntryKind, metadata, refType, refID string) (string, int64, error) {
	entryID, newBal, err := l.Store.Apply(ctx, accountID, amount, kind, metadata, refType, refID)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientFunds) {
			return "", 0, ErrInsufficientFunds
		}
		return "", 0, err
	}
	return entryID, newBal, nil
}
