package game

import (
	"context"
	"fmt"

	"slot-bank/internal/announce"
	"slot-bank/internal/ledger"
	"slot-bank/internal/store"
)

type Engine struct {
	Store     *store.Store
	Ledger    *ledger.Ledger
	Announcer *announce.Announcer
	Config    Config
	Source    SymbolSource
}

func NewEngine(st *store.Store, led *ledger.Ledger, ann *announce.Announcer, cfg Config, src SymbolSource) *Engine {
	return &Engine{Store: st, Ledger: led, Announcer: ann, Config: cfg, Source: src}
}

type SpinOutcome struct {
	Symbols    [3]string
	Payout     int64
	NewBalance int64
	JournalID  string
	SpinID     string
}

// Spin runs one trial: debit the spin cost, draw three symbols, settle the
// payout, and record the spin. The debit and the win credit are separate
// atomic operations; a winning entry carries the drawn symbols in its
// metadata, and a losing trial still gets a zero-amount spin_result entry so
// every spin is journal-auditable.
func (e *Engine) Spin(ctx context.Context, accountID string) (*SpinOutcome, error) {
	if _, _, err := e.Ledger.Debit(ctx, accountID, e.Config.SpinCost, store.KindBet, "spin_cost", "", ""); err != nil {
		return nil, err
	}

	s1 := e.Source.Draw(e.Config.Symbols)
	s2 := e.Source.Draw(e.Config.Symbols)
	s3 := e.Source.Draw(e.Config.Symbols)
	won := e.Config.Payout(s1, s2, s3)
	meta := fmt.Sprintf("symbols:%s,%s,%s", s1, s2, s3)

	var entryID string
	var newBal int64
	var err error
	if won > 0 {
		entryID, newBal, err = e.Ledger.Credit(ctx, accountID, won, store.KindWin, meta, "", "")
	} else {
		entryID, newBal, err = e.Ledger.ApplyChange(ctx, accountID, 0, store.KindSpinResult, meta, "", "")
	}
	if err != nil {
		return nil, err
	}

	spinID, err := e.Store.RecordSpin(ctx, accountID, s1, s2, s3, won, entryID)
	if err != nil {
		return nil, err
	}

	if won > 0 {
		e.Announcer.Win(ctx, announce.WinEvent{
			AccountID: accountID,
			Symbols:   []string{s1, s2, s3},
			Coins:     won,
			Formatted: e.Config.FormatCoins(won),
			JournalID: entryID,
		})
	}

	return &SpinOutcome{
		Symbols:    [3]string{s1, s2, s3},
		Payout:     won,
		NewBalance: newBal,
		JournalID:  entryID,
		SpinID:     spinID,
	}, nil
}
