package game_test

import (
	"context"
	"errors"
	"testing"

	"slot-bank/internal/game"
	"slot-bank/internal/ledger"
	"slot-bank/internal/store"
	"slot-bank/internal/testutil"
)

// scriptedSource replays a fixed reel sequence.
type scriptedSource struct {
	seq []string
	i   int
}

func (s *scriptedSource) Draw([]string) string {
	sym := s.seq[s.i%len(s.seq)]
	s.i++
	return sym
}

func newEngine(st *store.Store, seq ...string) *game.Engine {
	led := ledger.New(st)
	cfg := game.DefaultConfig(10, 10)
	return game.NewEngine(st, led, nil, cfg, &scriptedSource{seq: seq})
}

func TestSpinWinCreditsAndRecords(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	eng := newEngine(st, "7", "7", "7")
	if _, _, err := st.Apply(ctx, "alice", 100, store.KindDeposit, "", "", ""); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	out, err := eng.Spin(ctx, "alice")
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if out.Payout != 1000 {
		t.Fatalf("triple 7 should pay 1000, got %d", out.Payout)
	}
	if out.NewBalance != 1090 {
		t.Fatalf("expected 100 - 10 + 1000 = 1090, got %d", out.NewBalance)
	}

	entry, err := st.GetJournalEntry(ctx, out.JournalID)
	if err != nil {
		t.Fatalf("get win entry: %v", err)
	}
	if entry.Kind != store.KindWin || entry.Amount != 1000 || entry.Metadata != "symbols:7,7,7" {
		t.Fatalf("unexpected win entry: %+v", entry)
	}

	spins, err := st.ListSpins(ctx, "alice", 10, 0)
	if err != nil {
		t.Fatalf("list spins: %v", err)
	}
	if len(spins) != 1 || spins[0].Won != 1000 || spins[0].S1 != "7" {
		t.Fatalf("unexpected spin record: %+v", spins)
	}

	sum, _ := st.SumJournal(ctx, "alice")
	if sum != out.NewBalance {
		t.Fatalf("journal sum %d must equal balance %d", sum, out.NewBalance)
	}
}

func TestSpinLossStillJournals(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	eng := newEngine(st, "7", "BAR", "🍒")
	if _, _, err := st.Apply(ctx, "bob", 50, store.KindDeposit, "", "", ""); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	out, err := eng.Spin(ctx, "bob")
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if out.Payout != 0 || out.NewBalance != 40 {
		t.Fatalf("losing spin should only cost the stake, got %+v", out)
	}

	entry, err := st.GetJournalEntry(ctx, out.JournalID)
	if err != nil {
		t.Fatalf("get loss entry: %v", err)
	}
	if entry.Kind != store.KindSpinResult || entry.Amount != 0 {
		t.Fatalf("losing spin must journal a zero-amount result, got %+v", entry)
	}
}

func TestSpinInsufficientFunds(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()

	eng := newEngine(st, "7", "7", "7")
	if _, err := eng.Spin(context.Background(), "broke"); !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
}
