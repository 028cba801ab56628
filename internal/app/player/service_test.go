package player

import (
	"errors"
	"math"
	"testing"

	"slot-bank/internal/game"
	"slot-bank/internal/ledger"
)

func newQuoteService() *Service {
	return NewService(nil, nil, nil, nil, game.DefaultConfig(10, 10))
}

func TestTopUpQuoteConversion(t *testing.T) {
	svc := newQuoteService()

	q, err := svc.TopUpQuote("alice", 5.00)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if q.Pence != 500 || q.Coins != 5000 {
		t.Fatalf("£5.00 should be 500p / 5000 coins, got %d/%d", q.Pence, q.Coins)
	}

	q, err = svc.TopUpQuote("alice", 0.01)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if q.Pence != 1 || q.Coins != 10 {
		t.Fatalf("£0.01 should be 1p / 10 coins, got %d/%d", q.Pence, q.Coins)
	}

	// 2.50 has no exact float representation; rounding has to land on 250p.
	q, err = svc.TopUpQuote("alice", 2.50)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if q.Pence != 250 {
		t.Fatalf("£2.50 should round to 250p, got %d", q.Pence)
	}
}

func TestTopUpQuoteRejectsBadAmounts(t *testing.T) {
	svc := newQuoteService()
	for _, pounds := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := svc.TopUpQuote("alice", pounds); !errors.Is(err, ledger.ErrInvalidAmount) {
			t.Fatalf("quote(%v): expected ErrInvalidAmount, got %v", pounds, err)
		}
	}
}

func TestPaytableRichestFirst(t *testing.T) {
	svc := newQuoteService()
	resp := svc.Paytable()
	if resp.SpinCost != 10 || resp.PenceToCoins != 10 {
		t.Fatalf("unexpected economy: %+v", resp)
	}
	if len(resp.Rows) != 4 {
		t.Fatalf("expected 4 prize rows, got %d", len(resp.Rows))
	}
	for i := 1; i < len(resp.Rows); i++ {
		if resp.Rows[i].Coins > resp.Rows[i-1].Coins {
			t.Fatalf("rows not sorted richest-first: %+v", resp.Rows)
		}
	}
	if resp.Rows[0].Coins != 1000 || resp.Rows[0].Payout != "£1.00" {
		t.Fatalf("top prize should be 1000 coins / £1.00, got %+v", resp.Rows[0])
	}
}
