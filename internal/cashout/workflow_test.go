package cashout_test

import (
	"context"
	"errors"
	"testing"

	"slot-bank/internal/cashout"
	"slot-bank/internal/store"
	"slot-bank/internal/testutil"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to store.CashoutStatus
		want     bool
	}{
		{store.CashoutQueued, store.CashoutApproved, true},
		{store.CashoutQueued, store.CashoutRejected, true},
		{store.CashoutApproved, store.CashoutPaid, true},
		{store.CashoutQueued, store.CashoutPaid, false},
		{store.CashoutApproved, store.CashoutRejected, false},
		{store.CashoutPaid, store.CashoutApproved, false},
		{store.CashoutRejected, store.CashoutQueued, false},
		{store.CashoutPaid, store.CashoutPaid, false},
	}
	for _, c := range cases {
		if got := cashout.CanTransition(c.from, c.to); got != c.want {
			t.Fatalf("CanTransition(%v, %v) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func seedAccount(t *testing.T, st *store.Store, id string, coins int64) {
	t.Helper()
	if _, _, err := st.Apply(context.Background(), id, coins, store.KindDeposit, "", "", ""); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
}

func TestRequestApprovePaid(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	wf := cashout.NewWorkflow(st, nil)

	seedAccount(t, st, "alice", 200)

	req, err := wf.Request(ctx, "alice", "PayPal: alice@example.com", 150)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if req.Status != store.CashoutQueued {
		t.Fatalf("expected queued, got %v", req.Status)
	}
	if bal, _ := st.GetBalance(ctx, "alice"); bal != 50 {
		t.Fatalf("request must reserve funds, balance %d", bal)
	}

	approved, err := wf.Approve(ctx, req.ID, "admin-1")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != store.CashoutApproved {
		t.Fatalf("expected approved, got %v", approved.Status)
	}
	if bal, _ := st.GetBalance(ctx, "alice"); bal != 50 {
		t.Fatalf("approve must not move the balance, got %d", bal)
	}

	paid, err := wf.MarkPaid(ctx, req.ID, "admin-1")
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.Status != store.CashoutPaid {
		t.Fatalf("expected paid, got %v", paid.Status)
	}

	sum, _ := st.SumJournal(ctx, "alice")
	bal, _ := st.GetBalance(ctx, "alice")
	if sum != bal {
		t.Fatalf("journal sum %d must equal balance %d after the full lifecycle", sum, bal)
	}
}

func TestMarkPaidTwiceIsAlreadyPaid(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	wf := cashout.NewWorkflow(st, nil)

	seedAccount(t, st, "bob", 100)
	req, err := wf.Request(ctx, "bob", "IBAN", 100)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := wf.Approve(ctx, req.ID, "admin-1"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := wf.MarkPaid(ctx, req.ID, "admin-1"); err != nil {
		t.Fatalf("mark paid: %v", err)
	}

	if _, err := wf.MarkPaid(ctx, req.ID, "admin-2"); !errors.Is(err, cashout.ErrAlreadyPaid) {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}

	sent := 0
	entries, _ := st.ListJournal(ctx, "bob", 10, 0)
	for _, e := range entries {
		if e.Kind == store.KindPayoutSent {
			sent++
		}
	}
	if sent != 1 {
		t.Fatalf("a repeated mark-paid must not journal again, got %d payout_sent entries", sent)
	}
}

func TestMarkPaidRequiresApproval(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	wf := cashout.NewWorkflow(st, nil)

	seedAccount(t, st, "carol", 100)
	req, err := wf.Request(ctx, "carol", "PayPal", 100)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := wf.MarkPaid(ctx, req.ID, "admin-1"); !errors.Is(err, cashout.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for queued request, got %v", err)
	}
}

func TestRejectRefundsAndDefaultsReason(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	wf := cashout.NewWorkflow(st, nil)

	seedAccount(t, st, "dana", 70)
	req, err := wf.Request(ctx, "dana", "PayPal", 70)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if bal, _ := st.GetBalance(ctx, "dana"); bal != 0 {
		t.Fatalf("expected 0 after reservation, got %d", bal)
	}

	rejected, err := wf.Reject(ctx, req.ID, "admin-1", "")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != store.CashoutRejected || rejected.Reason != "rejected by admin" {
		t.Fatalf("unexpected rejection: %+v", rejected)
	}

	bal, _ := st.GetBalance(ctx, "dana")
	sum, _ := st.SumJournal(ctx, "dana")
	if bal != 70 || sum != 70 {
		t.Fatalf("reject must restore the account exactly: %d/%d", bal, sum)
	}
}

func TestRejectAfterApproveRefused(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	wf := cashout.NewWorkflow(st, nil)

	seedAccount(t, st, "ed", 100)
	req, err := wf.Request(ctx, "ed", "PayPal", 100)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if _, err := wf.Approve(ctx, req.ID, "admin-1"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := wf.Reject(ctx, req.ID, "admin-1", "too late"); !errors.Is(err, cashout.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if bal, _ := st.GetBalance(ctx, "ed"); bal != 0 {
		t.Fatalf("refused reject must not refund, balance %d", bal)
	}
}

func TestRequestValidation(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()
	wf := cashout.NewWorkflow(st, nil)

	if _, err := wf.Request(ctx, "fay", "PayPal", 0); !errors.Is(err, cashout.ErrInvalidAmount) {
		t.Fatalf("zero amount: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := wf.Request(ctx, "fay", "PayPal", -5); !errors.Is(err, cashout.ErrInvalidAmount) {
		t.Fatalf("negative amount: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := wf.Request(ctx, "fay", "PayPal", 10); !errors.Is(err, cashout.ErrInsufficientFunds) {
		t.Fatalf("empty account: expected ErrInsufficientFunds, got %v", err)
	}
}

func TestTransitionUnknownRequest(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	wf := cashout.NewWorkflow(st, nil)

	if _, err := wf.Approve(context.Background(), store.NewID(), "admin-1"); !errors.Is(err, cashout.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}
