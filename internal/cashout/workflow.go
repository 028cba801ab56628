// Package cashout drives the withdrawal state machine:
//
//	queued -> approved -> paid
//	queued -> rejected (refund)
//
// Any transition not in the table is rejected. Each transition pairs its
// status change with a journal entry in one store transaction.
package cashout

import (
	"context"
	"errors"
	"fmt"

	"slot-bank/internal/announce"
	"slot-bank/internal/store"
)

var (
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrRequestNotFound   = errors.New("request_not_found")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrAlreadyPaid       = errors.New("already_paid")
)

// transitions is the full set of legal status changes.
var transitions = map[store.CashoutStatus][]store.CashoutStatus{
	store.CashoutQueued:   {store.CashoutApproved, store.CashoutRejected},
	store.CashoutApproved: {store.CashoutPaid},
}

// CanTransition reports whether from -> to is in the table.
func CanTransition(from, to store.CashoutStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Workflow struct {
	Store     *store.Store
	Announcer *announce.Announcer
}

func NewWorkflow(st *store.Store, ann *announce.Announcer) *Workflow {
	return &Workflow{Store: st, Announcer: ann}
}

// Request reserves amount coins and queues the withdrawal. The reservation
// debit and the request row are created in one transaction; an insufficient
// balance leaves no trace.
func (w *Workflow) Request(ctx context.Context, accountID, destination string, amount int64) (*store.CashoutRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	meta := fmt.Sprintf("destination:%s", destination)
	req, err := w.Store.CreateCashout(ctx, accountID, destination, amount, meta)
	if err != nil {
		if errors.Is(err, store.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}
	w.Announcer.Cashout(ctx, announce.CashoutEvent{
		RequestID: req.ID,
		AccountID: req.AccountID,
		Status:    string(req.Status),
		Coins:     req.Amount,
	})
	return req, nil
}

// Approve moves a queued request to approved. The journal entry mirrors the
// reservation in its metadata; the funds were already debited on request, so
// the entry amount is zero and the balance is untouched.
func (w *Workflow) Approve(ctx context.Context, requestID, actorID string) (*store.CashoutRequest, error) {
	meta := fmt.Sprintf("admin:%s;request:%s", actorID, requestID)
	return w.transition(ctx, requestID, actorID, store.CashoutQueued, store.CashoutApproved, store.KindPayoutApproved, meta, "", false)
}

// MarkPaid finalizes an approved request after the manual payment cleared.
// A request that is already paid returns ErrAlreadyPaid and writes nothing;
// a still-queued request must be approved first.
func (w *Workflow) MarkPaid(ctx context.Context, requestID, actorID string) (*store.CashoutRequest, error) {
	meta := fmt.Sprintf("admin:%s;request:%s", actorID, requestID)
	return w.transition(ctx, requestID, actorID, store.CashoutApproved, store.CashoutPaid, store.KindPayoutSent, meta, "", false)
}

// Reject refuses a queued request and credits the reserved coins back, so
// the account ends exactly where it was before the request.
func (w *Workflow) Reject(ctx context.Context, requestID, actorID, reason string) (*store.CashoutRequest, error) {
	if reason == "" {
		reason = "rejected by admin"
	}
	meta := fmt.Sprintf("admin:%s;request:%s;reason:%s", actorID, requestID, reason)
	return w.transition(ctx, requestID, actorID, store.CashoutQueued, store.CashoutRejected, store.KindPayoutRejectedRefund, meta, reason, true)
}

func (w *Workflow) transition(ctx context.Context, requestID, actorID string, from, to store.CashoutStatus, kind store.EntryKind, meta, reason string, refund bool) (*store.CashoutRequest, error) {
	if !CanTransition(from, to) {
		return nil, ErrInvalidTransition
	}
	req, err := w.Store.TransitionCashout(ctx, requestID, from, to, kind, meta, reason, refund)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrRequestNotFound
		case errors.Is(err, store.ErrStatusConflict):
			if req != nil && req.Status == store.CashoutPaid && to == store.CashoutPaid {
				return nil, ErrAlreadyPaid
			}
			return nil, ErrInvalidTransition
		default:
			return nil, err
		}
	}
	w.Announcer.Cashout(ctx, announce.CashoutEvent{
		RequestID: req.ID,
		AccountID: req.AccountID,
		Status:    string(req.Status),
		Coins:     req.Amount,
		Actor:     actorID,
		Reason:    req.Reason,
	})
	return req, nil
}
