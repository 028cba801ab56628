package admin

import (
	"context"
	"fmt"

	"slot-bank/internal/cashout"
	"slot-bank/internal/game"
	"slot-bank/internal/ledger"
	"slot-bank/internal/store"
)

type Service struct {
	ledger   *ledger.Ledger
	workflow *cashout.Workflow
	store    *store.Store
	cfg      game.Config
}

func NewService(led *ledger.Ledger, wf *cashout.Workflow, st *store.Store, cfg game.Config) *Service {
	return &Service{ledger: led, workflow: wf, store: st, cfg: cfg}
}

// ListQueued returns the review queue oldest-first, so the longest-waiting
// request is reviewed first.
func (s *Service) ListQueued(ctx context.Context) ([]QueuedCashout, error) {
	items, err := s.store.ListQueuedCashouts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]QueuedCashout, 0, len(items))
	for _, it := range items {
		out = append(out, QueuedCashout{
			RequestID:   it.ID,
			AccountID:   it.AccountID,
			Destination: it.Destination,
			Amount:      it.Amount,
			CreatedAt:   it.CreatedAt,
		})
	}
	return out, nil
}

func (s *Service) Approve(ctx context.Context, requestID, actorID string) (*TransitionResponse, error) {
	req, err := s.workflow.Approve(ctx, requestID, actorID)
	if err != nil {
		return nil, err
	}
	return transitionResponse(req), nil
}

func (s *Service) MarkPaid(ctx context.Context, requestID, actorID string) (*TransitionResponse, error) {
	req, err := s.workflow.MarkPaid(ctx, requestID, actorID)
	if err != nil {
		return nil, err
	}
	return transitionResponse(req), nil
}

func (s *Service) Reject(ctx context.Context, requestID, actorID, reason string) (*TransitionResponse, error) {
	req, err := s.workflow.Reject(ctx, requestID, actorID, reason)
	if err != nil {
		return nil, err
	}
	return transitionResponse(req), nil
}

// CreditPence credits a currency-denominated amount, converted at the
// configured rate.
func (s *Service) CreditPence(ctx context.Context, accountID string, pence int64, actorID string) (*CreditResponse, error) {
	if pence <= 0 {
		return nil, ledger.ErrInvalidAmount
	}
	coins := s.cfg.CoinsForPence(pence)
	meta := fmt.Sprintf("credited_by:%s;pence:%d", actorID, pence)
	return s.credit(ctx, accountID, coins, meta)
}

// CreditCoins credits (or, negatively, corrects) a raw coin amount. A
// negative correction still cannot take the balance below zero.
func (s *Service) CreditCoins(ctx context.Context, accountID string, coins int64, actorID string) (*CreditResponse, error) {
	if coins == 0 {
		return nil, ledger.ErrInvalidAmount
	}
	meta := fmt.Sprintf("credited_by:%s;manual_coins:%d", actorID, coins)
	return s.credit(ctx, accountID, coins, meta)
}

func (s *Service) credit(ctx context.Context, accountID string, coins int64, meta string) (*CreditResponse, error) {
	entryID, newBal, err := s.ledger.ApplyChange(ctx, accountID, coins, store.KindAdminCredit, meta, "", "")
	if err != nil {
		return nil, err
	}
	return &CreditResponse{AccountID: accountID, Coins: coins, NewBalance: newBal, JournalID: entryID}, nil
}

// Journal returns the global view, or a single account's entries when
// accountID is set. Newest-first either way.
func (s *Service) Journal(ctx context.Context, accountID string, limit, offset int) (*JournalResponse, error) {
	var items []store.JournalEntry
	var err error
	if accountID == "" {
		items, err = s.store.ListJournalAll(ctx, limit, offset)
	} else {
		items, err = s.store.ListJournal(ctx, accountID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	return &JournalResponse{Items: items, Limit: limit, Offset: offset}, nil
}

// SetVerified stores the KYC flag. Nothing enforces it.
func (s *Service) SetVerified(ctx context.Context, accountID string, verified bool) error {
	return s.store.SetVerified(ctx, accountID, verified)
}

func transitionResponse(req *store.CashoutRequest) *TransitionResponse {
	return &TransitionResponse{
		RequestID: req.ID,
		AccountID: req.AccountID,
		Amount:    req.Amount,
		Status:    string(req.Status),
		Reason:    req.Reason,
	}
}
