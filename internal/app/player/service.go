package player

import (
	"context"
	"fmt"
	"math"
	"sort"

	"slot-bank/internal/cashout"
	"slot-bank/internal/game"
	"slot-bank/internal/ledger"
	"slot-bank/internal/store"
)

type Service struct {
	ledger   *ledger.Ledger
	engine   *game.Engine
	workflow *cashout.Workflow
	store    *store.Store
	cfg      game.Config
}

func NewService(led *ledger.Ledger, eng *game.Engine, wf *cashout.Workflow, st *store.Store, cfg game.Config) *Service {
	return &Service{ledger: led, engine: eng, workflow: wf, store: st, cfg: cfg}
}

func (s *Service) Balance(ctx context.Context, actorID string) (*BalanceResponse, error) {
	bal, err := s.ledger.Balance(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return &BalanceResponse{AccountID: actorID, Coins: bal, Formatted: s.cfg.FormatCoins(bal)}, nil
}

func (s *Service) Spin(ctx context.Context, actorID string) (*SpinResponse, error) {
	out, err := s.engine.Spin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return &SpinResponse{
		Symbols:    out.Symbols[:],
		Payout:     out.Payout,
		Formatted:  s.cfg.FormatCoins(out.Payout),
		NewBalance: out.NewBalance,
		SpinID:     out.SpinID,
		JournalID:  out.JournalID,
	}, nil
}

// TopUpQuote computes what a manual admin credit should look like for a
// requested top-up. Pure: no state changes, payments happen outside the
// system.
func (s *Service) TopUpQuote(actorID string, pounds float64) (*TopUpQuote, error) {
	if pounds <= 0 || math.IsNaN(pounds) || math.IsInf(pounds, 0) {
		return nil, ledger.ErrInvalidAmount
	}
	pence := int64(math.Round(pounds * 100))
	coins := s.cfg.CoinsForPence(pence)
	return &TopUpQuote{
		Pounds: pounds,
		Pence:  pence,
		Coins:  coins,
		Info:   fmt.Sprintf("top-up of £%.2f converts to %d coins; an admin must credit %s with %d pence after payment", pounds, coins, actorID, pence),
	}, nil
}

// RequestCashout queues a withdrawal. A zero amount means the full balance,
// matching the original command's default.
func (s *Service) RequestCashout(ctx context.Context, actorID, destination string, amount int64) (*CashoutResponse, error) {
	if destination == "" {
		return nil, ErrInvalidRequest
	}
	if amount < 0 {
		return nil, ledger.ErrInvalidAmount
	}
	if amount == 0 {
		bal, err := s.ledger.Balance(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if bal <= 0 {
			return nil, ledger.ErrInsufficientFunds
		}
		amount = bal
	}
	req, err := s.workflow.Request(ctx, actorID, destination, amount)
	if err != nil {
		return nil, err
	}
	return cashoutResponse(req, s.cfg), nil
}

func (s *Service) CashoutHistory(ctx context.Context, actorID string, limit int) ([]CashoutResponse, error) {
	items, err := s.store.ListCashouts(ctx, actorID, limit, 0)
	if err != nil {
		return nil, err
	}
	out := make([]CashoutResponse, 0, len(items))
	for i := range items {
		out = append(out, *cashoutResponse(&items[i], s.cfg))
	}
	return out, nil
}

func (s *Service) SpinHistory(ctx context.Context, accountID string, limit int) ([]SpinHistoryItem, error) {
	items, err := s.store.ListSpins(ctx, accountID, limit, 0)
	if err != nil {
		return nil, err
	}
	out := make([]SpinHistoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, SpinHistoryItem{
			Symbols:   []string{it.S1, it.S2, it.S3},
			Won:       it.Won,
			CreatedAt: it.CreatedAt,
		})
	}
	return out, nil
}

// Paytable lists the prize table, richest prize first.
func (s *Service) Paytable() *PaytableResponse {
	rows := make([]PaytableRow, 0, len(s.cfg.Paytable))
	for combo, coins := range s.cfg.Paytable {
		rows = append(rows, PaytableRow{
			Symbols: []string{combo[0], combo[1], combo[2]},
			Coins:   coins,
			Payout:  s.cfg.FormatCoins(coins),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Coins > rows[j].Coins })
	return &PaytableResponse{
		PenceToCoins: s.cfg.PenceToCoins,
		SpinCost:     s.cfg.SpinCost,
		Rows:         rows,
	}
}

func cashoutResponse(req *store.CashoutRequest, cfg game.Config) *CashoutResponse {
	return &CashoutResponse{
		RequestID:   req.ID,
		Destination: req.Destination,
		Amount:      req.Amount,
		Formatted:   cfg.FormatCoins(req.Amount),
		Status:      string(req.Status),
		CreatedAt:   req.CreatedAt,
	}
}
