package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appplayer "slot-bank/internal/app/player"
	"slot-bank/internal/cashout"
	"slot-bank/internal/ledger"
)

type PlayerHandlers struct {
	svc *appplayer.Service
}

func NewPlayerHandlers(svc *appplayer.Service) *PlayerHandlers {
	return &PlayerHandlers{svc: svc}
}

func (h *PlayerHandlers) Balance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		resp, err := h.svc.Balance(r.Context(), actor)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PlayerHandlers) Spin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		resp, err := h.svc.Spin(r.Context(), actor)
		if err != nil {
			if errors.Is(err, ledger.ErrInsufficientFunds) {
				WriteHTTPError(w, http.StatusPaymentRequired, "insufficient_funds")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PlayerHandlers) TopUpQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body struct {
			Pounds float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.TopUpQuote(actor, body.Pounds)
		if err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PlayerHandlers) RequestCashout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body struct {
			Destination string `json:"destination"`
			Amount      int64  `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.svc.RequestCashout(r.Context(), actor, body.Destination, body.Amount)
		if err != nil {
			switch {
			case errors.Is(err, appplayer.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, cashout.ErrInvalidAmount):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
			case errors.Is(err, ledger.ErrInsufficientFunds), errors.Is(err, cashout.ErrInsufficientFunds):
				WriteHTTPError(w, http.StatusPaymentRequired, "insufficient_funds")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PlayerHandlers) CashoutHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		limit, _ := ParsePagination(r)
		items, err := h.svc.CashoutHistory(r.Context(), actor, limit)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "limit": limit})
	}
}

// SpinHistory serves the caller's spins by default; account_id switches the
// target, matching the original command's optional member argument.
func (h *PlayerHandlers) SpinHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		account := r.URL.Query().Get("account_id")
		if account == "" {
			account = actor
		}
		limit, _ := ParsePagination(r)
		items, err := h.svc.SpinHistory(r.Context(), account, limit)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "limit": limit})
	}
}

func (h *PlayerHandlers) Paytable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(h.svc.Paytable())
	}
}
