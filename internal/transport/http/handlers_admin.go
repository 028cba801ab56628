package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appadmin "slot-bank/internal/app/admin"
	"slot-bank/internal/cashout"
	"slot-bank/internal/ledger"
	"slot-bank/internal/store"

	"github.com/go-chi/chi/v5"
)

type AdminHandlers struct {
	svc   *appadmin.Service
	store *store.Store
}

func NewAdminHandlers(svc *appadmin.Service, st *store.Store) *AdminHandlers {
	return &AdminHandlers{svc: svc, store: st}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func (h *AdminHandlers) QueuedCashouts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.svc.ListQueued(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": items})
	}
}

func (h *AdminHandlers) Approve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := chi.URLParam(r, "request_id")
		resp, err := h.svc.Approve(r.Context(), requestID, adminActor(r))
		if err != nil {
			writeWorkflowError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AdminHandlers) MarkPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := chi.URLParam(r, "request_id")
		resp, err := h.svc.MarkPaid(r.Context(), requestID, adminActor(r))
		if err != nil {
			writeWorkflowError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AdminHandlers) Reject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := chi.URLParam(r, "request_id")
		var body struct {
			Reason string `json:"reason"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		resp, err := h.svc.Reject(r.Context(), requestID, adminActor(r), body.Reason)
		if err != nil {
			writeWorkflowError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// Credit accepts either a pence amount (currency-denominated, converted at
// the configured rate) or a raw coin amount. Exactly one must be set.
func (h *AdminHandlers) Credit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			AccountID string `json:"account_id"`
			Pence     int64  `json:"pence"`
			Coins     int64  `json:"coins"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.AccountID == "" || (body.Pence != 0) == (body.Coins != 0) {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		var resp *appadmin.CreditResponse
		var err error
		if body.Pence != 0 {
			resp, err = h.svc.CreditPence(r.Context(), body.AccountID, body.Pence, adminActor(r))
		} else {
			resp, err = h.svc.CreditCoins(r.Context(), body.AccountID, body.Coins, adminActor(r))
		}
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrInvalidAmount):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
			case errors.Is(err, ledger.ErrInsufficientFunds):
				WriteHTTPError(w, http.StatusPaymentRequired, "insufficient_funds")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AdminHandlers) Journal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.svc.Journal(r.Context(), r.URL.Query().Get("account_id"), limit, offset)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *AdminHandlers) SetVerified() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")
		var body struct {
			Verified bool `json:"verified"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if err := h.svc.SetVerified(r.Context(), accountID, body.Verified); err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "account_id": accountID, "verified": body.Verified})
	}
}

// adminActor identifies the admin for the audit trail. Optional: actions
// authorized purely by the admin key are recorded with an empty actor.
func adminActor(r *http.Request) string {
	return r.Header.Get("X-Actor-ID")
}

func writeWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cashout.ErrRequestNotFound):
		WriteHTTPError(w, http.StatusNotFound, "request_not_found")
	case errors.Is(err, cashout.ErrAlreadyPaid):
		WriteHTTPError(w, http.StatusConflict, "already_paid")
	case errors.Is(err, cashout.ErrInvalidTransition):
		WriteHTTPError(w, http.StatusConflict, "invalid_transition")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
