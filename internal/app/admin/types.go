package admin

import (
	"time"

	"slot-bank/internal/store"
)

type QueuedCashout struct {
	RequestID   string    `json:"request_id"`
	AccountID   string    `json:"account_id"`
	Destination string    `json:"destination"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransitionResponse struct {
	RequestID string `json:"request_id"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

type CreditResponse struct {
	AccountID  string `json:"account_id"`
	Coins      int64  `json:"coins"`
	NewBalance int64  `json:"new_balance"`
	JournalID  string `json:"journal_id"`
}

type JournalResponse struct {
	Items  []store.JournalEntry `json:"items"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}
