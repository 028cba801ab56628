package store

import "time"

// EntryKind is the closed set of journal entry kinds. Invalid kinds are
// unrepresentable outside this package's constants.
type EntryKind string

const (
	KindDeposit              EntryKind = "deposit"
	KindBet                  EntryKind = "bet"
	KindWin                  EntryKind = "win"
	KindSpinResult           EntryKind = "spin_result"
	KindPayoutRequest        EntryKind = "payout_request"
	KindPayoutApproved       EntryKind = "payout_approved"
	KindPayoutSent           EntryKind = "payout_sent"
	KindPayoutRejectedRefund EntryKind = "payout_rejected_refund"
	KindAdminCredit          EntryKind = "admin_credit"
)

// EntryStatus is reserved for pending/failed bookkeeping; every entry is
// currently written completed.
type EntryStatus string

const (
	EntryCompleted EntryStatus = "completed"
	EntryPending   EntryStatus = "pending"
	EntryFailed    EntryStatus = "failed"
)

type CashoutStatus string

const (
	CashoutQueued   CashoutStatus = "queued"
	CashoutApproved CashoutStatus = "approved"
	CashoutPaid     CashoutStatus = "paid"
	CashoutRejected CashoutStatus = "rejected"
)

type Account struct {
	ID        string    `json:"id"`
	Balance   int64     `json:"balance"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JournalEntry struct {
	ID        string      `json:"id"`
	AccountID string      `json:"account_id"`
	Kind      EntryKind   `json:"kind"`
	Amount    int64       `json:"amount"`
	Status    EntryStatus `json:"status"`
	Metadata  string      `json:"metadata"`
	RefType   string      `json:"ref_type"`
	RefID     string      `json:"ref_id"`
	CreatedAt time.Time   `json:"created_at"`
}

type SpinRecord struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	S1        string    `json:"s1"`
	S2        string    `json:"s2"`
	S3        string    `json:"s3"`
	Won       int64     `json:"won"`
	JournalID string    `json:"journal_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CashoutRequest struct {
	ID               string        `json:"id"`
	AccountID        string        `json:"account_id"`
	Destination      string        `json:"destination"`
	Amount           int64         `json:"amount"`
	Status           CashoutStatus `json:"status"`
	JournalRequestID string        `json:"journal_request_id"`
	Reason           string        `json:"reason"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
