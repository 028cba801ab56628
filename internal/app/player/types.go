package player

import "time"

type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Coins     int64  `json:"coins"`
	Formatted string `json:"formatted"`
}

type SpinResponse struct {
	Symbols    []string `json:"symbols"`
	Payout     int64    `json:"payout"`
	Formatted  string   `json:"formatted"`
	NewBalance int64    `json:"new_balance"`
	SpinID     string   `json:"spin_id"`
	JournalID  string   `json:"journal_id"`
}

type TopUpQuote struct {
	Pounds float64 `json:"pounds"`
	Pence  int64   `json:"pence"`
	Coins  int64   `json:"coins"`
	Info   string  `json:"info"`
}

type CashoutResponse struct {
	RequestID   string    `json:"request_id"`
	Destination string    `json:"destination"`
	Amount      int64     `json:"amount"`
	Formatted   string    `json:"formatted"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type SpinHistoryItem struct {
	Symbols   []string  `json:"symbols"`
	Won       int64     `json:"won"`
	CreatedAt time.Time `json:"created_at"`
}

type PaytableRow struct {
	Symbols []string `json:"symbols"`
	Coins   int64    `json:"coins"`
	Payout  string   `json:"payout"`
}

type PaytableResponse struct {
	PenceToCoins int64         `json:"pence_to_coins"`
	SpinCost     int64         `json:"spin_cost"`
	Rows         []PaytableRow `json:"rows"`
}
