// Package announce publishes win and cashout lifecycle events to NATS for
// the chat dispatcher to relay. The engine works without it: a nil Announcer
// drops every event.
package announce

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

type WinEvent struct {
	AccountID string    `json:"account_id"`
	Symbols   []string  `json:"symbols"`
	Coins     int64     `json:"coins"`
	Formatted string    `json:"formatted"`
	JournalID string    `json:"journal_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CashoutEvent struct {
	RequestID string    `json:"request_id"`
	AccountID string    `json:"account_id"`
	Status    string    `json:"status"`
	Coins     int64     `json:"coins"`
	Actor     string    `json:"actor,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Announcer struct {
	conn           *nats.Conn
	winSubject     string
	cashoutSubject string
}

// Connect dials NATS. An empty url disables announcements (returns nil,
// which every method tolerates).
func Connect(url, winSubject, cashoutSubject string) (*Announcer, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Announcer{conn: conn, winSubject: winSubject, cashoutSubject: cashoutSubject}, nil
}

func (a *Announcer) Close() {
	if a != nil && a.conn != nil {
		a.conn.Close()
	}
}

// Win publishes a winning spin. Publishing is best effort: announcement
// failures must never fail the spin that caused them.
func (a *Announcer) Win(ctx context.Context, ev WinEvent) {
	if a == nil {
		return
	}
	ev.CreatedAt = time.Now().UTC()
	a.publish(a.winSubject, ev)
}

// Cashout publishes a cashout lifecycle change (queued, approved, paid,
// rejected).
func (a *Announcer) Cashout(ctx context.Context, ev CashoutEvent) {
	if a == nil {
		return
	}
	ev.CreatedAt = time.Now().UTC()
	a.publish(a.cashoutSubject, ev)
}

func (a *Announcer) publish(subject string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("announce marshal failed")
		return
	}
	if err := a.conn.Publish(subject, data); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("announce publish failed")
	}
}
