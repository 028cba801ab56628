package game

import (
	"fmt"
	"math/rand"
	"sync"
)

// Config is the immutable slot economy: symbol set, payout table and coin
// conversion rates. Payouts require three matching symbols; anything else
// pays zero.
type Config struct {
	PenceToCoins int64
	SpinCost     int64
	Symbols      []string
	Paytable     map[[3]string]int64
}

// DefaultConfig mirrors the production economy: 1p = 10 coins, 10 coins per
// spin, four symbols with triple-match prizes.
func DefaultConfig(penceToCoins, spinCost int64) Config {
	if penceToCoins <= 0 {
		penceToCoins = 10
	}
	if spinCost <= 0 {
		spinCost = 10
	}
	return Config{
		PenceToCoins: penceToCoins,
		SpinCost:     spinCost,
		Symbols:      []string{"7", "BAR", "🍒", "🍋"},
		Paytable: map[[3]string]int64{
			{"7", "7", "7"}:       1000,
			{"BAR", "BAR", "BAR"}: 200,
			{"🍒", "🍒", "🍒"}:       100,
			{"🍋", "🍋", "🍋"}:       50,
		},
	}
}

// Payout returns the prize for a drawn triple, zero for any combination not
// in the table.
func (c Config) Payout(s1, s2, s3 string) int64 {
	return c.Paytable[[3]string{s1, s2, s3}]
}

// FormatCoins renders a coin amount as pounds, e.g. 1000 coins -> "£1.00".
func (c Config) FormatCoins(coins int64) string {
	pence := coins / c.PenceToCoins
	return fmt.Sprintf("£%d.%02d", pence/100, pence%100)
}

// CoinsForPence converts an admin credit denominated in pence into coins.
func (c Config) CoinsForPence(pence int64) int64 {
	return pence * c.PenceToCoins
}

// SymbolSource draws one symbol per call. It abstracts the randomness so
// tests can script exact reels.
type SymbolSource interface {
	Draw(symbols []string) string
}

type randSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandSource returns the production source: uniform independent draws.
// Safe for concurrent spins.
func NewRandSource(seed int64) SymbolSource {
	return &randSource{r: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Draw(symbols []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return symbols[s.r.Intn(len(symbols))]
}
