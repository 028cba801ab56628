package config

import "github.com/caarlos0/env/v11"

// EconomyConfig carries the coin economy constants. Defaults match the
// production economy: 1 pence = 10 coins, one spin costs 10 coins.
type EconomyConfig struct {
	PenceToCoins int64 `env:"PENCE_TO_COINS" envDefault:"10"`
	SpinCost     int64 `env:"SPIN_COST" envDefault:"10"`
}

func LoadEconomy() (EconomyConfig, error) {
	var cfg EconomyConfig
	err := env.Parse(&cfg)
	return cfg, err
}
