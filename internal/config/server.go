package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	AdminAPIKey string `env:"ADMIN_API_KEY"`

	// NATSURL enables win/cashout announcements when set.
	NATSURL          string `env:"NATS_URL"`
	AnnounceSubject  string `env:"ANNOUNCE_SUBJECT" envDefault:"casino.wins"`
	CashoutSubject   string `env:"CASHOUT_SUBJECT" envDefault:"casino.cashouts"`
	MigrateOnStartup bool   `env:"MIGRATE_ON_STARTUP" envDefault:"true"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
