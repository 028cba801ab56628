package config

import "testing"

func TestLoadServerDefaults(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://localhost/test")
	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("load server: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.HTTPAddr)
	}
	if !cfg.MigrateOnStartup {
		t.Fatalf("expected migrate on startup by default")
	}
	if cfg.AnnounceSubject != "casino.wins" {
		t.Fatalf("unexpected announce subject %q", cfg.AnnounceSubject)
	}
}

func TestLoadServerRequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	if _, err := LoadServer(); err == nil {
		t.Fatalf("expected error for empty POSTGRES_DSN")
	}
}

func TestLoadEconomyDefaults(t *testing.T) {
	cfg, err := LoadEconomy()
	if err != nil {
		t.Fatalf("load economy: %v", err)
	}
	if cfg.PenceToCoins != 10 {
		t.Fatalf("expected 10 coins per pence, got %d", cfg.PenceToCoins)
	}
	if cfg.SpinCost != 10 {
		t.Fatalf("expected spin cost 10, got %d", cfg.SpinCost)
	}
}

func TestLoadEconomyOverride(t *testing.T) {
	t.Setenv("SPIN_COST", "25")
	cfg, err := LoadEconomy()
	if err != nil {
		t.Fatalf("load economy: %v", err)
	}
	if cfg.SpinCost != 25 {
		t.Fatalf("expected spin cost 25, got %d", cfg.SpinCost)
	}
}

func TestLoadLogDefaults(t *testing.T) {
	cfg, err := LoadLog()
	if err != nil {
		t.Fatalf("load log: %v", err)
	}
	if cfg.Level != "info" {
		t.Fatalf("expected level info, got %q", cfg.Level)
	}
	if cfg.MaxMB != 10 {
		t.Fatalf("expected max 10 MB, got %d", cfg.MaxMB)
	}
}
