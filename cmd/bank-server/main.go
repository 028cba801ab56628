package main

import (
	"context"
	"net/http"
	"time"

	"slot-bank/internal/announce"
	"slot-bank/internal/config"
	"slot-bank/internal/game"
	"slot-bank/internal/logging"
	"slot-bank/internal/store"
	httptransport "slot-bank/internal/transport/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	st, err := store.New(cfg.Server.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	defer st.Close()
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}
	if cfg.Server.MigrateOnStartup {
		if err := store.RunMigrations(context.Background(), cfg.Server.PostgresDSN, "up"); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
	}

	ann, err := announce.Connect(cfg.Server.NATSURL, cfg.Server.AnnounceSubject, cfg.Server.CashoutSubject)
	if err != nil {
		log.Fatal().Err(err).Str("url", cfg.Server.NATSURL).Msg("nats connect failed")
	}
	defer ann.Close()
	if ann == nil {
		log.Info().Msg("announcements disabled (no NATS_URL)")
	}

	gameCfg := game.DefaultConfig(cfg.Economy.PenceToCoins, cfg.Economy.SpinCost)
	src := game.NewRandSource(time.Now().UnixNano())

	r := httptransport.NewRouter(st, cfg.Server, gameCfg, src, ann)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
