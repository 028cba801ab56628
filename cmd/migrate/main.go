package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"slot-bank/internal/config"
	"slot-bank/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if err := store.RunMigrations(context.Background(), cfg.PostgresDSN, command); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
