package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Apurer/storefront-api/internal/app/api"
)

func main() {
	// .env.local wins over .env; neither overrides the real environment.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("storefront API exited: %v", err)
	}
}
