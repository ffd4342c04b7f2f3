// Command server runs the plan catalog HTTP API.
//
// Configuration comes from config.yaml (or CONFIG_PATH) and environment
// variables; a .env file in the working directory is loaded first if present.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/plancatalog-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
