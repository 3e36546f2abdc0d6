// @title PyLearn Backend API
// @version 1.0
// @description Backend for the PyLearn Python practice tool: AI lesson generation, answer checking and an exercise catalog.

// @host localhost:5000
// @BasePath /api

package main

import (
	"flag"
	"log"

	"pylearn_backend/internal/app"
	"pylearn_backend/internal/config"
	"pylearn_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Database migration finished, exiting")
		return
	}

	application.Run()
}
