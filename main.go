package main

import (
	"flag"
	"log"

	"coursecraft_backend/internal/app"
	"coursecraft_backend/internal/config"
)

// @title CourseCraft API
// @version 1.0
// @description Course authoring and delivery backend.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	migrate := flag.Bool("migrate", false, "run database migrations on startup")
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)

	if cfg.MigrateOnly {
		log.Println("Migration complete, exiting")
		return
	}

	application.Run()
}
