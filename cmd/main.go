package main

import (
	"ShareBite-Backend/cmd/config"
	migration "ShareBite-Backend/cmd/database/migrate"
	"ShareBite-Backend/internal/utils"
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	configPath := flag.String("config", envOr("CONFIG_PATH", "config.yaml"), "path to the YAML config file")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	logger := utils.NewLogger(cfg.LogLevel)

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := config.NewApp(ctx, db, cfg, logger)
	if err != nil {
		log.Fatalf("error building app: %v", err)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		_ = app.Shutdown()
	}()

	logger.WithField("port", cfg.AppPort).Info("server starting")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
