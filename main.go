// main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"casting-agency/cmd"
	"casting-agency/internal/data/repository"
	"casting-agency/internal/wire"
	"casting-agency/pkg/auth"
	"casting-agency/pkg/database"
	"casting-agency/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	verifier := auth.NewJWTVerifier(auth.Config{
		Issuer:   config.Auth.Issuer,
		Audience: config.Auth.Audience,
		JWKSURL:  config.Auth.JWKSURL,
		JWKSTTL:  config.Auth.JWKSTTL,
	})

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger, verifier)

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}
}
