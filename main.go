package main

import (
	"log"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/gateway/paystack"
	"hotel-booking/internal/wire"
	"hotel-booking/internal/worker"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
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

	// Run pending schema migrations before taking traffic
	if err := database.Migrate(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Payment provider client, credentials injected from config
	gateway := paystack.New(config.Paystack, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, gateway, config, logger)

	// Background settlement of due reservations
	settlement := worker.NewSettlement(app.Service.Booking, config.Redis, logger)
	if err := settlement.Start(); err != nil {
		logger.Fatal("Failed to start settlement worker", zap.Error(err))
	}
	defer settlement.Shutdown()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
