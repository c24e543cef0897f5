// main.go
package main

import (
	"log"

	"cinema-client/cmd"
	"cinema-client/internal/api"
	"cinema-client/internal/wire"
	"cinema-client/pkg/utils"

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
		zap.String("api_base_url", config.API.BaseURL),
		zap.String("vip_rule", config.App.VIPRule),
		zap.Bool("debug", config.App.Debug),
	)

	// API client for the booking backend
	client := api.NewClient(config.API.BaseURL, config.API.Timeout, logger)

	// Wire all dependencies
	app := wire.Wiring(client, config, logger)

	cmd.Run(app)
}
