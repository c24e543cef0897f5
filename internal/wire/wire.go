package wire

import (
	"cinema-client/internal/adaptor"
	"cinema-client/internal/api"
	"cinema-client/internal/usecase"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

// App holds the wired dependencies.
type App struct {
	Service *usecase.Service
	Console *adaptor.Console
}

// Wiring initializes services and the console front end.
func Wiring(client *api.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(client, config, logger)
	console := adaptor.NewConsole(service, config, logger)

	return &App{
		Service: service,
		Console: console,
	}
}
