package cmd

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"cinema-client/internal/wire"
)

// Run starts the console app; Ctrl+C abandons in-flight requests through
// context cancellation.
func Run(app *wire.App) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("cinema-client ready")

	if err := app.Console.Run(ctx); err != nil {
		log.Fatal("Console error:", err)
	}
}
