package usecase

import (
	"cinema-client/internal/api"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Hall      HallService
	Selection SelectionService
	Booking   BookingService
	Ticket    TicketService
	Admin     AdminService
}

func NewService(client *api.Client, config *utils.Config, log *zap.Logger) *Service {
	guest := GuestInfo{
		Name:  config.Guest.Name,
		Phone: config.Guest.Phone,
	}

	return &Service{
		Auth:      NewAuthService(client, log),
		Hall:      NewHallService(client, config.App.VIPRule, log),
		Selection: NewSelectionService(log),
		Booking:   NewBookingService(client, guest, log),
		Ticket:    NewTicketService(client, config.QR.MaxRetries, config.QR.RetryDelay, config.QR.SavePath, log),
		Admin:     NewAdminService(client, log),
	}
}
