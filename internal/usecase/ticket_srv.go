package usecase

import (
	"context"
	"path/filepath"
	"time"

	"cinema-client/internal/api"
	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/pkg/qr"

	"go.uber.org/zap"
)

type QRStatus string

const (
	QRStatusSuccess QRStatus = "success"
	QRStatusFailed  QRStatus = "failed"
)

// QRResult is the terminal state of a QR image fetch: either the PNG bytes
// or a failed status with the image cleared.
type QRResult struct {
	Status   QRStatus
	Image    []byte
	Attempts int
}

type TicketService interface {
	// FetchQR downloads the server-rendered QR image with a bounded,
	// fixed-delay retry. After the last failed attempt the state is
	// terminal; no further attempt fires.
	FetchQR(ctx context.Context, qrPath string) *QRResult

	// SaveLocalQR renders the booking payload locally as a fallback
	// artifact and returns the written path.
	SaveLocalQR(payload, bookingCode string) (string, error)

	List(ctx context.Context, filter *request.TicketFilter) ([]entity.Ticket, error)
	SetArchived(ctx context.Context, id int, archived bool) error
}

type ticketService struct {
	api        *api.Client
	maxRetries int
	retryDelay time.Duration
	savePath   string
	log        *zap.Logger
}

func NewTicketService(client *api.Client, maxRetries int, retryDelay time.Duration, savePath string, log *zap.Logger) TicketService {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &ticketService{
		api:        client,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		savePath:   savePath,
		log:        log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) FetchQR(ctx context.Context, qrPath string) *QRResult {
	result := &QRResult{Status: QRStatusFailed}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		result.Attempts = attempt

		image, err := s.api.Ticket.FetchQRImage(ctx, qrPath, time.Now().UnixMilli())
		if err == nil {
			result.Status = QRStatusSuccess
			result.Image = image
			s.log.Info("QR image fetched",
				zap.String("path", qrPath),
				zap.Int("attempt", attempt),
			)
			return result
		}

		s.log.Warn("QR image fetch failed",
			zap.String("path", qrPath),
			zap.Int("attempt", attempt),
			zap.Int("max", s.maxRetries),
			zap.Error(err),
		)

		if attempt == s.maxRetries {
			break
		}

		select {
		case <-time.After(s.retryDelay):
		case <-ctx.Done():
			return result
		}
	}

	// terminal: image stays cleared
	s.log.Warn("QR image unavailable after retries", zap.String("path", qrPath))
	return result
}

func (s *ticketService) SaveLocalQR(payload, bookingCode string) (string, error) {
	path := filepath.Join(s.savePath, bookingCode+".png")
	if err := qr.WriteFile(payload, path, 256); err != nil {
		return "", err
	}
	s.log.Info("Local QR rendered", zap.String("path", path))
	return path, nil
}

func (s *ticketService) List(ctx context.Context, filter *request.TicketFilter) ([]entity.Ticket, error) {
	return s.api.Ticket.List(ctx, filter)
}

func (s *ticketService) SetArchived(ctx context.Context, id int, archived bool) error {
	if err := s.api.Ticket.SetArchived(ctx, id, archived); err != nil {
		return err
	}
	s.log.Info("Ticket archive flag updated", zap.Int("ticket_id", id), zap.Bool("archived", archived))
	return nil
}
