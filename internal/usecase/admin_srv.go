package usecase

import (
	"context"
	"fmt"

	"cinema-client/internal/api"
	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

// AdminService drives the management endpoints. Every call requires a
// logged-in session; the server rejects the rest with 403.
type AdminService interface {
	Halls(ctx context.Context) ([]entity.Hall, error)
	CreateHall(ctx context.Context, req *request.CreateHallRequest) (int, error)
	UpdateHall(ctx context.Context, id int, req *request.UpdateHallRequest) error
	DeleteHall(ctx context.Context, id int) error

	Films(ctx context.Context) ([]entity.Film, error)
	CreateFilm(ctx context.Context, req *request.CreateFilmRequest) (int, error)
	UpdateFilm(ctx context.Context, id int, req *request.UpdateFilmRequest) error
	DeleteFilm(ctx context.Context, id int) error

	Seances(ctx context.Context) ([]entity.Seance, error)
	CreateSeance(ctx context.Context, req *request.CreateSeanceRequest) (int, error)
	UpdateSeance(ctx context.Context, id int, req *request.UpdateSeanceRequest) error
	DeleteSeance(ctx context.Context, id int) error

	// Prices lists the admin-managed price overrides for a seance;
	// seanceID 0 lists all of them.
	Prices(ctx context.Context, seanceID int) ([]entity.Price, error)
	CreatePrice(ctx context.Context, req *request.CreatePriceRequest) (int, error)
	SetPrice(ctx context.Context, id int, price float64) error
	DeletePrice(ctx context.Context, id int) error

	SeatsByHall(ctx context.Context, hallID int) ([]entity.Seat, error)
	CreateSeat(ctx context.Context, req *request.CreateSeatRequest) (int, error)
	// SetSeatType edits the persisted per-seat type. This override is
	// independent of the geometric VIP rule the customer grid may use;
	// the server prices bookings by this field.
	SetSeatType(ctx context.Context, seatID int, seatType string) error
	DeleteSeat(ctx context.Context, seatID int) error
}

type adminService struct {
	api *api.Client
	log *zap.Logger
}

func NewAdminService(client *api.Client, log *zap.Logger) AdminService {
	return &adminService{
		api: client,
		log: log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	return nil
}

// ==================== HALLS ====================

func (s *adminService) Halls(ctx context.Context) ([]entity.Hall, error) {
	return s.api.Hall.List(ctx)
}

func (s *adminService) CreateHall(ctx context.Context, req *request.CreateHallRequest) (int, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}
	id, err := s.api.Hall.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("Hall created",
		zap.Int("hall_id", id),
		zap.String("name", req.Name),
		zap.Int("rows", req.Rows),
		zap.Int("seats_per_row", req.SeatsPerRow),
	)
	return id, nil
}

func (s *adminService) UpdateHall(ctx context.Context, id int, req *request.UpdateHallRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}
	if err := s.api.Hall.Update(ctx, id, req); err != nil {
		return err
	}
	s.log.Info("Hall updated", zap.Int("hall_id", id))
	return nil
}

func (s *adminService) DeleteHall(ctx context.Context, id int) error {
	if err := s.api.Hall.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Hall deleted", zap.Int("hall_id", id))
	return nil
}

// ==================== FILMS ====================

func (s *adminService) Films(ctx context.Context) ([]entity.Film, error) {
	return s.api.Film.List(ctx)
}

func (s *adminService) CreateFilm(ctx context.Context, req *request.CreateFilmRequest) (int, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}
	id, err := s.api.Film.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("Film created", zap.Int("film_id", id), zap.String("title", req.Title))
	return id, nil
}

func (s *adminService) UpdateFilm(ctx context.Context, id int, req *request.UpdateFilmRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}
	if err := s.api.Film.Update(ctx, id, req); err != nil {
		return err
	}
	s.log.Info("Film updated", zap.Int("film_id", id))
	return nil
}

func (s *adminService) DeleteFilm(ctx context.Context, id int) error {
	if err := s.api.Film.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Film deleted", zap.Int("film_id", id))
	return nil
}

// ==================== SEANCES ====================

func (s *adminService) Seances(ctx context.Context) ([]entity.Seance, error) {
	return s.api.Seance.List(ctx)
}

func (s *adminService) CreateSeance(ctx context.Context, req *request.CreateSeanceRequest) (int, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}
	id, err := s.api.Seance.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("Seance created",
		zap.Int("seance_id", id),
		zap.Int("hall_id", req.HallID),
		zap.Int("film_id", req.FilmID),
		zap.Time("start_time", req.StartTime),
	)
	return id, nil
}

func (s *adminService) UpdateSeance(ctx context.Context, id int, req *request.UpdateSeanceRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}
	if err := s.api.Seance.Update(ctx, id, req); err != nil {
		return err
	}
	s.log.Info("Seance updated", zap.Int("seance_id", id))
	return nil
}

func (s *adminService) DeleteSeance(ctx context.Context, id int) error {
	if err := s.api.Seance.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Seance deleted", zap.Int("seance_id", id))
	return nil
}

// ==================== PRICES ====================

func (s *adminService) Prices(ctx context.Context, seanceID int) ([]entity.Price, error) {
	return s.api.Price.List(ctx, seanceID)
}

func (s *adminService) CreatePrice(ctx context.Context, req *request.CreatePriceRequest) (int, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}
	id, err := s.api.Price.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("Price created",
		zap.Int("price_id", id),
		zap.Int("seance_id", req.SeanceID),
		zap.String("seat_type", req.SeatType),
		zap.Float64("price", req.Price),
	)
	return id, nil
}

func (s *adminService) SetPrice(ctx context.Context, id int, price float64) error {
	req := &request.UpdatePriceRequest{Price: &price}
	if err := s.validate(req); err != nil {
		return err
	}
	if err := s.api.Price.Update(ctx, id, req); err != nil {
		return err
	}
	s.log.Info("Price updated", zap.Int("price_id", id), zap.Float64("price", price))
	return nil
}

func (s *adminService) DeletePrice(ctx context.Context, id int) error {
	if err := s.api.Price.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Price deleted", zap.Int("price_id", id))
	return nil
}

// ==================== SEATS ====================

func (s *adminService) SeatsByHall(ctx context.Context, hallID int) ([]entity.Seat, error) {
	return s.api.Seat.List(ctx, &request.SeatFilter{HallID: hallID})
}

func (s *adminService) CreateSeat(ctx context.Context, req *request.CreateSeatRequest) (int, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}
	id, err := s.api.Seat.Create(ctx, req)
	if err != nil {
		return 0, err
	}
	s.log.Info("Seat created",
		zap.Int("seat_id", id),
		zap.Int("hall_id", req.HallID),
		zap.Int("row", req.RowNumber),
		zap.Int("seat_number", req.SeatNumber),
	)
	return id, nil
}

func (s *adminService) SetSeatType(ctx context.Context, seatID int, seatType string) error {
	req := &request.UpdateSeatRequest{SeatType: &seatType}
	if err := s.validate(req); err != nil {
		return err
	}
	if err := s.api.Seat.Update(ctx, seatID, req); err != nil {
		return err
	}
	s.log.Info("Seat type updated", zap.Int("seat_id", seatID), zap.String("seat_type", seatType))
	return nil
}

func (s *adminService) DeleteSeat(ctx context.Context, seatID int) error {
	if err := s.api.Seat.Delete(ctx, seatID); err != nil {
		return err
	}
	s.log.Info("Seat deleted", zap.Int("seat_id", seatID))
	return nil
}
