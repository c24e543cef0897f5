package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"cinema-client/internal/api"
	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"

	"go.uber.org/zap"
)

// ErrLoadInFlight means a page load was requested while another one is
// still running. The second request is dropped, not queued.
var ErrLoadInFlight = errors.New("seance page load already in flight")

// ErrStaleLoad means a newer load superseded this one before it finished;
// its result must be discarded.
var ErrStaleLoad = errors.New("seance page load superseded")

// SeancePage is everything the seat grid needs for one seance: the seance
// itself, its film and hall, the persisted seats and the availability feed,
// plus the set of seats booked locally in this session.
type SeancePage struct {
	Seance       *entity.Seance
	Film         *entity.Film
	Hall         *entity.Hall
	Seats        []entity.Seat
	AvailableIDs []int
	Grid         *entity.Grid

	booked     map[int]bool
	justBooked map[int]bool
}

// JustBooked reports whether the seat was booked locally in this session.
func (p *SeancePage) JustBooked(seatID int) bool {
	return p.justBooked[seatID]
}

type HallService interface {
	// LoadPage fetches seance, film, hall, seats and availability, and
	// assembles the grid. All-or-nothing: a partial load never yields a
	// partial grid.
	LoadPage(ctx context.Context, seanceID int) (*SeancePage, error)

	// MarkBooked records seats booked in this session and rebuilds the
	// grid so they cannot be offered again.
	MarkBooked(page *SeancePage, seatIDs []int)
}

type hallService struct {
	api     *api.Client
	vipRule string
	log     *zap.Logger

	loading    atomic.Bool
	generation atomic.Int64
}

func NewHallService(client *api.Client, vipRule string, log *zap.Logger) HallService {
	return &hallService{
		api:     client,
		vipRule: vipRule,
		log:     log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) LoadPage(ctx context.Context, seanceID int) (*SeancePage, error) {
	// Guard against re-entrant loads; a second request is dropped.
	if !s.loading.CompareAndSwap(false, true) {
		s.log.Debug("Page load already running, dropping request", zap.Int("seance_id", seanceID))
		return nil, ErrLoadInFlight
	}
	defer s.loading.Store(false)

	gen := s.generation.Add(1)

	seance, err := s.api.Seance.Get(ctx, seanceID)
	if err != nil {
		return nil, fmt.Errorf("load seance page: %w", err)
	}

	// Hall, film, seats and availability have no ordering dependency;
	// fetch them in parallel and join before assembling anything.
	var (
		wg    sync.WaitGroup
		hall  *entity.Hall
		film  *entity.Film
		seats []entity.Seat
		avail []entity.Seat
		errs  [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		hall, errs[0] = s.api.Hall.Get(ctx, seance.HallID)
	}()
	go func() {
		defer wg.Done()
		film, errs[1] = s.api.Film.Get(ctx, seance.FilmID)
	}()
	go func() {
		defer wg.Done()
		seats, errs[2] = s.api.Seat.List(ctx, &request.SeatFilter{HallID: seance.HallID})
	}()
	go func() {
		defer wg.Done()
		resp, err := s.api.Seance.AvailableSeats(ctx, seanceID)
		if err != nil {
			errs[3] = err
			return
		}
		avail = resp.AvailableSeats
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load seance page: %w", err)
		}
	}

	// A newer load owns the page now; this result is stale.
	if s.generation.Load() != gen {
		s.log.Debug("Discarding stale page load",
			zap.Int("seance_id", seanceID),
			zap.Int64("generation", gen),
		)
		return nil, ErrStaleLoad
	}

	availableIDs := make([]int, 0, len(avail))
	for i := range avail {
		availableIDs = append(availableIDs, avail[i].ID)
	}

	if len(seats) == 0 {
		s.log.Warn("Hall has no persisted seats",
			zap.Int("hall_id", seance.HallID),
			zap.Int("capacity", hall.Capacity()),
		)
	}
	if len(availableIDs) == 0 {
		s.log.Warn("Availability feed empty, failing open", zap.Int("seance_id", seanceID))
	}

	page := &SeancePage{
		Seance:       seance,
		Film:         film,
		Hall:         hall,
		Seats:        seats,
		AvailableIDs: availableIDs,
		booked:       ComputeBookedSeats(seats, availableIDs),
		justBooked:   make(map[int]bool),
	}
	s.rebuildGrid(page)

	s.log.Info("Seance page loaded",
		zap.Int("seance_id", seanceID),
		zap.Int("hall_id", seance.HallID),
		zap.Int("seats", len(seats)),
		zap.Int("available", len(availableIDs)),
		zap.Int("booked", len(page.booked)),
	)

	return page, nil
}

func (s *hallService) MarkBooked(page *SeancePage, seatIDs []int) {
	if page == nil || len(seatIDs) == 0 {
		return
	}
	for _, id := range seatIDs {
		page.justBooked[id] = true
	}

	// Shrink the availability list too, matching what a fresh feed would
	// report for these seats.
	remaining := page.AvailableIDs[:0]
	for _, id := range page.AvailableIDs {
		if !page.justBooked[id] {
			remaining = append(remaining, id)
		}
	}
	page.AvailableIDs = remaining

	s.rebuildGrid(page)
}

// rebuildGrid recomputes the derived grid from the page inputs. The
// server-derived booked set is fixed at load time; only the local
// just-booked overlay changes between rebuilds.
func (s *hallService) rebuildGrid(page *SeancePage) {
	grid := NormalizeGrid(page.Hall, page.Seats, s.log)
	ResolveAvailability(grid, page.booked, page.justBooked)
	ClassifyZones(grid, s.vipRule)
	page.Grid = grid
}
