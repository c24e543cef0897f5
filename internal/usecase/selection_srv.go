package usecase

import (
	"cinema-client/internal/data/entity"

	"go.uber.org/zap"
)

type SelectionService interface {
	// Toggle flips the seat in or out of the selection. Seats that are
	// booked or non-existent are ignored: the toggle is a no-op, not an
	// error. Returns whether the selection changed.
	Toggle(grid *entity.Grid, sel *entity.Selection, seatID int) bool

	// Resolve maps every selected seat to its grid position, zone and
	// price for the given seance.
	Resolve(grid *entity.Grid, seance *entity.Seance, sel *entity.Selection) []entity.SelectedSeat

	// Total is the sum of resolved seat prices.
	Total(grid *entity.Grid, seance *entity.Seance, sel *entity.Selection) float64
}

type selectionService struct {
	log *zap.Logger
}

func NewSelectionService(log *zap.Logger) SelectionService {
	return &selectionService{
		log: log.With(zap.String("service", "selection")),
	}
}

func (s *selectionService) Toggle(grid *entity.Grid, sel *entity.Selection, seatID int) bool {
	cell := grid.CellBySeatID(seatID)
	if cell == nil || cell.Availability != entity.AvailabilityAvailable {
		s.log.Debug("Ignoring toggle on unavailable seat", zap.Int("seat_id", seatID))
		return false
	}

	if sel.Contains(seatID) {
		sel.Remove(seatID)
		s.log.Debug("Seat deselected", zap.Int("seat_id", seatID), zap.Int("selected", sel.Len()))
	} else {
		sel.Add(seatID)
		s.log.Debug("Seat selected", zap.Int("seat_id", seatID), zap.Int("selected", sel.Len()))
	}
	return true
}

func (s *selectionService) Resolve(grid *entity.Grid, seance *entity.Seance, sel *entity.Selection) []entity.SelectedSeat {
	ids := sel.SeatIDs()
	resolved := make([]entity.SelectedSeat, 0, len(ids))
	for _, id := range ids {
		cell := grid.CellBySeatID(id)
		if cell == nil {
			// seat disappeared from the grid between toggle and resolve
			s.log.Warn("Selected seat no longer on grid", zap.Int("seat_id", id))
			continue
		}
		resolved = append(resolved, entity.SelectedSeat{
			SeatID:     id,
			Row:        cell.Row,
			SeatNumber: cell.SeatNumber,
			Zone:       cell.Zone,
			Price:      ZonePrice(cell.Zone, seance),
		})
	}
	return resolved
}

func (s *selectionService) Total(grid *entity.Grid, seance *entity.Seance, sel *entity.Selection) float64 {
	var total float64
	for _, seat := range s.Resolve(grid, seance, sel) {
		total += seat.Price
	}
	return total
}
