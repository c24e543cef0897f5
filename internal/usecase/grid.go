package usecase

import (
	"cinema-client/internal/data/entity"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

// VIP rows are fixed by the hall layout; within them the middle third of
// each row is VIP.
const (
	vipRowFirst = 4
	vipRowLast  = 7
)

// NormalizeGrid expands the sparse persisted seat list into the complete
// Rows x SeatsPerRow scheme. Cells without a persisted seat stay
// non-existent. Persisted seats outside the declared geometry are logged
// and skipped, never fatal.
func NormalizeGrid(hall *entity.Hall, seats []entity.Seat, log *zap.Logger) *entity.Grid {
	grid := &entity.Grid{
		Rows:        hall.Rows,
		SeatsPerRow: hall.SeatsPerRow,
		Cells:       make([][]entity.GridCell, hall.Rows),
	}

	for r := 0; r < hall.Rows; r++ {
		grid.Cells[r] = make([]entity.GridCell, hall.SeatsPerRow)
		for s := 0; s < hall.SeatsPerRow; s++ {
			grid.Cells[r][s] = entity.GridCell{
				Row:          r + 1,
				SeatNumber:   s + 1,
				Availability: entity.AvailabilityNonexistent,
				Zone:         entity.ZoneNone,
			}
		}
	}

	for i := range seats {
		seat := &seats[i]
		cell := grid.Cell(seat.RowNumber, seat.SeatNumber)
		if cell == nil {
			log.Warn("Seat outside hall geometry, skipped",
				zap.Int("seat_id", seat.ID),
				zap.Int("row", seat.RowNumber),
				zap.Int("seat_number", seat.SeatNumber),
				zap.Int("hall_rows", hall.Rows),
				zap.Int("hall_seats_per_row", hall.SeatsPerRow),
			)
			continue
		}
		cell.Seat = seat
	}

	return grid
}

// ComputeBookedSeats derives the booked id set: every persisted seat not in
// the availability feed. An empty feed means the API gave us nothing to go
// on, so no seat is marked booked rather than hiding the whole hall.
func ComputeBookedSeats(seats []entity.Seat, availableIDs []int) map[int]bool {
	booked := make(map[int]bool)
	if len(availableIDs) == 0 {
		// fail open
		return booked
	}

	available := make(map[int]bool, len(availableIDs))
	for _, id := range availableIDs {
		available[id] = true
	}

	for i := range seats {
		if !available[seats[i].ID] {
			booked[seats[i].ID] = true
		}
	}
	return booked
}

// ResolveAvailability classifies every persisted seat. Seats booked in this
// session (justBooked) are forced booked regardless of the server feed, so
// a stale cache cannot re-offer a seat mid-transaction.
func ResolveAvailability(grid *entity.Grid, booked, justBooked map[int]bool) {
	for r := range grid.Cells {
		for s := range grid.Cells[r] {
			cell := &grid.Cells[r][s]
			if cell.Seat == nil {
				cell.Availability = entity.AvailabilityNonexistent
				continue
			}
			if booked[cell.Seat.ID] || justBooked[cell.Seat.ID] {
				cell.Availability = entity.AvailabilityBooked
			} else {
				cell.Availability = entity.AvailabilityAvailable
			}
		}
	}
}

// GeometricZone is the positional pricing rule: rows 4-7, middle third of
// the row. Independent of the persisted seat type.
func GeometricZone(row, seatNumber, seatsPerRow int) entity.Zone {
	if row < vipRowFirst || row > vipRowLast || seatsPerRow <= 0 {
		return entity.ZoneStandard
	}
	third := seatsPerRow / 3
	if seatNumber >= third+1 && seatNumber <= seatsPerRow-third {
		return entity.ZoneVIP
	}
	return entity.ZoneStandard
}

// ClassifyZones assigns a pricing tier to every seat cell according to the
// configured rule. Non-existent cells stay unzoned.
func ClassifyZones(grid *entity.Grid, rule string) {
	for r := range grid.Cells {
		for s := range grid.Cells[r] {
			cell := &grid.Cells[r][s]
			if cell.Seat == nil {
				cell.Zone = entity.ZoneNone
				continue
			}

			switch rule {
			case utils.VIPRuleSeatType:
				if cell.Seat.IsVIPType() {
					cell.Zone = entity.ZoneVIP
				} else {
					cell.Zone = entity.ZoneStandard
				}
			default:
				cell.Zone = GeometricZone(cell.Row, cell.SeatNumber, grid.SeatsPerRow)
			}
		}
	}
}

// ZonePrice resolves a zone against the seance price list.
func ZonePrice(zone entity.Zone, seance *entity.Seance) float64 {
	if zone == entity.ZoneVIP {
		return seance.PriceVIP
	}
	return seance.PriceStandard
}
