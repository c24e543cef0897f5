package response

import "cinema-client/internal/data/entity"

type SeatsResponse struct {
	Seats []entity.Seat `json:"seats"`
}

// AvailableSeatsResponse is the body of
// GET /api/v1/seance/{id}/available-seats.
type AvailableSeatsResponse struct {
	SeanceID       int           `json:"seance_id"`
	AvailableSeats []entity.Seat `json:"available_seats"`
	TotalSeats     int           `json:"total_seats"`
	BookedSeats    int           `json:"booked_seats"`
	AvailableCount int           `json:"available_count"`
}
