package entity

// Price is an admin-managed price override keyed by seat type. The server
// prices bookings by these entries; the grid only estimates from the
// seance base prices.
type Price struct {
	ID       int     `json:"id"`
	SeanceID int     `json:"seance_id"`
	SeatID   int     `json:"seat_id"`
	SeatType string  `json:"seat_type"`
	Price    float64 `json:"price"`
}
