package entity

type SeatType string

const (
	SeatTypeStandard SeatType = "standard"
	SeatTypeVIP      SeatType = "vip"
	SeatTypeDisabled SeatType = "disabled"
)

// Seat is a persisted seat. Grid cells without a persisted seat are
// non-existent: not bookable and not selectable.
type Seat struct {
	ID         int      `json:"id"`
	HallID     int      `json:"hall_id"`
	RowNumber  int      `json:"row_number"`
	SeatNumber int      `json:"seat_number"`
	SeatType   SeatType `json:"seat_type"`
}

// IsVIPType reports whether the persisted seat type marks the seat VIP.
// The server prices bookings by this field; case folded because legacy
// rows carry mixed-case values.
func (s *Seat) IsVIPType() bool {
	return s.SeatType == SeatTypeVIP || s.SeatType == "VIP"
}
