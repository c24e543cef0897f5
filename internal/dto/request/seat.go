package request

type CreateSeatRequest struct {
	HallID     int    `json:"hall_id" validate:"required,gt=0"`
	RowNumber  int    `json:"row_number" validate:"required,gt=0"`
	SeatNumber int    `json:"seat_number" validate:"required,gt=0"`
	SeatType   string `json:"seat_type" validate:"required,oneof=standard vip disabled"`
}

type UpdateSeatRequest struct {
	HallID     *int    `json:"hall_id,omitempty" validate:"omitempty,gt=0"`
	RowNumber  *int    `json:"row_number,omitempty" validate:"omitempty,gt=0"`
	SeatNumber *int    `json:"seat_number,omitempty" validate:"omitempty,gt=0"`
	SeatType   *string `json:"seat_type,omitempty" validate:"omitempty,oneof=standard vip disabled"`
}

// SeatFilter maps to the query parameters of GET /api/v1/seat.
type SeatFilter struct {
	HallID     int
	RowNumber  int
	SeatNumber int
	SeatType   string
}
