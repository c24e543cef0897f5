package request

type CreatePriceRequest struct {
	SeanceID int     `json:"seance_id" validate:"required,gt=0"`
	SeatID   int     `json:"seat_id" validate:"required,gt=0"`
	SeatType string  `json:"seat_type" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type UpdatePriceRequest struct {
	SeatType *string  `json:"seat_type,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
}
