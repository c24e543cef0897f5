package request

import "time"

type CreateSeanceRequest struct {
	HallID        int       `json:"hall_id" validate:"required,gt=0"`
	FilmID        int       `json:"film_id" validate:"required,gt=0"`
	StartTime     time.Time `json:"start_time" validate:"required"`
	PriceStandard float64   `json:"price_standard" validate:"gte=0"`
	PriceVIP      float64   `json:"price_vip" validate:"gte=0"`
}

type UpdateSeanceRequest struct {
	HallID        *int       `json:"hall_id,omitempty" validate:"omitempty,gt=0"`
	FilmID        *int       `json:"film_id,omitempty" validate:"omitempty,gt=0"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	PriceStandard *float64   `json:"price_standard,omitempty" validate:"omitempty,gte=0"`
	PriceVIP      *float64   `json:"price_vip,omitempty" validate:"omitempty,gte=0"`
}
