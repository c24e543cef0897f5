package entity

import "time"

type Seance struct {
	ID            int       `json:"id"`
	HallID        int       `json:"hall_id"`
	FilmID        int       `json:"film_id"`
	StartTime     time.Time `json:"start_time"`
	PriceStandard float64   `json:"price_standard"`
	PriceVIP      float64   `json:"price_vip"`
}
