package response

import "cinema-client/internal/data/entity"

type SeancesResponse struct {
	Seances []entity.Seance `json:"seances"`
}
