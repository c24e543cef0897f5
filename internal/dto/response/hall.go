package response

import "cinema-client/internal/data/entity"

type HallsResponse struct {
	Halls []entity.Hall `json:"halls"`
}
