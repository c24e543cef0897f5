package response

import "cinema-client/internal/data/entity"

type FilmsResponse struct {
	Films []entity.Film `json:"films"`
}
