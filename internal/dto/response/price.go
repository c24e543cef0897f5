package response

import "cinema-client/internal/data/entity"

type PricesResponse struct {
	Prices []entity.Price `json:"prices"`
}
