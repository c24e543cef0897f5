package request

type CreateHallRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Rows        int    `json:"rows" validate:"required,gt=0"`
	SeatsPerRow int    `json:"seats_per_row" validate:"required,gt=0"`
}

// The server requires the full shape on update too.
type UpdateHallRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Rows        int    `json:"rows" validate:"required,gt=0"`
	SeatsPerRow int    `json:"seats_per_row" validate:"required,gt=0"`
}
