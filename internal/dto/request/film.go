package request

type CreateFilmRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty"`
	Duration    int    `json:"duration" validate:"required,gt=0"` // minutes
	PosterURL   string `json:"poster_url,omitempty" validate:"max=500"`
}

type UpdateFilmRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,gt=0"`
	PosterURL   *string `json:"poster_url,omitempty" validate:"omitempty,max=500"`
}
