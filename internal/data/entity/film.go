package entity

type Film struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
	PosterURL   string `json:"poster_url"`
}
