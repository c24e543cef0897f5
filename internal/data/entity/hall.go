package entity

type Hall struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// Capacity is the size of the full logical grid, not the number of
// persisted seats.
func (h *Hall) Capacity() int {
	return h.Rows * h.SeatsPerRow
}
