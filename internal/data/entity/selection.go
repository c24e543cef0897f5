package entity

// Selection is the ordered set of seat ids the user has picked for one
// seance. Membership changes only through explicit toggles; background
// data refreshes never reset it.
type Selection struct {
	seatIDs []int
}

func NewSelection() *Selection {
	return &Selection{}
}

func (s *Selection) Contains(seatID int) bool {
	for _, id := range s.seatIDs {
		if id == seatID {
			return true
		}
	}
	return false
}

// Add appends the seat id, keeping insertion order. No-op on duplicates.
func (s *Selection) Add(seatID int) {
	if s.Contains(seatID) {
		return
	}
	s.seatIDs = append(s.seatIDs, seatID)
}

func (s *Selection) Remove(seatID int) {
	for i, id := range s.seatIDs {
		if id == seatID {
			s.seatIDs = append(s.seatIDs[:i], s.seatIDs[i+1:]...)
			return
		}
	}
}

func (s *Selection) Clear() {
	s.seatIDs = nil
}

func (s *Selection) Len() int {
	return len(s.seatIDs)
}

// SeatIDs returns a copy of the picked ids in insertion order.
func (s *Selection) SeatIDs() []int {
	out := make([]int, len(s.seatIDs))
	copy(out, s.seatIDs)
	return out
}

// SelectedSeat is a selection member resolved against the grid and the
// seance price list.
type SelectedSeat struct {
	SeatID     int
	Row        int
	SeatNumber int
	Zone       Zone
	Price      float64
}
