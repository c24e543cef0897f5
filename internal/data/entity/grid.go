package entity

type Availability int

const (
	AvailabilityNonexistent Availability = iota
	AvailabilityAvailable
	AvailabilityBooked
)

func (a Availability) String() string {
	switch a {
	case AvailabilityAvailable:
		return "available"
	case AvailabilityBooked:
		return "booked"
	default:
		return "nonexistent"
	}
}

type Zone int

const (
	ZoneNone Zone = iota
	ZoneStandard
	ZoneVIP
)

func (z Zone) String() string {
	switch z {
	case ZoneStandard:
		return "standard"
	case ZoneVIP:
		return "vip"
	default:
		return "n/a"
	}
}

// GridCell is one logical cell of the hall scheme. Derived, never persisted;
// recomputed whenever geometry, seat list or availability changes.
type GridCell struct {
	Row          int
	SeatNumber   int
	Seat         *Seat // nil for non-existent cells
	Availability Availability
	Zone         Zone
}

// Grid is the complete Rows x SeatsPerRow hall scheme.
type Grid struct {
	Rows        int
	SeatsPerRow int
	Cells       [][]GridCell // [row-1][seat-1]
}

// Cell returns the cell at 1-based coordinates, nil when out of range.
func (g *Grid) Cell(row, seatNumber int) *GridCell {
	if row < 1 || row > g.Rows || seatNumber < 1 || seatNumber > g.SeatsPerRow {
		return nil
	}
	return &g.Cells[row-1][seatNumber-1]
}

// CellBySeatID finds the cell holding the persisted seat, nil if absent.
func (g *Grid) CellBySeatID(seatID int) *GridCell {
	for r := range g.Cells {
		for s := range g.Cells[r] {
			cell := &g.Cells[r][s]
			if cell.Seat != nil && cell.Seat.ID == seatID {
				return cell
			}
		}
	}
	return nil
}
