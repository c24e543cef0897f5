package adaptor

import (
	"fmt"
	"strings"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/usecase"
)

// Seat glyphs. A dot is a cell with no persisted seat.
const (
	glyphStandard    = 'o'
	glyphVIP         = 'v'
	glyphBooked      = 'x'
	glyphSelected    = '#'
	glyphNonexistent = '.'
)

// RenderGrid draws the hall scheme with the current selection overlaid.
func RenderGrid(page *usecase.SeancePage, sel *entity.Selection) string {
	var b strings.Builder

	b.WriteString("          S C R E E N\n")
	for r := range page.Grid.Cells {
		fmt.Fprintf(&b, "row %2d  ", r+1)
		for s := range page.Grid.Cells[r] {
			cell := &page.Grid.Cells[r][s]
			b.WriteRune(glyphFor(cell, sel))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\n  o standard (%.0f)   v vip (%.0f)   x taken   # selected   . no seat\n",
		page.Seance.PriceStandard, page.Seance.PriceVIP)

	return b.String()
}

func glyphFor(cell *entity.GridCell, sel *entity.Selection) rune {
	if cell.Seat == nil {
		return glyphNonexistent
	}
	if sel != nil && sel.Contains(cell.Seat.ID) {
		return glyphSelected
	}
	switch {
	case cell.Availability == entity.AvailabilityBooked:
		return glyphBooked
	case cell.Zone == entity.ZoneVIP:
		return glyphVIP
	default:
		return glyphStandard
	}
}

// RenderOutcome prints the reconciled booking result.
func RenderOutcome(outcome *usecase.BookingOutcome) string {
	var b strings.Builder

	switch outcome.Status {
	case usecase.OutcomeConfirmed:
		fmt.Fprintf(&b, "Booked %d seat(s), total %.2f\n", len(outcome.BookedSeatIDs), outcome.ConfirmedTotal)
	case usecase.OutcomePartial:
		fmt.Fprintf(&b, "Booked %d seat(s), %d failed\n", len(outcome.BookedSeatIDs), len(outcome.FailedSeatIDs))
	default:
		fmt.Fprintf(&b, "No seats booked\n")
	}

	for _, r := range outcome.Results {
		if r.Success {
			fmt.Fprintf(&b, "  row %d seat %d: code %s (%.2f)\n", r.Seat.Row, r.Seat.SeatNumber, r.BookingCode, r.ServerPrice)
		} else {
			fmt.Fprintf(&b, "  row %d seat %d: %s\n", r.Seat.Row, r.Seat.SeatNumber, r.Reason)
		}
	}

	if outcome.Status != usecase.OutcomeRejected && outcome.ConfirmedTotal != outcome.EstimatedTotal {
		fmt.Fprintf(&b, "note: charged total %.2f differs from the estimate %.2f (seat type overrides)\n",
			outcome.ConfirmedTotal, outcome.EstimatedTotal)
	}

	return b.String()
}
