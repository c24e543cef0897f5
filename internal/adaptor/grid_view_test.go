package adaptor

import (
	"strings"
	"testing"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/usecase"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

func renderFixture(t *testing.T) *usecase.SeancePage {
	t.Helper()

	hall := &entity.Hall{ID: 1, Rows: 1, SeatsPerRow: 4}
	seats := []entity.Seat{
		{ID: 1, RowNumber: 1, SeatNumber: 1, SeatType: entity.SeatTypeStandard},
		{ID: 2, RowNumber: 1, SeatNumber: 2, SeatType: entity.SeatTypeStandard},
		// seat 3 missing: non-existent cell
		{ID: 4, RowNumber: 1, SeatNumber: 4, SeatType: entity.SeatTypeVIP},
	}

	grid := usecase.NormalizeGrid(hall, seats, zap.NewNop())
	usecase.ResolveAvailability(grid, map[int]bool{2: true}, nil)
	usecase.ClassifyZones(grid, utils.VIPRuleSeatType)

	return &usecase.SeancePage{
		Seance: &entity.Seance{ID: 7, PriceStandard: 100, PriceVIP: 250},
		Hall:   hall,
		Grid:   grid,
	}
}

func TestRenderGridGlyphs(t *testing.T) {
	page := renderFixture(t)

	sel := entity.NewSelection()
	sel.Add(1)

	out := RenderGrid(page, sel)

	if !strings.Contains(out, "S C R E E N") {
		t.Error("missing screen header")
	}
	// seat 1 selected, seat 2 booked, cell 3 empty, seat 4 vip
	if !strings.Contains(out, "# x . v") {
		t.Errorf("unexpected row rendering:\n%s", out)
	}
	if !strings.Contains(out, "o standard (100)") || !strings.Contains(out, "v vip (250)") {
		t.Errorf("legend missing prices:\n%s", out)
	}
}

func TestRenderGridSelectionBeatsZone(t *testing.T) {
	page := renderFixture(t)

	sel := entity.NewSelection()
	sel.Add(4) // vip seat

	out := RenderGrid(page, sel)
	if !strings.Contains(out, "o x . #") {
		t.Errorf("selected vip seat should render as #:\n%s", out)
	}
}

func TestRenderOutcomePartial(t *testing.T) {
	outcome := &usecase.BookingOutcome{
		Status: usecase.OutcomePartial,
		Results: []usecase.SeatBooking{
			{
				Seat:    entity.SelectedSeat{SeatID: 1, Row: 1, SeatNumber: 1, Price: 100},
				Success: true, BookingCode: "BK-1", ServerPrice: 100,
			},
			{
				Seat:   entity.SelectedSeat{SeatID: 2, Row: 1, SeatNumber: 2, Price: 100},
				Reason: usecase.ReasonSeatTaken,
			},
		},
		BookedSeatIDs:  []int{1},
		FailedSeatIDs:  []int{2},
		Reasons:        []string{usecase.ReasonSeatTaken},
		EstimatedTotal: 200,
		ConfirmedTotal: 100,
	}

	out := RenderOutcome(outcome)

	if !strings.Contains(out, "Booked 1 seat(s), 1 failed") {
		t.Errorf("missing partial summary:\n%s", out)
	}
	if !strings.Contains(out, "code BK-1") {
		t.Errorf("missing booking code:\n%s", out)
	}
	if !strings.Contains(out, usecase.ReasonSeatTaken) {
		t.Errorf("missing failure reason:\n%s", out)
	}
	if !strings.Contains(out, "charged total 100.00 differs from the estimate 200.00") {
		t.Errorf("missing price divergence note:\n%s", out)
	}
}
