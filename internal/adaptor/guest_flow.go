package adaptor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"cinema-client/internal/api"
	"cinema-client/internal/data/entity"
	"cinema-client/internal/usecase"
	"cinema-client/pkg/utils"
)

// GuestFlow is the customer side: browse the program, pick seats on the
// hall scheme, book, show the e-ticket.
type GuestFlow struct {
	console *Console
	service *usecase.Service
	config  *utils.Config
}

func NewGuestFlow(console *Console, service *usecase.Service, config *utils.Config) *GuestFlow {
	return &GuestFlow{console: console, service: service, config: config}
}

// ShowProgram lists films and their seances.
func (g *GuestFlow) ShowProgram(ctx context.Context) {
	c := g.console

	films, err := g.service.Admin.Films(ctx)
	if err != nil {
		c.printf("Could not load films: %v\n", err)
		return
	}
	seances, err := g.service.Admin.Seances(ctx)
	if err != nil {
		c.printf("Could not load seances: %v\n", err)
		return
	}

	titles := make(map[int]string, len(films))
	for _, f := range films {
		titles[f.ID] = f.Title
		c.printf("film %d: %s (%d min)\n", f.ID, f.Title, f.Duration)
	}
	for _, s := range seances {
		c.printf("seance %d: %s, hall %d, %s, %.0f/%.0f\n",
			s.ID, titles[s.FilmID], s.HallID,
			s.StartTime.Format("02.01 15:04"), s.PriceStandard, s.PriceVIP)
	}
}

// BookSeats runs the hall page for one seance.
func (g *GuestFlow) BookSeats(ctx context.Context) {
	c := g.console

	seanceID, ok := c.readInt("seance id: ")
	if !ok {
		return
	}

	page, err := g.service.Hall.LoadPage(ctx, seanceID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLoadInFlight):
			c.printf("Still loading, try again\n")
		case api.StatusOf(err) == http.StatusNotFound:
			c.printf("Seance not found\n")
		default:
			c.printf("Could not load the hall: %v\n", err)
		}
		return
	}

	if len(page.Seats) == 0 {
		c.printf("This hall has no seats yet (%d rows x %d)\n", page.Hall.Rows, page.Hall.SeatsPerRow)
		return
	}

	c.printf("%s, %s, %s\n", page.Film.Title, page.Hall.Name, page.Seance.StartTime.Format("02.01 15:04"))

	sel := entity.NewSelection()
	for {
		c.printf("\n%s", RenderGrid(page, sel))
		c.printf("selected: %d, total: %.2f\n",
			sel.Len(), g.service.Selection.Total(page.Grid, page.Seance, sel))
		c.printf("toggle with \"<row> <seat>\", [b] book, [q] back\n")

		line, ok := c.readLine("> ")
		if !ok || line == "q" {
			// navigating away abandons the selection
			return
		}
		if line == "b" {
			if g.book(ctx, page, sel) {
				return
			}
			continue
		}

		var row, seatNum int
		if n, err := parseRowSeat(line, &row, &seatNum); n != 2 || err != nil {
			c.printf("Unknown input\n")
			continue
		}

		cell := page.Grid.Cell(row, seatNum)
		if cell == nil || cell.Seat == nil {
			c.printf("No such seat\n")
			continue
		}
		if !g.service.Selection.Toggle(page.Grid, sel, cell.Seat.ID) {
			c.printf("Seat is taken, pick another\n")
		}
	}
}

// book submits the selection. Returns true when the flow is done and the
// caller should leave the hall page.
func (g *GuestFlow) book(ctx context.Context, page *usecase.SeancePage, sel *entity.Selection) bool {
	c := g.console

	if sel.Len() == 0 {
		c.printf("Pick at least one seat\n")
		return false
	}

	seats := g.service.Selection.Resolve(page.Grid, page.Seance, sel)
	outcome := g.service.Booking.Book(ctx, page.Seance.ID, seats)

	// Submission always clears the selection; failed seats stay available
	// on the grid, booked ones are locked for this session.
	sel.Clear()
	g.service.Hall.MarkBooked(page, outcome.BookedSeatIDs)

	c.printf("\n%s", RenderOutcome(outcome))

	if outcome.Status == usecase.OutcomeRejected {
		return false
	}

	g.showTicket(ctx, outcome)
	return outcome.Status == usecase.OutcomeConfirmed
}

// showTicket fetches the QR image for the first booking that has one,
// falling back to a locally rendered code when the server image stays
// unavailable.
func (g *GuestFlow) showTicket(ctx context.Context, outcome *usecase.BookingOutcome) {
	c := g.console

	var first *usecase.SeatBooking
	for i := range outcome.Results {
		if outcome.Results[i].Success && outcome.Results[i].QRCodePath != "" {
			first = &outcome.Results[i]
			break
		}
	}
	if first == nil {
		return
	}

	result := g.service.Ticket.FetchQR(ctx, first.QRCodePath)
	if result.Status == usecase.QRStatusSuccess {
		path := filepath.Join(g.config.QR.SavePath, first.BookingCode+".png")
		if err := os.MkdirAll(g.config.QR.SavePath, 0755); err == nil {
			if err := os.WriteFile(path, result.Image, 0644); err == nil {
				c.printf("QR code saved to %s\n", path)
				return
			}
		}
	}

	c.printf("QR code is temporarily unavailable, keep your booking code\n")
	if path, err := g.service.Ticket.SaveLocalQR(first.QRCodeData, first.BookingCode); err == nil {
		c.printf("Locally rendered QR saved to %s\n", path)
	}
}

func parseRowSeat(line string, row, seat *int) (int, error) {
	return fmt.Sscanf(line, "%d %d", row, seat)
}
