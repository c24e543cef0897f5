package adaptor

import (
	"context"
	"time"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/usecase"
)

// AdminMenu drives the management endpoints over a logged-in session.
type AdminMenu struct {
	console *Console
	service *usecase.Service
}

func NewAdminMenu(console *Console, service *usecase.Service) *AdminMenu {
	return &AdminMenu{console: console, service: service}
}

func (m *AdminMenu) Run(ctx context.Context) {
	c := m.console

	if !m.service.Auth.Authenticated() {
		email, ok := c.readLine("email: ")
		if !ok {
			return
		}
		password, ok := c.readLine("password: ")
		if !ok {
			return
		}
		if err := m.service.Auth.Login(ctx, email, password); err != nil {
			c.printf("Login failed: %v\n", err)
			return
		}
	}

	for {
		c.printf("\n--- Admin ---\n")
		c.printf("[1] Halls  [2] Films  [3] Seances  [4] Seats  [5] Bookings  [6] Logout  [0] Back\n")
		choice, ok := c.readLine("> ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.halls(ctx)
		case "2":
			m.films(ctx)
		case "3":
			m.seances(ctx)
		case "4":
			m.seats(ctx)
		case "5":
			m.bookings(ctx)
		case "6":
			m.service.Auth.Logout()
			return
		case "0":
			return
		default:
			c.printf("Unknown choice\n")
		}
	}
}

func (m *AdminMenu) halls(ctx context.Context) {
	c := m.console

	halls, err := m.service.Admin.Halls(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, h := range halls {
		c.printf("hall %d: %s, %d x %d, active=%v\n", h.ID, h.Name, h.Rows, h.SeatsPerRow, h.IsActive)
	}

	choice, _ := c.readLine("[c] create, [d] delete, enter to skip: ")
	switch choice {
	case "c":
		name, _ := c.readLine("name: ")
		rows, ok := c.readInt("rows: ")
		if !ok {
			return
		}
		seats, ok := c.readInt("seats per row: ")
		if !ok {
			return
		}
		id, err := m.service.Admin.CreateHall(ctx, &request.CreateHallRequest{
			Name: name, Rows: rows, SeatsPerRow: seats,
		})
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Created hall %d\n", id)
	case "d":
		id, ok := c.readInt("hall id: ")
		if !ok {
			return
		}
		if err := m.service.Admin.DeleteHall(ctx, id); err != nil {
			c.printf("Error: %v\n", err)
		}
	}
}

func (m *AdminMenu) films(ctx context.Context) {
	c := m.console

	films, err := m.service.Admin.Films(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, f := range films {
		c.printf("film %d: %s (%d min)\n", f.ID, f.Title, f.Duration)
	}

	choice, _ := c.readLine("[c] create, [d] delete, enter to skip: ")
	switch choice {
	case "c":
		title, _ := c.readLine("title: ")
		duration, ok := c.readInt("duration (min): ")
		if !ok {
			return
		}
		description, _ := c.readLine("description: ")
		id, err := m.service.Admin.CreateFilm(ctx, &request.CreateFilmRequest{
			Title: title, Duration: duration, Description: description,
		})
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Created film %d\n", id)
	case "d":
		id, ok := c.readInt("film id: ")
		if !ok {
			return
		}
		if err := m.service.Admin.DeleteFilm(ctx, id); err != nil {
			c.printf("Error: %v\n", err)
		}
	}
}

func (m *AdminMenu) seances(ctx context.Context) {
	c := m.console

	seances, err := m.service.Admin.Seances(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, s := range seances {
		c.printf("seance %d: film %d, hall %d, %s, %.0f/%.0f\n",
			s.ID, s.FilmID, s.HallID, s.StartTime.Format(time.RFC3339), s.PriceStandard, s.PriceVIP)
	}

	choice, _ := c.readLine("[c] create, [p] prices, [d] delete, enter to skip: ")
	switch choice {
	case "p":
		m.prices(ctx)
	case "c":
		hallID, ok := c.readInt("hall id: ")
		if !ok {
			return
		}
		filmID, ok := c.readInt("film id: ")
		if !ok {
			return
		}
		startRaw, _ := c.readLine("start (RFC3339, e.g. 2026-01-15T19:30:00Z): ")
		start, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			c.printf("Bad time: %v\n", err)
			return
		}
		standard, ok := c.readFloat("standard price: ")
		if !ok {
			return
		}
		vip, ok := c.readFloat("vip price: ")
		if !ok {
			return
		}
		id, err := m.service.Admin.CreateSeance(ctx, &request.CreateSeanceRequest{
			HallID: hallID, FilmID: filmID, StartTime: start,
			PriceStandard: standard, PriceVIP: vip,
		})
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Created seance %d\n", id)
	case "d":
		id, ok := c.readInt("seance id: ")
		if !ok {
			return
		}
		if err := m.service.Admin.DeleteSeance(ctx, id); err != nil {
			c.printf("Error: %v\n", err)
		}
	}
}

func (m *AdminMenu) prices(ctx context.Context) {
	c := m.console

	seanceID, ok := c.readInt("seance id: ")
	if !ok {
		return
	}
	prices, err := m.service.Admin.Prices(ctx, seanceID)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, p := range prices {
		c.printf("price %d: %s = %.2f\n", p.ID, p.SeatType, p.Price)
	}

	choice, _ := c.readLine("[c] create, [u] update, [d] delete, enter to skip: ")
	switch choice {
	case "d":
		id, ok := c.readInt("price id: ")
		if !ok {
			return
		}
		if err := m.service.Admin.DeletePrice(ctx, id); err != nil {
			c.printf("Error: %v\n", err)
		}
	case "c":
		seatID, ok := c.readInt("seat id: ")
		if !ok {
			return
		}
		seatType, _ := c.readLine("seat type (standard/vip/disabled): ")
		value, ok := c.readFloat("price: ")
		if !ok {
			return
		}
		id, err := m.service.Admin.CreatePrice(ctx, &request.CreatePriceRequest{
			SeanceID: seanceID, SeatID: seatID, SeatType: seatType, Price: value,
		})
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Created price %d\n", id)
	case "u":
		id, ok := c.readInt("price id: ")
		if !ok {
			return
		}
		value, ok := c.readFloat("new price: ")
		if !ok {
			return
		}
		if err := m.service.Admin.SetPrice(ctx, id, value); err != nil {
			c.printf("Error: %v\n", err)
		}
	}
}

func (m *AdminMenu) seats(ctx context.Context) {
	c := m.console

	hallID, ok := c.readInt("hall id: ")
	if !ok {
		return
	}
	seats, err := m.service.Admin.SeatsByHall(ctx, hallID)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, s := range seats {
		c.printf("seat %d: row %d, seat %d, %s\n", s.ID, s.RowNumber, s.SeatNumber, s.SeatType)
	}

	choice, _ := c.readLine("[t] set type, [c] create, [d] delete, enter to skip: ")
	switch choice {
	case "t":
		seatID, ok := c.readInt("seat id: ")
		if !ok {
			return
		}
		seatType, _ := c.readLine("type (standard/vip/disabled): ")
		if err := m.service.Admin.SetSeatType(ctx, seatID, seatType); err != nil {
			c.printf("Error: %v\n", err)
		}
	case "c":
		row, ok := c.readInt("row: ")
		if !ok {
			return
		}
		seatNum, ok := c.readInt("seat number: ")
		if !ok {
			return
		}
		seatType, _ := c.readLine("type (standard/vip/disabled): ")
		id, err := m.service.Admin.CreateSeat(ctx, &request.CreateSeatRequest{
			HallID: hallID, RowNumber: row, SeatNumber: seatNum, SeatType: seatType,
		})
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Created seat %d\n", id)
	case "d":
		seatID, ok := c.readInt("seat id: ")
		if !ok {
			return
		}
		if err := m.service.Admin.DeleteSeat(ctx, seatID); err != nil {
			c.printf("Error: %v\n", err)
		}
	}
}

func (m *AdminMenu) bookings(ctx context.Context) {
	c := m.console

	includeArchived, _ := c.readLine("include archived? [y/N]: ")
	filter := &request.TicketFilter{IncludeArchived: includeArchived == "y"}

	tickets, err := m.service.Ticket.List(ctx, filter)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, t := range tickets {
		c.printf("ticket %d: seance %d, seat %d, %s, %.2f, archived=%v\n",
			t.ID, t.SeanceID, t.SeatID, t.BookingCode, t.Price, t.Archived)
	}

	choice, _ := c.readLine("[a] toggle archive, enter to skip: ")
	if choice != "a" {
		return
	}
	id, ok := c.readInt("ticket id: ")
	if !ok {
		return
	}
	archived, _ := c.readLine("archived? [y/N]: ")
	if err := m.service.Ticket.SetArchived(ctx, id, archived == "y"); err != nil {
		c.printf("Error: %v\n", err)
	}
}
