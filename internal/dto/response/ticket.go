package response

import "cinema-client/internal/data/entity"

// BookTicketResponse is the body of POST /api/v1/ticket/booking.
type BookTicketResponse struct {
	ID          int     `json:"id"`
	BookingCode string  `json:"booking_code"`
	TicketID    int     `json:"ticket_id"`
	Price       float64 `json:"price"`
	QRCodePath  string  `json:"qr_code_path"`
	Message     string  `json:"message"`
}

type TicketsResponse struct {
	Tickets []entity.Ticket `json:"tickets"`
}
