package request

// CreateBookingRequest is the body of POST /api/v1/ticket/booking.
type CreateBookingRequest struct {
	SeanceID   int    `json:"seance_id" validate:"required,gt=0"`
	SeatID     int    `json:"seat_id" validate:"required,gt=0"`
	UserName   string `json:"user_name" validate:"required"`
	UserPhone  string `json:"user_phone" validate:"required"`
	UserEmail  string `json:"user_email" validate:"required,email"`
	QRCodeData string `json:"qr_code_data" validate:"required"`
}
