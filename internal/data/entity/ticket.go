package entity

type Ticket struct {
	ID          int     `json:"id"`
	SeanceID    int     `json:"seance_id"`
	SeatID      int     `json:"seat_id"`
	UserID      int     `json:"user_id"`
	UserName    string  `json:"user_name"`
	UserPhone   string  `json:"user_phone"`
	UserEmail   string  `json:"user_email"`
	Price       float64 `json:"price"`
	Booked      bool    `json:"booked"`
	Archived    bool    `json:"archived"`
	BookingCode string  `json:"booking_code"`
	QRCodeData  string  `json:"qr_code_data"`
	QRCodePath  string  `json:"qr_code_path"`
	CreatedAt   string  `json:"created_at"`
}
