package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ==================== GUEST IDENTITY ====================

// GenerateGuestToken returns a fresh identity for one client session.
func GenerateGuestToken() string {
	return uuid.New().String()
}

// GuestEmail builds the per-attempt guest email. The shared transaction
// timestamp plus seat id plus positional index keeps every attempt of one
// multi-seat booking distinct, even if a seat id slips in twice.
func GuestEmail(timestamp int64, seatID, index int) string {
	return fmt.Sprintf("guest_%d_%d_%d@example.com", timestamp, seatID, index)
}

// QRPayload builds the qr_code_data string submitted with a booking.
func QRPayload(timestamp int64, seanceID, seatID int) string {
	return fmt.Sprintf("guest:%d:seance:%d:seat:%d", timestamp, seanceID, seatID)
}

// BookingTimestamp is the shared transaction timestamp in milliseconds.
func BookingTimestamp() int64 {
	return time.Now().UnixMilli()
}
