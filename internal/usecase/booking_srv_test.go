package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cinema-client/internal/api"
	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, r chi.Router) *api.Client {
	t.Helper()
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return api.NewClient(server.URL, 5*time.Second, zap.NewNop())
}

// bookingServer records booking requests and fails the seat ids in reject
// with the given status and detail message.
type bookingServer struct {
	mu       sync.Mutex
	requests []request.CreateBookingRequest
	reject   map[int]int    // seat id -> http status
	details  map[int]string // seat id -> detail message
}

func (b *bookingServer) router() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/v1/ticket/booking", func(w http.ResponseWriter, req *http.Request) {
		var body request.CreateBookingRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		b.mu.Lock()
		b.requests = append(b.requests, body)
		b.mu.Unlock()

		if status, ok := b.reject[body.SeatID]; ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"detail": b.details[body.SeatID]})
			return
		}

		json.NewEncoder(w).Encode(response.BookTicketResponse{
			ID:          body.SeatID * 10,
			TicketID:    body.SeatID * 10,
			BookingCode: fmt.Sprintf("BK-%d", body.SeatID),
			Price:       150,
			QRCodePath:  fmt.Sprintf("/qr/%d.png", body.SeatID),
		})
	})
	return r
}

func (b *bookingServer) seen() []request.CreateBookingRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]request.CreateBookingRequest(nil), b.requests...)
}

func testGuest() GuestInfo {
	return GuestInfo{Name: "Guest", Phone: "+70000000000"}
}

func selectedSeats(ids ...int) []entity.SelectedSeat {
	seats := make([]entity.SelectedSeat, 0, len(ids))
	for _, id := range ids {
		seats = append(seats, entity.SelectedSeat{
			SeatID: id, Row: 1, SeatNumber: id, Zone: entity.ZoneStandard, Price: 100,
		})
	}
	return seats
}

func TestBookAllConfirmed(t *testing.T) {
	server := &bookingServer{}
	client := newTestClient(t, server.router())
	svc := NewBookingService(client, testGuest(), zap.NewNop())

	outcome := svc.Book(context.Background(), 7, selectedSeats(1, 2, 3))

	if outcome.Status != OutcomeConfirmed {
		t.Fatalf("status = %s, want confirmed", outcome.Status)
	}
	if len(outcome.BookedSeatIDs) != 3 || len(outcome.FailedSeatIDs) != 0 {
		t.Fatalf("booked = %v, failed = %v", outcome.BookedSeatIDs, outcome.FailedSeatIDs)
	}
	if outcome.EstimatedTotal != 300 || outcome.ConfirmedTotal != 450 {
		t.Errorf("estimated = %v, confirmed = %v, want 300 and 450",
			outcome.EstimatedTotal, outcome.ConfirmedTotal)
	}
	for _, r := range outcome.Results {
		if !r.Success || r.BookingCode == "" || r.TicketID == 0 {
			t.Errorf("seat %d: success=%v code=%q ticket=%d", r.Seat.SeatID, r.Success, r.BookingCode, r.TicketID)
		}
	}
}

func TestBookPartialOutcome(t *testing.T) {
	server := &bookingServer{
		reject:  map[int]int{2: http.StatusConflict},
		details: map[int]string{2: "Seat already booked"},
	}
	client := newTestClient(t, server.router())
	svc := NewBookingService(client, testGuest(), zap.NewNop())

	outcome := svc.Book(context.Background(), 7, selectedSeats(1, 2, 3))

	if outcome.Status != OutcomePartial {
		t.Fatalf("status = %s, want partial", outcome.Status)
	}
	if len(outcome.BookedSeatIDs) != 2 {
		t.Errorf("booked = %v, want 2 seats", outcome.BookedSeatIDs)
	}
	if len(outcome.FailedSeatIDs) != 1 || outcome.FailedSeatIDs[0] != 2 {
		t.Errorf("failed = %v, want [2]", outcome.FailedSeatIDs)
	}
	if len(outcome.Reasons) != 1 || outcome.Reasons[0] != ReasonSeatTaken {
		t.Errorf("reasons = %v, want [%q]", outcome.Reasons, ReasonSeatTaken)
	}
	if len(outcome.Results) != 3 {
		t.Errorf("results = %d, want one per submitted seat", len(outcome.Results))
	}
}

func TestBookAllFailedDeduplicatesReasons(t *testing.T) {
	server := &bookingServer{
		reject: map[int]int{1: 409, 2: 409, 3: 409},
		details: map[int]string{
			1: "Seat already booked",
			2: "Seat already booked",
			3: "Seat already booked",
		},
	}
	client := newTestClient(t, server.router())
	svc := NewBookingService(client, testGuest(), zap.NewNop())

	outcome := svc.Book(context.Background(), 7, selectedSeats(1, 2, 3))

	if outcome.Status != OutcomeRejected {
		t.Fatalf("status = %s, want rejected", outcome.Status)
	}
	if len(outcome.Reasons) != 1 {
		t.Errorf("reasons = %v, want a single deduplicated entry", outcome.Reasons)
	}
}

func TestBookDeduplicatesSeats(t *testing.T) {
	server := &bookingServer{}
	client := newTestClient(t, server.router())
	svc := NewBookingService(client, testGuest(), zap.NewNop())

	outcome := svc.Book(context.Background(), 7, selectedSeats(5, 5, 6))

	if got := len(server.seen()); got != 2 {
		t.Errorf("server saw %d requests, want 2", got)
	}
	if len(outcome.Results) != 2 {
		t.Errorf("results = %d, want 2", len(outcome.Results))
	}
}

func TestBookEmptySelection(t *testing.T) {
	server := &bookingServer{}
	client := newTestClient(t, server.router())
	svc := NewBookingService(client, testGuest(), zap.NewNop())

	outcome := svc.Book(context.Background(), 7, nil)

	if outcome.Status != OutcomeRejected {
		t.Fatalf("status = %s, want rejected", outcome.Status)
	}
	if len(server.seen()) != 0 {
		t.Error("empty selection must not hit the server")
	}
}

func TestBookRequestsShareTimestampAndDifferInEmail(t *testing.T) {
	server := &bookingServer{}
	client := newTestClient(t, server.router())
	svc := NewBookingService(client, testGuest(), zap.NewNop())

	svc.Book(context.Background(), 7, selectedSeats(1, 2))

	requests := server.seen()
	if len(requests) != 2 {
		t.Fatalf("server saw %d requests, want 2", len(requests))
	}
	if requests[0].UserEmail == requests[1].UserEmail {
		t.Errorf("guest emails must be unique per seat, both are %q", requests[0].UserEmail)
	}
	for _, r := range requests {
		if r.QRCodeData == "" {
			t.Errorf("seat %d: missing qr payload", r.SeatID)
		}
	}
}

func TestClassifyBookingError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"seat taken", wrapAPIErr(409, "Seat already booked"), ReasonSeatTaken},
		{"stale hall", wrapAPIErr(400, "Seat does not belong to this seance hall"), ReasonStaleData},
		{"seat vanished", wrapAPIErr(404, "Seat not found"), ReasonVanished},
		{"seance vanished", wrapAPIErr(404, "Seance not found"), ReasonVanished},
		{"server down", wrapAPIErr(500, "Internal Server Error"), ReasonServiceUnavailable},
		{"rate limited", wrapAPIErr(429, "Too Many Requests"), ReasonRateLimited},
		{"connectivity", wrapAPIErr(0, "dial tcp: connection refused"), ReasonConnectivity},
		{"passthrough", wrapAPIErr(400, "Booking window closed"), "Booking window closed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyBookingError(tc.err); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func wrapAPIErr(status int, message string) error {
	return fmt.Errorf("book seat: %w", &api.Error{Status: status, Message: message})
}
