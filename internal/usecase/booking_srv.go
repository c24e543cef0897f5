package usecase

import (
	"context"
	"strings"
	"sync"

	"cinema-client/internal/api"
	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/pkg/utils"

	"go.uber.org/zap"
)

type OutcomeStatus string

const (
	OutcomeConfirmed OutcomeStatus = "confirmed"
	OutcomePartial   OutcomeStatus = "partial"
	OutcomeRejected  OutcomeStatus = "rejected"
)

// Friendly failure categories. Matched by substring against the server
// message, which is brittle by construction; a stable machine-readable
// error code from the server would make this table unnecessary.
const (
	ReasonSeatTaken          = "seat taken, pick another"
	ReasonStaleData          = "stale data, refresh"
	ReasonVanished           = "showtime or seat vanished, refresh"
	ReasonServiceUnavailable = "service unavailable, retry later"
	ReasonRateLimited        = "rate limited, wait and retry"
	ReasonConnectivity       = "connectivity problem"
)

// SeatBooking is the definitive per-seat result of one booking attempt.
type SeatBooking struct {
	Seat        entity.SelectedSeat
	Success     bool
	BookingCode string
	TicketID    int
	QRCodePath  string
	QRCodeData  string
	ServerPrice float64
	Reason      string // friendly failure category, empty on success
	Err         error
}

// BookingOutcome aggregates a multi-seat transaction. Every submitted seat
// appears in Results exactly once with a definitive success or failure.
type BookingOutcome struct {
	Status        OutcomeStatus
	Results       []SeatBooking
	BookedSeatIDs []int
	FailedSeatIDs []int
	// Reasons holds the deduplicated failure categories in first-seen order.
	Reasons []string
	// EstimatedTotal is priced by the client zone rule; ConfirmedTotal is
	// what the server actually charged. The two can differ when the
	// geometric rule and the stored seat type disagree.
	EstimatedTotal float64
	ConfirmedTotal float64
}

type GuestInfo struct {
	Name  string
	Phone string
}

type BookingService interface {
	// Book submits one booking request per selected seat, all in parallel,
	// and reconciles the results. It never returns an error: every failure
	// is captured in the outcome.
	Book(ctx context.Context, seanceID int, seats []entity.SelectedSeat) *BookingOutcome
}

type bookingService struct {
	api   *api.Client
	guest GuestInfo
	log   *zap.Logger
}

func NewBookingService(client *api.Client, guest GuestInfo, log *zap.Logger) BookingService {
	return &bookingService{
		api:   client,
		guest: guest,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Book(ctx context.Context, seanceID int, seats []entity.SelectedSeat) *BookingOutcome {
	seats = dedupeSeats(seats)
	if len(seats) == 0 {
		return &BookingOutcome{Status: OutcomeRejected, Reasons: []string{"no seats selected"}}
	}

	// One shared transaction timestamp; combined with seat id and index it
	// keeps every attempt unique under the single guest identity.
	timestamp := utils.BookingTimestamp()

	s.log.Info("Booking seats",
		zap.Int("seance_id", seanceID),
		zap.Int("count", len(seats)),
		zap.Int64("timestamp", timestamp),
	)

	results := make([]SeatBooking, len(seats))

	// Fan out in parallel; no ordering dependency between seats. Collect
	// exhaustively, no short-circuit on first failure.
	var wg sync.WaitGroup
	wg.Add(len(seats))
	for i, seat := range seats {
		go func(i int, seat entity.SelectedSeat) {
			defer wg.Done()
			results[i] = s.bookOne(ctx, seanceID, seat, timestamp, i)
		}(i, seat)
	}
	wg.Wait()

	return s.reconcile(seanceID, results)
}

func (s *bookingService) bookOne(ctx context.Context, seanceID int, seat entity.SelectedSeat, timestamp int64, index int) SeatBooking {
	result := SeatBooking{
		Seat:       seat,
		QRCodeData: utils.QRPayload(timestamp, seanceID, seat.SeatID),
	}

	req := &request.CreateBookingRequest{
		SeanceID:   seanceID,
		SeatID:     seat.SeatID,
		UserName:   s.guest.Name,
		UserPhone:  s.guest.Phone,
		UserEmail:  utils.GuestEmail(timestamp, seat.SeatID, index),
		QRCodeData: result.QRCodeData,
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking request validation failed",
			zap.Int("seat_id", seat.SeatID),
			zap.Any("errors", errs),
		)
		result.Reason = utils.FormatValidationErrors(errs)
		return result
	}

	resp, err := s.api.Ticket.Book(ctx, req)
	if err != nil {
		s.log.Warn("Seat booking failed",
			zap.Int("seat_id", seat.SeatID),
			zap.Int("status", api.StatusOf(err)),
			zap.Error(err),
		)
		result.Err = err
		result.Reason = classifyBookingError(err)
		return result
	}

	result.Success = true
	result.BookingCode = resp.BookingCode
	result.TicketID = resp.TicketID
	if result.TicketID == 0 {
		result.TicketID = resp.ID
	}
	result.QRCodePath = resp.QRCodePath
	result.ServerPrice = resp.Price

	s.log.Info("Seat booked",
		zap.Int("seat_id", seat.SeatID),
		zap.String("booking_code", resp.BookingCode),
		zap.Float64("price", resp.Price),
	)
	return result
}

func (s *bookingService) reconcile(seanceID int, results []SeatBooking) *BookingOutcome {
	outcome := &BookingOutcome{Results: results}

	seen := make(map[string]bool)
	for _, r := range results {
		outcome.EstimatedTotal += r.Seat.Price
		if r.Success {
			outcome.BookedSeatIDs = append(outcome.BookedSeatIDs, r.Seat.SeatID)
			outcome.ConfirmedTotal += r.ServerPrice
			continue
		}
		outcome.FailedSeatIDs = append(outcome.FailedSeatIDs, r.Seat.SeatID)
		if r.Reason != "" && !seen[r.Reason] {
			seen[r.Reason] = true
			outcome.Reasons = append(outcome.Reasons, r.Reason)
		}
	}

	switch {
	case len(outcome.FailedSeatIDs) == 0:
		outcome.Status = OutcomeConfirmed
	case len(outcome.BookedSeatIDs) == 0:
		outcome.Status = OutcomeRejected
	default:
		outcome.Status = OutcomePartial
	}

	s.log.Info("Booking reconciled",
		zap.Int("seance_id", seanceID),
		zap.String("status", string(outcome.Status)),
		zap.Int("booked", len(outcome.BookedSeatIDs)),
		zap.Int("failed", len(outcome.FailedSeatIDs)),
	)
	return outcome
}

// dedupeSeats drops repeated seat ids while keeping order. The grid should
// never produce duplicates, but the reconciler must not double-book when
// it does.
func dedupeSeats(seats []entity.SelectedSeat) []entity.SelectedSeat {
	seen := make(map[int]bool, len(seats))
	out := seats[:0:0]
	for _, seat := range seats {
		if seen[seat.SeatID] {
			continue
		}
		seen[seat.SeatID] = true
		out = append(out, seat)
	}
	return out
}

// classifyBookingError maps a failed attempt to a friendly category.
// Unrecognized server messages pass through unchanged.
func classifyBookingError(err error) string {
	msg := strings.ToLower(err.Error())
	status := api.StatusOf(err)

	switch {
	case strings.Contains(msg, "seat already booked"):
		return ReasonSeatTaken
	case strings.Contains(msg, "seat does not belong"):
		return ReasonStaleData
	case strings.Contains(msg, "seat not found"), strings.Contains(msg, "seance not found"):
		return ReasonVanished
	case status >= 500:
		return ReasonServiceUnavailable
	case status == 429:
		return ReasonRateLimited
	case status == 0:
		return ReasonConnectivity
	}

	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
