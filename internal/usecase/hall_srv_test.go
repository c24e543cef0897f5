package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"cinema-client/internal/api"
	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/response"
	"cinema-client/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// seancePageServer serves a consistent seance with a 2x4 hall. Seats get
// ids 1..8; seat 3 is missing from the availability feed.
func seancePageServer(availableIDs []int) chi.Router {
	hall := entity.Hall{ID: 5, Name: "Hall 5", Rows: 2, SeatsPerRow: 4, IsActive: true}
	seats := fullSeats(2, 4)
	for i := range seats {
		seats[i].HallID = hall.ID
	}

	available := make([]entity.Seat, 0, len(availableIDs))
	for _, id := range availableIDs {
		available = append(available, seats[id-1])
	}

	r := chi.NewRouter()
	r.Get("/api/v1/seance/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(entity.Seance{
			ID: 7, HallID: hall.ID, FilmID: 3, PriceStandard: 100, PriceVIP: 250,
		})
	})
	r.Get("/api/v1/hall/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(hall)
	})
	r.Get("/api/v1/film/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(entity.Film{ID: 3, Title: "Test Film", Duration: 120})
	})
	r.Get("/api/v1/seat", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(response.SeatsResponse{Seats: seats})
	})
	r.Get("/api/v1/seance/{id}/available-seats", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(response.AvailableSeatsResponse{
			SeanceID:       7,
			AvailableSeats: available,
			TotalSeats:     len(seats),
			BookedSeats:    len(seats) - len(available),
			AvailableCount: len(available),
		})
	})
	return r
}

func TestLoadPageAssemblesGrid(t *testing.T) {
	client := newTestClient(t, seancePageServer([]int{1, 2, 4, 5, 6, 7, 8}))
	svc := NewHallService(client, utils.VIPRuleGeometry, zap.NewNop())

	page, err := svc.LoadPage(context.Background(), 7)
	if err != nil {
		t.Fatalf("LoadPage: %v", err)
	}

	if page.Seance.ID != 7 || page.Hall.ID != 5 || page.Film.ID != 3 {
		t.Fatalf("page ids: seance=%d hall=%d film=%d", page.Seance.ID, page.Hall.ID, page.Film.ID)
	}
	if len(page.Seats) != 8 || len(page.AvailableIDs) != 7 {
		t.Fatalf("seats=%d available=%d, want 8 and 7", len(page.Seats), len(page.AvailableIDs))
	}

	// seat 3 is absent from the feed, so it renders booked
	if got := page.Grid.Cell(1, 3).Availability; got != entity.AvailabilityBooked {
		t.Errorf("seat 3 = %v, want booked", got)
	}
	if got := page.Grid.Cell(1, 1).Availability; got != entity.AvailabilityAvailable {
		t.Errorf("seat 1 = %v, want available", got)
	}
}

func TestLoadPageFailsOpenOnEmptyFeed(t *testing.T) {
	client := newTestClient(t, seancePageServer(nil))
	svc := NewHallService(client, utils.VIPRuleGeometry, zap.NewNop())

	page, err := svc.LoadPage(context.Background(), 7)
	if err != nil {
		t.Fatalf("LoadPage: %v", err)
	}

	for r := 1; r <= 2; r++ {
		for s := 1; s <= 4; s++ {
			if got := page.Grid.Cell(r, s).Availability; got != entity.AvailabilityAvailable {
				t.Fatalf("cell (%d,%d) = %v, want available on an empty feed", r, s, got)
			}
		}
	}
}

func TestLoadPageSeanceNotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/seance/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Seance not found"})
	})
	client := newTestClient(t, r)
	svc := NewHallService(client, utils.VIPRuleGeometry, zap.NewNop())

	_, err := svc.LoadPage(context.Background(), 999)
	if err == nil {
		t.Fatal("expected error for a missing seance")
	}
	if api.StatusOf(err) != http.StatusNotFound {
		t.Errorf("status = %d, want 404", api.StatusOf(err))
	}
}

func TestLoadPageDropsConcurrentRequest(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	r := chi.NewRouter()
	r.Get("/api/v1/seance/{id}", func(w http.ResponseWriter, req *http.Request) {
		close(entered)
		<-release
		w.WriteHeader(http.StatusNotFound)
	})
	client := newTestClient(t, r)
	svc := NewHallService(client, utils.VIPRuleGeometry, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.LoadPage(context.Background(), 7)
	}()

	<-entered
	if _, err := svc.LoadPage(context.Background(), 7); !errors.Is(err, ErrLoadInFlight) {
		t.Errorf("err = %v, want ErrLoadInFlight", err)
	}

	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("first load never finished")
	}
}

func TestMarkBookedUpdatesGridAndFeed(t *testing.T) {
	client := newTestClient(t, seancePageServer([]int{1, 2, 3, 4, 5, 6, 7, 8}))
	svc := NewHallService(client, utils.VIPRuleGeometry, zap.NewNop())

	page, err := svc.LoadPage(context.Background(), 7)
	if err != nil {
		t.Fatalf("LoadPage: %v", err)
	}

	svc.MarkBooked(page, []int{2, 6})

	if got := page.Grid.Cell(1, 2).Availability; got != entity.AvailabilityBooked {
		t.Errorf("seat 2 = %v, want booked", got)
	}
	if got := page.Grid.Cell(2, 2).Availability; got != entity.AvailabilityBooked {
		t.Errorf("seat 6 = %v, want booked", got)
	}
	if !page.JustBooked(2) || page.JustBooked(1) {
		t.Error("just-booked overlay does not match marked seats")
	}
	if len(page.AvailableIDs) != 6 {
		t.Errorf("available = %d, want 6", len(page.AvailableIDs))
	}
	for _, id := range page.AvailableIDs {
		if id == 2 || id == 6 {
			t.Errorf("seat %d still in the availability list", id)
		}
	}
}
