package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TestAdminHallLifecycle(t *testing.T) {
	var created request.CreateHallRequest
	var updated request.UpdateHallRequest
	var deletedID string

	r := chi.NewRouter()
	r.Post("/api/v1/hall", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&created)
		json.NewEncoder(w).Encode(response.IDResponse{ID: 11})
	})
	r.Patch("/api/v1/hall/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&updated)
		json.NewEncoder(w).Encode(response.IDResponse{ID: 11})
	})
	r.Delete("/api/v1/hall/{id}", func(w http.ResponseWriter, req *http.Request) {
		deletedID = chi.URLParam(req, "id")
		json.NewEncoder(w).Encode(response.SuccessResponse{Status: "ok"})
	})

	client := newTestClient(t, r)
	svc := NewAdminService(client, zap.NewNop())
	ctx := context.Background()

	id, err := svc.CreateHall(ctx, &request.CreateHallRequest{Name: "Blue Hall", Rows: 8, SeatsPerRow: 10})
	if err != nil {
		t.Fatalf("CreateHall: %v", err)
	}
	if id != 11 || created.Name != "Blue Hall" {
		t.Errorf("id = %d, created = %+v", id, created)
	}

	if err := svc.UpdateHall(ctx, 11, &request.UpdateHallRequest{Name: "Red Hall", Rows: 8, SeatsPerRow: 10}); err != nil {
		t.Fatalf("UpdateHall: %v", err)
	}
	if updated.Name != "Red Hall" {
		t.Errorf("updated = %+v", updated)
	}

	if err := svc.DeleteHall(ctx, 11); err != nil {
		t.Fatalf("DeleteHall: %v", err)
	}
	if deletedID != "11" {
		t.Errorf("deleted id = %q, want 11", deletedID)
	}
}

func TestAdminPartialUpdates(t *testing.T) {
	var film request.UpdateFilmRequest
	var seance request.UpdateSeanceRequest

	r := chi.NewRouter()
	r.Patch("/api/v1/film/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&film)
		json.NewEncoder(w).Encode(response.IDResponse{ID: 3})
	})
	r.Patch("/api/v1/seance/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&seance)
		json.NewEncoder(w).Encode(response.IDResponse{ID: 7})
	})

	client := newTestClient(t, r)
	svc := NewAdminService(client, zap.NewNop())
	ctx := context.Background()

	duration := 135
	if err := svc.UpdateFilm(ctx, 3, &request.UpdateFilmRequest{Duration: &duration}); err != nil {
		t.Fatalf("UpdateFilm: %v", err)
	}
	if film.Duration == nil || *film.Duration != 135 {
		t.Errorf("film update = %+v", film)
	}
	if film.Title != nil {
		t.Errorf("untouched fields must stay omitted, got title %v", *film.Title)
	}

	vip := 300.0
	if err := svc.UpdateSeance(ctx, 7, &request.UpdateSeanceRequest{PriceVIP: &vip}); err != nil {
		t.Fatalf("UpdateSeance: %v", err)
	}
	if seance.PriceVIP == nil || *seance.PriceVIP != 300 {
		t.Errorf("seance update = %+v", seance)
	}
}

func TestAdminCreateHallValidation(t *testing.T) {
	// no routes: validation must reject before any request goes out
	client := newTestClient(t, chi.NewRouter())
	svc := NewAdminService(client, zap.NewNop())

	if _, err := svc.CreateHall(context.Background(), &request.CreateHallRequest{Name: "ab", Rows: 0, SeatsPerRow: 0}); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestAdminSetSeatType(t *testing.T) {
	var patched request.UpdateSeatRequest

	r := chi.NewRouter()
	r.Patch("/api/v1/seat/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&patched)
		json.NewEncoder(w).Encode(response.IDResponse{ID: 3})
	})

	client := newTestClient(t, r)
	svc := NewAdminService(client, zap.NewNop())

	if err := svc.SetSeatType(context.Background(), 3, "vip"); err != nil {
		t.Fatalf("SetSeatType: %v", err)
	}
	if patched.SeatType == nil || *patched.SeatType != "vip" {
		t.Errorf("patched seat_type = %v, want vip", patched.SeatType)
	}
}

func TestAdminPriceLifecycle(t *testing.T) {
	var created request.CreatePriceRequest
	var updated request.UpdatePriceRequest

	r := chi.NewRouter()
	r.Get("/api/v1/price", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(response.PricesResponse{Prices: []entity.Price{
			{ID: 1, SeanceID: 7, SeatType: "standard", Price: 100},
			{ID: 2, SeanceID: 7, SeatType: "vip", Price: 250},
		}})
	})
	r.Post("/api/v1/price", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&created)
		json.NewEncoder(w).Encode(response.IDResponse{ID: 3})
	})
	r.Patch("/api/v1/price/{id}", func(w http.ResponseWriter, req *http.Request) {
		json.NewDecoder(req.Body).Decode(&updated)
		json.NewEncoder(w).Encode(response.IDResponse{ID: 2})
	})

	client := newTestClient(t, r)
	svc := NewAdminService(client, zap.NewNop())
	ctx := context.Background()

	prices, err := svc.Prices(ctx, 7)
	if err != nil {
		t.Fatalf("Prices: %v", err)
	}
	if len(prices) != 2 || prices[1].Price != 250 {
		t.Errorf("prices = %+v", prices)
	}

	id, err := svc.CreatePrice(ctx, &request.CreatePriceRequest{
		SeanceID: 7, SeatID: 4, SeatType: "vip", Price: 300,
	})
	if err != nil {
		t.Fatalf("CreatePrice: %v", err)
	}
	if id != 3 || created.Price != 300 {
		t.Errorf("id = %d, created = %+v", id, created)
	}

	if err := svc.SetPrice(ctx, 2, 275); err != nil {
		t.Fatalf("SetPrice: %v", err)
	}
	if updated.Price == nil || *updated.Price != 275 {
		t.Errorf("updated price = %v, want 275", updated.Price)
	}
}
