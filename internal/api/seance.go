package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type SeanceClient struct {
	client *Client
}

func (s *SeanceClient) List(ctx context.Context) ([]entity.Seance, error) {
	var resp response.SeancesResponse
	if err := s.client.do(ctx, http.MethodGet, "/api/v1/seance", nil, &resp); err != nil {
		return nil, fmt.Errorf("list seances: %w", err)
	}
	return resp.Seances, nil
}

func (s *SeanceClient) Get(ctx context.Context, id int) (*entity.Seance, error) {
	var seance entity.Seance
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/seance/%d", id), nil, &seance); err != nil {
		return nil, fmt.Errorf("get seance %d: %w", id, err)
	}
	return &seance, nil
}

// AvailableSeats fetches the availability feed for one seance.
func (s *SeanceClient) AvailableSeats(ctx context.Context, id int) (*response.AvailableSeatsResponse, error) {
	var resp response.AvailableSeatsResponse
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/seance/%d/available-seats", id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get available seats for seance %d: %w", id, err)
	}
	return &resp, nil
}

func (s *SeanceClient) Create(ctx context.Context, req *request.CreateSeanceRequest) (int, error) {
	var resp response.IDResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/v1/seance", req, &resp); err != nil {
		return 0, fmt.Errorf("create seance: %w", err)
	}
	return resp.ID, nil
}

func (s *SeanceClient) Update(ctx context.Context, id int, req *request.UpdateSeanceRequest) error {
	var resp response.IDResponse
	if err := s.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/seance/%d", id), req, &resp); err != nil {
		return fmt.Errorf("update seance %d: %w", id, err)
	}
	return nil
}

func (s *SeanceClient) Delete(ctx context.Context, id int) error {
	var resp response.SuccessResponse
	if err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/seance/%d", id), nil, &resp); err != nil {
		return fmt.Errorf("delete seance %d: %w", id, err)
	}
	return nil
}
