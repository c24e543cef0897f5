package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type HallClient struct {
	client *Client
}

func (h *HallClient) List(ctx context.Context) ([]entity.Hall, error) {
	var resp response.HallsResponse
	if err := h.client.do(ctx, http.MethodGet, "/api/v1/hall", nil, &resp); err != nil {
		return nil, fmt.Errorf("list halls: %w", err)
	}
	return resp.Halls, nil
}

func (h *HallClient) Get(ctx context.Context, id int) (*entity.Hall, error) {
	var hall entity.Hall
	if err := h.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/hall/%d", id), nil, &hall); err != nil {
		return nil, fmt.Errorf("get hall %d: %w", id, err)
	}
	return &hall, nil
}

func (h *HallClient) Create(ctx context.Context, req *request.CreateHallRequest) (int, error) {
	var resp response.IDResponse
	if err := h.client.do(ctx, http.MethodPost, "/api/v1/hall", req, &resp); err != nil {
		return 0, fmt.Errorf("create hall: %w", err)
	}
	return resp.ID, nil
}

func (h *HallClient) Update(ctx context.Context, id int, req *request.UpdateHallRequest) error {
	var resp response.IDResponse
	if err := h.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/hall/%d", id), req, &resp); err != nil {
		return fmt.Errorf("update hall %d: %w", id, err)
	}
	return nil
}

func (h *HallClient) Delete(ctx context.Context, id int) error {
	var resp response.SuccessResponse
	if err := h.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/hall/%d", id), nil, &resp); err != nil {
		return fmt.Errorf("delete hall %d: %w", id, err)
	}
	return nil
}
