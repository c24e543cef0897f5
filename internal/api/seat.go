package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type SeatClient struct {
	client *Client
}

// List fetches seats matching the filter; a nil filter fetches everything.
func (s *SeatClient) List(ctx context.Context, filter *request.SeatFilter) ([]entity.Seat, error) {
	path := "/api/v1/seat"
	if filter != nil {
		params := url.Values{}
		if filter.HallID > 0 {
			params.Set("hall_id", strconv.Itoa(filter.HallID))
		}
		if filter.RowNumber > 0 {
			params.Set("row_number", strconv.Itoa(filter.RowNumber))
		}
		if filter.SeatNumber > 0 {
			params.Set("seat_number", strconv.Itoa(filter.SeatNumber))
		}
		if filter.SeatType != "" {
			params.Set("seat_type", filter.SeatType)
		}
		if encoded := params.Encode(); encoded != "" {
			path += "?" + encoded
		}
	}

	var resp response.SeatsResponse
	if err := s.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	return resp.Seats, nil
}

func (s *SeatClient) Get(ctx context.Context, id int) (*entity.Seat, error) {
	var seat entity.Seat
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/seat/%d", id), nil, &seat); err != nil {
		return nil, fmt.Errorf("get seat %d: %w", id, err)
	}
	return &seat, nil
}

func (s *SeatClient) Create(ctx context.Context, req *request.CreateSeatRequest) (int, error) {
	var resp response.IDResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/v1/seat", req, &resp); err != nil {
		return 0, fmt.Errorf("create seat: %w", err)
	}
	return resp.ID, nil
}

func (s *SeatClient) Update(ctx context.Context, id int, req *request.UpdateSeatRequest) error {
	var resp response.IDResponse
	if err := s.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/seat/%d", id), req, &resp); err != nil {
		return fmt.Errorf("update seat %d: %w", id, err)
	}
	return nil
}

func (s *SeatClient) Delete(ctx context.Context, id int) error {
	var resp response.SuccessResponse
	if err := s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/seat/%d", id), nil, &resp); err != nil {
		return fmt.Errorf("delete seat %d: %w", id, err)
	}
	return nil
}
