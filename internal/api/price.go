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

type PriceClient struct {
	client *Client
}

// List fetches price overrides; seanceID 0 fetches all of them.
func (p *PriceClient) List(ctx context.Context, seanceID int) ([]entity.Price, error) {
	path := "/api/v1/price"
	if seanceID > 0 {
		params := url.Values{}
		params.Set("seance_id", strconv.Itoa(seanceID))
		path += "?" + params.Encode()
	}

	var resp response.PricesResponse
	if err := p.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	return resp.Prices, nil
}

func (p *PriceClient) Create(ctx context.Context, req *request.CreatePriceRequest) (int, error) {
	var resp response.IDResponse
	if err := p.client.do(ctx, http.MethodPost, "/api/v1/price", req, &resp); err != nil {
		return 0, fmt.Errorf("create price: %w", err)
	}
	return resp.ID, nil
}

func (p *PriceClient) Update(ctx context.Context, id int, req *request.UpdatePriceRequest) error {
	var resp response.IDResponse
	if err := p.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/price/%d", id), req, &resp); err != nil {
		return fmt.Errorf("update price %d: %w", id, err)
	}
	return nil
}

func (p *PriceClient) Delete(ctx context.Context, id int) error {
	var resp response.SuccessResponse
	if err := p.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/price/%d", id), nil, &resp); err != nil {
		return fmt.Errorf("delete price %d: %w", id, err)
	}
	return nil
}
