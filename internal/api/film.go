package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type FilmClient struct {
	client *Client
}

func (f *FilmClient) List(ctx context.Context) ([]entity.Film, error) {
	var resp response.FilmsResponse
	if err := f.client.do(ctx, http.MethodGet, "/api/v1/film", nil, &resp); err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	return resp.Films, nil
}

func (f *FilmClient) Get(ctx context.Context, id int) (*entity.Film, error) {
	var film entity.Film
	if err := f.client.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/film/%d", id), nil, &film); err != nil {
		return nil, fmt.Errorf("get film %d: %w", id, err)
	}
	return &film, nil
}

func (f *FilmClient) Create(ctx context.Context, req *request.CreateFilmRequest) (int, error) {
	var resp response.IDResponse
	if err := f.client.do(ctx, http.MethodPost, "/api/v1/film", req, &resp); err != nil {
		return 0, fmt.Errorf("create film: %w", err)
	}
	return resp.ID, nil
}

func (f *FilmClient) Update(ctx context.Context, id int, req *request.UpdateFilmRequest) error {
	var resp response.IDResponse
	if err := f.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/film/%d", id), req, &resp); err != nil {
		return fmt.Errorf("update film %d: %w", id, err)
	}
	return nil
}

func (f *FilmClient) Delete(ctx context.Context, id int) error {
	var resp response.SuccessResponse
	if err := f.client.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/film/%d", id), nil, &resp); err != nil {
		return fmt.Errorf("delete film %d: %w", id, err)
	}
	return nil
}
