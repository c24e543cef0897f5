package api

import (
	"context"
	"fmt"
	"net/http"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type UserClient struct {
	client *Client
}

// Login exchanges credentials for an admin token and stores it on the
// client session, so subsequent calls carry the x-token header.
func (u *UserClient) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	var resp response.LoginResponse
	if err := u.client.do(ctx, http.MethodPost, "/api/v1/user/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	u.client.session.Set(resp.Token)
	return &resp, nil
}

// Logout drops the stored token. The server keeps no session state, so
// this is purely a client-side lifecycle event.
func (u *UserClient) Logout() {
	u.client.session.Clear()
}
