package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the typed wrapper over the booking REST API, grouping one
// sub-client per resource.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
	log     *zap.Logger

	Film   *FilmClient
	Hall   *HallClient
	Seat   *SeatClient
	Seance *SeanceClient
	Ticket *TicketClient
	Price  *PriceClient
	User   *UserClient
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: NewSession(),
		log:     log.With(zap.String("component", "api")),
	}

	c.Film = &FilmClient{client: c}
	c.Hall = &HallClient{client: c}
	c.Seat = &SeatClient{client: c}
	c.Seance = &SeanceClient{client: c}
	c.Ticket = &TicketClient{client: c}
	c.Price = &PriceClient{client: c}
	c.User = &UserClient{client: c}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Session() *Session {
	return c.session
}

// do issues one JSON request and decodes the 2xx body into out (skipped
// when out is nil). Failures always come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("x-token", token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &Error{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: 0, Message: err.Error()}
	}

	c.log.Debug("Request done",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// fetchRaw downloads a non-JSON resource (the QR image). Absolute URLs are
// taken as-is, anything else is resolved against the API base.
func (c *Client) fetchRaw(ctx context.Context, path string) ([]byte, error) {
	url := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		url = c.baseURL + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build GET %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: 0, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, data)
	}
	return data, nil
}
