package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"cinema-client/internal/data/entity"
	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type TicketClient struct {
	client *Client
}

// Book submits one guest booking. The caller is responsible for making the
// request unique per attempt (email and QR payload carry the transaction
// timestamp, seat id and index).
func (t *TicketClient) Book(ctx context.Context, req *request.CreateBookingRequest) (*response.BookTicketResponse, error) {
	var resp response.BookTicketResponse
	if err := t.client.do(ctx, http.MethodPost, "/api/v1/ticket/booking", req, &resp); err != nil {
		return nil, fmt.Errorf("book seat %d for seance %d: %w", req.SeatID, req.SeanceID, err)
	}
	return &resp, nil
}

// List fetches bookings for the admin view.
func (t *TicketClient) List(ctx context.Context, filter *request.TicketFilter) ([]entity.Ticket, error) {
	path := "/api/v1/tickets"
	if filter != nil {
		params := url.Values{}
		if filter.IncludeArchived {
			params.Set("include_archived", "true")
		} else {
			params.Set("include_archived", "false")
		}
		if filter.Archived != nil {
			if *filter.Archived {
				params.Set("archived", "true")
			} else {
				params.Set("archived", "false")
			}
		}
		path += "?" + params.Encode()
	}

	var resp response.TicketsResponse
	if err := t.client.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return resp.Tickets, nil
}

func (t *TicketClient) SetArchived(ctx context.Context, id int, archived bool) error {
	req := &request.ArchiveTicketRequest{Archived: archived}
	var resp response.SuccessResponse
	if err := t.client.do(ctx, http.MethodPatch, fmt.Sprintf("/api/v1/ticket/%d/archive", id), req, &resp); err != nil {
		return fmt.Errorf("archive ticket %d: %w", id, err)
	}
	return nil
}

// FetchQRImage downloads the rendered QR PNG from qr_code_path. A cache
// buster mirrors what the browser client does between retries.
func (t *TicketClient) FetchQRImage(ctx context.Context, qrPath string, cacheBust int64) ([]byte, error) {
	path := qrPath
	if cacheBust > 0 {
		sep := "?"
		if u, err := url.Parse(qrPath); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		path = fmt.Sprintf("%s%sv=%d", qrPath, sep, cacheBust)
	}
	return t.client.fetchRaw(ctx, path)
}
