package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is any failed API call. Status 0 means the request never got an
// HTTP response (connectivity, timeout, DNS).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// StatusOf returns the HTTP status carried by err, or -1 for non-API errors.
func StatusOf(err error) int {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Status
	}
	return -1
}

// decodeError turns a non-2xx response body into an Error. The server
// normally sends {"detail": "..."}; some proxies send {"message": "..."};
// anything else falls back to the raw text and finally to a generic line.
func decodeError(status int, body []byte) *Error {
	message := fmt.Sprintf("HTTP error! status: %d", status)

	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case len(payload.Detail) > 0:
			var detail string
			if json.Unmarshal(payload.Detail, &detail) == nil && detail != "" {
				message = detail
			} else {
				// validation errors arrive as structured detail
				message = string(payload.Detail)
			}
		case payload.Message != "":
			message = payload.Message
		}
	} else if text := strings.TrimSpace(string(body)); text != "" {
		message = text
	}

	return &Error{Status: status, Message: message}
}
