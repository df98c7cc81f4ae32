package graph

import (
	"errors"
	"fmt"
)

// APIError is an error reported by the Graph API.
type APIError struct {
	StatusCode int
	Message    string
	Type       string
	Code       int
	Subcode    int
	TraceID    string
}

func (e *APIError) Error() string {
	if e.Subcode != 0 {
		return fmt.Sprintf("graph api: %s (status %d, code %d/%d, trace %s)", e.Message, e.StatusCode, e.Code, e.Subcode, e.TraceID)
	}
	return fmt.Sprintf("graph api: %s (status %d, code %d, trace %s)", e.Message, e.StatusCode, e.Code, e.TraceID)
}

// Rate-limit codes of the Graph API.
const (
	codeAppRateLimit     = 4
	codeUserRateLimit    = 17
	codeAdAccountLimit   = 613
	codeAdsAPIThrottling = 80004
)

// IsRateLimited reports whether err is a Graph throttling error.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case codeAppRateLimit, codeUserRateLimit, codeAdAccountLimit, codeAdsAPIThrottling:
		return true
	}
	return false
}

// ErrUnexpectedResponse is returned when an update was answered without
// {"success": true}.
var ErrUnexpectedResponse = errors.New("graph api: update not acknowledged")

type errorBody struct {
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
		Subcode int    `json:"error_subcode"`
		TraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

func (b errorBody) apiError(status int) *APIError {
	if b.Error == nil {
		return &APIError{StatusCode: status, Message: "unknown error"}
	}
	return &APIError{
		StatusCode: status,
		Message:    b.Error.Message,
		Type:       b.Error.Type,
		Code:       b.Error.Code,
		Subcode:    b.Error.Subcode,
		TraceID:    b.Error.TraceID,
	}
}
