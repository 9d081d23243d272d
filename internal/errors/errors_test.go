package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"sentinel", ErrRateLimited, http.StatusTooManyRequests, "RATE_LIMITED", ErrRateLimited.Message},
		{"custom_message", WithMessage(ErrInvalidInput, "price is required"), http.StatusBadRequest, "INVALID_INPUT", "price is required"},
		{"wrapped_app_error", fmt.Errorf("handler: %w", Wrap(ErrInvalidProperty, fmt.Errorf("boom"))), http.StatusBadRequest, "INVALID_INPUT", ErrInvalidProperty.Message},
		{"plain_error_is_masked", fmt.Errorf("dial tcp: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", ErrInternalServer.Message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Response(tt.err)
			if status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, status)
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, body.Error.Code)
			}
			if body.Error.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, body.Error.Message)
			}
		})
	}
}

func TestWrap_UnwrapsInternal(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ErrInternalServer, cause)

	if err.Unwrap() != cause {
		t.Errorf("expected internal cause to unwrap")
	}
	if err.Code != ErrInternalServer.Code || err.StatusCode != ErrInternalServer.StatusCode {
		t.Errorf("expected sentinel code and status to be kept, got %s %d", err.Code, err.StatusCode)
	}
}
