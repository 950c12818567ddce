package errors

import (
	"context"
	"errors"
	"net/url"
	"testing"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		detail   string
		wantCode ErrorCode
		wantMsg  string
	}{
		{"unauthorized", 401, "Could not validate credentials", ErrCodeUnauthorized, "Could not validate credentials"},
		{"forbidden", 403, "Download quota exceeded", ErrCodeForbidden, "Download quota exceeded"},
		{"not found", 404, "Document not found", ErrCodeNotFound, "Document not found"},
		{"bad request", 400, "Code has expired", ErrCodeValidation, "Code has expired"},
		{"unprocessable", 422, "validation error", ErrCodeValidation, "validation error"},
		{"server error", 500, "Internal Server Error", ErrCodeServer, "Internal Server Error"},
		{"empty detail falls back to status text", 404, "", ErrCodeNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapHTTPStatus(tt.status, tt.detail)
			if err.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", err.Code, tt.wantCode)
			}
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.HTTPStatus != tt.status {
				t.Errorf("HTTPStatus = %d, want %d", err.HTTPStatus, tt.status)
			}
		})
	}
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "i/o timeout" }
func (timeoutErr) Timeout() bool { return true }

func TestMapTransportError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "url error timeout",
			err:     &url.Error{Op: "Get", URL: "http://x", Err: timeoutErr{}},
			wantMsg: "request timed out",
		},
		{
			name:    "url error deadline exceeded",
			err:     &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded},
			wantMsg: "request timed out",
		},
		{
			name:    "url error canceled",
			err:     &url.Error{Op: "Get", URL: "http://x", Err: context.Canceled},
			wantMsg: "request canceled",
		},
		{
			name:    "url error generic",
			err:     &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection refused")},
			wantMsg: "request failed",
		},
		{
			name:    "bare deadline",
			err:     context.DeadlineExceeded,
			wantMsg: "request timed out",
		},
		{
			name:    "bare cancel",
			err:     context.Canceled,
			wantMsg: "request canceled",
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			wantMsg: "request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapTransportError(tt.err)
			if !IsTransport(got) {
				t.Fatalf("expected transport error, got %v", got)
			}
			var appErr *AppError
			if !errors.As(got, &appErr) {
				t.Fatalf("expected AppError, got %T", got)
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", appErr.Message, tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("original error lost through wrapping")
			}
		})
	}

	if MapTransportError(nil) != nil {
		t.Errorf("MapTransportError(nil) should return nil")
	}
}
