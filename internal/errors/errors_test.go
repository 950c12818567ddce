package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "document not found",
			},
			want: "document not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeTransport,
				Message: "request failed",
				Cause:   errors.New("connection refused"),
			},
			want: "request failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   ErrorCode
		wantStatus int
	}{
		{"transport", Transport("request failed"), ErrCodeTransport, 0},
		{"server", Server(502, "bad gateway"), ErrCodeServer, 502},
		{"unauthorized", Unauthorized("not authenticated"), ErrCodeUnauthorized, 401},
		{"forbidden", Forbidden("insufficient permissions"), ErrCodeForbidden, 403},
		{"not found", NotFound("document not found"), ErrCodeNotFound, 404},
		{"not found formatted", NotFoundf("document %d not found", 42), ErrCodeNotFound, 404},
		{"profile", Profile("missing profile data"), ErrCodeProfile, 0},
		{"validation", Validation("invalid input"), ErrCodeValidation, 0},
		{"internal", Internal("unexpected state"), ErrCodeInternal, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.wantCode)
			}
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %v, want %v", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeServer, "list documents")
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped error to match cause via errors.Is")
	}
	if err.Code != ErrCodeServer {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeServer)
	}

	if Wrap(nil, ErrCodeServer, "noop") != nil {
		t.Errorf("Wrap(nil) should return nil")
	}
	if Wrapf(nil, ErrCodeServer, "noop %d", 1) != nil {
		t.Errorf("Wrapf(nil) should return nil")
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"is transport", Transport("x"), IsTransport, true},
		{"is server", Server(500, "x"), IsServer, true},
		{"is unauthorized", Unauthorized("x"), IsUnauthorized, true},
		{"is forbidden", Forbidden("x"), IsForbidden, true},
		{"is not found", NotFound("x"), IsNotFound, true},
		{"is profile", Profile("x"), IsProfile, true},
		{"is validation", Validation("x"), IsValidation, true},
		{"is internal", Internal("x"), IsInternal, true},
		{"mismatched code", Transport("x"), IsServer, false},
		{"plain error", errors.New("x"), IsTransport, false},
		{"nil error", nil, IsTransport, false},
		{"wrapped AppError", Wrap(Forbidden("x"), ErrCodeInternal, "outer"), IsInternal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Forbidden("x")); got != ErrCodeForbidden {
		t.Errorf("GetCode = %v, want %v", got, ErrCodeForbidden)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode = %v, want empty", got)
	}
}

func TestGetHTTPStatus(t *testing.T) {
	if got := GetHTTPStatus(Server(503, "x")); got != 503 {
		t.Errorf("GetHTTPStatus = %v, want 503", got)
	}
	if got := GetHTTPStatus(errors.New("plain")); got != 0 {
		t.Errorf("GetHTTPStatus = %v, want 0", got)
	}
}
