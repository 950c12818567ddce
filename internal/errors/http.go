package errors

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// MapHTTPStatus maps a non-2xx server status to an AppError carrying the
// server-provided detail message. Callers pass the detail already extracted
// from the response body, or an empty string when none was present.
func MapHTTPStatus(status int, detail string) *AppError {
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch status {
	case http.StatusUnauthorized:
		return Unauthorized(detail)
	case http.StatusForbidden:
		return Forbidden(detail)
	case http.StatusNotFound:
		return NotFound(detail)
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		return &AppError{
			Code:       ErrCodeValidation,
			Message:    detail,
			HTTPStatus: status,
		}
	default:
		return Server(status, detail)
	}
}

// MapTransportError maps errors returned by http.Client.Do to an AppError.
// Context timeouts and cancellations keep their sentinel identity through Unwrap.
func MapTransportError(err error) error {
	if err == nil {
		return nil
	}

	// http.Client wraps everything in *url.Error; keep the original as cause.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		switch {
		case errors.Is(err, context.DeadlineExceeded) || urlErr.Timeout():
			return Wrap(err, ErrCodeTransport, "request timed out")
		case errors.Is(err, context.Canceled):
			return Wrap(err, ErrCodeTransport, "request canceled")
		default:
			return Wrap(err, ErrCodeTransport, "request failed")
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrCodeTransport, "request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(err, ErrCodeTransport, "request canceled")
	}

	return Wrap(err, ErrCodeTransport, "request failed")
}
