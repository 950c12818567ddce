// Package api is the typed HTTP client for the PDF Platform API.
//
// Every operation is a thin mapping from parameters to an HTTP request
// against the /api/v1 surface. The client attaches the session bearer token
// when one is present, unwraps response payloads, and converts failures into
// a user-visible notice plus a structured error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/pdfplatform/pdfplat-go/config"
	apperrors "github.com/pdfplatform/pdfplat-go/internal/errors"
	"github.com/pdfplatform/pdfplat-go/internal/notify"
)

// TokenSource supplies the current session bearer token. Implementations
// return nil (or a token with an empty AccessToken) when no session is
// active; requests then go out unauthenticated.
type TokenSource interface {
	Token() *oauth2.Token
}

// Options bundles dependencies for NewClient.
type Options struct {
	Config   config.APIConfig
	Tokens   TokenSource
	Notifier notify.Notifier
	Logger   *slog.Logger
	// Client overrides the HTTP client; mainly for tests. When nil, a client
	// with the configured timeout is used.
	Client *http.Client
}

// Client talks to the PDF Platform API.
type Client struct {
	prefix   string
	tokens   TokenSource
	notifier notify.Notifier
	logger   *slog.Logger
	client   *http.Client
}

// NewClient builds an API client. Callers should pass a sanitized config.
func NewClient(opts Options) (*Client, error) {
	cfg := opts.Config
	cfg.Sanitize()

	if cfg.BaseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}

	hc := opts.Client
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		prefix:   cfg.Prefix(),
		tokens:   opts.Tokens,
		notifier: opts.Notifier,
		logger:   logger,
		client:   hc,
	}, nil
}

// requestSpec describes one HTTP request. Exactly one of body, form, or
// upload may be set.
type requestSpec struct {
	method string
	path   string
	query  url.Values
	body   any
	form   url.Values
	upload *uploadSpec
}

// uploadSpec is a multipart body with a single field named "file".
type uploadSpec struct {
	fileName string
	content  io.Reader
}

// do sends the request and decodes the response payload into out (skipped
// when out is nil). Failures emit one transient notice and return a
// structured error carrying the original cause.
func (c *Client) do(ctx context.Context, spec requestSpec, out any) error {
	req, err := c.buildRequest(ctx, spec)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", spec.method, spec.path, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		mapped := apperrors.MapTransportError(err)
		c.emit(ctx, mapped)
		return mapped
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.handleErrorResponse(ctx, resp)
	}

	return decodeSuccess(resp, out)
}

func (c *Client) buildRequest(ctx context.Context, spec requestSpec) (*http.Request, error) {
	target := c.prefix + spec.path
	if len(spec.query) > 0 {
		target += "?" + spec.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case spec.upload != nil:
		buf, ct, err := encodeUpload(spec.upload)
		if err != nil {
			return nil, err
		}
		body = buf
		contentType = ct
	case spec.form != nil:
		body = strings.NewReader(spec.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case spec.body != nil:
		encoded, err := json.Marshal(spec.body)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, target, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != nil && tok.AccessToken != "" {
			tok.SetAuthHeader(req)
		}
	}

	c.logger.DebugContext(ctx, "api request",
		slog.String("method", spec.method),
		slog.String("path", spec.path),
	)
	return req, nil
}

// encodeUpload packages the file into a multipart body with exactly one
// field named "file".
func encodeUpload(up *uploadSpec) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	part, err := writer.CreateFormFile("file", up.fileName)
	if err != nil {
		return nil, "", fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, up.content); err != nil {
		return nil, "", fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}

	return buf, writer.FormDataContentType(), nil
}

// handleErrorResponse maps a non-2xx response to an AppError and emits the
// transient notice carrying the server-provided message when there is one.
func (c *Client) handleErrorResponse(ctx context.Context, resp *http.Response) error {
	respBody, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()

	detail := extractDetail(respBody)
	mapped := apperrors.MapHTTPStatus(resp.StatusCode, detail)
	c.emit(ctx, mapped)

	if readErr != nil {
		return errors.Join(mapped, fmt.Errorf("read error response: %w", readErr))
	}
	if closeErr != nil {
		return errors.Join(mapped, fmt.Errorf("close response body: %w", closeErr))
	}
	return mapped
}

// extractDetail pulls the server's {"detail": "..."} message out of an error
// body. Non-string detail shapes (validation lists) fall back to empty.
func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}

func decodeSuccess(resp *http.Response, out any) error {
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response payload: %w", err)
	}
	return nil
}

// emit sends the transient notice for a failed call. Notification failures
// are logged and never mask the API error.
func (c *Client) emit(ctx context.Context, err error) {
	if c.notifier == nil {
		return
	}
	if nerr := c.notifier.Notify(ctx, notify.Error(err, errMessage(err))); nerr != nil {
		c.logger.ErrorContext(ctx, "emit notice failed", slog.Any("error", nerr))
	}
}

// errMessage picks the user-facing text for a notice: the structured message
// when present, a generic fallback otherwise.
func errMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Error"
}
