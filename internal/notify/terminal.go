package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Terminal presents transient notices on a terminal stream (normally stderr).
// It is the CLI stand-in for the toast layer of a browser client.
type Terminal struct {
	mu     sync.Mutex
	out    io.Writer
	logger *slog.Logger
}

// NewTerminal builds a Terminal notifier writing to out.
// A nil logger disables the structured log echo of each notice.
func NewTerminal(out io.Writer, logger *slog.Logger) (*Terminal, error) {
	if out == nil {
		return nil, errors.New("terminal notifier output is required")
	}
	return &Terminal{out: out, logger: logger}, nil
}

// Notify implements the Notifier interface.
func (t *Terminal) Notify(ctx context.Context, notice Notice) error {
	severity := strings.TrimSpace(notice.Severity)
	if severity == "" {
		severity = SeverityInfo
	}

	t.mu.Lock()
	_, err := fmt.Fprintf(t.out, "[%s] %s\n", severity, notice.Message)
	t.mu.Unlock()
	if err != nil {
		return fmt.Errorf("write notice: %w", err)
	}

	if t.logger != nil {
		t.logger.InfoContext(ctx, "notice",
			slog.String("severity", severity),
			slog.String("message", notice.Message),
			slog.String("error_class", notice.ErrorClass),
		)
	}
	return nil
}
