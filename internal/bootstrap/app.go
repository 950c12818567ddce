package bootstrap

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2"

	"github.com/pdfplatform/pdfplat-go/config"
	"github.com/pdfplatform/pdfplat-go/internal/api"
	"github.com/pdfplatform/pdfplat-go/internal/guard"
	"github.com/pdfplatform/pdfplat-go/internal/notify"
	"github.com/pdfplatform/pdfplat-go/internal/session"
)

// App bundles the client runtime shared by the binaries: the API client,
// the session store, the navigation guard, and the notifier.
type App struct {
	Config   config.AppConfig
	Logger   *slog.Logger
	Client   *api.Client
	Session  *session.Store
	Guard    *guard.Guard
	Notifier notify.Notifier
}

// sessionTokens defers token lookups to the session store. The store itself
// needs the API client for login, so the token source is bound after both
// exist.
type sessionTokens struct {
	store *session.Store
}

func (s *sessionTokens) Token() *oauth2.Token {
	if s.store == nil {
		return nil
	}
	return s.store.Token()
}

// NewApp loads configuration and wires the client runtime.
func NewApp() (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := InitLogger(cfg.IsDev)

	notifier, err := notify.NewTerminal(os.Stderr, logger)
	if err != nil {
		return nil, fmt.Errorf("build notifier: %w", err)
	}

	tokens := &sessionTokens{}
	client, err := api.NewClient(api.Options{
		Config:   cfg.API,
		Tokens:   tokens,
		Notifier: notifier,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build api client: %w", err)
	}

	store, err := session.NewStore(session.Options{
		TokenFile: cfg.Auth.TokenFile,
		API:       client,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build session store: %w", err)
	}
	tokens.store = store

	routeGuard, err := guard.New(guard.Options{
		Session: store,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build guard: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Client:   client,
		Session:  store,
		Guard:    routeGuard,
		Notifier: notifier,
	}, nil
}
