// Package session owns the client-side authentication state: the bearer
// token, the display profile, and the role set. The token survives process
// restarts through a token file; everything else is re-fetched per run.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/oauth2"

	"github.com/pdfplatform/pdfplat-go/internal/domain/auth"
	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
	apperrors "github.com/pdfplatform/pdfplat-go/internal/errors"
)

// AuthAPI is the slice of the API client the store depends on.
type AuthAPI interface {
	Login(ctx context.Context, creds model.Credentials) (*oauth2.Token, error)
	Profile(ctx context.Context) (*model.User, error)
}

// Options bundles dependencies for NewStore.
type Options struct {
	// TokenFile is where the token persists between runs.
	TokenFile string
	// API performs the login and profile calls.
	API AuthAPI
	// Logger may be nil; slog.Default is used.
	Logger *slog.Logger
}

// Store holds the current session. All accessors are safe for concurrent
// use; Login/FetchProfile/Logout serialize on the internal mutex.
type Store struct {
	mu     sync.RWMutex
	token  *oauth2.Token
	name   string
	avatar string
	roles  auth.Roles

	tokenFile string
	api       AuthAPI
	logger    *slog.Logger
}

// NewStore builds a Store and initializes the token from the token file when
// one was persisted by an earlier run. Name and roles start empty; they are
// populated by FetchProfile.
func NewStore(opts Options) (*Store, error) {
	if opts.API == nil {
		return nil, errors.New("session store requires an auth api")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		tokenFile: opts.TokenFile,
		api:       opts.API,
		logger:    logger,
	}

	token, err := readTokenFile(opts.TokenFile)
	if err != nil {
		return nil, err
	}
	if token != "" {
		s.token = &oauth2.Token{AccessToken: token, TokenType: "bearer"}
	}
	return s, nil
}

// Token implements the api.TokenSource contract. It returns nil when no
// session is active.
func (s *Store) Token() *oauth2.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != nil && s.token.AccessToken != ""
}

// Name returns the display name from the last profile fetch.
func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Avatar returns the avatar reference from the last profile fetch.
func (s *Store) Avatar() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.avatar
}

// Roles returns a copy of the current role set. It is empty exactly when no
// profile has been fetched since the last logout or token clear.
func (s *Store) Roles() auth.Roles {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(auth.Roles(nil), s.roles...)
}

// RolesLoaded reports whether a profile fetch has populated the role set.
func (s *Store) RolesLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roles.Loaded()
}

// setToken stores and persists the token. Persistence failures are logged,
// not fatal: the in-memory session still works for this run.
func (s *Store) setToken(token *oauth2.Token) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := writeTokenFile(s.tokenFile, token.AccessToken); err != nil {
		s.logger.Error("persist token failed", slog.Any("error", err))
	}
}

// Login authenticates and stores the returned token. Login failures
// propagate untouched.
func (s *Store) Login(ctx context.Context, creds model.Credentials) error {
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return err
	}
	s.setToken(token)
	return nil
}

// FetchProfile loads the current user and updates name, avatar, and roles.
// The role set is a single-element set holding the server-assigned role.
func (s *Store) FetchProfile(ctx context.Context) (*model.User, error) {
	user, err := s.api.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Username == "" {
		return nil, apperrors.Profile("verification failed, please log in again")
	}

	s.mu.Lock()
	s.name = user.Username
	s.roles = auth.Roles{user.Role}
	s.mu.Unlock()

	return user, nil
}

// Logout clears the session and the persisted token. Purely local, no
// network call, and idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = nil
	s.name = ""
	s.avatar = ""
	s.roles = nil
	s.mu.Unlock()

	if err := removeTokenFile(s.tokenFile); err != nil {
		s.logger.Error("remove token file failed", slog.Any("error", err))
	}
}
