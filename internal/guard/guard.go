// Package guard decides whether a route transition may proceed. It reads the
// session synchronously per transition and lazily fetches the profile the
// first time a transition arrives with a token but no loaded roles.
package guard

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/pdfplatform/pdfplat-go/internal/domain/auth"
	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

// Action is the terminal outcome of one transition attempt.
type Action int

const (
	// Proceed allows the transition.
	Proceed Action = iota
	// RedirectLogin sends the user to the login route, preserving the
	// intended path in the redirect query parameter.
	RedirectLogin
	// RedirectForbidden sends the user to the forbidden-access route.
	RedirectForbidden
	// RedirectDefault sends an authenticated user away from the login page
	// to the default landing route.
	RedirectDefault
)

// String implements fmt.Stringer for logging and test output.
func (a Action) String() string {
	switch a {
	case Proceed:
		return "proceed"
	case RedirectLogin:
		return "redirect-login"
	case RedirectForbidden:
		return "redirect-forbidden"
	case RedirectDefault:
		return "redirect-default"
	default:
		return "unknown"
	}
}

// Decision is the outcome of evaluating one transition.
type Decision struct {
	Action Action
	// Location is the redirect target for the redirect actions, empty for
	// Proceed.
	Location string
}

// Session is the slice of the session store the guard depends on.
type Session interface {
	Authenticated() bool
	RolesLoaded() bool
	Roles() auth.Roles
	FetchProfile(ctx context.Context) (*model.User, error)
	Logout()
}

// Options bundles dependencies for New.
type Options struct {
	Session Session
	// Routes overrides the route table; mainly for tests. Defaults to
	// Routes().
	Routes []Route
	// Logger may be nil; slog.Default is used.
	Logger *slog.Logger
}

// Guard evaluates route transitions against the session.
//
// Concurrent evaluations that need the profile share a single in-flight
// fetch, so rapid parallel navigations cannot race the session store.
type Guard struct {
	session Session
	routes  []Route
	logger  *slog.Logger
	group   singleflight.Group
}

// New builds a Guard.
func New(opts Options) (*Guard, error) {
	if opts.Session == nil {
		return nil, errors.New("guard requires a session")
	}
	routes := opts.Routes
	if routes == nil {
		routes = Routes()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{session: opts.Session, routes: routes, logger: logger}, nil
}

// Evaluate decides the outcome for a transition to path. Exactly one
// terminal outcome is produced per call; a transition that triggers the lazy
// profile fetch is re-evaluated once after the fetch completes.
func (g *Guard) Evaluate(ctx context.Context, path string) Decision {
	decision := g.evaluate(ctx, path, false)
	g.logger.DebugContext(ctx, "route transition",
		slog.String("path", path),
		slog.String("outcome", decision.Action.String()),
	)
	return decision
}

func (g *Guard) evaluate(ctx context.Context, path string, redispatched bool) Decision {
	route := Match(g.routes, path)

	if !g.session.Authenticated() {
		if route.RequiresAuth {
			return loginRedirect(path)
		}
		return Decision{Action: Proceed}
	}

	if route.Pattern == LoginPath {
		// Already authenticated; re-login makes no sense.
		return Decision{Action: RedirectDefault, Location: DefaultPath}
	}

	if g.session.RolesLoaded() {
		if len(route.Roles) == 0 {
			return Decision{Action: Proceed}
		}
		if g.session.Roles().HasAny(route.Roles...) {
			return Decision{Action: Proceed}
		}
		return Decision{Action: RedirectForbidden, Location: ForbiddenPath}
	}

	if redispatched {
		// The fetch completed but the roles are still empty; the session
		// invariant is broken, treat it like a failed fetch.
		g.session.Logout()
		return loginRedirect(path)
	}

	// Token present, roles not loaded yet: fetch the profile once for all
	// concurrent transitions, then re-dispatch this one.
	_, err, _ := g.group.Do("profile", func() (any, error) {
		return g.session.FetchProfile(ctx)
	})
	if err != nil {
		g.session.Logout()
		return loginRedirect(path)
	}

	return g.evaluate(ctx, path, true)
}

// loginRedirect preserves the intended path in the redirect query parameter,
// matching the /login?redirect=<path> contract.
func loginRedirect(path string) Decision {
	return Decision{Action: RedirectLogin, Location: LoginPath + "?redirect=" + path}
}
