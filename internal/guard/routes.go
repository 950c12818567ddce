package guard

import (
	"strings"

	"github.com/pdfplatform/pdfplat-go/internal/domain/auth"
)

// Well-known route paths.
const (
	DefaultPath   = "/"
	LoginPath     = "/login"
	ForbiddenPath = "/403"
)

// Route describes one entry of the client route surface. Pattern segments
// starting with ':' match any single path segment. Subtree routes also match
// every descendant path.
type Route struct {
	Name         string
	Pattern      string
	RequiresAuth bool
	Roles        []auth.Role
	Subtree      bool
}

// Routes returns the client route table.
func Routes() []Route {
	return []Route{
		{Name: "home", Pattern: "/", RequiresAuth: true},
		{Name: "document-detail", Pattern: "/document/:id", RequiresAuth: true},
		{Name: "document-viewer", Pattern: "/document/:id/read", RequiresAuth: true},
		{Name: "membership", Pattern: "/membership", RequiresAuth: true},
		{Name: "login", Pattern: "/login"},
		{Name: "download-verify", Pattern: "/download-verify/:token"},
		{Name: "admin", Pattern: "/admin", RequiresAuth: true, Roles: auth.AdminRoles(), Subtree: true},
		{Name: "403", Pattern: "/403"},
	}
}

// Match resolves path against the table. Unknown paths resolve to an
// anonymous public route with no access requirements.
func Match(routes []Route, path string) Route {
	path = normalize(path)
	for _, route := range routes {
		if matches(route, path) {
			return route
		}
	}
	return Route{Pattern: path}
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

func matches(route Route, path string) bool {
	if route.Subtree {
		if path == route.Pattern || strings.HasPrefix(path, route.Pattern+"/") {
			return true
		}
		return false
	}

	want := segments(route.Pattern)
	got := segments(path)
	if len(want) != len(got) {
		return false
	}
	for i, seg := range want {
		if strings.HasPrefix(seg, ":") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}

func segments(path string) []string {
	return strings.Split(strings.Trim(path, "/"), "/")
}
