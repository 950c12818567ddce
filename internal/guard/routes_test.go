package guard

import (
	"testing"

	"github.com/pdfplatform/pdfplat-go/internal/domain/auth"
)

func TestMatch(t *testing.T) {
	routes := Routes()

	tests := []struct {
		name         string
		path         string
		wantName     string
		wantAuth     bool
		wantRoleGate bool
	}{
		{"home", "/", "home", true, false},
		{"document detail", "/document/42", "document-detail", true, false},
		{"document viewer", "/document/42/read", "document-viewer", true, false},
		{"membership", "/membership", "membership", true, false},
		{"login", "/login", "login", false, false},
		{"download verify", "/download-verify/tok-xyz", "download-verify", false, false},
		{"forbidden page", "/403", "403", false, false},
		{"admin root", "/admin", "admin", true, true},
		{"admin child", "/admin/users", "admin", true, true},
		{"admin nested", "/admin/documents/5/edit", "admin", true, true},
		{"trailing slash normalized", "/membership/", "membership", true, false},
		{"missing leading slash normalized", "membership", "membership", true, false},
		{"unknown path is public", "/pricing", "", false, false},
		{"document missing id does not match", "/document", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := Match(routes, tt.path)
			if route.Name != tt.wantName {
				t.Fatalf("Match(%q).Name = %q, want %q", tt.path, route.Name, tt.wantName)
			}
			if route.RequiresAuth != tt.wantAuth {
				t.Errorf("Match(%q).RequiresAuth = %v, want %v", tt.path, route.RequiresAuth, tt.wantAuth)
			}
			if gated := len(route.Roles) > 0; gated != tt.wantRoleGate {
				t.Errorf("Match(%q) role gate = %v, want %v", tt.path, gated, tt.wantRoleGate)
			}
		})
	}
}

func TestRoutes_AdminGate(t *testing.T) {
	route := Match(Routes(), "/admin/users")
	want := auth.AdminRoles()
	if len(route.Roles) != len(want) {
		t.Fatalf("admin roles = %v, want %v", route.Roles, want)
	}
	for i := range want {
		if route.Roles[i] != want[i] {
			t.Fatalf("admin roles = %v, want %v", route.Roles, want)
		}
	}
}
