package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfplatform/pdfplat-go/internal/domain/auth"
	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

func TestClient_DashboardStats(t *testing.T) {
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/stats", r.URL.Path)
		w.Write([]byte(`{"user_count": 120, "document_count": 45, "download_count": 900, "revenue": 0}`))
	}))

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.UserCount)
	assert.Equal(t, int64(900), stats.DownloadCount)
}

func TestClient_ListUsers_Pagination(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[{"id": 1, "username": "alice", "role": "admin", "status": "active"}]`))
	}))

	users, err := client.ListUsers(context.Background(), model.ListQuery{Page: 2, Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, []string{"50"}, gotQuery["skip"])
	assert.Equal(t, []string{"50"}, gotQuery["limit"])
	require.Len(t, users, 1)
	assert.Equal(t, auth.RoleAdmin, users[0].Role)
}

func TestClient_UpdateUser_PartialPayload(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/v1/admin/users/3", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"id": 3, "username": "bob", "role": "vip", "status": "active"}`))
	}))

	role := auth.RoleVIP
	user, err := client.UpdateUser(context.Background(), 3, model.UpdateUserRequest{Role: &role})
	require.NoError(t, err)

	// Unset fields stay out of the payload so the server only touches role.
	assert.JSONEq(t, `{"role": "vip"}`, gotBody)
	assert.Equal(t, auth.RoleVIP, user.Role)
}

func TestClient_AdminDocumentLifecycle(t *testing.T) {
	var calls []string
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{"id": 8, "title": "T", "file_path": "p", "file_name": "n", "file_size": 1, "status": "draft"}`))
	}))

	ctx := context.Background()
	title := "T"
	_, err := client.UpdateAdminDocument(ctx, 8, model.UpdateDocumentRequest{Title: &title})
	require.NoError(t, err)
	_, err = client.AnalyzeDocument(ctx, 8)
	require.NoError(t, err)
	_, err = client.DeleteAdminDocument(ctx, 8)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"PUT /api/v1/admin/documents/8",
		"POST /api/v1/admin/documents/8/analyze",
		"DELETE /api/v1/admin/documents/8",
	}, calls)
}

func TestClient_ShareDocument(t *testing.T) {
	var gotBody string
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/documents/8/secure-link", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"token": "tok-xyz", "url": "/download-verify/tok-xyz", "password": "a1b2c3", "expires_at": "2026-09-01T12:00:00Z"}`))
	}))

	link, err := client.ShareDocument(context.Background(), 8, model.ShareRequest{
		ExpiresInMinutes: 60,
		MaxDownloads:     1,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"expires_in_minutes": 60, "max_downloads": 1}`, gotBody)
	assert.Equal(t, "/download-verify/tok-xyz", link.URL)
	assert.Equal(t, "a1b2c3", link.Password)
}

func TestClient_Settings(t *testing.T) {
	client, _ := newTestClient(t, "tok", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/settings", r.URL.Path)
		w.Write([]byte(`[{"key": "site_name", "value": "PDF Platform", "updated_at": "2026-09-01T12:00:00Z"}]`))
	}))

	ctx := context.Background()
	settings, err := client.ListSettings(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "site_name", settings[0].Key)

	value := "Docs"
	settings, err = client.UpdateSettings(ctx, []model.SystemSettingUpdate{{Key: "site_name", Value: &value}})
	require.NoError(t, err)
	require.Len(t, settings, 1)
}
