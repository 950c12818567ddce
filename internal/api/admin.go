package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

// DashboardStats returns the admin dashboard summary.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/admin/stats",
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListUsers lists accounts for the admin user table.
func (c *Client) ListUsers(ctx context.Context, query model.ListQuery) ([]model.User, error) {
	var users []model.User
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/admin/users",
		query:  pageValues(query),
	}, &users)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser updates an account.
func (c *Client) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	var user model.User
	err := c.do(ctx, requestSpec{
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/users/%d", id),
		body:   req,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAdminDocuments lists all documents regardless of status.
func (c *Client) ListAdminDocuments(ctx context.Context, query model.ListQuery) ([]model.Document, error) {
	var docs []model.Document
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/admin/documents",
		query:  pageValues(query),
	}, &docs)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// UpdateAdminDocument updates a document.
func (c *Client) UpdateAdminDocument(ctx context.Context, id int64, req model.UpdateDocumentRequest) (*model.Document, error) {
	var doc model.Document
	err := c.do(ctx, requestSpec{
		method: http.MethodPut,
		path:   fmt.Sprintf("/admin/documents/%d", id),
		body:   req,
	}, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteAdminDocument deletes a document and returns the removed record.
func (c *Client) DeleteAdminDocument(ctx context.Context, id int64) (*model.Document, error) {
	var doc model.Document
	err := c.do(ctx, requestSpec{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/admin/documents/%d", id),
	}, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// AnalyzeDocument triggers server-side analysis (page count, summary,
// screenshots) for a document.
func (c *Client) AnalyzeDocument(ctx context.Context, id int64) (*model.Document, error) {
	var doc model.Document
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   fmt.Sprintf("/admin/documents/%d/analyze", id),
	}, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ShareDocument issues a secure download link for a document.
func (c *Client) ShareDocument(ctx context.Context, id int64, req model.ShareRequest) (*model.ShareLink, error) {
	var link model.ShareLink
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   fmt.Sprintf("/admin/documents/%d/secure-link", id),
		body:   req,
	}, &link)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListSettings lists system settings.
func (c *Client) ListSettings(ctx context.Context) ([]model.SystemSetting, error) {
	var settings []model.SystemSetting
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/admin/settings",
	}, &settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings applies a batch of setting updates and returns the full
// settings list.
func (c *Client) UpdateSettings(ctx context.Context, updates []model.SystemSettingUpdate) ([]model.SystemSetting, error) {
	var settings []model.SystemSetting
	err := c.do(ctx, requestSpec{
		method: http.MethodPut,
		path:   "/admin/settings",
		body:   updates,
	}, &settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func pageValues(query model.ListQuery) url.Values {
	values := url.Values{}
	values.Set("skip", strconv.Itoa(query.Skip()))
	values.Set("limit", strconv.Itoa(query.PageSize()))
	return values
}
