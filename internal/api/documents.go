package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

// ListDocuments lists documents. Pagination is computed client-side:
// skip = (page-1) * limit.
func (c *Client) ListDocuments(ctx context.Context, query model.DocumentQuery) ([]model.Document, error) {
	values := url.Values{}
	values.Set("skip", strconv.Itoa(query.Skip()))
	values.Set("limit", strconv.Itoa(query.PageSize()))
	if query.CategoryID != nil {
		values.Set("category_id", strconv.FormatInt(*query.CategoryID, 10))
	}
	if query.Status != "" {
		values.Set("status", query.Status)
	}

	var docs []model.Document
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/documents/",
		query:  values,
	}, &docs)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument fetches a single document snapshot.
func (c *Client) GetDocument(ctx context.Context, id int64) (*model.Document, error) {
	var doc model.Document
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   fmt.Sprintf("/documents/%d", id),
	}, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListCategories lists all categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/documents/categories",
	}, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	var category model.Category
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/documents/categories",
		body:   req,
	}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id int64, req model.CategoryRequest) (*model.Category, error) {
	var category model.Category
	err := c.do(ctx, requestSpec{
		method: http.MethodPut,
		path:   fmt.Sprintf("/documents/categories/%d", id),
		body:   req,
	}, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, requestSpec{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/documents/categories/%d", id),
	}, nil)
}

// UploadFile uploads a document file as a multipart body with a single
// "file" field and returns the stored file metadata.
func (c *Client) UploadFile(ctx context.Context, fileName string, content io.Reader) (*model.UploadResult, error) {
	var result model.UploadResult
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/documents/upload",
		upload: &uploadSpec{fileName: fileName, content: content},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateDocument registers an uploaded file as a document.
func (c *Client) CreateDocument(ctx context.Context, req model.CreateDocumentRequest) (*model.Document, error) {
	var doc model.Document
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/documents/",
		body:   req,
	}, &doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DownloadDocument requests a download. The server debits the membership
// quota and returns the file URL.
func (c *Client) DownloadDocument(ctx context.Context, id int64) (*model.DownloadURL, error) {
	var result model.DownloadURL
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   fmt.Sprintf("/documents/%d/download", id),
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckDownloadToken describes a secure link without releasing the file.
func (c *Client) CheckDownloadToken(ctx context.Context, token string) (*model.DownloadTokenStatus, error) {
	var status model.DownloadTokenStatus
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/documents/download-token/" + url.PathEscape(token),
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// UseDownloadToken validates the link password and returns the file URL.
func (c *Client) UseDownloadToken(ctx context.Context, token, password string) (*model.DownloadURL, error) {
	var result model.DownloadURL
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/documents/download-token/" + url.PathEscape(token),
		body:   map[string]string{"password": password},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
