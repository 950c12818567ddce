package model

import "time"

// DocumentStatus values returned by the server.
const (
	DocumentStatusDraft     = "draft"
	DocumentStatusPublished = "published"
	DocumentStatusArchived  = "archived"
)

// Category groups documents. ParentID links to a parent category; the tree
// shape is server-enforced, the client treats it as a flat list with links.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ParentID    *int64    `json:"parent_id,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryRequest is the create/update payload for a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	Icon        string `json:"icon,omitempty"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

// Tag labels a document.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Document is an immutable snapshot per fetch; edits go through update calls
// followed by a re-fetch.
type Document struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	CategoryID    *int64     `json:"category_id,omitempty"`
	Category      *Category  `json:"category,omitempty"`
	FilePath      string     `json:"file_path"`
	FileName      string     `json:"file_name"`
	FileSize      int64      `json:"file_size"`
	PageCount     *int       `json:"page_count,omitempty"`
	ViewCount     int64      `json:"view_count"`
	DownloadCount int64      `json:"download_count"`
	Status        string     `json:"status"`
	CreatedBy     int64      `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CoverImage    string     `json:"cover_image,omitempty"`
	Screenshots   []string   `json:"screenshots,omitempty"`
	Tags          []Tag      `json:"tags,omitempty"`
}

// CreateDocumentRequest registers an uploaded file as a document.
type CreateDocumentRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Status      string  `json:"status,omitempty"`
	FilePath    string  `json:"file_path"`
	FileName    string  `json:"file_name"`
	FileSize    int64   `json:"file_size"`
	PageCount   *int    `json:"page_count,omitempty"`
	CoverImage  string  `json:"cover_image,omitempty"`
	TagIDs      []int64 `json:"tag_ids,omitempty"`
}

// UpdateDocumentRequest is the admin document update payload.
type UpdateDocumentRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	AISummary   *string `json:"ai_summary,omitempty"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	Status      *string `json:"status,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
	TagIDs      []int64 `json:"tag_ids,omitempty"`
	// Screenshots is a JSON-encoded string list, matching the server contract.
	Screenshots *string `json:"screenshots,omitempty"`
}

// UploadResult is returned by the file upload endpoint.
type UploadResult struct {
	FilePath    string `json:"file_path"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	ContentType string `json:"content_type"`
}

// DownloadURL is returned by the document download endpoint.
type DownloadURL struct {
	URL string `json:"url"`
}
