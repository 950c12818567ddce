package model

// Default pagination applied when a query leaves Page or Limit unset.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListQuery is the common client-side pagination shape. The server consumes
// skip/limit; the client works in pages and converts at the call boundary.
type ListQuery struct {
	Page  int
	Limit int
}

// Skip returns the server-side offset for the query: (page-1) * limit.
func (q ListQuery) Skip() int {
	return (q.page() - 1) * q.PageSize()
}

// PageSize returns the effective limit for the query.
func (q ListQuery) PageSize() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}

func (q ListQuery) page() int {
	if q.Page <= 0 {
		return DefaultPage
	}
	return q.Page
}

// DocumentQuery filters the public document listing.
type DocumentQuery struct {
	ListQuery
	CategoryID *int64
	Status     string
}
