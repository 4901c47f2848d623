package models

// Pagination defaults, matching the public API contract.
const (
	DefaultPage     = 0
	DefaultPageSize = 20
	DefaultSortBy   = "createdAt"
	DefaultSortDir  = "DESC"
)

// PageRequest describes the requested slice and ordering of a listing.
// Page is zero-based.
type PageRequest struct {
	Page    int    // Zero-based page index
	Size    int    // Page size
	SortBy  string // Sort field in API form, e.g. createdAt
	SortDir string // ASC or DESC, case-insensitive
}

// Normalize clamps invalid values to the defaults.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.SortDir == "" {
		p.SortDir = DefaultSortDir
	}
	return p
}

// Offset returns the row offset for the page.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one page of results with the page metadata the frontend
// depends on.
type Page[T any] struct {
	Content       []T   `json:"content"`       // Items on this page
	TotalElements int64 `json:"totalElements"` // Total matching rows
	TotalPages    int64 `json:"totalPages"`    // Ceil(totalElements / size)
	Number        int   `json:"number"`        // Zero-based page index
	Size          int   `json:"size"`          // Requested page size
}

// NewPage assembles page metadata around content.
func NewPage[T any](content []T, total int64, req PageRequest) Page[T] {
	totalPages := total / int64(req.Size)
	if total%int64(req.Size) != 0 {
		totalPages++
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        req.Page,
		Size:          req.Size,
	}
}
