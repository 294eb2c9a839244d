package models

import "math"

const (
	// DefaultPage is used when the page query parameter is absent.
	DefaultPage int64 = 1
	// DefaultPageSize is used when the pageSize query parameter is absent.
	DefaultPageSize int64 = 10
)

// Page selects a window of a listing. Size has no upper bound.
type Page struct {
	Number int64
	Size   int64
}

// NewPage returns a Page, replacing non-positive values with defaults.
func NewPage(number, size int64) Page {
	if number < 1 {
		number = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}

	return Page{Number: number, Size: size}
}

// Skip is the number of documents preceding the page. It saturates at
// math.MaxInt64 instead of overflowing.
func (p Page) Skip() int64 {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt64/p.Size {
		return math.MaxInt64
	}
	return (p.Number - 1) * p.Size
}

// Limit is the maximum number of documents on the page.
func (p Page) Limit() int64 {
	return p.Size
}

// TotalPages returns ceil(total/size).
func TotalPages(total, size int64) int64 {
	if size <= 0 {
		return 0
	}

	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// UserPage is the envelope of paginated user listings.
type UserPage struct {
	TotalItems int64  `json:"totalItems"`
	Page       int64  `json:"page"`
	PageSize   int64  `json:"pageSize"`
	TotalPages int64  `json:"totalPages"`
	Items      []User `json:"items"`
}

// BlogPage is the envelope of paginated blog listings and searches.
type BlogPage struct {
	TotalCount int64          `json:"totalCount"`
	Page       int64          `json:"page"`
	PageSize   int64          `json:"pageSize"`
	Blogs      []BlogResponse `json:"blogs"`
}

// CommentPage is the envelope of paginated comment listings.
type CommentPage struct {
	TotalCount int64     `json:"totalCount"`
	Page       int64     `json:"page"`
	PageSize   int64     `json:"pageSize"`
	Comments   []Comment `json:"comments"`
}
