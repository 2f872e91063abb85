package domain

import "math"

const DefaultPageSize = 8

// ListQuery selects one page of a collection.
type ListQuery struct {
	Page       int
	PageSize   int
	FilterText string
	CategoryID *string
}

// Validate checks the query before it reaches the backend
func (q ListQuery) Validate() error {
	if q.Page < 0 {
		return &FieldError{Field: "page", Err: ErrInvalidPage}
	}
	if q.PageSize < 1 {
		return &FieldError{Field: "size", Err: ErrInvalidPageSize}
	}
	return nil
}

// Filtered reports whether the query carries a name filter.
func (q ListQuery) Filtered() bool {
	return q.FilterText != ""
}

// Page is one page of results as returned by the backend.
type Page[T any] struct {
	Items         []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// Normalize fills TotalPages from TotalElements when the backend left it out.
// A page always reports at least one page, even when empty.
func (p *Page[T]) Normalize(pageSize int) {
	if p.Items == nil {
		p.Items = make([]T, 0)
	}
	if p.Size == 0 {
		p.Size = pageSize
	}
	if p.TotalPages == 0 && pageSize > 0 {
		p.TotalPages = int(math.Ceil(float64(p.TotalElements) / float64(pageSize)))
	}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
}
