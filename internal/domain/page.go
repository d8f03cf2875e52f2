package domain

import (
	"fmt"
	"math"
	"strings"
)

// SortDirection orders a paged listing.
type SortDirection string

// Supported sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection returns SortAsc when s equals "asc" ignoring case.
// Every other value, including the empty string, yields SortDesc.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// PostSortFields lists the post fields a listing may be sorted by.
var PostSortFields = []string{"id", "title", "description", "content"}

// PageRequest selects one page of an ordered listing. PageNo is zero-based.
type PageRequest struct {
	PageNo   int
	PageSize int
	SortBy   string
	SortDir  SortDirection
}

// Validate checks the request against the allowed sort fields. maxPageSize caps
// PageSize when positive; zero leaves it unbounded.
func (r PageRequest) Validate(sortFields []string, maxPageSize int) error {
	if r.PageNo < 0 {
		return fmt.Errorf("%w: pageNo must not be negative", ErrInvalidPage)
	}
	if r.PageSize < 1 {
		return fmt.Errorf("%w: pageSize must be at least 1", ErrInvalidPage)
	}
	if maxPageSize > 0 && r.PageSize > maxPageSize {
		return fmt.Errorf("%w: pageSize must be at most %d", ErrInvalidPage, maxPageSize)
	}
	for _, f := range sortFields {
		if f == r.SortBy {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidSortField, r.SortBy)
}

// Offset is the number of rows skipped before this page. It saturates at
// math.MaxInt64, which still selects an empty page.
func (r PageRequest) Offset() int64 {
	if r.PageNo <= 0 || r.PageSize <= 0 {
		return 0
	}
	if int64(r.PageNo) > math.MaxInt64/int64(r.PageSize) {
		return math.MaxInt64
	}
	return int64(r.PageNo) * int64(r.PageSize)
}

// Page is a bounded, ordered slice of a larger result set plus pagination metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNo        int   `json:"pageNo"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPage assembles a page from its content and the total number of matching rows.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	var totalPages int64
	if req.PageSize > 0 && total > 0 {
		size := int64(req.PageSize)
		totalPages = total / size
		if total%size != 0 {
			totalPages++
		}
	}

	return Page[T]{
		Content:       content,
		PageNo:        req.PageNo,
		PageSize:      req.PageSize,
		TotalElements: total,
		TotalPages:    int(totalPages),
		Last:          int64(req.PageNo) >= totalPages-1,
	}
}
