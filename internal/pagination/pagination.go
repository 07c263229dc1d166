// Package pagination converts page-based query parameters into query
// offsets and response envelopes shared by every list endpoint.
package pagination

import (
	"errors"
	"strconv"
)

const (
	// DefaultItemsPerPage is used when the caller does not specify a
	// page size.
	DefaultItemsPerPage = 100
	// MaxItemsPerPage bounds how many items a single page may carry.
	MaxItemsPerPage = 100
)

var (
	// ErrInvalidPage is returned for a page number below 1.
	ErrInvalidPage = errors.New("page must be 1 or greater")
	// ErrInvalidPageSize is returned for an items_per_page outside
	// [1, MaxItemsPerPage]. Out-of-range values are rejected, not
	// clamped.
	ErrInvalidPageSize = errors.New("items_per_page must be between 1 and 100")
)

// Params is the canonical internal pagination form: a 1-based page
// plus a page size.
type Params struct {
	Page         int
	ItemsPerPage int
}

// New validates a page/items_per_page pair.
func New(page, itemsPerPage int) (Params, error) {
	if page < 1 {
		return Params{}, ErrInvalidPage
	}
	if itemsPerPage < 1 || itemsPerPage > MaxItemsPerPage {
		return Params{}, ErrInvalidPageSize
	}
	return Params{Page: page, ItemsPerPage: itemsPerPage}, nil
}

// Parse builds Params from raw query-string values, applying defaults
// for missing values.
func Parse(pageStr, itemsPerPageStr string) (Params, error) {
	page := 1
	if pageStr != "" {
		v, err := strconv.Atoi(pageStr)
		if err != nil {
			return Params{}, ErrInvalidPage
		}
		page = v
	}

	itemsPerPage := DefaultItemsPerPage
	if itemsPerPageStr != "" {
		v, err := strconv.Atoi(itemsPerPageStr)
		if err != nil {
			return Params{}, ErrInvalidPageSize
		}
		itemsPerPage = v
	}

	return New(page, itemsPerPage)
}

// Offset returns the 0-based row offset for the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.ItemsPerPage
}

// Limit returns the maximum number of rows for the page.
func (p Params) Limit() int {
	return p.ItemsPerPage
}

// Meta is the pagination block of a list response.
type Meta struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

// Envelope is the uniform shape of every paginated response.
type Envelope struct {
	Items      any  `json:"items"`
	Pagination Meta `json:"pagination"`
}

// NewEnvelope wraps a page of items with its pagination metadata.
// total_pages is ceil(total/items_per_page), which is 0 only when the
// collection is empty.
func NewEnvelope(items any, total int64, p Params) Envelope {
	totalPages := int((total + int64(p.ItemsPerPage) - 1) / int64(p.ItemsPerPage))
	return Envelope{
		Items: items,
		Pagination: Meta{
			CurrentPage:  p.Page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: p.ItemsPerPage,
		},
	}
}
