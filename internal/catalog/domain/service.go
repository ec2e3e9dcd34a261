package domain

import (
	"context"
	"strings"
	"time"
)

// Service is the catalog use-case surface consumed by the HTTP layer.
type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	Patch(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req ListRequest) (*ProductPage, error)
	Stats(ctx context.Context) (*Stats, error)
	Clear(ctx context.Context) error
}

// Filters narrows a listing. Name matches case-insensitively as a
// substring; price bounds are inclusive.
type Filters struct {
	Name     string   `json:"name,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

func (f Filters) IsZero() bool {
	return f.Name == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// Matches reports whether the product passes every set filter.
func (f Filters) Matches(p *Product) bool {
	if f.Name != "" && !containsFold(p.Name, f.Name) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// ListRequest combines pagination and filters for a listing call.
type ListRequest struct {
	Page  int
	Limit int
	Filters
}

// PageMeta is the pagination metadata echoed with every listing.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ProductPage is one page of filtered results.
type ProductPage struct {
	Items      []Product `json:"items"`
	Pagination PageMeta  `json:"pagination"`
	Filters    Filters   `json:"filters"`
}

// Stats reports the approximate live product count.
type Stats struct {
	TotalProducts int64     `json:"totalProducts"`
	Timestamp     time.Time `json:"timestamp"`
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
