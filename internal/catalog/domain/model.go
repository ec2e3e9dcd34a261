package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrIncompleteRecord marks a stored hash that is empty or missing required
// fields. Callers treat it as absence rather than a storage fault.
var ErrIncompleteRecord = errors.New("incomplete product record")

const (
	NameMinLen        = 2
	NameMaxLen        = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 500
	PriceMax          = 999999.99
	QtyMax            = 999999
)

// Product is the catalog aggregate. The id is generated once at creation and
// never mutated; updatedAt equals createdAt only immediately after creation.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Qty         int64     `json:"qty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateProductRequest carries the fields of a create payload. Pointers
// distinguish absent fields from zero values; validation runs before New.
type CreateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Qty         *float64 `json:"qty"`
}

// UpdateProductRequest carries the mutable fields of an update or patch
// payload. Full update and partial patch share this shape; the full-update
// schema simply requires every field to be present.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Qty         *float64 `json:"qty"`
}

// New constructs a Product from a validated create request. Construction
// never fails: strings are trimmed, the price is rounded half-up to two
// decimals and a fractional qty is truncated toward zero.
func New(req CreateProductRequest, now time.Time) *Product {
	now = now.UTC()
	p := &Product{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		p.Price = RoundPrice(*req.Price)
	}
	if req.Qty != nil {
		p.Qty = int64(*req.Qty)
	}
	return p
}

// Apply mutates only the fields present in the request and refreshes
// updatedAt. Absent fields keep their prior values exactly.
func (p *Product) Apply(req UpdateProductRequest, now time.Time) {
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		p.Price = RoundPrice(*req.Price)
	}
	if req.Qty != nil {
		p.Qty = int64(*req.Qty)
	}
	p.UpdatedAt = now.UTC()
}

// RoundPrice rounds half-up to two decimal places.
func RoundPrice(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// PriceString renders a price with exactly two fraction digits.
func PriceString(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Fields serializes the product for a string-valued hash store.
func (p *Product) Fields() map[string]string {
	return map[string]string{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       PriceString(p.Price),
		"qty":         strconv.FormatInt(p.Qty, 10),
		"createdAt":   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updatedAt":   p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// FromFields reconstructs a product from its stored hash. Numeric and time
// fields are parsed explicitly; a parse failure is reported as an error, not
// a silent zero. Callers surface it as a storage failure.
func FromFields(fields map[string]string) (*Product, error) {
	if len(fields) == 0 {
		return nil, ErrIncompleteRecord
	}
	for _, required := range []string{"id", "name", "description", "price", "qty", "createdAt", "updatedAt"} {
		if fields[required] == "" {
			return nil, fmt.Errorf("%w: missing %q", ErrIncompleteRecord, required)
		}
	}

	price, err := decimal.NewFromString(fields["price"])
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", fields["price"], err)
	}
	qty, err := strconv.ParseInt(fields["qty"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse qty %q: %w", fields["qty"], err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["createdAt"])
	if err != nil {
		return nil, fmt.Errorf("parse createdAt %q: %w", fields["createdAt"], err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updatedAt"])
	if err != nil {
		return nil, fmt.Errorf("parse updatedAt %q: %w", fields["updatedAt"], err)
	}

	return &Product{
		ID:          fields["id"],
		Name:        fields["name"],
		Description: fields["description"],
		Price:       price.InexactFloat64(),
		Qty:         qty,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   updatedAt.UTC(),
	}, nil
}
