package domain

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidateCreate checks a create payload against the full field rules.
// It returns a validation Error carrying ordered field-level detail, or nil.
func ValidateCreate(req CreateProductRequest) error {
	var fields []FieldError
	fields = append(fields, checkName(req.Name, true)...)
	fields = append(fields, checkDescription(req.Description, true)...)
	fields = append(fields, checkPrice("price", req.Price, true)...)
	fields = append(fields, checkQty(req.Qty, true)...)
	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

// ValidateUpdate checks an update payload. With partial=false every field is
// required (full replace); with partial=true fields are optional but at
// least one must be present.
func ValidateUpdate(req UpdateProductRequest, partial bool) error {
	if partial && req.Name == nil && req.Description == nil && req.Price == nil && req.Qty == nil {
		return NewValidationError(FieldError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
	}

	required := !partial
	var fields []FieldError
	fields = append(fields, checkName(req.Name, required)...)
	fields = append(fields, checkDescription(req.Description, required)...)
	fields = append(fields, checkPrice("price", req.Price, required)...)
	fields = append(fields, checkQty(req.Qty, required)...)
	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

// ValidateProductID checks the textual UUIDv4 form of a product id.
func ValidateProductID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.Version() != 4 {
		return NewValidationError(FieldError{
			Field:   "id",
			Message: "id must be a valid UUID v4",
			Value:   id,
		})
	}
	return nil
}

// ValidateList checks pagination and filter parameters, including the
// cross-field rule that minPrice must be below maxPrice.
func ValidateList(req ListRequest) error {
	var fields []FieldError

	if req.Page < 1 {
		fields = append(fields, FieldError{
			Field:   "page",
			Message: "page must be greater than or equal to 1",
			Value:   req.Page,
		})
	}
	if req.Limit < 1 || req.Limit > 100 {
		fields = append(fields, FieldError{
			Field:   "limit",
			Message: "limit must be between 1 and 100",
			Value:   req.Limit,
		})
	}

	fields = append(fields, checkPrice("minPrice", req.MinPrice, false)...)
	fields = append(fields, checkPrice("maxPrice", req.MaxPrice, false)...)

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice >= *req.MaxPrice {
		fields = append(fields, FieldError{
			Field:   "minPrice",
			Message: "minPrice must be less than maxPrice",
			Value:   *req.MinPrice,
		})
	}

	if len(fields) > 0 {
		return NewValidationError(fields...)
	}
	return nil
}

func checkName(value *string, required bool) []FieldError {
	if value == nil {
		if required {
			return []FieldError{{Field: "name", Message: "name is required"}}
		}
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if utf8.RuneCountInString(trimmed) < NameMinLen {
		return []FieldError{{
			Field:   "name",
			Message: fmt.Sprintf("name must be at least %d characters", NameMinLen),
			Value:   *value,
		}}
	}
	if utf8.RuneCountInString(trimmed) > NameMaxLen {
		return []FieldError{{
			Field:   "name",
			Message: fmt.Sprintf("name must not exceed %d characters", NameMaxLen),
			Value:   *value,
		}}
	}
	return nil
}

func checkDescription(value *string, required bool) []FieldError {
	if value == nil {
		if required {
			return []FieldError{{Field: "description", Message: "description is required"}}
		}
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if utf8.RuneCountInString(trimmed) < DescriptionMinLen {
		return []FieldError{{
			Field:   "description",
			Message: fmt.Sprintf("description must be at least %d characters", DescriptionMinLen),
			Value:   *value,
		}}
	}
	if utf8.RuneCountInString(trimmed) > DescriptionMaxLen {
		return []FieldError{{
			Field:   "description",
			Message: fmt.Sprintf("description must not exceed %d characters", DescriptionMaxLen),
			Value:   *value,
		}}
	}
	return nil
}

func checkPrice(field string, value *float64, required bool) []FieldError {
	if value == nil {
		if required {
			return []FieldError{{Field: field, Message: field + " is required"}}
		}
		return nil
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []FieldError{{Field: field, Message: field + " must be a number", Value: v}}
	}
	if v <= 0 {
		return []FieldError{{Field: field, Message: field + " must be greater than 0", Value: v}}
	}
	if v > PriceMax {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("%s must not exceed %.2f", field, PriceMax),
			Value:   v,
		}}
	}
	if d := decimal.NewFromFloat(v); d.Exponent() < -2 {
		return []FieldError{{
			Field:   field,
			Message: field + " must have at most 2 decimal places",
			Value:   v,
		}}
	}
	return nil
}

func checkQty(value *float64, required bool) []FieldError {
	if value == nil {
		if required {
			return []FieldError{{Field: "qty", Message: "qty is required"}}
		}
		return nil
	}
	v := *value
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []FieldError{{Field: "qty", Message: "qty must be a number", Value: v}}
	}
	if v != math.Trunc(v) {
		return []FieldError{{Field: "qty", Message: "qty must be an integer", Value: v}}
	}
	if v < 0 {
		return []FieldError{{Field: "qty", Message: "qty must not be negative", Value: v}}
	}
	if v > QtyMax {
		return []FieldError{{
			Field:   "qty",
			Message: fmt.Sprintf("qty must not exceed %d", QtyMax),
			Value:   v,
		}}
	}
	return nil
}
