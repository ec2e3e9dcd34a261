package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/catalog/internal/catalog/domain"
)

// parseListQuery reads pagination and filter parameters from the query
// string. Values that fail to parse are reported together so the caller
// sees every offending parameter in one response.
func parseListQuery(c *gin.Context, defaultLimit int) (domain.ListRequest, error) {
	req := domain.ListRequest{Page: 1, Limit: defaultLimit}

	var fields []domain.FieldError

	if raw := c.Query("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "page", Message: "page must be an integer", Value: raw})
		} else {
			req.Page = v
		}
	}

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "limit", Message: "limit must be an integer", Value: raw})
		} else {
			req.Limit = v
		}
	}

	req.Filters.Name = strings.TrimSpace(c.Query("name"))

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "minPrice", Message: "minPrice must be a number", Value: raw})
		} else {
			req.Filters.MinPrice = &v
		}
	}

	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields = append(fields, domain.FieldError{Field: "maxPrice", Message: "maxPrice must be a number", Value: raw})
		} else {
			req.Filters.MaxPrice = &v
		}
	}

	if len(fields) > 0 {
		return req, domain.NewValidationError(fields...)
	}
	return req, nil
}
