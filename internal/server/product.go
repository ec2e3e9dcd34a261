package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/catalog/internal/catalog/domain"
)

func (s *Server) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, domain.NewValidationError(domain.FieldError{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	product, err := s.catalog.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ok(c, http.StatusCreated, product, "product created")
}

func (s *Server) GetProduct(c *gin.Context) {
	product, err := s.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ok(c, http.StatusOK, product, "")
}

func (s *Server) UpdateProduct(c *gin.Context) {
	s.applyProductUpdate(c, false)
}

func (s *Server) PatchProduct(c *gin.Context) {
	s.applyProductUpdate(c, true)
}

func (s *Server) applyProductUpdate(c *gin.Context, partial bool) {
	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, domain.NewValidationError(domain.FieldError{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	var (
		product *domain.Product
		err     error
	)
	if partial {
		product, err = s.catalog.Patch(c.Request.Context(), c.Param("id"), req)
	} else {
		product, err = s.catalog.Update(c.Request.Context(), c.Param("id"), req)
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ok(c, http.StatusOK, product, "product updated")
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) ListProducts(c *gin.Context) {
	req, err := parseListQuery(c, s.cfg.DefaultPageLimit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	page, err := s.catalog.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp := Response{
		Success:       true,
		Data:          page.Items,
		CorrelationID: correlationID(c),
		Pagination:    &page.Pagination,
	}
	if !page.Filters.IsZero() {
		resp.Filters = &page.Filters
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetProductStats(c *gin.Context) {
	stats, err := s.catalog.Stats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	ok(c, http.StatusOK, stats, "")
}
