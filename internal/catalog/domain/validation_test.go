package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	dErr := AsError(err)
	require.NotNil(t, dErr)
	require.Equal(t, KindValidation, dErr.Kind)

	names := make([]string, 0, len(dErr.Fields))
	for _, f := range dErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidateCreate_Valid(t *testing.T) {
	assert.NoError(t, ValidateCreate(validCreateRequest()))
}

func TestValidateCreate_CollectsEveryFailure(t *testing.T) {
	err := ValidateCreate(CreateProductRequest{})

	assert.ElementsMatch(t, []string{"name", "description", "price", "qty"}, fieldNames(t, err))
}

func TestValidateCreate_NameBounds(t *testing.T) {
	req := validCreateRequest()
	req.Name = strPtr("A")
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "name")

	req.Name = strPtr(strings.Repeat("a", 101))
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "name")

	// Whitespace padding does not rescue a too-short name.
	req.Name = strPtr("   B   ")
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "name")
}

func TestValidateCreate_LengthBoundsCountCharactersNotBytes(t *testing.T) {
	// 60 characters but 180 bytes; well inside the 100-character cap.
	req := validCreateRequest()
	req.Name = strPtr(strings.Repeat("日", 60))
	assert.NoError(t, ValidateCreate(req))

	// One character is one character regardless of its byte width.
	req.Name = strPtr("日")
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "name")

	// 101 multibyte characters still exceed the cap.
	req.Name = strPtr(strings.Repeat("é", 101))
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "name")

	// Same rule for the description bounds.
	req = validCreateRequest()
	req.Description = strPtr(strings.Repeat("ü", 10))
	assert.NoError(t, ValidateCreate(req))

	req.Description = strPtr(strings.Repeat("ü", 9))
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "description")

	req.Description = strPtr(strings.Repeat("ü", 501))
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "description")
}

func TestValidateCreate_DescriptionBounds(t *testing.T) {
	req := validCreateRequest()
	req.Description = strPtr("too short")
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "description")

	req.Description = strPtr(strings.Repeat("d", 501))
	assert.Contains(t, fieldNames(t, ValidateCreate(req)), "description")
}

func TestValidateCreate_PriceRules(t *testing.T) {
	for _, price := range []float64{0, -1, 1000000, 9.999} {
		req := validCreateRequest()
		req.Price = f64Ptr(price)
		assert.Contains(t, fieldNames(t, ValidateCreate(req)), "price", "price=%v", price)
	}

	req := validCreateRequest()
	req.Price = f64Ptr(999999.99)
	assert.NoError(t, ValidateCreate(req))
}

func TestValidateCreate_QtyRules(t *testing.T) {
	for _, qty := range []float64{-1, 10.5, 1000000} {
		req := validCreateRequest()
		req.Qty = f64Ptr(qty)
		assert.Contains(t, fieldNames(t, ValidateCreate(req)), "qty", "qty=%v", qty)
	}

	req := validCreateRequest()
	req.Qty = f64Ptr(0)
	assert.NoError(t, ValidateCreate(req))
}

func TestValidateUpdate_FullRequiresEveryField(t *testing.T) {
	err := ValidateUpdate(UpdateProductRequest{Name: strPtr("Widget")}, false)

	assert.ElementsMatch(t, []string{"description", "price", "qty"}, fieldNames(t, err))
}

func TestValidateUpdate_PartialRejectsEmptyBody(t *testing.T) {
	err := ValidateUpdate(UpdateProductRequest{}, true)

	assert.Equal(t, []string{"body"}, fieldNames(t, err))
}

func TestValidateUpdate_PartialSingleFieldOK(t *testing.T) {
	assert.NoError(t, ValidateUpdate(UpdateProductRequest{Price: f64Ptr(24.5)}, true))
}

func TestValidateUpdate_PartialStillChecksPresentFields(t *testing.T) {
	err := ValidateUpdate(UpdateProductRequest{Price: f64Ptr(-5)}, true)

	assert.Equal(t, []string{"price"}, fieldNames(t, err))
}

func TestValidateProductID(t *testing.T) {
	assert.NoError(t, ValidateProductID("f47ac10b-58cc-4372-a567-0e02b2c3d479"))

	for _, id := range []string{
		"",
		"not-a-uuid",
		"f47ac10b-58cc-1372-a567-0e02b2c3d479", // v1, not v4
	} {
		err := ValidateProductID(id)
		require.Error(t, err, "id=%q", id)
		assert.True(t, IsValidation(err))
	}
}

func TestValidateList_Bounds(t *testing.T) {
	assert.NoError(t, ValidateList(ListRequest{Page: 1, Limit: 10}))

	err := ValidateList(ListRequest{Page: 0, Limit: 101})
	assert.ElementsMatch(t, []string{"page", "limit"}, fieldNames(t, err))
}

func TestValidateList_MinPriceMustBeBelowMaxPrice(t *testing.T) {
	req := ListRequest{Page: 1, Limit: 10}
	req.MinPrice = f64Ptr(50)
	req.MaxPrice = f64Ptr(10)

	assert.Contains(t, fieldNames(t, ValidateList(req)), "minPrice")

	// Equal bounds are rejected too.
	req.MaxPrice = f64Ptr(50)
	assert.Contains(t, fieldNames(t, ValidateList(req)), "minPrice")
}
