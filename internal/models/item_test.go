package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryIsValid(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, category.IsValid(), "category %q should be valid", category)
	}

	assert.False(t, Category("shoes").IsValid())
	assert.False(t, Category("").IsValid())
	assert.False(t, Category("Dresses").IsValid(), "categories are case sensitive")
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 1000, 0, 1000},
		{"twenty percent", 1000, 20, 800},
		{"rounds to cents", 99.99, 15, 84.99},
		{"full discount", 50, 100, 0},
		{"negative discount ignored", 100, -10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountedPrice(tt.price, tt.discount))
		})
	}
}

func TestItemRefreshDerived(t *testing.T) {
	item := &Item{Price: 1000, Discount: 20, Stock: 3}
	item.RefreshDerived()

	assert.True(t, item.InStock)
	assert.Equal(t, 800.0, item.DiscountedPrice)

	item.Stock = 0
	item.Discount = 0
	item.RefreshDerived()

	assert.False(t, item.InStock)
	assert.Equal(t, 1000.0, item.DiscountedPrice)
}

func TestItemUnitPrice(t *testing.T) {
	discounted := &Item{Price: 1000, Discount: 20}
	assert.Equal(t, 800.0, discounted.UnitPrice())

	listPrice := &Item{Price: 1000}
	assert.Equal(t, 1000.0, listPrice.UnitPrice())
}

func TestItemAvailabilityUnitPrice(t *testing.T) {
	avail := ItemAvailability{Exists: true, InStock: true, Stock: 5, Price: 200, Discount: 50}
	assert.Equal(t, 100.0, avail.UnitPrice())

	avail.Discount = 0
	assert.Equal(t, 200.0, avail.UnitPrice())
}

func validCreateRequest() ItemCreateRequest {
	return ItemCreateRequest{
		Name:        "Floral Summer Dress",
		Description: "Lightweight floral print dress.",
		Price:       2499,
		Category:    CategoryDresses,
		Brand:       "ShopEase",
		Image:       "https://example.com/dress.jpg",
		Stock:       10,
	}
}

func TestItemCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ItemCreateRequest)
		wantErr string
	}{
		{"valid", func(r *ItemCreateRequest) {}, ""},
		{"missing name", func(r *ItemCreateRequest) { r.Name = "" }, "product name is required"},
		{"missing description", func(r *ItemCreateRequest) { r.Description = "" }, "description is required"},
		{"negative price", func(r *ItemCreateRequest) { r.Price = -1 }, "price cannot be negative"},
		{"unknown category", func(r *ItemCreateRequest) { r.Category = "shoes" }, "category must be one of"},
		{"missing brand", func(r *ItemCreateRequest) { r.Brand = "" }, "brand is required"},
		{"missing image", func(r *ItemCreateRequest) { r.Image = "" }, "image URL is required"},
		{"negative stock", func(r *ItemCreateRequest) { r.Stock = -5 }, "stock cannot be negative"},
		{"discount over 100", func(r *ItemCreateRequest) { r.Discount = 150 }, "discount must be between 0 and 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestItemCreateRequestValidateCollectsAllErrors(t *testing.T) {
	req := ItemCreateRequest{Price: -1, Discount: 200}

	err := req.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.GreaterOrEqual(t, len(errs), 5)
}

func TestItemUpdateRequestValidateOnlySetFields(t *testing.T) {
	empty := ItemUpdateRequest{}
	assert.NoError(t, empty.Validate())

	badPrice := -1.0
	withBadPrice := ItemUpdateRequest{Price: &badPrice}
	err := withBadPrice.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price cannot be negative")
}

func TestItemUpdateRequestApply(t *testing.T) {
	item := &Item{
		Name:     "Old Name",
		Price:    1000,
		Category: CategoryTops,
		Brand:    "OldBrand",
		Stock:    5,
	}

	newName := "New Name"
	newPrice := 500.0
	newDiscount := 10.0
	newStock := 0
	req := ItemUpdateRequest{
		Name:     &newName,
		Price:    &newPrice,
		Discount: &newDiscount,
		Stock:    &newStock,
	}

	req.Apply(item)

	assert.Equal(t, "New Name", item.Name)
	assert.Equal(t, 500.0, item.Price)
	assert.Equal(t, "OldBrand", item.Brand, "unset fields stay untouched")
	assert.Equal(t, CategoryTops, item.Category)
	assert.False(t, item.InStock, "derived fields refresh after apply")
	assert.Equal(t, 450.0, item.DiscountedPrice)
}
