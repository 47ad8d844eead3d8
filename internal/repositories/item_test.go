package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListFilterEmpty(t *testing.T) {
	where, args := buildListFilter(ItemSearchFilters{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildListFilterAllCategoryIsNoFilter(t *testing.T) {
	where, args := buildListFilter(ItemSearchFilters{Category: "all"})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildListFilterCategory(t *testing.T) {
	where, args := buildListFilter(ItemSearchFilters{Category: "dresses"})

	assert.Equal(t, "WHERE category = $1", where)
	assert.Equal(t, []interface{}{"dresses"}, args)
}

func TestBuildListFilterPriceRange(t *testing.T) {
	min, max := 10.0, 99.99
	where, args := buildListFilter(ItemSearchFilters{MinPrice: &min, MaxPrice: &max})

	assert.Equal(t, "WHERE price >= $1 AND price <= $2", where)
	assert.Equal(t, []interface{}{10.0, 99.99}, args)
}

func TestBuildListFilterSearchPattern(t *testing.T) {
	where, args := buildListFilter(ItemSearchFilters{Search: "dress"})

	assert.Contains(t, where, "name ILIKE $1")
	assert.Contains(t, where, "description ILIKE $1")
	assert.Contains(t, where, "brand ILIKE $1")
	require.Len(t, args, 1)
	assert.Equal(t, "%dress%", args[0])
}

func TestBuildListFilterFlags(t *testing.T) {
	where, args := buildListFilter(ItemSearchFilters{FeaturedOnly: true, InStockOnly: true})

	assert.Equal(t, "WHERE featured = TRUE AND stock > 0", where)
	assert.Empty(t, args)
}

func TestBuildListFilterCombined(t *testing.T) {
	min := 5.0
	where, args := buildListFilter(ItemSearchFilters{
		Category:    "tops",
		MinPrice:    &min,
		Search:      "tee",
		InStockOnly: true,
	})

	assert.Equal(t,
		"WHERE category = $1 AND price >= $2 AND (name ILIKE $3 OR description ILIKE $3 OR brand ILIKE $3) AND stock > 0",
		where)
	assert.Equal(t, []interface{}{"tops", 5.0, "%tee%"}, args)
}

func TestListOrderBy(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"price-asc", "ORDER BY price ASC"},
		{"price-low", "ORDER BY price ASC"},
		{"price-high", "ORDER BY price DESC"},
		{"name", "ORDER BY name ASC"},
		{"rating", "ORDER BY rating DESC"},
		{"newest", "ORDER BY created_at DESC"},
		{"", "ORDER BY created_at DESC"},
		{"bogus", "ORDER BY created_at DESC"},
	}

	for _, tt := range tests {
		t.Run("sort="+tt.sort, func(t *testing.T) {
			assert.Equal(t, tt.want, listOrderBy(tt.sort))
		})
	}
}
