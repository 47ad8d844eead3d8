package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"shopease/internal/models"
)

// ItemRepository handles catalog item data operations
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// ItemSearchFilters represents filters for catalog listing
type ItemSearchFilters struct {
	Category     string   // Exact category, or "all"/"" for every category
	MinPrice     *float64 // Inclusive lower price bound
	MaxPrice     *float64 // Inclusive upper price bound
	Search       string   // Case-insensitive substring over name/description/brand
	FeaturedOnly bool
	InStockOnly  bool
	Sort         string // "price-asc", "price-low", "price-high", "name", "newest", "rating"
	Page         int
	Limit        int
}

const itemColumns = `id, name, description, price, category, brand, image, images,
	sizes, colors, material, stock, discount, rating, num_reviews, featured, tags,
	created_at, updated_at`

func scanItem(row interface{ Scan(...interface{}) error }) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.Brand,
		&item.Image,
		&item.Images,
		&item.Sizes,
		&item.Colors,
		&item.Material,
		&item.Stock,
		&item.Discount,
		&item.Rating,
		&item.NumReviews,
		&item.Featured,
		&item.Tags,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.RefreshDerived()
	return item, nil
}

// buildListFilter translates search filters into a WHERE clause and args.
// Split out of Search so the translation itself is testable.
func buildListFilter(filters ItemSearchFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	addArg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Category != "" && filters.Category != "all" {
		conditions = append(conditions, "category = "+addArg(filters.Category))
	}
	if filters.MinPrice != nil {
		conditions = append(conditions, "price >= "+addArg(*filters.MinPrice))
	}
	if filters.MaxPrice != nil {
		conditions = append(conditions, "price <= "+addArg(*filters.MaxPrice))
	}
	if filters.Search != "" {
		pattern := addArg("%" + filters.Search + "%")
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE %s OR description ILIKE %s OR brand ILIKE %s)", pattern, pattern, pattern))
	}
	if filters.FeaturedOnly {
		conditions = append(conditions, "featured = TRUE")
	}
	if filters.InStockOnly {
		conditions = append(conditions, "stock > 0")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// listOrderBy maps a sort key to an ORDER BY clause; unknown keys fall back
// to newest-first.
func listOrderBy(sort string) string {
	switch sort {
	case "price-asc", "price-low":
		return "ORDER BY price ASC"
	case "price-high":
		return "ORDER BY price DESC"
	case "name":
		return "ORDER BY name ASC"
	case "rating":
		return "ORDER BY rating DESC"
	case "newest":
		return "ORDER BY created_at DESC"
	default:
		return "ORDER BY created_at DESC"
	}
}

// Search returns a page of items matching the filters plus the total match
// count.
func (r *ItemRepository) Search(filters ItemSearchFilters) ([]*models.Item, int, error) {
	where, args := buildListFilter(filters)

	countQuery := "SELECT COUNT(*) FROM items " + where
	var total int
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 {
		limit = 12
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf("SELECT %s FROM items %s %s LIMIT $%d OFFSET $%d",
		itemColumns, where, listOrderBy(filters.Sort), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	items, err := r.queryItems(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Categories returns the distinct categories present in the catalog, sorted.
func (r *ItemRepository) Categories() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT category FROM items ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// GetFeatured returns in-stock featured items, newest first.
func (r *ItemRepository) GetFeatured(limit int) ([]*models.Item, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM items WHERE featured = TRUE AND stock > 0 ORDER BY created_at DESC LIMIT $1",
		itemColumns)
	return r.queryItems(query, limit)
}

// QuickSearch matches a free-text query against name, description, brand and
// tags, best rated first.
func (r *ItemRepository) QuickSearch(q, category string, limit int) ([]*models.Item, error) {
	pattern := "%" + q + "%"
	conditions := "(name ILIKE $1 OR description ILIKE $1 OR brand ILIKE $1 OR EXISTS (SELECT 1 FROM unnest(tags) tag WHERE tag ILIKE $1))"
	args := []interface{}{pattern}

	if category != "" && category != "all" {
		args = append(args, category)
		conditions += fmt.Sprintf(" AND category = $%d", len(args))
	}

	args = append(args, limit)
	query := fmt.Sprintf(
		"SELECT %s FROM items WHERE %s ORDER BY rating DESC, created_at DESC LIMIT $%d",
		itemColumns, conditions, len(args))

	return r.queryItems(query, args...)
}

// GetByID retrieves an item by ID
func (r *ItemRepository) GetByID(id int) (*models.Item, error) {
	query := fmt.Sprintf("SELECT %s FROM items WHERE id = $1", itemColumns)

	item, err := scanItem(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// Create inserts a new catalog item
func (r *ItemRepository) Create(req *models.ItemCreateRequest) (*models.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO items (name, description, price, category, brand, image, images,
			sizes, colors, material, stock, discount, featured, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.db.QueryRow(
		query,
		req.Name,
		req.Description,
		req.Price,
		req.Category,
		req.Brand,
		req.Image,
		pq.Array(defaultStrings(req.Images, nil)),
		pq.Array(defaultStrings(req.Sizes, []string{"S", "M", "L", "XL"})),
		pq.Array(defaultStrings(req.Colors, []string{"Black", "White", "Blue", "Red", "Pink"})),
		defaultString(req.Material, "Cotton"),
		req.Stock,
		req.Discount,
		req.Featured,
		pq.Array(defaultStrings(req.Tags, nil)),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// Update applies a partial update and returns the updated item
func (r *ItemRepository) Update(id int, req *models.ItemUpdateRequest) (*models.Item, error) {
	item, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	req.Apply(item)

	query := fmt.Sprintf(`
		UPDATE items
		SET name = $1, description = $2, price = $3, category = $4, brand = $5,
			image = $6, images = $7, sizes = $8, colors = $9, material = $10,
			stock = $11, discount = $12, featured = $13, tags = $14, updated_at = $15
		WHERE id = $16
		RETURNING %s`, itemColumns)

	updated, err := scanItem(r.db.QueryRow(
		query,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.Brand,
		item.Image,
		item.Images,
		item.Sizes,
		item.Colors,
		item.Material,
		item.Stock,
		item.Discount,
		item.Featured,
		item.Tags,
		time.Now(),
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return updated, nil
}

// Delete removes an item from the catalog
func (r *ItemRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrItemNotFound
	}

	return nil
}

// GetAvailability returns the live stock/price snapshot cart mutations
// validate against. A missing item yields Exists == false, not an error.
func (r *ItemRepository) GetAvailability(itemID int) (models.ItemAvailability, error) {
	query := "SELECT stock, price, discount FROM items WHERE id = $1"

	var availability models.ItemAvailability
	err := r.db.QueryRow(query, itemID).Scan(
		&availability.Stock,
		&availability.Price,
		&availability.Discount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.ItemAvailability{}, nil
		}
		return models.ItemAvailability{}, fmt.Errorf("failed to get item availability: %w", err)
	}

	availability.Exists = true
	availability.InStock = availability.Stock > 0
	return availability, nil
}

// ExistingIDs reports which of the given item IDs still exist.
func (r *ItemRepository) ExistingIDs(ids []int) (map[int]bool, error) {
	existing := make(map[int]bool, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := r.db.Query("SELECT id FROM items WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to check item existence: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan item id: %w", err)
		}
		existing[id] = true
	}
	return existing, rows.Err()
}

func (r *ItemRepository) queryItems(query string, args ...interface{}) ([]*models.Item, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

func defaultString(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func defaultStrings(values, def []string) []string {
	if len(values) == 0 {
		if def == nil {
			return []string{}
		}
		return def
	}
	return values
}
