package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"shopease/internal/models"
)

// CartRepository handles cart persistence. Saves are guarded by optimistic
// versioning: every successful save bumps the cart's version, and a save
// against a stale version fails with models.ErrCartConflict so the caller
// can re-read and retry instead of silently losing an update.
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetByUserID loads the user's cart with its lines and each line's live item
// projection. Lines whose item has been deleted come back with a nil Item.
// Returns models.ErrCartNotFound when the user has no cart yet.
func (r *CartRepository) GetByUserID(userID int) (*models.Cart, error) {
	cart := &models.Cart{}
	err := r.db.QueryRow(`
		SELECT id, user_id, total_items, total_price, version, last_updated
		FROM carts
		WHERE user_id = $1`, userID,
	).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.TotalItems,
		&cart.TotalPrice,
		&cart.Version,
		&cart.LastUpdated,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	lines, err := r.loadLines(cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = lines

	return cart, nil
}

// Create inserts an empty cart for the user if one does not exist yet and
// returns the current cart either way.
func (r *CartRepository) Create(userID int) (*models.Cart, error) {
	_, err := r.db.Exec(`
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return r.GetByUserID(userID)
}

// Save persists the cart's lines and totals in one transaction, guarded by
// a compare-and-swap on the version column.
func (r *CartRepository) Save(cart *models.Cart) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin cart save: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE carts
		SET total_items = $1, total_price = $2, last_updated = $3, version = version + 1
		WHERE id = $4 AND version = $5`,
		cart.TotalItems,
		cart.TotalPrice,
		cart.LastUpdated,
		cart.ID,
		cart.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cart update: %w", err)
	}
	if affected == 0 {
		return models.ErrCartConflict
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE cart_id = $1", cart.ID); err != nil {
		return fmt.Errorf("failed to clear cart lines: %w", err)
	}

	for _, line := range cart.Items {
		addedAt := line.AddedAt
		if addedAt.IsZero() {
			addedAt = time.Now()
		}
		_, err := tx.Exec(`
			INSERT INTO cart_items (cart_id, item_id, quantity, price, added_at)
			VALUES ($1, $2, $3, $4, $5)`,
			cart.ID, line.ItemID, line.Quantity, line.Price, addedAt)
		if err != nil {
			return fmt.Errorf("failed to insert cart line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart save: %w", err)
	}

	cart.Version++
	return nil
}

func (r *CartRepository) loadLines(cartID int) ([]models.CartLine, error) {
	rows, err := r.db.Query(`
		SELECT ci.item_id, ci.quantity, ci.price, ci.added_at,
		       i.id, i.name, i.price, i.category, i.brand, i.image,
		       i.stock, i.discount
		FROM cart_items ci
		LEFT JOIN items i ON i.id = ci.item_id
		WHERE ci.cart_id = $1
		ORDER BY ci.added_at, ci.id`, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart lines: %w", err)
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var line models.CartLine
		var itemID sql.NullInt64
		var name, category, brand, image sql.NullString
		var price, discount sql.NullFloat64
		var stock sql.NullInt64

		err := rows.Scan(
			&line.ItemID,
			&line.Quantity,
			&line.Price,
			&line.AddedAt,
			&itemID,
			&name,
			&price,
			&category,
			&brand,
			&image,
			&stock,
			&discount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}

		if itemID.Valid {
			item := &models.Item{
				ID:       int(itemID.Int64),
				Name:     name.String,
				Price:    price.Float64,
				Category: models.Category(category.String),
				Brand:    brand.String,
				Image:    image.String,
				Stock:    int(stock.Int64),
				Discount: discount.Float64,
			}
			item.RefreshDerived()
			line.Item = item
		}

		lines = append(lines, line)
	}

	return lines, rows.Err()
}
