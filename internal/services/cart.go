package services

import (
	"errors"
	"fmt"

	"shopease/internal/models"
)

// Number of optimistic-save attempts before a concurrent-modification
// conflict is surfaced to the caller.
const maxCartSaveRetries = 3

// CartRepository interface for cart persistence
type CartRepository interface {
	GetByUserID(userID int) (*models.Cart, error)
	Create(userID int) (*models.Cart, error)
	Save(cart *models.Cart) error
}

// AvailabilityReader is the slice of the catalog the cart service consults:
// live availability for mutations and existence checks for lazy pruning.
type AvailabilityReader interface {
	GetAvailability(itemID int) (models.ItemAvailability, error)
	ExistingIDs(ids []int) (map[int]bool, error)
}

// CartService orchestrates cart reads and mutations. The cart itself is a
// pure state machine (models.Cart); this service supplies it with live
// catalog snapshots, persists it with optimistic retries, and keeps the
// missing-cart case invisible to callers by creating carts lazily.
type CartService struct {
	cartRepo CartRepository
	catalog  AvailabilityReader
}

// NewCartService creates a new cart service
func NewCartService(cartRepo CartRepository, catalog AvailabilityReader) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

// Get returns the user's cart with live item projections, pruning lines
// whose item has been deleted and persisting the pruned cart if anything
// was removed.
func (s *CartService) Get(userID int) (*models.Cart, error) {
	for attempt := 0; attempt < maxCartSaveRetries; attempt++ {
		cart, err := s.getOrCreate(userID)
		if err != nil {
			return nil, err
		}

		changed, err := s.prune(cart)
		if err != nil {
			return nil, err
		}
		if !changed {
			return cart, nil
		}

		err = s.cartRepo.Save(cart)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, models.ErrCartConflict) {
			return nil, err
		}
	}
	return nil, models.ErrCartConflict
}

// Summary returns the cart totals plus the distinct line count. A user
// without a cart gets a zero summary; no cart is created.
func (s *CartService) Summary(userID int) (models.CartSummary, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, models.ErrCartNotFound) {
			return models.CartSummary{}, nil
		}
		return models.CartSummary{}, err
	}
	return cart.Summary(), nil
}

// AddItem adds quantity of an item to the cart, merging with an existing
// line. The increment is validated against current stock; an existing
// line's quantity is not re-validated. The captured unit price is the
// item's discounted price when a discount is active.
func (s *CartService) AddItem(userID, itemID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, models.ValidationErrors{"quantity must be at least 1"}
	}

	return s.mutate(userID, func(cart *models.Cart) error {
		availability, err := s.catalog.GetAvailability(itemID)
		if err != nil {
			return err
		}
		if !availability.Exists {
			return models.ErrItemNotFound
		}
		if !availability.InStock || availability.Stock < quantity {
			return models.ErrInsufficientStock
		}

		cart.AddItem(itemID, availability.UnitPrice(), quantity)
		return nil
	})
}

// UpdateItemQuantity overwrites a line's quantity after re-validating it
// against current stock. Zero removes the line. Setting the quantity of an
// item that is not in the cart leaves the cart unchanged.
func (s *CartService) UpdateItemQuantity(userID, itemID, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, models.ValidationErrors{"quantity cannot be negative"}
	}

	return s.mutate(userID, func(cart *models.Cart) error {
		if quantity > 0 {
			availability, err := s.catalog.GetAvailability(itemID)
			if err != nil {
				return err
			}
			if !availability.Exists || !availability.InStock || availability.Stock < quantity {
				return models.ErrInsufficientStock
			}
		}

		cart.SetItemQuantity(itemID, quantity)
		return nil
	})
}

// RemoveItem deletes a line from the cart; removing an absent line is a
// no-op.
func (s *CartService) RemoveItem(userID, itemID int) (*models.Cart, error) {
	return s.mutate(userID, func(cart *models.Cart) error {
		cart.RemoveItem(itemID)
		return nil
	})
}

// Clear empties the cart
func (s *CartService) Clear(userID int) (*models.Cart, error) {
	return s.mutate(userID, func(cart *models.Cart) error {
		cart.Clear()
		return nil
	})
}

// mutate runs one read-validate-mutate-save cycle with optimistic retries:
// on a version conflict the whole cycle reruns against the fresh cart, so
// concurrent mutations for the same user serialize instead of losing
// updates. The saved cart is reloaded so the response carries live item
// projections.
func (s *CartService) mutate(userID int, apply func(cart *models.Cart) error) (*models.Cart, error) {
	for attempt := 0; attempt < maxCartSaveRetries; attempt++ {
		cart, err := s.getOrCreate(userID)
		if err != nil {
			return nil, err
		}

		if err := apply(cart); err != nil {
			return nil, err
		}

		err = s.cartRepo.Save(cart)
		if err == nil {
			return s.cartRepo.GetByUserID(userID)
		}
		if !errors.Is(err, models.ErrCartConflict) {
			return nil, err
		}
	}
	return nil, models.ErrCartConflict
}

// getOrCreate makes the missing-cart case invisible: a user's cart is
// created empty on first access.
func (s *CartService) getOrCreate(userID int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, models.ErrCartNotFound) {
		return nil, err
	}

	cart, err = s.cartRepo.Create(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// prune drops lines whose item no longer exists, reporting whether the
// cart changed. Lines already loaded with a nil projection are treated as
// missing without another catalog round trip.
func (s *CartService) prune(cart *models.Cart) (bool, error) {
	if len(cart.Items) == 0 {
		return false, nil
	}

	ids := make([]int, 0, len(cart.Items))
	for _, line := range cart.Items {
		ids = append(ids, line.ItemID)
	}

	existing, err := s.catalog.ExistingIDs(ids)
	if err != nil {
		return false, err
	}

	changed := cart.PruneMissing(func(itemID int) bool {
		return existing[itemID]
	})
	return changed, nil
}
