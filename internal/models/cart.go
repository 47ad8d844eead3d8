package models

import "time"

// CartLine is one (item, quantity, captured price) entry in a cart.
// Price is the unit price captured when the line was first added and is
// not affected by later catalog price or discount changes.
type CartLine struct {
	ItemID   int       `json:"itemId" db:"item_id"`
	Quantity int       `json:"quantity" db:"quantity"`
	Price    float64   `json:"price" db:"price"`
	AddedAt  time.Time `json:"addedAt" db:"added_at"`

	// Live catalog projection, populated on reads. Nil when the referenced
	// item has been deleted; such lines are pruned before the cart is
	// returned.
	Item *Item `json:"item,omitempty" db:"-"`
}

// Subtotal returns the line total at the captured unit price.
func (l CartLine) Subtotal() float64 {
	return roundMoney(l.Price * float64(l.Quantity))
}

// Cart groups a user's line items and derived totals. One cart exists per
// user and is created lazily on first access. Totals are recomputed after
// every mutation, never stored independently of the line set.
type Cart struct {
	ID          int        `json:"-" db:"id"`
	UserID      int        `json:"-" db:"user_id"`
	Items       []CartLine `json:"items" db:"-"`
	TotalItems  int        `json:"totalItems" db:"total_items"`
	TotalPrice  float64    `json:"totalPrice" db:"total_price"`
	Version     int        `json:"-" db:"version"`
	LastUpdated time.Time  `json:"lastUpdated" db:"last_updated"`
}

// NewCart returns an empty cart for the given user.
func NewCart(userID int) *Cart {
	cart := &Cart{UserID: userID, Items: []CartLine{}}
	cart.recalculate()
	return cart
}

// Line returns the line referencing itemID, or nil.
func (c *Cart) Line(itemID int) *CartLine {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// AddItem merges quantity into an existing line for the item, or appends a
// new line capturing the given unit price. Totals are recomputed.
func (c *Cart) AddItem(itemID int, price float64, quantity int) {
	if line := c.Line(itemID); line != nil {
		line.Quantity += quantity
	} else {
		c.Items = append(c.Items, CartLine{
			ItemID:   itemID,
			Quantity: quantity,
			Price:    price,
			AddedAt:  time.Now(),
		})
	}
	c.recalculate()
}

// SetItemQuantity overwrites the quantity of an existing line. A quantity
// of zero or less removes the line. Setting the quantity of an item that is
// not in the cart is a no-op.
func (c *Cart) SetItemQuantity(itemID, quantity int) {
	line := c.Line(itemID)
	if line == nil {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	line.Quantity = quantity
	c.recalculate()
}

// RemoveItem deletes the line for the item if present; removing an absent
// line leaves the cart unchanged.
func (c *Cart) RemoveItem(itemID int) {
	kept := c.Items[:0]
	for _, line := range c.Items {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	c.Items = kept
	c.recalculate()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartLine{}
	c.recalculate()
}

// PruneMissing drops lines whose referenced item no longer exists and
// reports whether anything was removed, so callers persist only on change.
func (c *Cart) PruneMissing(exists func(itemID int) bool) bool {
	kept := c.Items[:0]
	changed := false
	for _, line := range c.Items {
		if exists(line.ItemID) {
			kept = append(kept, line)
		} else {
			changed = true
		}
	}
	c.Items = kept
	if changed {
		c.recalculate()
	}
	return changed
}

// recalculate rebuilds the derived totals from the current line set and
// stamps the cart as updated.
func (c *Cart) recalculate() {
	totalItems := 0
	totalPrice := 0.0
	for _, line := range c.Items {
		totalItems += line.Quantity
		totalPrice += line.Price * float64(line.Quantity)
	}
	c.TotalItems = totalItems
	c.TotalPrice = roundMoney(totalPrice)
	c.LastUpdated = time.Now()
}

// CartSummary is the lightweight view returned by the summary endpoint.
type CartSummary struct {
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
	ItemCount  int     `json:"itemCount"`
}

// Summary returns the cart's totals plus the number of distinct lines.
func (c *Cart) Summary() CartSummary {
	return CartSummary{
		TotalItems: c.TotalItems,
		TotalPrice: c.TotalPrice,
		ItemCount:  len(c.Items),
	}
}
