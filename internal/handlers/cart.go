package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"shopease/internal/middleware"
	"shopease/internal/services"
)

// CartHandler serves the authenticated cart endpoints
type CartHandler struct {
	cartService services.CartServiceInterface
	logger      zerolog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService services.CartServiceInterface, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger.With().Str("handler", "cart").Logger(),
	}
}

// cartLineRequest is the body of cart add/update calls
type cartLineRequest struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	cart, err := h.cartService.Get(user.ID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "", map[string]interface{}{"cart": cart})
}

// Summary handles GET /api/cart/summary
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	summary, err := h.cartService.Summary(user.ID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "", map[string]interface{}{"summary": summary})
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req cartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddItem(user.ID, req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "Item added to cart", map[string]interface{}{"cart": cart})
}

// Update handles PUT /api/cart/update
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req cartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	cart, err := h.cartService.UpdateItemQuantity(user.ID, req.ItemID, req.Quantity)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "Cart updated", map[string]interface{}{"cart": cart})
}

// Remove handles DELETE /api/cart/remove/{itemId}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	itemID, err := parseRouteInt(r, "itemId")
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	cart, err := h.cartService.RemoveItem(user.ID, itemID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "Item removed from cart", map[string]interface{}{"cart": cart})
}

// Clear handles DELETE /api/cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	cart, err := h.cartService.Clear(user.ID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "Cart cleared", map[string]interface{}{"cart": cart})
}
