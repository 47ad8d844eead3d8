package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"shopease/internal/models"
	"shopease/internal/repositories"
	"shopease/internal/services"
)

// ItemHandler serves the public catalog endpoints plus the administrative
// item mutations.
type ItemHandler struct {
	catalogService services.CatalogServiceInterface
	logger         zerolog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalogService services.CatalogServiceInterface, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		catalogService: catalogService,
		logger:         logger.With().Str("handler", "items").Logger(),
	}
}

// List handles GET /api/items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := parseListFilters(r)

	page, err := h.catalogService.List(filters)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "", page)
}

// Get handles GET /api/items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	item, err := h.catalogService.GetByID(id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "", map[string]interface{}{"item": item})
}

// Featured handles GET /api/items/featured
func (h *ItemHandler) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.GetFeatured()
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "", map[string]interface{}{"items": items})
}

// Search handles GET /api/items/search
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	limit := queryInt(r, "limit", 0)

	items, err := h.catalogService.QuickSearch(q, category, limit)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "", map[string]interface{}{
		"items": items,
		"count": len(items),
		"query": q,
	})
}

// Create handles POST /api/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ItemCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	item, err := h.catalogService.Create(&req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusCreated, "Item created successfully", map[string]interface{}{"item": item})
}

// Update handles PUT /api/items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	var req models.ItemUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	item, err := h.catalogService.Update(id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondData(w, http.StatusOK, "Item updated successfully", map[string]interface{}{"item": item})
}

// Delete handles DELETE /api/items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseItemID(r)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	if err := h.catalogService.Delete(id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Item deleted successfully")
}

// parseRouteInt reads an integer route parameter; anything that is not a
// positive integer is a malformed identifier.
func parseRouteInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, models.ErrInvalidID
	}
	return id, nil
}

func parseItemID(r *http.Request) (int, error) {
	return parseRouteInt(r, "id")
}

func parseListFilters(r *http.Request) repositories.ItemSearchFilters {
	query := r.URL.Query()

	filters := repositories.ItemSearchFilters{
		Category:     query.Get("category"),
		Search:       query.Get("search"),
		Sort:         query.Get("sort"),
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 0),
		FeaturedOnly: query.Get("featured") == "true",
		InStockOnly:  query.Get("inStock") == "true",
	}

	if raw := query.Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := query.Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = &v
		}
	}

	return filters
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
