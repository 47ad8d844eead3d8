package services

import (
	"math"

	"shopease/internal/models"
	"shopease/internal/repositories"
)

const (
	defaultPageLimit   = 12
	featuredLimit      = 8
	defaultSearchLimit = 10
	maxPageLimit       = 100
)

// ItemRepository interface for catalog data operations
type ItemRepository interface {
	Search(filters repositories.ItemSearchFilters) ([]*models.Item, int, error)
	Categories() ([]string, error)
	GetFeatured(limit int) ([]*models.Item, error)
	QuickSearch(q, category string, limit int) ([]*models.Item, error)
	GetByID(id int) (*models.Item, error)
	Create(req *models.ItemCreateRequest) (*models.Item, error)
	Update(id int, req *models.ItemUpdateRequest) (*models.Item, error)
	Delete(id int) error
}

// CatalogService handles catalog queries and administrative mutations
type CatalogService struct {
	itemRepo ItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(itemRepo ItemRepository) *CatalogService {
	return &CatalogService{itemRepo: itemRepo}
}

// List returns a filtered, sorted page of the catalog together with the
// distinct categories of the whole catalog.
func (s *CatalogService) List(filters repositories.ItemSearchFilters) (*CatalogPage, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	items, total, err := s.itemRepo.Search(filters)
	if err != nil {
		return nil, err
	}

	categories, err := s.itemRepo.Categories()
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	if items == nil {
		items = []*models.Item{}
	}

	totalPages := int(math.Ceil(float64(total) / float64(filters.Limit)))

	return &CatalogPage{
		Items: items,
		Pagination: Pagination{
			CurrentPage: filters.Page,
			TotalPages:  totalPages,
			TotalItems:  total,
			HasNextPage: filters.Page < totalPages,
			HasPrevPage: filters.Page > 1,
		},
		Filters: CatalogFilters{Categories: categories},
	}, nil
}

// GetByID returns a single catalog item
func (s *CatalogService) GetByID(id int) (*models.Item, error) {
	return s.itemRepo.GetByID(id)
}

// GetFeatured returns the in-stock featured items, newest first
func (s *CatalogService) GetFeatured() ([]*models.Item, error) {
	items, err := s.itemRepo.GetFeatured(featuredLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// QuickSearch runs a free-text search over the catalog. The query is
// required; limit falls back to a sensible default.
func (s *CatalogService) QuickSearch(q, category string, limit int) ([]*models.Item, error) {
	if q == "" {
		return nil, models.ValidationErrors{"search query is required"}
	}
	if limit < 1 {
		limit = defaultSearchLimit
	}

	items, err := s.itemRepo.QuickSearch(q, category, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// Create adds a new item to the catalog (admin only at the HTTP layer)
func (s *CatalogService) Create(req *models.ItemCreateRequest) (*models.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.itemRepo.Create(req)
}

// Update applies a partial item update (admin only at the HTTP layer)
func (s *CatalogService) Update(id int, req *models.ItemUpdateRequest) (*models.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.itemRepo.Update(id, req)
}

// Delete removes an item from the catalog (admin only at the HTTP layer).
// Cart lines referencing it are pruned lazily on the next cart read.
func (s *CatalogService) Delete(id int) error {
	return s.itemRepo.Delete(id)
}
