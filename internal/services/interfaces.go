package services

import (
	"shopease/internal/models"
	"shopease/internal/repositories"
)

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	Register(req *models.UserCreateRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	VerifyToken(token string) (*models.User, error)
	GetProfile(userID int) (*models.User, error)
	UpdateProfile(userID int, req *models.UserUpdateRequest) (*models.User, error)
}

// CatalogServiceInterface defines the interface for catalog services
type CatalogServiceInterface interface {
	List(filters repositories.ItemSearchFilters) (*CatalogPage, error)
	GetByID(id int) (*models.Item, error)
	GetFeatured() ([]*models.Item, error)
	QuickSearch(q, category string, limit int) ([]*models.Item, error)
	Create(req *models.ItemCreateRequest) (*models.Item, error)
	Update(id int, req *models.ItemUpdateRequest) (*models.Item, error)
	Delete(id int) error
}

// CartServiceInterface defines the interface for cart services
type CartServiceInterface interface {
	Get(userID int) (*models.Cart, error)
	Summary(userID int) (models.CartSummary, error)
	AddItem(userID, itemID, quantity int) (*models.Cart, error)
	UpdateItemQuantity(userID, itemID, quantity int) (*models.Cart, error)
	RemoveItem(userID, itemID int) (*models.Cart, error)
	Clear(userID int) (*models.Cart, error)
}

// Pagination describes one page of a catalog listing
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// CatalogPage is the result of a catalog listing: one page of items, the
// pagination block and the filter options derived from the unfiltered
// catalog (for building filter UI).
type CatalogPage struct {
	Items      []*models.Item `json:"items"`
	Pagination Pagination     `json:"pagination"`
	Filters    CatalogFilters `json:"filters"`
}

// CatalogFilters lists the filter values currently present in the catalog
type CatalogFilters struct {
	Categories []string `json:"categories"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
