package models

import (
	"fmt"
	"math"
	"time"

	"github.com/lib/pq"
)

// Category represents a product category
type Category string

const (
	CategoryDresses   Category = "dresses"
	CategoryTops      Category = "tops"
	CategoryJeans     Category = "jeans"
	CategoryLowers    Category = "lowers"
	CategoryInnerwear Category = "innerwear"
	CategoryEthnic    Category = "ethnic"
	CategorySexy      Category = "sexy"
)

// Categories lists every valid product category.
var Categories = []Category{
	CategoryDresses,
	CategoryTops,
	CategoryJeans,
	CategoryLowers,
	CategoryInnerwear,
	CategoryEthnic,
	CategorySexy,
}

// IsValid returns true if the category is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item represents a purchasable product in the catalog
type Item struct {
	ID          int            `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	Price       float64        `json:"price" db:"price"`
	Category    Category       `json:"category" db:"category"`
	Brand       string         `json:"brand" db:"brand"`
	Image       string         `json:"image" db:"image"`
	Images      pq.StringArray `json:"images" db:"images"`
	Sizes       pq.StringArray `json:"sizes" db:"sizes"`
	Colors      pq.StringArray `json:"colors" db:"colors"`
	Material    string         `json:"material" db:"material"`
	Stock       int            `json:"stock" db:"stock"`
	Discount    float64        `json:"discount" db:"discount"`
	Rating      float64        `json:"rating" db:"rating"`
	NumReviews  int            `json:"numReviews" db:"num_reviews"`
	Featured    bool           `json:"featured" db:"featured"`
	Tags        pq.StringArray `json:"tags" db:"tags"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`

	// Derived fields, recomputed via RefreshDerived after every load/change
	InStock         bool    `json:"inStock" db:"-"`
	DiscountedPrice float64 `json:"discountedPrice" db:"-"`
}

// RefreshDerived recomputes the fields derived from price, discount and stock.
func (i *Item) RefreshDerived() {
	i.InStock = i.Stock > 0
	i.DiscountedPrice = DiscountedPrice(i.Price, i.Discount)
}

// UnitPrice returns the price a cart line should capture right now:
// the discounted price while a discount is active, the list price otherwise.
func (i *Item) UnitPrice() float64 {
	if i.Discount > 0 {
		return DiscountedPrice(i.Price, i.Discount)
	}
	return i.Price
}

// DiscountedPrice applies a percentage discount to a list price,
// rounded to cents.
func DiscountedPrice(price, discount float64) float64 {
	if discount <= 0 {
		return price
	}
	return roundMoney(price * (1 - discount/100))
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ItemAvailability is the live catalog snapshot cart mutations validate
// against.
type ItemAvailability struct {
	Exists   bool
	InStock  bool
	Stock    int
	Price    float64
	Discount float64
}

// UnitPrice returns the price to capture on a cart line for this snapshot.
func (a ItemAvailability) UnitPrice() float64 {
	if a.Discount > 0 {
		return DiscountedPrice(a.Price, a.Discount)
	}
	return a.Price
}

// ItemCreateRequest represents the data needed to create a catalog item
type ItemCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Brand       string   `json:"brand"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Material    string   `json:"material"`
	Stock       int      `json:"stock"`
	Discount    float64  `json:"discount"`
	Featured    bool     `json:"featured"`
	Tags        []string `json:"tags"`
}

// ItemUpdateRequest represents a partial update of a catalog item.
// Nil fields are left unchanged.
type ItemUpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *Category `json:"category"`
	Brand       *string   `json:"brand"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	Material    *string   `json:"material"`
	Stock       *int      `json:"stock"`
	Discount    *float64  `json:"discount"`
	Featured    *bool     `json:"featured"`
	Tags        *[]string `json:"tags"`
}

// Validate validates item creation data, collecting every field error.
func (req *ItemCreateRequest) Validate() error {
	var errs ValidationErrors

	errs = append(errs, validateItemName(req.Name)...)
	errs = append(errs, validateItemDescription(req.Description)...)
	errs = append(errs, validateItemPrice(req.Price)...)
	errs = append(errs, validateItemCategory(req.Category)...)
	if req.Brand == "" {
		errs = errs.Add("brand is required")
	}
	if req.Image == "" {
		errs = errs.Add("image URL is required")
	}
	errs = append(errs, validateItemStock(req.Stock)...)
	errs = append(errs, validateItemDiscount(req.Discount)...)

	return errs.OrNil()
}

// Validate validates item update data; only set fields are checked.
func (req *ItemUpdateRequest) Validate() error {
	var errs ValidationErrors

	if req.Name != nil {
		errs = append(errs, validateItemName(*req.Name)...)
	}
	if req.Description != nil {
		errs = append(errs, validateItemDescription(*req.Description)...)
	}
	if req.Price != nil {
		errs = append(errs, validateItemPrice(*req.Price)...)
	}
	if req.Category != nil {
		errs = append(errs, validateItemCategory(*req.Category)...)
	}
	if req.Brand != nil && *req.Brand == "" {
		errs = errs.Add("brand is required")
	}
	if req.Stock != nil {
		errs = append(errs, validateItemStock(*req.Stock)...)
	}
	if req.Discount != nil {
		errs = append(errs, validateItemDiscount(*req.Discount)...)
	}

	return errs.OrNil()
}

// Apply copies the set fields of the update request onto the item and
// refreshes its derived fields.
func (req *ItemUpdateRequest) Apply(item *Item) {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Brand != nil {
		item.Brand = *req.Brand
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Images != nil {
		item.Images = *req.Images
	}
	if req.Sizes != nil {
		item.Sizes = *req.Sizes
	}
	if req.Colors != nil {
		item.Colors = *req.Colors
	}
	if req.Material != nil {
		item.Material = *req.Material
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.Discount != nil {
		item.Discount = *req.Discount
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Tags != nil {
		item.Tags = *req.Tags
	}
	item.RefreshDerived()
}

func validateItemName(name string) ValidationErrors {
	var errs ValidationErrors
	if name == "" {
		errs = errs.Add("product name is required")
	}
	if len(name) > 100 {
		errs = errs.Add("product name cannot be more than 100 characters")
	}
	return errs
}

func validateItemDescription(description string) ValidationErrors {
	var errs ValidationErrors
	if description == "" {
		errs = errs.Add("description is required")
	}
	if len(description) > 500 {
		errs = errs.Add("description cannot be more than 500 characters")
	}
	return errs
}

func validateItemPrice(price float64) ValidationErrors {
	if price < 0 {
		return ValidationErrors{"price cannot be negative"}
	}
	return nil
}

func validateItemCategory(category Category) ValidationErrors {
	if !category.IsValid() {
		return ValidationErrors{fmt.Sprintf("category must be one of %v", Categories)}
	}
	return nil
}

func validateItemStock(stock int) ValidationErrors {
	if stock < 0 {
		return ValidationErrors{"stock cannot be negative"}
	}
	return nil
}

func validateItemDiscount(discount float64) ValidationErrors {
	if discount < 0 || discount > 100 {
		return ValidationErrors{"discount must be between 0 and 100"}
	}
	return nil
}
