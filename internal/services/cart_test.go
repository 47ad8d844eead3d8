package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopease/internal/models"
)

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetByUserID(userID int) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) Create(userID int) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

// MockAvailabilityReader is a mock implementation of AvailabilityReader
type MockAvailabilityReader struct {
	mock.Mock
}

func (m *MockAvailabilityReader) GetAvailability(itemID int) (models.ItemAvailability, error) {
	args := m.Called(itemID)
	return args.Get(0).(models.ItemAvailability), args.Error(1)
}

func (m *MockAvailabilityReader) ExistingIDs(ids []int) (map[int]bool, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]bool), args.Error(1)
}

func inStock(stock int, price, discount float64) models.ItemAvailability {
	return models.ItemAvailability{
		Exists:   true,
		InStock:  stock > 0,
		Stock:    stock,
		Price:    price,
		Discount: discount,
	}
}

func TestCartAddItemSuccess(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	catalog.On("GetAvailability", 10).Return(inStock(5, 100, 0), nil)
	cartRepo.On("Save", cart).Return(nil)

	result, err := service.AddItem(1, 10, 2)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].Quantity)
	assert.Equal(t, 100.0, result.Items[0].Price)
	assert.Equal(t, 200.0, result.TotalPrice)
	cartRepo.AssertExpectations(t)
}

func TestCartAddItemCapturesDiscountedPrice(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	catalog.On("GetAvailability", 10).Return(inStock(5, 1000, 20), nil)
	cartRepo.On("Save", cart).Return(nil)

	result, err := service.AddItem(1, 10, 2)
	require.NoError(t, err)

	assert.Equal(t, 800.0, result.Items[0].Price)
	assert.Equal(t, 1600.0, result.TotalPrice)
}

func TestCartAddItemCreatesCartLazily(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	fresh := models.NewCart(1)
	cartRepo.On("GetByUserID", 1).Return(nil, models.ErrCartNotFound).Once()
	cartRepo.On("Create", 1).Return(fresh, nil)
	catalog.On("GetAvailability", 10).Return(inStock(5, 100, 0), nil)
	cartRepo.On("Save", fresh).Return(nil)
	cartRepo.On("GetByUserID", 1).Return(fresh, nil)

	_, err := service.AddItem(1, 10, 1)
	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
}

func TestCartAddItemUnknownItem(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	catalog.On("GetAvailability", 999).Return(models.ItemAvailability{}, nil)

	_, err := service.AddItem(1, 999, 1)

	assert.ErrorIs(t, err, models.ErrItemNotFound)
	assert.Empty(t, cart.Items, "failed add leaves the cart unmodified")
	cartRepo.AssertNotCalled(t, "Save")
}

func TestCartAddItemInsufficientStock(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cart.AddItem(10, 100, 1)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	catalog.On("GetAvailability", 10).Return(inStock(2, 100, 0), nil)

	_, err := service.AddItem(1, 10, 3)

	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, 1, cart.TotalItems, "failed add leaves the cart unmodified")
	cartRepo.AssertNotCalled(t, "Save")
}

func TestCartAddItemRejectsNonPositiveQuantity(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	_, err := service.AddItem(1, 10, 0)

	var errs models.ValidationErrors
	require.ErrorAs(t, err, &errs)
	cartRepo.AssertNotCalled(t, "GetByUserID")
}

func TestCartAddItemRetriesOnConflict(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cartRepo.On("GetByUserID", 1).Return(models.NewCart(1), nil)
	catalog.On("GetAvailability", 10).Return(inStock(5, 100, 0), nil)
	cartRepo.On("Save", mock.Anything).Return(models.ErrCartConflict).Once()
	cartRepo.On("Save", mock.Anything).Return(nil).Once()

	_, err := service.AddItem(1, 10, 1)
	require.NoError(t, err)
	cartRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestCartAddItemGivesUpAfterRepeatedConflicts(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cartRepo.On("GetByUserID", 1).Return(models.NewCart(1), nil)
	catalog.On("GetAvailability", 10).Return(inStock(5, 100, 0), nil)
	cartRepo.On("Save", mock.Anything).Return(models.ErrCartConflict)

	_, err := service.AddItem(1, 10, 1)

	assert.ErrorIs(t, err, models.ErrCartConflict)
	cartRepo.AssertNumberOfCalls(t, "Save", 3)
}

func TestCartUpdateItemQuantityRevalidatesStock(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cart.AddItem(10, 100, 2)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	catalog.On("GetAvailability", 10).Return(inStock(3, 100, 0), nil)

	_, err := service.UpdateItemQuantity(1, 10, 5)

	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, 2, cart.TotalItems)
}

func TestCartUpdateItemQuantityZeroRemovesLine(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cart.AddItem(10, 100, 2)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	cartRepo.On("Save", cart).Return(nil)

	result, err := service.UpdateItemQuantity(1, 10, 0)
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	// Quantity zero skips the stock check entirely.
	catalog.AssertNotCalled(t, "GetAvailability")
}

func TestCartUpdateItemQuantityNegative(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	_, err := service.UpdateItemQuantity(1, 10, -1)

	var errs models.ValidationErrors
	require.ErrorAs(t, err, &errs)
	cartRepo.AssertNotCalled(t, "GetByUserID")
}

func TestCartRemoveItemIdempotent(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	cartRepo.On("Save", cart).Return(nil)

	result, err := service.RemoveItem(1, 999)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestCartClear(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cart.AddItem(10, 100, 2)
	cart.AddItem(20, 50, 1)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	cartRepo.On("Save", cart).Return(nil)

	result, err := service.Clear(1)
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalItems)
	assert.Equal(t, 0.0, result.TotalPrice)
}

func TestCartGetPrunesDeletedItems(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cart.AddItem(10, 100, 2)
	cart.AddItem(20, 50, 1)

	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	catalog.On("ExistingIDs", []int{10, 20}).Return(map[int]bool{10: true}, nil)
	cartRepo.On("Save", cart).Return(nil)

	result, err := service.Get(1)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 10, result.Items[0].ItemID)
	assert.Equal(t, 200.0, result.TotalPrice)
	cartRepo.AssertCalled(t, "Save", cart)
}

func TestCartGetSkipsSaveWhenNothingPruned(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cart.AddItem(10, 100, 2)

	cartRepo.On("GetByUserID", 1).Return(cart, nil)
	catalog.On("ExistingIDs", []int{10}).Return(map[int]bool{10: true}, nil)

	_, err := service.Get(1)
	require.NoError(t, err)
	cartRepo.AssertNotCalled(t, "Save")
}

func TestCartGetEmptyCartSkipsCatalog(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cartRepo.On("GetByUserID", 1).Return(models.NewCart(1), nil)

	cart, err := service.Get(1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	catalog.AssertNotCalled(t, "ExistingIDs")
}

func TestCartSummary(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cart := models.NewCart(1)
	cart.AddItem(10, 100, 2)
	cart.AddItem(20, 50, 3)
	cartRepo.On("GetByUserID", 1).Return(cart, nil)

	summary, err := service.Summary(1)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalItems)
	assert.Equal(t, 350.0, summary.TotalPrice)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestCartSummaryMissingCartIsZero(t *testing.T) {
	cartRepo := new(MockCartRepository)
	catalog := new(MockAvailabilityReader)
	service := NewCartService(cartRepo, catalog)

	cartRepo.On("GetByUserID", 1).Return(nil, models.ErrCartNotFound)

	summary, err := service.Summary(1)
	require.NoError(t, err)

	assert.Equal(t, models.CartSummary{}, summary)
	cartRepo.AssertNotCalled(t, "Create")
}
