package repository

import (
	"testing"
	"time"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartRepoTest(t *testing.T) (CartRepository, *model.Cart, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := NewCartRepository(testDB)

	user := &model.User{Email: "cart@example.com", PasswordHash: "hash", Name: "Cart User"}
	testDB.Create(user)

	cart := &model.Cart{UserID: user.ID}
	require.NoError(t, repo.CreateCart(cart))

	product := &model.Product{
		Name:     "Classic White Sneakers",
		Price:    79.99,
		Category: model.CategorySneakers,
		Stock:    50,
	}
	testDB.Create(product)

	return repo, cart, product, testDB
}

func TestCartRepository_CreateCart_UniquePerUser(t *testing.T) {
	repo, cart, _, _ := setupCartRepoTest(t)

	// Second cart for the same user violates the unique index
	err := repo.CreateCart(&model.Cart{UserID: cart.UserID})
	assert.Error(t, err)
}

func TestCartRepository_FindCartByUserID(t *testing.T) {
	repo, cart, _, _ := setupCartRepoTest(t)

	found, err := repo.FindCartByUserID(cart.UserID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)

	_, err = repo.FindCartByUserID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartRepository_UpsertItem_InsertsThenIncrements(t *testing.T) {
	repo, cart, product, testDB := setupCartRepoTest(t)

	err := repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	err = repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)

	// Exactly one row with the merged quantity
	var rows []model.CartItem
	require.NoError(t, testDB.Where("cart_id = ?", cart.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Quantity)
}

func TestCartRepository_FindItems_PreloadsProduct(t *testing.T) {
	repo, cart, product, _ := setupCartRepoTest(t)

	require.NoError(t, repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}))

	items, err := repo.FindItems(cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.Name, items[0].Product.Name)
	assert.Equal(t, product.Price, items[0].Product.Price)
}

func TestCartRepository_UpdateItemQuantity(t *testing.T) {
	repo, cart, product, _ := setupCartRepoTest(t)

	require.NoError(t, repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}))
	items, err := repo.FindItems(cart.ID)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateItemQuantity(items[0].ID, 7))

	updated, err := repo.FindItemByID(items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
}

func TestCartRepository_DeleteItem_HardDeletes(t *testing.T) {
	repo, cart, product, testDB := setupCartRepoTest(t)

	require.NoError(t, repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}))
	items, err := repo.FindItems(cart.ID)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItem(items[0].ID))

	// Row is really gone, so the unique index cannot collide on re-add
	var count int64
	testDB.Unscoped().Model(&model.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	err = repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2})
	assert.NoError(t, err)
}

func TestCartRepository_DeleteItemsByCartID(t *testing.T) {
	repo, cart, product, testDB := setupCartRepoTest(t)

	second := &model.Product{Name: "Leather Boots", Price: 129.99, Category: model.CategoryBoots, Stock: 5}
	testDB.Create(second)

	require.NoError(t, repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}))
	require.NoError(t, repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: second.ID, Quantity: 2}))

	require.NoError(t, repo.DeleteItemsByCartID(cart.ID))

	items, err := repo.FindItems(cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 0)
}

func TestCartRepository_DeleteItemsOlderThan(t *testing.T) {
	repo, cart, product, testDB := setupCartRepoTest(t)

	require.NoError(t, repo.UpsertItem(&model.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}))
	items, err := repo.FindItems(cart.ID)
	require.NoError(t, err)

	old := time.Now().Add(-72 * time.Hour)
	require.NoError(t, testDB.Model(&model.CartItem{}).
		Where("id = ?", items[0].ID).
		UpdateColumn("updated_at", old).Error)

	count, err := repo.DeleteItemsOlderThan(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	items, err = repo.FindItems(cart.ID)
	require.NoError(t, err)
	assert.Len(t, items, 0)
}
