package repository

import (
	"testing"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderRepoTest(t *testing.T) (OrderRepository, *model.User, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := NewOrderRepository(testDB)

	user := &model.User{Email: "orders@example.com", PasswordHash: "hash", Name: "Order User"}
	testDB.Create(user)

	product := &model.Product{
		Name:     "Running Shoes Pro",
		Price:    149.99,
		Category: model.CategoryAthletic,
		Stock:    10,
	}
	testDB.Create(product)

	return repo, user, product, testDB
}

func buildOrder(user *model.User, product *model.Product, quantity int) *model.Order {
	productID := product.ID
	return &model.Order{
		UserID:          user.ID,
		Total:           product.Price * float64(quantity),
		Status:          model.OrderStatusPending,
		ShippingName:    "Order User",
		ShippingEmail:   "orders@example.com",
		ShippingAddress: "123 Main St",
		ShippingCity:    "Springfield",
		ShippingState:   "IL",
		ShippingZip:     "62704",
		ShippingCountry: "USA",
		ShippingPhone:   "555-0100",
		PaymentMethod:   "card",
		Items: []model.OrderItem{
			{
				ProductID:    &productID,
				ProductName:  product.Name,
				ProductPrice: product.Price,
				Quantity:     quantity,
			},
		},
	}
}

func TestOrderRepository_Create_WritesItems(t *testing.T) {
	repo, user, product, testDB := setupOrderRepoTest(t)

	order := buildOrder(user, product, 2)
	require.NoError(t, repo.Create(order))
	assert.NotZero(t, order.ID)

	var itemCount int64
	testDB.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	assert.Equal(t, int64(1), itemCount)
}

func TestOrderRepository_FindByID_PreloadsItemsAndProducts(t *testing.T) {
	repo, user, product, _ := setupOrderRepoTest(t)

	order := buildOrder(user, product, 3)
	require.NoError(t, repo.Create(order))

	found, err := repo.FindByID(order.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, product.Name, found.Items[0].ProductName)
	require.NotNil(t, found.Items[0].Product)
	assert.Equal(t, product.ID, found.Items[0].Product.ID)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo, _, _, _ := setupOrderRepoTest(t)

	_, err := repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	repo, user, product, testDB := setupOrderRepoTest(t)

	require.NoError(t, repo.Create(buildOrder(user, product, 1)))
	require.NoError(t, repo.Create(buildOrder(user, product, 2)))

	otherUser := &model.User{Email: "other@example.com", PasswordHash: "hash", Name: "Other"}
	testDB.Create(otherUser)
	require.NoError(t, repo.Create(buildOrder(otherUser, product, 1)))

	orders, err := repo.FindByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, user.ID, o.UserID)
	}
}

func TestOrderRepository_FindAll(t *testing.T) {
	repo, user, product, _ := setupOrderRepoTest(t)

	require.NoError(t, repo.Create(buildOrder(user, product, 1)))
	require.NoError(t, repo.Create(buildOrder(user, product, 2)))

	orders, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
