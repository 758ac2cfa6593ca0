package service

import (
	"errors"
	"fmt"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/internal/app/repository"
	"github.com/sportsoles/sportsoles-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrCartNotFound  = errors.New("cart not found")
	ErrEmptyCart     = errors.New("cart is empty")
)

// InsufficientStockError reports which product blocked a checkout
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

// ShippingDetails is the checkout shipping form
type ShippingDetails struct {
	Name    string
	Email   string
	Address string
	City    string
	State   string
	Zip     string
	Country string
	Phone   string
}

type OrderService interface {
	CreateOrderFromCart(userID uint, shipping ShippingDetails, paymentMethod string) (*model.Order, error)
	GetUserOrders(userID uint) ([]model.Order, error)
	GetOrderByID(userID, orderID uint) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	db        *gorm.DB
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	db *gorm.DB,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		db:        db,
	}
}

// CreateOrderFromCart converts the user's cart into an order inside a
// single transaction. Product rows are locked, stock is decremented
// with a guard against oversell, and the cart is cleared. Any failure
// rolls everything back and leaves both cart and stock untouched.
func (s *orderService) CreateOrderFromCart(userID uint, shipping ShippingDetails, paymentMethod string) (*model.Order, error) {
	if paymentMethod == "" {
		paymentMethod = "card"
	}

	logger.Info("Creating order from cart", map[string]interface{}{
		"user_id":        userID,
		"payment_method": paymentMethod,
	})

	cart, err := s.cartRepo.FindCartByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot create order: user has no cart", map[string]interface{}{
				"user_id": userID,
			})
			return nil, ErrCartNotFound
		}
		logger.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	cartItems, err := s.cartRepo.FindItems(cart.ID)
	if err != nil {
		logger.Error("Failed to fetch cart items", err, map[string]interface{}{
			"user_id": userID,
			"cart_id": cart.ID,
		})
		return nil, err
	}

	if len(cartItems) == 0 {
		logger.Warn("Cannot create order: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	logger.Debug("Processing cart items for order", map[string]interface{}{
		"user_id":    userID,
		"item_count": len(cartItems),
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during order creation, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"user_id": userID,
			})
		}
	}()

	var (
		total      float64
		orderItems []model.OrderItem
	)

	for _, cartItem := range cartItems {
		var product model.Product
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, cartItem.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Product not found during order creation", map[string]interface{}{
					"user_id":    userID,
					"product_id": cartItem.ProductID,
				})
				return nil, ErrProductNotFound
			}
			logger.Error("Failed to fetch product during order creation", err, map[string]interface{}{
				"user_id":    userID,
				"product_id": cartItem.ProductID,
			})
			return nil, err
		}

		if product.Stock < cartItem.Quantity {
			tx.Rollback()
			logger.Warn("Order creation failed: insufficient stock", map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
				"requested":  cartItem.Quantity,
				"available":  product.Stock,
			})
			return nil, &InsufficientStockError{
				ProductName: product.Name,
				Requested:   cartItem.Quantity,
				Available:   product.Stock,
			}
		}

		// Decrement guarded by the stock check in SQL. The row is locked,
		// but the guard also protects against any path that skips the lock.
		result := tx.Model(&model.Product{}).
			Where("id = ? AND stock >= ?", product.ID, cartItem.Quantity).
			Update("stock", gorm.Expr("stock - ?", cartItem.Quantity))
		if result.Error != nil {
			tx.Rollback()
			logger.Error("Failed to decrement product stock", result.Error, map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
			})
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			logger.Warn("Order creation failed: stock changed concurrently", map[string]interface{}{
				"user_id":    userID,
				"product_id": product.ID,
				"requested":  cartItem.Quantity,
			})
			return nil, &InsufficientStockError{
				ProductName: product.Name,
				Requested:   cartItem.Quantity,
				Available:   product.Stock,
			}
		}

		productID := product.ID
		orderItems = append(orderItems, model.OrderItem{
			ProductID:    &productID,
			ProductName:  product.Name,
			ProductPrice: product.Price,
			ProductImage: product.ImageURL,
			Quantity:     cartItem.Quantity,
		})
		total += product.Price * float64(cartItem.Quantity)
	}

	order := &model.Order{
		UserID:          userID,
		Total:           total,
		Status:          model.OrderStatusPending,
		ShippingName:    shipping.Name,
		ShippingEmail:   shipping.Email,
		ShippingAddress: shipping.Address,
		ShippingCity:    shipping.City,
		ShippingState:   shipping.State,
		ShippingZip:     shipping.Zip,
		ShippingCountry: shipping.Country,
		ShippingPhone:   shipping.Phone,
		PaymentMethod:   paymentMethod,
		Items:           orderItems,
	}

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_id": userID,
			"total":   total,
		})
		return nil, err
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to clear cart after order creation", err, map[string]interface{}{
			"user_id": userID,
			"cart_id": cart.ID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit order transaction", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": order.ID,
		})
		return nil, err
	}

	logger.Info("Order created successfully", map[string]interface{}{
		"user_id":    userID,
		"order_id":   order.ID,
		"total":      total,
		"item_count": len(orderItems),
	})

	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) GetUserOrders(userID uint) ([]model.Order, error) {
	logger.Debug("Fetching user orders", map[string]interface{}{
		"user_id": userID,
	})

	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("User orders fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(orders),
	})
	return orders, nil
}

func (s *orderService) GetOrderByID(userID, orderID uint) (*model.Order, error) {
	logger.Debug("Fetching order by ID", map[string]interface{}{
		"user_id":  userID,
		"order_id": orderID,
	})

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Order not found", map[string]interface{}{
				"user_id":  userID,
				"order_id": orderID,
			})
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": orderID,
		})
		return nil, err
	}

	// Another user's order is indistinguishable from a missing one
	if order.UserID != userID {
		logger.Warn("Order access denied: ownership mismatch", map[string]interface{}{
			"user_id":  userID,
			"order_id": orderID,
			"owner_id": order.UserID,
		})
		return nil, ErrOrderNotFound
	}

	logger.Debug("Order fetched successfully", map[string]interface{}{
		"user_id":  userID,
		"order_id": orderID,
	})
	return order, nil
}
