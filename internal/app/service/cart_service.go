package service

import (
	"errors"
	"time"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/internal/app/repository"
	"github.com/sportsoles/sportsoles-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartService interface {
	GetCart(userID uint) ([]model.CartItem, error)
	AddToCart(userID, productID uint, quantity int) ([]model.CartItem, error)
	UpdateItem(userID, itemID uint, quantity int) ([]model.CartItem, error)
	RemoveItem(userID, itemID uint) ([]model.CartItem, error)
	ClearCart(userID uint) error
	PruneStaleItems(maxAge time.Duration) (int64, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// getOrCreateCart returns the user's cart, creating it if missing.
// Accounts registered before the cart table existed get one lazily.
func (s *cartService) getOrCreateCart(userID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.FindCartByUserID(userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newCart := &model.Cart{UserID: userID}
	if createErr := s.cartRepo.CreateCart(newCart); createErr != nil {
		// A concurrent request may have created the cart first
		if cart, retryErr := s.cartRepo.FindCartByUserID(userID); retryErr == nil {
			return cart, nil
		}
		return nil, createErr
	}

	logger.Info("Cart created for user", map[string]interface{}{
		"user_id": userID,
		"cart_id": newCart.ID,
	})
	return newCart, nil
}

func (s *cartService) GetCart(userID uint) ([]model.CartItem, error) {
	logger.Debug("Fetching cart", map[string]interface{}{
		"user_id": userID,
	})

	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		logger.Error("Failed to get or create cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	items, err := s.cartRepo.FindItems(cart.ID)
	if err != nil {
		logger.Error("Failed to fetch cart items", err, map[string]interface{}{
			"user_id": userID,
			"cart_id": cart.ID,
		})
		return nil, err
	}

	logger.Debug("Cart fetched successfully", map[string]interface{}{
		"user_id":    userID,
		"cart_id":    cart.ID,
		"item_count": len(items),
	})
	return items, nil
}

func (s *cartService) AddToCart(userID, productID uint, quantity int) ([]model.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}

	logger.Info("Adding product to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	})

	// Stock is not reserved here; availability is enforced at checkout
	if _, err := s.productRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"user_id":    userID,
				"product_id": productID,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product for cart add", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return nil, err
	}

	cart, err := s.getOrCreateCart(userID)
	if err != nil {
		logger.Error("Failed to get or create cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	item := &model.CartItem{
		CartID:    cart.ID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.UpsertItem(item); err != nil {
		logger.Error("Failed to upsert cart item", err, map[string]interface{}{
			"user_id":    userID,
			"cart_id":    cart.ID,
			"product_id": productID,
		})
		return nil, err
	}

	logger.Info("Product added to cart", map[string]interface{}{
		"user_id":    userID,
		"cart_id":    cart.ID,
		"product_id": productID,
		"quantity":   quantity,
	})

	return s.cartRepo.FindItems(cart.ID)
}

// findOwnedItem resolves a cart item and verifies it belongs to the
// user's cart. Items in other carts are reported as not found.
func (s *cartService) findOwnedItem(userID, itemID uint) (*model.CartItem, *model.Cart, error) {
	cart, err := s.cartRepo.FindCartByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCartItemNotFound
		}
		return nil, nil, err
	}

	item, err := s.cartRepo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCartItemNotFound
		}
		return nil, nil, err
	}

	if item.CartID != cart.ID {
		logger.Warn("Cart item access denied: ownership mismatch", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": itemID,
			"item_cart_id": item.CartID,
			"user_cart_id": cart.ID,
		})
		return nil, nil, ErrCartItemNotFound
	}

	return item, cart, nil
}

func (s *cartService) UpdateItem(userID, itemID uint, quantity int) ([]model.CartItem, error) {
	logger.Info("Updating cart item quantity", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": itemID,
		"quantity":     quantity,
	})

	item, cart, err := s.findOwnedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	// Zero or negative quantity removes the item
	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(item.ID); err != nil {
			logger.Error("Failed to remove cart item", err, map[string]interface{}{
				"user_id":      userID,
				"cart_item_id": item.ID,
			})
			return nil, err
		}
		logger.Info("Cart item removed via zero quantity", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": item.ID,
		})
		return s.cartRepo.FindItems(cart.ID)
	}

	if err := s.cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
		logger.Error("Failed to update cart item quantity", err, map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": item.ID,
		})
		return nil, err
	}

	logger.Info("Cart item quantity updated", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": item.ID,
		"quantity":     quantity,
	})
	return s.cartRepo.FindItems(cart.ID)
}

func (s *cartService) RemoveItem(userID, itemID uint) ([]model.CartItem, error) {
	logger.Info("Removing cart item", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": itemID,
	})

	item, cart, err := s.findOwnedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		logger.Error("Failed to remove cart item", err, map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": item.ID,
		})
		return nil, err
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": item.ID,
	})
	return s.cartRepo.FindItems(cart.ID)
}

func (s *cartService) ClearCart(userID uint) error {
	logger.Info("Clearing cart", map[string]interface{}{
		"user_id": userID,
	})

	cart, err := s.cartRepo.FindCartByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.cartRepo.DeleteItemsByCartID(cart.ID); err != nil {
		logger.Error("Failed to clear cart", err, map[string]interface{}{
			"user_id": userID,
			"cart_id": cart.ID,
		})
		return err
	}

	logger.Info("Cart cleared", map[string]interface{}{
		"user_id": userID,
		"cart_id": cart.ID,
	})
	return nil
}

// PruneStaleItems drops cart items untouched for longer than maxAge
func (s *cartService) PruneStaleItems(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)

	logger.Info("Pruning stale cart items", map[string]interface{}{
		"cutoff":  cutoff,
		"max_age": maxAge.String(),
	})

	count, err := s.cartRepo.DeleteItemsOlderThan(cutoff)
	if err != nil {
		logger.Error("Failed to prune stale cart items", err, map[string]interface{}{
			"cutoff": cutoff,
		})
		return 0, err
	}

	logger.Info("Stale cart items pruned", map[string]interface{}{
		"count": count,
	})
	return count, nil
}
