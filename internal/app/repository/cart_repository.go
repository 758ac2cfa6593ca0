package repository

import (
	"time"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	CreateCart(cart *model.Cart) error
	FindCartByUserID(userID uint) (*model.Cart, error)
	FindItems(cartID uint) ([]model.CartItem, error)
	FindItemByID(id uint) (*model.CartItem, error)
	UpsertItem(item *model.CartItem) error
	UpdateItemQuantity(id uint, quantity int) error
	DeleteItem(id uint) error
	DeleteItemsByCartID(cartID uint) error
	DeleteItemsOlderThan(cutoff time.Time) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) CreateCart(cart *model.Cart) error {
	logger.Debug("Creating cart in database", map[string]interface{}{
		"user_id": cart.UserID,
	})

	if err := r.db.Create(cart).Error; err != nil {
		logger.Error("Failed to create cart in database", err, map[string]interface{}{
			"user_id": cart.UserID,
		})
		return err
	}

	logger.Debug("Cart created in database", map[string]interface{}{
		"cart_id": cart.ID,
		"user_id": cart.UserID,
	})
	return nil
}

func (r *cartRepository) FindCartByUserID(userID uint) (*model.Cart, error) {
	logger.Debug("Finding cart by user ID in database", map[string]interface{}{
		"user_id": userID,
	})

	var cart model.Cart
	err := r.db.Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		logger.Debug("Cart not found by user ID in database", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	logger.Debug("Cart found by user ID in database", map[string]interface{}{
		"cart_id": cart.ID,
		"user_id": userID,
	})
	return &cart, nil
}

func (r *cartRepository) FindItems(cartID uint) ([]model.CartItem, error) {
	logger.Debug("Finding cart items in database", map[string]interface{}{
		"cart_id": cartID,
	})

	var items []model.CartItem
	err := r.db.Where("cart_id = ?", cartID).
		Preload("Product").
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		logger.Error("Failed to find cart items in database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return nil, err
	}

	logger.Debug("Cart items found in database", map[string]interface{}{
		"cart_id": cartID,
		"count":   len(items),
	})
	return items, nil
}

func (r *cartRepository) FindItemByID(id uint) (*model.CartItem, error) {
	logger.Debug("Finding cart item by ID in database", map[string]interface{}{
		"cart_item_id": id,
	})

	var item model.CartItem
	err := r.db.Preload("Product").First(&item, id).Error
	if err != nil {
		logger.Error("Failed to find cart item by ID in database", err, map[string]interface{}{
			"cart_item_id": id,
		})
		return nil, err
	}

	logger.Debug("Cart item found by ID in database", map[string]interface{}{
		"cart_item_id": item.ID,
		"cart_id":      item.CartID,
		"product_id":   item.ProductID,
	})
	return &item, nil
}

// UpsertItem inserts a cart item, or adds its quantity to the existing
// row when the (cart_id, product_id) pair is already present. Concurrent
// adds for the same product land on the same row.
func (r *cartRepository) UpsertItem(item *model.CartItem) error {
	logger.Debug("Upserting cart item in database", map[string]interface{}{
		"cart_id":    item.CartID,
		"product_id": item.ProductID,
		"quantity":   item.Quantity,
	})

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", item.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
	if err != nil {
		logger.Error("Failed to upsert cart item in database", err, map[string]interface{}{
			"cart_id":    item.CartID,
			"product_id": item.ProductID,
		})
		return err
	}

	logger.Debug("Cart item upserted in database", map[string]interface{}{
		"cart_id":    item.CartID,
		"product_id": item.ProductID,
	})
	return nil
}

func (r *cartRepository) UpdateItemQuantity(id uint, quantity int) error {
	logger.Debug("Updating cart item quantity in database", map[string]interface{}{
		"cart_item_id": id,
		"quantity":     quantity,
	})

	if err := r.db.Model(&model.CartItem{}).Where("id = ?", id).
		Update("quantity", quantity).Error; err != nil {
		logger.Error("Failed to update cart item quantity in database", err, map[string]interface{}{
			"cart_item_id": id,
			"quantity":     quantity,
		})
		return err
	}

	logger.Debug("Cart item quantity updated in database", map[string]interface{}{
		"cart_item_id": id,
		"quantity":     quantity,
	})
	return nil
}

func (r *cartRepository) DeleteItem(id uint) error {
	logger.Debug("Deleting cart item from database", map[string]interface{}{
		"cart_item_id": id,
	})

	if err := r.db.Delete(&model.CartItem{}, id).Error; err != nil {
		logger.Error("Failed to delete cart item from database", err, map[string]interface{}{
			"cart_item_id": id,
		})
		return err
	}

	logger.Debug("Cart item deleted from database", map[string]interface{}{
		"cart_item_id": id,
	})
	return nil
}

func (r *cartRepository) DeleteItemsByCartID(cartID uint) error {
	logger.Debug("Deleting cart items by cart ID from database", map[string]interface{}{
		"cart_id": cartID,
	})

	if err := r.db.Where("cart_id = ?", cartID).Delete(&model.CartItem{}).Error; err != nil {
		logger.Error("Failed to delete cart items by cart ID from database", err, map[string]interface{}{
			"cart_id": cartID,
		})
		return err
	}

	logger.Debug("Cart items deleted by cart ID from database", map[string]interface{}{
		"cart_id": cartID,
	})
	return nil
}

// DeleteItemsOlderThan removes cart items not touched since the cutoff.
// Used by the stale-cart pruning job.
func (r *cartRepository) DeleteItemsOlderThan(cutoff time.Time) (int64, error) {
	logger.Debug("Deleting stale cart items from database", map[string]interface{}{
		"cutoff": cutoff,
	})

	result := r.db.Where("updated_at < ?", cutoff).Delete(&model.CartItem{})
	if result.Error != nil {
		logger.Error("Failed to delete stale cart items from database", result.Error, map[string]interface{}{
			"cutoff": cutoff,
		})
		return 0, result.Error
	}

	logger.Debug("Stale cart items deleted from database", map[string]interface{}{
		"cutoff": cutoff,
		"count":  result.RowsAffected,
	})
	return result.RowsAffected, nil
}
