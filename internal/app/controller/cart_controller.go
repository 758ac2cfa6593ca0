package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/internal/app/service"
	apperrors "github.com/sportsoles/sportsoles-backend/internal/errors"
	"github.com/sportsoles/sportsoles-backend/internal/middleware"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest carries the new quantity. Zero and negative
// values are valid and remove the item, so no gt=0 binding here.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartResponse(items []model.CartItem) gin.H {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return gin.H{
		"items": items,
		"count": len(items),
		"total": total,
	}
}

// GetCart returns the user's cart
// GET /api/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized access to cart")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	items, err := ctrl.cartService.GetCart(userID)
	if err != nil {
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get cart")
		return
	}

	log.Info("Cart fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(items),
	})

	c.JSON(http.StatusOK, cartResponse(items))
}

// AddToCart adds a product to the cart, merging with an existing line
// POST /api/cart/add
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to add to cart")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	log.Debug("Adding item to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": req.ProductID,
		"quantity":   req.Quantity,
	})

	items, err := ctrl.cartService.AddToCart(userID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for cart", map[string]interface{}{
				"user_id":    userID,
				"product_id": req.ProductID,
			})
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": req.ProductID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "add to cart")
		return
	}

	log.Info("Item added to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": req.ProductID,
	})

	c.JSON(http.StatusOK, cartResponse(items))
}

// UpdateCartItem changes a line's quantity; zero or less removes it
// PUT /api/cart/update/:itemId
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to update cart item")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		log.Warn("Invalid cart item ID", map[string]interface{}{
			"user_id": userID,
			"item_id": c.Param("itemId"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid cart item ID")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart item update request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	items, err := ctrl.cartService.UpdateItem(userID, uint(itemID), req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			log.Warn("Cart item not found for update", map[string]interface{}{
				"user_id": userID,
				"item_id": itemID,
			})
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
			return
		}
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"user_id": userID,
			"item_id": itemID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update cart item")
		return
	}

	log.Info("Cart item updated", map[string]interface{}{
		"user_id":  userID,
		"item_id":  itemID,
		"quantity": req.Quantity,
	})

	c.JSON(http.StatusOK, cartResponse(items))
}

// RemoveFromCart deletes a line from the cart
// DELETE /api/cart/remove/:itemId
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to remove cart item")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		log.Warn("Invalid cart item ID", map[string]interface{}{
			"user_id": userID,
			"item_id": c.Param("itemId"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid cart item ID")
		return
	}

	items, err := ctrl.cartService.RemoveItem(userID, uint(itemID))
	if err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			log.Warn("Cart item not found for removal", map[string]interface{}{
				"user_id": userID,
				"item_id": itemID,
			})
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Cart item not found")
			return
		}
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"user_id": userID,
			"item_id": itemID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "remove cart item")
		return
	}

	log.Info("Cart item removed", map[string]interface{}{
		"user_id": userID,
		"item_id": itemID,
	})

	c.JSON(http.StatusOK, cartResponse(items))
}
