package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sportsoles/sportsoles-backend/internal/app/service"
	apperrors "github.com/sportsoles/sportsoles-backend/internal/errors"
	"github.com/sportsoles/sportsoles-backend/internal/middleware"
)

type OrderController struct {
	orderService  service.OrderService
	reportService service.ReportService
}

func NewOrderController(orderService service.OrderService, reportService service.ReportService) *OrderController {
	return &OrderController{
		orderService:  orderService,
		reportService: reportService,
	}
}

type CreateOrderRequest struct {
	ShippingName    string `json:"shipping_name" binding:"required"`
	ShippingEmail   string `json:"shipping_email" binding:"required,email"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	ShippingCity    string `json:"shipping_city" binding:"required"`
	ShippingState   string `json:"shipping_state" binding:"required"`
	ShippingZip     string `json:"shipping_zip" binding:"required"`
	ShippingCountry string `json:"shipping_country" binding:"required"`
	ShippingPhone   string `json:"shipping_phone" binding:"required"`
	PaymentMethod   string `json:"payment_method"`
}

// CreateOrder checks out the user's cart
// POST /api/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to create order")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create order request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Shipping details are incomplete")
		return
	}

	log.Debug("Creating order", map[string]interface{}{
		"user_id": userID,
	})

	shipping := service.ShippingDetails{
		Name:    req.ShippingName,
		Email:   req.ShippingEmail,
		Address: req.ShippingAddress,
		City:    req.ShippingCity,
		State:   req.ShippingState,
		Zip:     req.ShippingZip,
		Country: req.ShippingCountry,
		Phone:   req.ShippingPhone,
	}

	order, err := ctrl.orderService.CreateOrderFromCart(userID, shipping, req.PaymentMethod)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			log.Warn("Order creation failed: no cart", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.NotFound(c, apperrors.CartNotFound, "No cart found for this user")
		case errors.Is(err, service.ErrEmptyCart):
			log.Warn("Order creation failed: empty cart", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.BadRequest(c, apperrors.CartEmpty, "Your cart is empty")
		case errors.Is(err, service.ErrProductNotFound):
			log.Warn("Order creation failed: product missing", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.NotFound(c, apperrors.ProductNotFound, "A product in your cart is no longer available")
		case errors.As(err, &stockErr):
			log.Warn("Order creation failed: insufficient stock", map[string]interface{}{
				"user_id":   userID,
				"product":   stockErr.ProductName,
				"requested": stockErr.Requested,
				"available": stockErr.Available,
			})
			apperrors.RespondWithError(c, http.StatusConflict, apperrors.OrderInsufficientStock,
				fmt.Sprintf("Not enough stock for %s: %d requested, %d available",
					stockErr.ProductName, stockErr.Requested, stockErr.Available))
		default:
			log.Error("Order creation failed", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create order")
		}
		return
	}

	log.Info("Order created successfully", map[string]interface{}{
		"user_id":  userID,
		"order_id": order.ID,
		"total":    order.Total,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// GetOrders returns the user's orders, newest first
// GET /api/orders
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized access to orders")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := ctrl.orderService.GetUserOrders(userID)
	if err != nil {
		log.Error("Failed to fetch orders", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list orders")
		return
	}

	log.Info("Orders fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(orders),
	})

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrderByID returns one of the user's orders
// GET /api/orders/:id
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized access to order")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid order ID", map[string]interface{}{
			"user_id": userID,
			"id":      c.Param("id"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	order, err := ctrl.orderService.GetOrderByID(userID, uint(orderID))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			log.Warn("Order not found", map[string]interface{}{
				"user_id":  userID,
				"order_id": orderID,
			})
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": orderID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get order")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

// ExportOrders downloads the user's order history as an XLSX file
// GET /api/reports/orders
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized access to order report")
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	data, err := ctrl.reportService.BuildOrderReport(userID)
	if err != nil {
		log.Error("Failed to build order report", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Failed to build order report")
		return
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))

	log.Info("Order report exported", map[string]interface{}{
		"user_id": userID,
		"bytes":   len(data),
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
