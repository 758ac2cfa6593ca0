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

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// GetProducts returns the catalog, optionally filtered
// GET /api/products?featured=true&category=sneakers&limit=4
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var opts service.ProductListOptions

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured, err := strconv.ParseBool(featuredStr)
		if err != nil {
			log.Warn("Invalid featured filter", map[string]interface{}{
				"featured": featuredStr,
			})
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid featured filter")
			return
		}
		opts.Featured = &featured
	}

	if categoryStr := c.Query("category"); categoryStr != "" {
		category := model.ProductCategory(categoryStr)
		opts.Category = &category
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			log.Warn("Invalid limit parameter", map[string]interface{}{
				"limit": limitStr,
			})
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid limit parameter")
			return
		}
		opts.Limit = limit
	}

	products, err := ctrl.productService.ListProducts(opts)
	if err != nil {
		log.Error("Failed to fetch products", err)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list products")
		return
	}

	log.Info("Products fetched successfully", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProductByID returns a single product
// GET /api/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid product ID", map[string]interface{}{
			"id": c.Param("id"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	product, err := ctrl.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get product")
		return
	}

	log.Debug("Product fetched successfully", map[string]interface{}{
		"product_id": product.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}
