package service

import (
	"errors"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	"github.com/sportsoles/sportsoles-backend/internal/app/repository"
	"github.com/sportsoles/sportsoles-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductListOptions struct {
	Featured *bool
	Category *model.ProductCategory
	Limit    int
}

type ProductService interface {
	ListProducts(opts ProductListOptions) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	ImportProducts(products []model.Product) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) ListProducts(opts ProductListOptions) ([]model.Product, error) {
	logger.Debug("Listing products", map[string]interface{}{
		"featured": opts.Featured,
		"category": opts.Category,
		"limit":    opts.Limit,
	})

	products, err := s.productRepo.FindWithFilter(repository.ProductFilter{
		Featured: opts.Featured,
		Category: opts.Category,
		Limit:    opts.Limit,
	})
	if err != nil {
		logger.Error("Failed to list products", err, map[string]interface{}{
			"featured": opts.Featured,
			"category": opts.Category,
		})
		return nil, err
	}

	logger.Info("Products listed successfully", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	logger.Debug("Fetching product by ID", map[string]interface{}{
		"product_id": id,
	})

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	return product, nil
}

// ImportProducts loads a batch of products, used by the catalog import tool
func (s *productService) ImportProducts(products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	logger.Info("Importing products", map[string]interface{}{
		"count": len(products),
	})

	if err := s.productRepo.BulkCreate(products); err != nil {
		logger.Error("Failed to import products", err, map[string]interface{}{
			"count": len(products),
		})
		return err
	}

	logger.Info("Products imported successfully", map[string]interface{}{
		"count": len(products),
	})
	return nil
}
