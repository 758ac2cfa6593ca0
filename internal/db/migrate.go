package db

import (
	"fmt"

	"github.com/sportsoles/sportsoles-backend/internal/app/model"
	appLogger "github.com/sportsoles/sportsoles-backend/pkg/logger"
)

// Migrate runs database migrations and seeds the catalog on first boot
func Migrate() error {
	appLogger.Info("Running database migrations...")

	err := DB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	appLogger.Info("Database migrations completed successfully")

	if err := seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	return nil
}

// seedProducts inserts the starter catalog when the products table is empty.
// Re-running the server never duplicates rows.
func seedProducts() error {
	var count int64
	if err := DB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		appLogger.Debug("Products already seeded, skipping", map[string]interface{}{
			"count": count,
		})
		return nil
	}

	products := []model.Product{
		{
			Name:        "Classic White Sneakers",
			Description: "Timeless white leather sneakers that pair with everything. Cushioned insole for all-day comfort.",
			Price:       79.99,
			ImageURL:    "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500",
			Category:    model.CategorySneakers,
			Stock:       50,
			Featured:    true,
		},
		{
			Name:        "Leather Boots",
			Description: "Rugged full-grain leather boots built for the trail and the street alike.",
			Price:       129.99,
			ImageURL:    "https://images.unsplash.com/photo-1520639888713-7851133b1ed0?w=500",
			Category:    model.CategoryBoots,
			Stock:       30,
			Featured:    true,
		},
		{
			Name:        "Running Shoes Pro",
			Description: "Lightweight performance runners with responsive foam and breathable mesh upper.",
			Price:       149.99,
			ImageURL:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Category:    model.CategoryAthletic,
			Stock:       45,
			Featured:    true,
		},
		{
			Name:        "Summer Sandals",
			Description: "Breathable strappy sandals with a contoured footbed for warm-weather comfort.",
			Price:       39.99,
			ImageURL:    "https://images.unsplash.com/photo-1603487742131-4160ec999306?w=500",
			Category:    model.CategorySandals,
			Stock:       60,
			Featured:    false,
		},
		{
			Name:        "Oxford Dress Shoes",
			Description: "Polished cap-toe oxfords in rich brown leather. Goodyear welted for longevity.",
			Price:       159.99,
			ImageURL:    "https://images.unsplash.com/photo-1614252369475-531eba835eb1?w=500",
			Category:    model.CategoryDressShoes,
			Stock:       25,
			Featured:    false,
		},
		{
			Name:        "Canvas Slip-Ons",
			Description: "Easy on, easy off. Durable canvas slip-ons with a vulcanized rubber sole.",
			Price:       49.99,
			ImageURL:    "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=500",
			Category:    model.CategoryCasual,
			Stock:       70,
			Featured:    false,
		},
		{
			Name:        "High-Top Basketball Shoes",
			Description: "Ankle-supporting high-tops with herringbone traction for quick cuts.",
			Price:       119.99,
			ImageURL:    "https://images.unsplash.com/photo-1556906781-9a412961c28c?w=500",
			Category:    model.CategoryAthletic,
			Stock:       35,
			Featured:    true,
		},
		{
			Name:        "Chelsea Boots",
			Description: "Sleek elastic-sided Chelsea boots in black suede. Dress them up or down.",
			Price:       139.99,
			ImageURL:    "https://images.unsplash.com/photo-1638247025967-b4e38f787b76?w=500",
			Category:    model.CategoryBoots,
			Stock:       28,
			Featured:    false,
		},
	}

	if err := DB.Create(&products).Error; err != nil {
		return err
	}

	appLogger.Info("Seeded starter product catalog", map[string]interface{}{
		"count": len(products),
	})
	return nil
}
