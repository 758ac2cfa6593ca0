package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategorySneakers   ProductCategory = "sneakers"
	CategoryBoots      ProductCategory = "boots"
	CategorySandals    ProductCategory = "sandals"
	CategoryDressShoes ProductCategory = "dress-shoes"
	CategoryAthletic   ProductCategory = "athletic"
	CategoryCasual     ProductCategory = "casual"
)

type Product struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       float64         `gorm:"not null" json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    ProductCategory `gorm:"type:varchar(50);index" json:"category"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Featured    bool            `gorm:"default:false;index" json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	OrderItems []OrderItem `gorm:"foreignKey:ProductID" json:"-"`
	CartItems  []CartItem  `gorm:"foreignKey:ProductID" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
