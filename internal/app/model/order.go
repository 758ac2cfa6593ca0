package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	// Orders are written once at checkout and never transition afterwards.
	OrderStatusPending OrderStatus = "pending"
)

type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	Total           float64        `gorm:"not null" json:"total"`
	Status          OrderStatus    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ShippingName    string         `gorm:"not null" json:"shipping_name"`
	ShippingEmail   string         `gorm:"not null" json:"shipping_email"`
	ShippingAddress string         `gorm:"not null" json:"shipping_address"`
	ShippingCity    string         `gorm:"not null" json:"shipping_city"`
	ShippingState   string         `gorm:"not null" json:"shipping_state"`
	ShippingZip     string         `gorm:"not null" json:"shipping_zip"`
	ShippingCountry string         `gorm:"not null" json:"shipping_country"`
	ShippingPhone   string         `gorm:"not null" json:"shipping_phone"`
	PaymentMethod   string         `gorm:"type:varchar(50);default:'card'" json:"payment_method"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	User  User        `gorm:"foreignKey:UserID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots product name, price and image at checkout so later
// catalog edits do not rewrite order history.
type OrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	OrderID      uint      `gorm:"not null;index" json:"order_id"`
	ProductID    *uint     `gorm:"index" json:"product_id,omitempty"`
	ProductName  string    `gorm:"not null" json:"product_name"`
	ProductPrice float64   `gorm:"not null" json:"product_price"`
	ProductImage string    `json:"product_image"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`

	Order   Order    `gorm:"foreignKey:OrderID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
