package model

import "time"

// Product is a catalog entry owned by the user who listed it (the seller).
// Soft-deleted the same way as Category.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null;index"`
	Description   string    `json:"description,omitempty" gorm:"type:text"`
	Price         float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int       `json:"stock_quantity" gorm:"not null;default:0"`
	ImageURL      string    `json:"image_url,omitempty" gorm:"size:512"`
	CategoryID    uint      `json:"category_id" gorm:"not null;index"`
	SellerID      uint      `json:"seller_id" gorm:"not null;index"`
	IsActive      bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Seller   *User     `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
}
