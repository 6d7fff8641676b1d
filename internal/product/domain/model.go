package domain

import "time"

// Product is a stocked item. Prices are minor units (cents). Products are
// immutable after creation; price or stock corrections happen through new
// business events, never by editing the row.
type Product struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:text;not null"`
	PurchasePrice int64     `json:"purchase_price" gorm:"not null"`
	SellPrice     int64     `json:"sell_price" gorm:"not null"`
	OpeningStock  int64     `json:"opening_stock" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
