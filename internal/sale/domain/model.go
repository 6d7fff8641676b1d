package domain

import (
	"context"
	"time"
)

// Sale is an immutable sales record. All derived amounts are persisted at
// sale time in minor units (cents); unit_price is snapshotted from the
// product, vat_rate is a percentage in [0,100].
type Sale struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ProductID   int64     `json:"product_id" gorm:"not null;index"`
	Quantity    int64     `json:"quantity" gorm:"not null"`
	UnitPrice   int64     `json:"unit_price" gorm:"not null"`
	Subtotal    int64     `json:"subtotal" gorm:"not null"`
	Discount    int64     `json:"discount" gorm:"not null"`
	VATRate     float64   `json:"vat_rate" gorm:"not null"`
	VATAmount   int64     `json:"vat_amount" gorm:"not null"`
	TotalAmount int64     `json:"total_amount" gorm:"not null"`
	PaidAmount  int64     `json:"paid_amount" gorm:"not null"`
	DueAmount   int64     `json:"due_amount" gorm:"not null"`
	SaleDate    time.Time `json:"sale_date" gorm:"type:date;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Sale) TableName() string { return "sales" }

// Service is the read side of sales; writes go through the accounting
// engine.
type Service interface {
	List(ctx context.Context, req ListRequest) ([]Sale, error)
}

type ListRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}
