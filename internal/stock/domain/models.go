package domain

import "time"

// TransactionKind classifies a stock movement. Kinds are engine constants;
// an unknown kind reaching the stock ledger is a programming error.
type TransactionKind string

const (
	// KindOpening records the initial quantity at product creation. Opening
	// rows are audit history only: current stock is derived from the
	// product's own opening_stock field, never from these rows, so the
	// quantity is not double counted.
	KindOpening  TransactionKind = "opening"
	KindPurchase TransactionKind = "purchase"
	KindSale     TransactionKind = "sale"
)

// Valid reports whether k is one of the enumerated kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindOpening, KindPurchase, KindSale:
		return true
	default:
		return false
	}
}

// StockTransaction is one immutable inventory movement. Quantity is always
// stored positive; the kind determines direction. Amounts are minor units
// (cents).
type StockTransaction struct {
	ID              int64           `json:"id" gorm:"primaryKey"`
	ProductID       int64           `json:"product_id" gorm:"not null;index"`
	Kind            TransactionKind `json:"kind" gorm:"type:text;not null;index"`
	Quantity        int64           `json:"quantity" gorm:"not null"`
	UnitPrice       int64           `json:"unit_price" gorm:"not null"`
	TotalAmount     int64           `json:"total_amount" gorm:"not null"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"type:date;not null;index"`
	Note            string          `json:"note" gorm:"type:text"`
	CreatedAt       time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (StockTransaction) TableName() string { return "stock_transactions" }
