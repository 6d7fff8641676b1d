package domain

import (
	"context"
	"time"

	expensedomain "github.com/smallbiznis/stockbook/internal/expense/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	"gorm.io/gorm"
)

// Engine converts validated business events into balanced journal entries
// and stock transactions. Each entry point is a single atomic state
// transition: either every row of the event commits, or none do.
type Engine interface {
	// ProcessOpeningStock records the opening stock event for a freshly
	// inserted product. It MUST be called within the transaction that
	// created the product. Products with no opening stock are a no-op.
	ProcessOpeningStock(ctx context.Context, tx *gorm.DB, product *productdomain.Product) error

	// ProcessSale checks stock sufficiency, persists the sale with all
	// derived amounts and posts its journal lines, serialized per product.
	ProcessSale(ctx context.Context, req SaleRequest) (*saledomain.Sale, error)

	// ProcessPurchase restocks an existing product at cost.
	ProcessPurchase(ctx context.Context, req PurchaseRequest) (*stockdomain.StockTransaction, error)

	// ProcessExpense persists a cash expense with its two journal lines.
	ProcessExpense(ctx context.Context, req ExpenseRequest) (*expensedomain.Expense, error)
}

// SaleRequest carries a pre-validated sale event. Amounts are minor units
// (cents); VATRate is a percentage in [0,100].
type SaleRequest struct {
	ProductID  int64
	Quantity   int64
	Discount   int64
	VATRate    float64
	PaidAmount int64
	SaleDate   time.Time
}

type PurchaseRequest struct {
	ProductID    int64
	Quantity     int64
	PurchaseDate time.Time
	Note         string
}

type ExpenseRequest struct {
	Description string
	Amount      int64
	ExpenseDate time.Time
	Category    string
}
