package domain

import (
	"context"

	"gorm.io/gorm"
)

// Service maintains the per-product inventory transaction history and
// derives the current on-hand quantity.
type Service interface {
	// CurrentStock returns opening_stock + sum(purchase) - sum(sale) for
	// the product. Opening-kind rows are not summed.
	CurrentStock(ctx context.Context, productID int64) (int64, error)

	// CurrentStockTx is CurrentStock evaluated inside an open transaction,
	// for checks that must be serialized with a subsequent write.
	CurrentStockTx(ctx context.Context, tx *gorm.DB, productID int64) (int64, error)

	// Record appends one immutable stock transaction. There is no update
	// or delete. Record panics on an invalid kind.
	Record(ctx context.Context, tx *gorm.DB, txn *StockTransaction) error
}
