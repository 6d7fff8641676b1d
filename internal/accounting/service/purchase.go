package service

import (
	"context"
	"errors"
	"strings"

	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	"github.com/smallbiznis/stockbook/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProcessPurchase restocks a product at its purchase price: one
// purchase-kind stock row plus debit Inventory / credit Cash at cost.
func (e *Engine) ProcessPurchase(ctx context.Context, req accountingdomain.PurchaseRequest) (*stockdomain.StockTransaction, error) {
	if req.Quantity < 1 {
		return nil, accountingdomain.ErrInvalidQuantity
	}
	if req.PurchaseDate.IsZero() {
		return nil, accountingdomain.ErrInvalidDate
	}

	purchaseDate := dateOnly(req.PurchaseDate)
	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = "Restock"
	}

	var (
		txn       *stockdomain.StockTransaction
		lineCount int
	)
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product productdomain.Product
		err := db.LockForUpdate(tx.WithContext(ctx)).
			Where("id = ?", req.ProductID).
			First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return productdomain.ErrNotFound
		}
		if err != nil {
			return err
		}

		amount := req.Quantity * product.PurchasePrice
		txn = &stockdomain.StockTransaction{
			ID:              e.genID.Generate().Int64(),
			ProductID:       product.ID,
			Kind:            stockdomain.KindPurchase,
			Quantity:        req.Quantity,
			UnitPrice:       product.PurchasePrice,
			TotalAmount:     amount,
			TransactionDate: purchaseDate,
			Note:            note,
		}
		if err := e.stockSvc.Record(ctx, tx, txn); err != nil {
			return err
		}

		if amount == 0 {
			return nil
		}

		lines := withProductRef([]ledgerdomain.Line{
			ledgerdomain.Debit(ledgerdomain.AccountInventory, amount, "Inventory Purchase - "+product.Name),
			ledgerdomain.Credit(ledgerdomain.AccountCash, amount, "Cash Payment - Restock "+product.Name),
		}, product.ID)
		entries, err := e.ledgerSvc.AppendEntry(ctx, tx, purchaseDate, lines)
		if err != nil {
			return err
		}
		lineCount = len(entries)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.recordEvent("purchase", lineCount)
	e.log.Info("purchase recorded",
		zap.Int64("product_id", txn.ProductID),
		zap.Int64("quantity", txn.Quantity),
		zap.Int64("amount", txn.TotalAmount),
	)
	return txn, nil
}
