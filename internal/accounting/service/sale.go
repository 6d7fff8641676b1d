package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	"github.com/smallbiznis/stockbook/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProcessSale is the core sale transition. The product row is locked for
// the duration of the transaction so the stock-sufficiency check and the
// stock-decrementing write cannot interleave with a concurrent sale of the
// same product.
//
// Journal model: Sales Revenue is credited at the gross subtotal and the
// discount is a contra-revenue debit, so the entry balances for every
// combination of conditional lines:
//
//	debit  5000 COGS                 quantity x purchase_price
//	credit 1200 Inventory            same (relieved at cost)
//	credit 4000 Sales Revenue        subtotal
//	credit 2200 VAT Payable          vat        (omitted when zero)
//	debit  1300 Accounts Receivable  due        (omitted when zero)
//	debit  1000 Cash                 paid       (omitted when zero)
//	debit  4100 Sales Discount       discount   (omitted when zero)
func (e *Engine) ProcessSale(ctx context.Context, req accountingdomain.SaleRequest) (*saledomain.Sale, error) {
	if req.Quantity < 1 {
		return nil, accountingdomain.ErrInvalidQuantity
	}
	if req.Discount < 0 {
		return nil, accountingdomain.ErrInvalidDiscount
	}
	if req.VATRate < 0 || req.VATRate > 100 {
		return nil, accountingdomain.ErrInvalidVATRate
	}
	if req.PaidAmount < 0 {
		return nil, accountingdomain.ErrInvalidPaidAmount
	}
	if req.SaleDate.IsZero() {
		return nil, accountingdomain.ErrInvalidDate
	}

	saleDate := dateOnly(req.SaleDate)

	var (
		sale      *saledomain.Sale
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

		subtotal := req.Quantity * product.SellPrice
		if req.Discount > subtotal {
			return accountingdomain.ErrDiscountExceedsSubtotal
		}
		afterDiscount := subtotal - req.Discount
		vatAmount := roundVAT(afterDiscount, req.VATRate)
		totalAmount := afterDiscount + vatAmount
		if req.PaidAmount > totalAmount {
			return accountingdomain.ErrPaidExceedsTotal
		}
		dueAmount := totalAmount - req.PaidAmount

		available, err := e.stockSvc.CurrentStockTx(ctx, tx, product.ID)
		if err != nil {
			return err
		}
		if available < req.Quantity {
			return &accountingdomain.InsufficientStockError{
				ProductID: product.ID,
				Requested: req.Quantity,
				Available: available,
			}
		}

		sale = &saledomain.Sale{
			ID:          e.genID.Generate().Int64(),
			ProductID:   product.ID,
			Quantity:    req.Quantity,
			UnitPrice:   product.SellPrice,
			Subtotal:    subtotal,
			Discount:    req.Discount,
			VATRate:     req.VATRate,
			VATAmount:   vatAmount,
			TotalAmount: totalAmount,
			PaidAmount:  req.PaidAmount,
			DueAmount:   dueAmount,
			SaleDate:    saleDate,
			CreatedAt:   time.Now().UTC(),
		}
		if err := tx.WithContext(ctx).Create(sale).Error; err != nil {
			return err
		}

		if err := e.stockSvc.Record(ctx, tx, &stockdomain.StockTransaction{
			ProductID:       product.ID,
			Kind:            stockdomain.KindSale,
			Quantity:        req.Quantity,
			UnitPrice:       product.SellPrice,
			TotalAmount:     subtotal,
			TransactionDate: saleDate,
			Note:            "Sale to Customer",
		}); err != nil {
			return err
		}

		lines := saleLines(sale, &product)
		if len(lines) == 0 {
			return nil
		}
		entries, err := e.ledgerSvc.AppendEntry(ctx, tx, saleDate, lines)
		if err != nil {
			return err
		}
		lineCount = len(entries)
		return nil
	})
	if err != nil {
		var insufficient *accountingdomain.InsufficientStockError
		if errors.As(err, &insufficient) && e.obsMetrics != nil {
			e.obsMetrics.RecordStockRejection()
		}
		return nil, err
	}

	e.recordEvent("sale", lineCount)
	e.log.Info("sale recorded",
		zap.Int64("sale_id", sale.ID),
		zap.Int64("product_id", sale.ProductID),
		zap.Int64("quantity", sale.Quantity),
		zap.Int64("total_amount", sale.TotalAmount),
		zap.Int64("due_amount", sale.DueAmount),
	)
	return sale, nil
}

// saleLines derives the journal lines of a sale. Zero-amount lines are
// omitted; every remaining amount is strictly positive, so the entry
// passes the structural balance check.
func saleLines(sale *saledomain.Sale, product *productdomain.Product) []ledgerdomain.Line {
	cogs := sale.Quantity * product.PurchasePrice

	lines := make([]ledgerdomain.Line, 0, 7)
	add := func(line ledgerdomain.Line) {
		if line.Amount <= 0 {
			return
		}
		line.SaleID = &sale.ID
		line.ProductID = &product.ID
		lines = append(lines, line)
	}

	ref := fmt.Sprintf("Sale #%d", sale.ID)
	add(ledgerdomain.Debit(ledgerdomain.AccountCOGS, cogs, "COGS - "+ref+" - "+product.Name))
	add(ledgerdomain.Credit(ledgerdomain.AccountInventory, cogs, "Inventory Reduction - "+ref+" - "+product.Name))
	add(ledgerdomain.Credit(ledgerdomain.AccountSalesRevenue, sale.Subtotal, "Sales Revenue - "+ref+" - "+product.Name))
	add(ledgerdomain.Credit(ledgerdomain.AccountVATPayable, sale.VATAmount, "VAT Payable - "+ref))
	add(ledgerdomain.Debit(ledgerdomain.AccountAccountsReceivable, sale.DueAmount, "Accounts Receivable - "+ref))
	add(ledgerdomain.Debit(ledgerdomain.AccountCash, sale.PaidAmount, "Cash Received - "+ref))
	add(ledgerdomain.Debit(ledgerdomain.AccountSalesDiscount, sale.Discount, "Sales Discount - "+ref))
	return lines
}

// roundVAT computes the VAT amount in cents, rounding half away from zero.
// This is the single rounding point of the engine; total and due are
// derived from the rounded value, keeping the balance law exact.
func roundVAT(afterDiscount int64, rate float64) int64 {
	return int64(math.Round(float64(afterDiscount) * rate / 100))
}
