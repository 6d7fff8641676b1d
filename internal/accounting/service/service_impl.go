package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	expensedomain "github.com/smallbiznis/stockbook/internal/expense/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	obsmetrics "github.com/smallbiznis/stockbook/internal/observability/metrics"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	StockSvc   stockdomain.Service
	LedgerSvc  ledgerdomain.Service
	ObsMetrics *obsmetrics.Metrics `optional:"true"`
}

// Engine is the accounting derivation core. It owns the write path for
// every business event; read surfaces never go through it.
type Engine struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	stockSvc   stockdomain.Service
	ledgerSvc  ledgerdomain.Service
	obsMetrics *obsmetrics.Metrics
}

func NewEngine(p Params) accountingdomain.Engine {
	return &Engine{
		db:         p.DB,
		log:        p.Log.Named("accounting.engine"),
		genID:      p.GenID,
		stockSvc:   p.StockSvc,
		ledgerSvc:  p.LedgerSvc,
		obsMetrics: p.ObsMetrics,
	}
}

// ProcessOpeningStock posts the opening stock event for a product that was
// inserted in the same transaction: one opening-kind stock row plus
// debit Inventory / credit Opening Stock Equity at cost.
func (e *Engine) ProcessOpeningStock(ctx context.Context, tx *gorm.DB, product *productdomain.Product) error {
	if product.OpeningStock <= 0 {
		return nil
	}

	amount := product.OpeningStock * product.PurchasePrice
	entryDate := dateOnly(time.Now().UTC())

	err := e.stockSvc.Record(ctx, tx, &stockdomain.StockTransaction{
		ProductID:       product.ID,
		Kind:            stockdomain.KindOpening,
		Quantity:        product.OpeningStock,
		UnitPrice:       product.PurchasePrice,
		TotalAmount:     amount,
		TransactionDate: entryDate,
		Note:            "Opening Stock",
	})
	if err != nil {
		return err
	}

	// A zero purchase price yields a zero-value event with no postable
	// amount; the stock history row above is still kept.
	if amount == 0 {
		return nil
	}

	description := "Opening Stock - " + product.Name
	lines := withProductRef([]ledgerdomain.Line{
		ledgerdomain.Debit(ledgerdomain.AccountInventory, amount, description),
		ledgerdomain.Credit(ledgerdomain.AccountOpeningStockEquity, amount, description),
	}, product.ID)

	entries, err := e.ledgerSvc.AppendEntry(ctx, tx, entryDate, lines)
	if err != nil {
		return err
	}

	e.recordEvent("opening_stock", len(entries))
	e.log.Info("opening stock posted",
		zap.Int64("product_id", product.ID),
		zap.Int64("quantity", product.OpeningStock),
		zap.Int64("amount", amount),
	)
	return nil
}

// ProcessExpense persists the expense and its journal pair: debit Expenses,
// credit Cash. A zero-amount expense records no journal lines.
func (e *Engine) ProcessExpense(ctx context.Context, req accountingdomain.ExpenseRequest) (*expensedomain.Expense, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, accountingdomain.ErrInvalidDescription
	}
	if req.Amount < 0 {
		return nil, accountingdomain.ErrInvalidAmount
	}
	if req.ExpenseDate.IsZero() {
		return nil, accountingdomain.ErrInvalidDate
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = expensedomain.DefaultCategory
	}

	expense := &expensedomain.Expense{
		ID:          e.genID.Generate().Int64(),
		Description: description,
		Amount:      req.Amount,
		ExpenseDate: dateOnly(req.ExpenseDate),
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	var lineCount int
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(expense).Error; err != nil {
			return err
		}

		if expense.Amount == 0 {
			return nil
		}

		lines := []ledgerdomain.Line{
			ledgerdomain.Debit(ledgerdomain.AccountExpenses, expense.Amount, "Expense - "+description),
			ledgerdomain.Credit(ledgerdomain.AccountCash, expense.Amount, "Cash Payment - "+description),
		}
		entries, err := e.ledgerSvc.AppendEntry(ctx, tx, expense.ExpenseDate, lines)
		if err != nil {
			return err
		}
		lineCount = len(entries)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.recordEvent("expense", lineCount)
	e.log.Info("expense recorded",
		zap.Int64("expense_id", expense.ID),
		zap.Int64("amount", expense.Amount),
		zap.String("category", expense.Category),
	)
	return expense, nil
}

func (e *Engine) recordEvent(eventType string, lines int) {
	if e.obsMetrics == nil {
		return
	}
	e.obsMetrics.RecordEvent(eventType)
	if lines > 0 {
		e.obsMetrics.RecordJournalLines(lines)
	}
}

func withProductRef(lines []ledgerdomain.Line, productID int64) []ledgerdomain.Line {
	for i := range lines {
		lines[i].ProductID = &productID
	}
	return lines
}

// dateOnly normalizes a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
