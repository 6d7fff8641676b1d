package service

import (
	"context"
	"testing"
	"time"

	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	stockservice "github.com/smallbiznis/stockbook/internal/stock/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var purchaseDate = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

func TestProcessPurchase_RestocksAtCost(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, 10000, 20000, 50)

	txn, err := f.engine.ProcessPurchase(ctx, accountingdomain.PurchaseRequest{
		ProductID:    product.ID,
		Quantity:     5,
		PurchaseDate: purchaseDate,
	})
	require.NoError(t, err)
	assert.Equal(t, stockdomain.KindPurchase, txn.Kind)
	assert.Equal(t, int64(10000), txn.UnitPrice)
	assert.Equal(t, int64(50000), txn.TotalAmount)
	assert.Equal(t, "Restock", txn.Note)

	entries := f.journalEntries(t)
	require.Len(t, entries, 2)
	byAccount := amountByAccount(entries)
	assert.Equal(t, int64(50000), byAccount[ledgerdomain.AccountInventory.Code])
	assert.Equal(t, int64(50000), byAccount[ledgerdomain.AccountCash.Code])

	stockSvc := stockservice.NewService(stockservice.Params{DB: f.db, Log: zap.NewNop(), GenID: f.node})
	stock, err := stockSvc.CurrentStock(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(55), stock)
}

func TestProcessPurchase_KeepsCallerNote(t *testing.T) {
	f := newEngineFixture(t)
	product := f.seedProduct(t, 10000, 20000, 0)

	txn, err := f.engine.ProcessPurchase(context.Background(), accountingdomain.PurchaseRequest{
		ProductID:    product.ID,
		Quantity:     1,
		PurchaseDate: purchaseDate,
		Note:         "Supplier backorder",
	})
	require.NoError(t, err)
	assert.Equal(t, "Supplier backorder", txn.Note)
}

func TestProcessPurchase_ZeroCostSkipsJournal(t *testing.T) {
	f := newEngineFixture(t)
	product := f.seedProduct(t, 0, 20000, 0)

	txn, err := f.engine.ProcessPurchase(context.Background(), accountingdomain.PurchaseRequest{
		ProductID:    product.ID,
		Quantity:     3,
		PurchaseDate: purchaseDate,
	})
	require.NoError(t, err)
	assert.Zero(t, txn.TotalAmount)
	assert.Empty(t, f.journalEntries(t))

	var count int64
	require.NoError(t, f.db.Model(&stockdomain.StockTransaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProcessPurchase_Validation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, 10000, 20000, 0)

	_, err := f.engine.ProcessPurchase(ctx, accountingdomain.PurchaseRequest{
		ProductID:    product.ID,
		PurchaseDate: purchaseDate,
	})
	assert.ErrorIs(t, err, accountingdomain.ErrInvalidQuantity)

	_, err = f.engine.ProcessPurchase(ctx, accountingdomain.PurchaseRequest{
		ProductID: product.ID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, accountingdomain.ErrInvalidDate)

	_, err = f.engine.ProcessPurchase(ctx, accountingdomain.PurchaseRequest{
		ProductID:    42,
		Quantity:     1,
		PurchaseDate: purchaseDate,
	})
	assert.ErrorIs(t, err, productdomain.ErrNotFound)
}
