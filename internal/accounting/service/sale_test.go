package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	stockservice "github.com/smallbiznis/stockbook/internal/stock/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var saleDate = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestProcessSale_DerivesAmountsAndBalances(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, 10000, 20000, 50)

	sale, err := f.engine.ProcessSale(ctx, accountingdomain.SaleRequest{
		ProductID:  product.ID,
		Quantity:   10,
		Discount:   5000,
		VATRate:    5,
		PaidAmount: 100000,
		SaleDate:   saleDate,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20000), sale.UnitPrice)
	assert.Equal(t, int64(200000), sale.Subtotal)
	assert.Equal(t, int64(9750), sale.VATAmount)
	assert.Equal(t, int64(204750), sale.TotalAmount)
	assert.Equal(t, int64(104750), sale.DueAmount)

	entries := f.journalEntries(t)
	require.Len(t, entries, 7)
	debits, credits := journalBalance(entries)
	assert.Equal(t, int64(309750), debits)
	assert.Equal(t, int64(309750), credits)

	byAccount := amountByAccount(entries)
	assert.Equal(t, int64(100000), byAccount[ledgerdomain.AccountCOGS.Code])
	assert.Equal(t, int64(100000), byAccount[ledgerdomain.AccountInventory.Code])
	assert.Equal(t, int64(200000), byAccount[ledgerdomain.AccountSalesRevenue.Code])
	assert.Equal(t, int64(9750), byAccount[ledgerdomain.AccountVATPayable.Code])
	assert.Equal(t, int64(104750), byAccount[ledgerdomain.AccountAccountsReceivable.Code])
	assert.Equal(t, int64(100000), byAccount[ledgerdomain.AccountCash.Code])
	assert.Equal(t, int64(5000), byAccount[ledgerdomain.AccountSalesDiscount.Code])

	for _, entry := range entries {
		require.NotNil(t, entry.SaleID)
		assert.Equal(t, sale.ID, *entry.SaleID)
	}
}

func TestProcessSale_DecrementsStock(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, 10000, 20000, 50)

	_, err := f.engine.ProcessSale(ctx, accountingdomain.SaleRequest{
		ProductID:  product.ID,
		Quantity:   10,
		PaidAmount: 200000,
		SaleDate:   saleDate,
	})
	require.NoError(t, err)

	stockSvc := stockservice.NewService(stockservice.Params{DB: f.db, Log: zap.NewNop(), GenID: f.node})
	stock, err := stockSvc.CurrentStock(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stock)
}

func TestProcessSale_OmitsZeroLines(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, 10000, 20000, 50)

	// Fully paid, no discount, no VAT: no receivable, discount or VAT lines.
	_, err := f.engine.ProcessSale(ctx, accountingdomain.SaleRequest{
		ProductID:  product.ID,
		Quantity:   2,
		PaidAmount: 40000,
		SaleDate:   saleDate,
	})
	require.NoError(t, err)

	entries := f.journalEntries(t)
	require.Len(t, entries, 4)
	byAccount := amountByAccount(entries)
	assert.NotContains(t, byAccount, ledgerdomain.AccountAccountsReceivable.Code)
	assert.NotContains(t, byAccount, ledgerdomain.AccountSalesDiscount.Code)
	assert.NotContains(t, byAccount, ledgerdomain.AccountVATPayable.Code)
	debits, credits := journalBalance(entries)
	assert.Equal(t, debits, credits)
}

// TestProcessSale_ConditionalLineMatrix walks every combination of the
// conditional journal lines: discount on/off, VAT on/off, and payment
// none/partial/full. Each cell must balance exactly and post a line for an
// amount if and only if that amount is positive.
func TestProcessSale_ConditionalLineMatrix(t *testing.T) {
	for _, discount := range []int64{0, 5000} {
		for _, vatRate := range []float64{0, 5} {
			for _, payment := range []string{"none", "partial", "full"} {
				name := fmt.Sprintf("discount=%d/vat=%v/paid=%s", discount, vatRate, payment)
				t.Run(name, func(t *testing.T) {
					f := newEngineFixture(t)
					product := f.seedProduct(t, 10000, 20000, 50)

					subtotal := 2 * product.SellPrice
					afterDiscount := subtotal - discount
					total := afterDiscount + roundVAT(afterDiscount, vatRate)
					var paid int64
					switch payment {
					case "partial":
						paid = total / 2
					case "full":
						paid = total
					}

					sale, err := f.engine.ProcessSale(context.Background(), accountingdomain.SaleRequest{
						ProductID:  product.ID,
						Quantity:   2,
						Discount:   discount,
						VATRate:    vatRate,
						PaidAmount: paid,
						SaleDate:   saleDate,
					})
					require.NoError(t, err)
					assert.Equal(t, total, sale.TotalAmount)

					entries := f.journalEntries(t)
					debits, credits := journalBalance(entries)
					assert.Equal(t, debits, credits)
					assert.Positive(t, debits)

					byAccount := amountByAccount(entries)
					assert.Equal(t, int64(20000), byAccount[ledgerdomain.AccountCOGS.Code])
					assert.Equal(t, int64(20000), byAccount[ledgerdomain.AccountInventory.Code])
					assert.Equal(t, subtotal, byAccount[ledgerdomain.AccountSalesRevenue.Code])
					assertConditionalLine(t, byAccount, ledgerdomain.AccountVATPayable.Code, sale.VATAmount)
					assertConditionalLine(t, byAccount, ledgerdomain.AccountAccountsReceivable.Code, sale.DueAmount)
					assertConditionalLine(t, byAccount, ledgerdomain.AccountCash.Code, sale.PaidAmount)
					assertConditionalLine(t, byAccount, ledgerdomain.AccountSalesDiscount.Code, sale.Discount)
				})
			}
		}
	}
}

// assertConditionalLine requires the account to carry exactly amount when
// positive, and to be absent from the entry when zero.
func assertConditionalLine(t *testing.T, byAccount map[string]int64, code string, amount int64) {
	t.Helper()
	if amount > 0 {
		assert.Equal(t, amount, byAccount[code])
	} else {
		assert.NotContains(t, byAccount, code)
	}
}

func TestProcessSale_FullyUnpaidOnCredit(t *testing.T) {
	f := newEngineFixture(t)
	product := f.seedProduct(t, 10000, 20000, 50)

	sale, err := f.engine.ProcessSale(context.Background(), accountingdomain.SaleRequest{
		ProductID: product.ID,
		Quantity:  2,
		SaleDate:  saleDate,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40000), sale.DueAmount)

	byAccount := amountByAccount(f.journalEntries(t))
	assert.Equal(t, int64(40000), byAccount[ledgerdomain.AccountAccountsReceivable.Code])
	assert.NotContains(t, byAccount, ledgerdomain.AccountCash.Code)
}

func TestProcessSale_ZeroValueSaleSkipsJournal(t *testing.T) {
	f := newEngineFixture(t)
	product := f.seedProduct(t, 0, 0, 10)

	sale, err := f.engine.ProcessSale(context.Background(), accountingdomain.SaleRequest{
		ProductID: product.ID,
		Quantity:  2,
		SaleDate:  saleDate,
	})
	require.NoError(t, err)
	assert.Zero(t, sale.TotalAmount)

	// The sale and its stock movement are still recorded.
	var saleCount, stockCount int64
	require.NoError(t, f.db.Model(&saledomain.Sale{}).Count(&saleCount).Error)
	require.NoError(t, f.db.Model(&stockdomain.StockTransaction{}).Count(&stockCount).Error)
	assert.Equal(t, int64(1), saleCount)
	assert.Equal(t, int64(1), stockCount)
	assert.Empty(t, f.journalEntries(t))
}

func TestProcessSale_InsufficientStockWritesNothing(t *testing.T) {
	f := newEngineFixture(t)
	product := f.seedProduct(t, 10000, 20000, 50)

	_, err := f.engine.ProcessSale(context.Background(), accountingdomain.SaleRequest{
		ProductID: product.ID,
		Quantity:  60,
		SaleDate:  saleDate,
	})

	var insufficient *accountingdomain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, product.ID, insufficient.ProductID)
	assert.Equal(t, int64(60), insufficient.Requested)
	assert.Equal(t, int64(50), insufficient.Available)

	var saleCount, stockCount, entryCount int64
	require.NoError(t, f.db.Model(&saledomain.Sale{}).Count(&saleCount).Error)
	require.NoError(t, f.db.Model(&stockdomain.StockTransaction{}).Count(&stockCount).Error)
	require.NoError(t, f.db.Model(&ledgerdomain.JournalEntry{}).Count(&entryCount).Error)
	assert.Zero(t, saleCount)
	assert.Zero(t, stockCount)
	assert.Zero(t, entryCount)
}

func TestProcessSale_Validation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, 10000, 20000, 50)

	cases := []struct {
		name string
		req  accountingdomain.SaleRequest
		want error
	}{
		{"zero quantity", accountingdomain.SaleRequest{ProductID: product.ID, SaleDate: saleDate}, accountingdomain.ErrInvalidQuantity},
		{"negative discount", accountingdomain.SaleRequest{ProductID: product.ID, Quantity: 1, Discount: -1, SaleDate: saleDate}, accountingdomain.ErrInvalidDiscount},
		{"vat below range", accountingdomain.SaleRequest{ProductID: product.ID, Quantity: 1, VATRate: -0.5, SaleDate: saleDate}, accountingdomain.ErrInvalidVATRate},
		{"vat above range", accountingdomain.SaleRequest{ProductID: product.ID, Quantity: 1, VATRate: 100.5, SaleDate: saleDate}, accountingdomain.ErrInvalidVATRate},
		{"negative paid", accountingdomain.SaleRequest{ProductID: product.ID, Quantity: 1, PaidAmount: -1, SaleDate: saleDate}, accountingdomain.ErrInvalidPaidAmount},
		{"zero date", accountingdomain.SaleRequest{ProductID: product.ID, Quantity: 1}, accountingdomain.ErrInvalidDate},
		{"discount exceeds subtotal", accountingdomain.SaleRequest{ProductID: product.ID, Quantity: 1, Discount: 20001, SaleDate: saleDate}, accountingdomain.ErrDiscountExceedsSubtotal},
		{"paid exceeds total", accountingdomain.SaleRequest{ProductID: product.ID, Quantity: 1, PaidAmount: 20001, SaleDate: saleDate}, accountingdomain.ErrPaidExceedsTotal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.engine.ProcessSale(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestProcessSale_UnknownProduct(t *testing.T) {
	f := newEngineFixture(t)

	_, err := f.engine.ProcessSale(context.Background(), accountingdomain.SaleRequest{
		ProductID: 42,
		Quantity:  1,
		SaleDate:  saleDate,
	})
	assert.ErrorIs(t, err, productdomain.ErrNotFound)
}

func TestRoundVAT(t *testing.T) {
	assert.Equal(t, int64(9750), roundVAT(195000, 5))
	assert.Equal(t, int64(0), roundVAT(195000, 0))
	assert.Equal(t, int64(195000), roundVAT(195000, 100))
	// Half rounds away from zero.
	assert.Equal(t, int64(3), roundVAT(1000, 0.25))
}
