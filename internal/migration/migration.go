package migration

import (
	expensedomain "github.com/smallbiznis/stockbook/internal/expense/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	"github.com/smallbiznis/stockbook/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Invoke(Run)

// Run migrates the schema and seeds the journal sequence counter. The
// ledger never seeds the row itself, so entry numbering depends on this
// having run. Two replicas starting at once may race the seed; the loser's
// duplicate-key error is tolerated.
func Run(gdb *gorm.DB, log *zap.Logger) error {
	if err := gdb.AutoMigrate(
		&productdomain.Product{},
		&stockdomain.StockTransaction{},
		&saledomain.Sale{},
		&expensedomain.Expense{},
		&ledgerdomain.JournalEntry{},
		&ledgerdomain.Sequence{},
	); err != nil {
		return err
	}

	seq := ledgerdomain.Sequence{Name: ledgerdomain.SequenceJournalEntry}
	if err := gdb.Where(ledgerdomain.Sequence{Name: ledgerdomain.SequenceJournalEntry}).
		FirstOrCreate(&seq).Error; err != nil && !db.IsDuplicateKeyErr(err) {
		return err
	}

	log.Info("schema migrated")
	return nil
}
