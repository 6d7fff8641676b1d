package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
}

func NewService(p Params) ledgerdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("ledger.service"),
		genID: p.GenID,
	}
}

// AppendEntry numbers and inserts the journal lines of one business event.
// The balance law is checked structurally before anything is written; the
// entry numbers come from the journal sequence advanced inside the caller's
// transaction, so a rollback leaves neither rows nor consumed numbers.
func (s *Service) AppendEntry(ctx context.Context, tx *gorm.DB, entryDate time.Time, lines []ledgerdomain.Line) ([]ledgerdomain.JournalEntry, error) {
	if entryDate.IsZero() {
		return nil, ledgerdomain.ErrInvalidEntryDate
	}
	if err := ledgerdomain.ValidateBalanced(lines); err != nil {
		return nil, err
	}

	start, err := s.nextNumberBlock(ctx, tx, int64(len(lines)))
	if err != nil {
		return nil, err
	}

	entries := make([]ledgerdomain.JournalEntry, 0, len(lines))
	now := time.Now().UTC()
	for i, line := range lines {
		entry := ledgerdomain.JournalEntry{
			ID:          s.genID.Generate().Int64(),
			EntryNumber: formatEntryNumber(entryDate, start+int64(i)),
			EntryDate:   entryDate,
			Description: line.Description,
			EntryType:   line.Type,
			Amount:      line.Amount,
			AccountCode: line.Account.Code,
			AccountName: line.Account.Name,
			SaleID:      line.SaleID,
			ProductID:   line.ProductID,
			CreatedAt:   now,
		}
		if err := tx.WithContext(ctx).Create(&entry).Error; err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *Service) List(ctx context.Context, req ledgerdomain.ListRequest) ([]ledgerdomain.JournalEntry, error) {
	stmt := s.db.WithContext(ctx).Model(&ledgerdomain.JournalEntry{})
	if req.StartDate != nil {
		stmt = stmt.Where("entry_date >= ?", *req.StartDate)
	}
	if req.EndDate != nil {
		stmt = stmt.Where("entry_date <= ?", *req.EndDate)
	}

	var entries []ledgerdomain.JournalEntry
	if err := stmt.Order("entry_date DESC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// nextNumberBlock reserves n consecutive sequence values and returns the
// first. The single UPDATE on the sequence row serializes concurrent
// events; the reservation commits or rolls back with the caller's
// transaction. The row itself is seeded at migration, not here: a seed
// insert inside the open transaction would abort it on a unique violation
// under postgres.
func (s *Service) nextNumberBlock(ctx context.Context, tx *gorm.DB, n int64) (int64, error) {
	res := tx.WithContext(ctx).
		Model(&ledgerdomain.Sequence{}).
		Where("name = ?", ledgerdomain.SequenceJournalEntry).
		Update("value", gorm.Expr("value + ?", n))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ledgerdomain.ErrSequenceNotSeeded
	}

	var seq ledgerdomain.Sequence
	if err := tx.WithContext(ctx).
		Where("name = ?", ledgerdomain.SequenceJournalEntry).
		First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value - n + 1, nil
}

func formatEntryNumber(entryDate time.Time, seq int64) string {
	return fmt.Sprintf("JE-%s-%04d", entryDate.Format("20060102"), seq)
}
