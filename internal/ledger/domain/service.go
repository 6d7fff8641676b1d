package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Service appends balanced journal entries and reads them back for audit.
type Service interface {
	// AppendEntry validates that lines balance, numbers each line from the
	// journal sequence and inserts the rows. It MUST be called within the
	// transaction of the business event that generated the lines.
	AppendEntry(ctx context.Context, tx *gorm.DB, entryDate time.Time, lines []Line) ([]JournalEntry, error)

	// List returns entries ordered entry_date DESC then id ASC, optionally
	// limited to an inclusive date range.
	List(ctx context.Context, req ListRequest) ([]JournalEntry, error)
}

type ListRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}
