package domain

import "time"

// EntryType represents the side of a double-entry posting.
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// JournalEntry is one immutable line of the double-entry journal.
// Amounts are minor units (cents).
type JournalEntry struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	EntryNumber string    `json:"entry_number" gorm:"type:text;not null;uniqueIndex"`
	EntryDate   time.Time `json:"entry_date" gorm:"type:date;not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	EntryType   EntryType `json:"entry_type" gorm:"type:text;not null"`
	Amount      int64     `json:"amount" gorm:"not null"`
	AccountCode string    `json:"account_code" gorm:"type:text;not null;index"`
	AccountName string    `json:"account_name" gorm:"type:text;not null"`
	SaleID      *int64    `json:"sale_id,omitempty" gorm:"index"`
	ProductID   *int64    `json:"product_id,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (JournalEntry) TableName() string { return "journal_entries" }

// SequenceJournalEntry names the counter backing journal entry numbers.
const SequenceJournalEntry = "journal_entry"

// Sequence is a named monotonic counter. The value is advanced with a
// serialized read-modify-write inside the same transaction as the rows
// that consume it, so numbers assigned within a rolled-back event are
// rolled back with it.
type Sequence struct {
	Name  string `gorm:"primaryKey;type:text"`
	Value int64  `gorm:"not null"`
}

// TableName sets the database table name.
func (Sequence) TableName() string { return "journal_sequences" }
