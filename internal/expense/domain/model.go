package domain

import (
	"context"
	"time"
)

// DefaultCategory is applied when an expense is logged without one.
const DefaultCategory = "general"

// Expense is an immutable cash expense. Amount is minor units (cents).
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Amount      int64     `json:"amount" gorm:"not null"`
	ExpenseDate time.Time `json:"expense_date" gorm:"type:date;not null;index"`
	Category    string    `json:"category" gorm:"type:text;not null;default:general"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Expense) TableName() string { return "expenses" }

// Service is the read side of expenses; writes go through the accounting
// engine.
type Service interface {
	List(ctx context.Context, req ListRequest) ([]Expense, error)
}

type ListRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
}
