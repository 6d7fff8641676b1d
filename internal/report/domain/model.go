package domain

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid_date_range")

// Summary aggregates sales, expenses and profit over an inclusive date
// range. Amounts are minor units (cents); dates are ISO calendar dates.
type Summary struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	TotalSales    int64 `json:"total_sales"`
	TotalExpenses int64 `json:"total_expenses"`
	TotalDiscount int64 `json:"total_discount"`
	TotalVAT      int64 `json:"total_vat"`
	TotalPaid     int64 `json:"total_paid"`
	TotalDue      int64 `json:"total_due"`

	// COGSTotal is recomputed from the current product purchase price,
	// not read back from the posted COGS journal amounts.
	COGSTotal   int64 `json:"cogs_total"`
	GrossProfit int64 `json:"gross_profit"`
	NetProfit   int64 `json:"net_profit"`

	Days []DayStat `json:"days"`
}

// DayStat is the per-day breakdown row, newest date first.
type DayStat struct {
	Date     string `json:"date"`
	Sales    int64  `json:"sales"`
	Expenses int64  `json:"expenses"`
	Net      int64  `json:"net"`
}

// Overview is the dashboard snapshot.
type Overview struct {
	TotalProducts int64 `json:"total_products"`
	TotalStock    int64 `json:"total_stock"`
	TodaySales    int64 `json:"today_sales"`
	TodayExpenses int64 `json:"today_expenses"`
}

// Service is a read-only consumer of persisted sales, expenses and journal
// rows; it never writes.
type Service interface {
	Report(ctx context.Context, startDate, endDate time.Time) (*Summary, error)
	Overview(ctx context.Context) (*Overview, error)
}
