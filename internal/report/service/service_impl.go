package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/smallbiznis/stockbook/internal/cache"
	"github.com/smallbiznis/stockbook/internal/config"
	expensedomain "github.com/smallbiznis/stockbook/internal/expense/domain"
	reportdomain "github.com/smallbiznis/stockbook/internal/report/domain"
	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	Cache *cache.RedisCache `optional:"true"`
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	cfg   config.Config
	cache *cache.RedisCache
}

func NewService(p Params) reportdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("report.service"),
		cfg:   p.Cfg,
		cache: p.Cache,
	}
}

// Report computes the financial summary for the inclusive date range.
// It is a pure function of the persisted rows; calling it twice without
// intervening writes returns identical results, which also makes it safe
// to serve from the short-lived cache.
func (s *Service) Report(ctx context.Context, startDate, endDate time.Time) (*reportdomain.Summary, error) {
	if startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return nil, reportdomain.ErrInvalidDateRange
	}
	start := dateOnly(startDate)
	end := dateOnly(endDate)

	cacheKey := fmt.Sprintf("stockbook:report:%s:%s", start.Format(dateLayout), end.Format(dateLayout))
	if payload, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached reportdomain.Summary
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	var sales []saledomain.Sale
	if err := s.db.WithContext(ctx).
		Where("sale_date >= ? AND sale_date <= ?", start, end).
		Order("sale_date DESC, id ASC").
		Find(&sales).Error; err != nil {
		return nil, err
	}

	var expenses []expensedomain.Expense
	if err := s.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Order("expense_date DESC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	cogsTotal, err := s.cogsTotal(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &reportdomain.Summary{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		COGSTotal: cogsTotal,
	}

	daySales := make(map[string]int64)
	dayExpenses := make(map[string]int64)
	for _, sale := range sales {
		summary.TotalSales += sale.TotalAmount
		summary.TotalDiscount += sale.Discount
		summary.TotalVAT += sale.VATAmount
		summary.TotalPaid += sale.PaidAmount
		summary.TotalDue += sale.DueAmount
		daySales[sale.SaleDate.UTC().Format(dateLayout)] += sale.TotalAmount
	}
	for _, expense := range expenses {
		summary.TotalExpenses += expense.Amount
		dayExpenses[expense.ExpenseDate.UTC().Format(dateLayout)] += expense.Amount
	}

	summary.GrossProfit = summary.TotalSales - summary.TotalDiscount - summary.COGSTotal
	summary.NetProfit = summary.GrossProfit - summary.TotalExpenses
	summary.Days = dayBreakdown(daySales, dayExpenses)

	if payload, err := json.Marshal(summary); err == nil {
		s.cache.Set(ctx, cacheKey, payload, s.cfg.ReportCacheTTL)
	}
	return summary, nil
}

func (s *Service) Overview(ctx context.Context) (*reportdomain.Overview, error) {
	overview := &reportdomain.Overview{}

	if err := s.db.WithContext(ctx).
		Table("products").
		Count(&overview.TotalProducts).Error; err != nil {
		return nil, err
	}

	var openingTotal int64
	if err := s.db.WithContext(ctx).
		Table("products").
		Select("COALESCE(SUM(opening_stock), 0)").
		Scan(&openingTotal).Error; err != nil {
		return nil, err
	}
	var movement int64
	if err := s.db.WithContext(ctx).
		Table("stock_transactions").
		Select("COALESCE(SUM(CASE kind WHEN 'purchase' THEN quantity WHEN 'sale' THEN -quantity ELSE 0 END), 0)").
		Scan(&movement).Error; err != nil {
		return nil, err
	}
	overview.TotalStock = openingTotal + movement

	today := dateOnly(time.Now())
	if err := s.db.WithContext(ctx).
		Table("sales").
		Select("COALESCE(SUM(total_amount), 0)").
		Where("sale_date = ?", today).
		Scan(&overview.TodaySales).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).
		Table("expenses").
		Select("COALESCE(SUM(amount), 0)").
		Where("expense_date = ?", today).
		Scan(&overview.TodayExpenses).Error; err != nil {
		return nil, err
	}

	return overview, nil
}

// cogsTotal joins each sale to its product so cost reflects the product's
// current purchase price.
func (s *Service) cogsTotal(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Table("sales").
		Select("COALESCE(SUM(sales.quantity * products.purchase_price), 0)").
		Joins("JOIN products ON products.id = sales.product_id").
		Where("sales.sale_date >= ? AND sales.sale_date <= ?", start, end).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// dayBreakdown merges the dates present in either set, newest first.
func dayBreakdown(daySales, dayExpenses map[string]int64) []reportdomain.DayStat {
	seen := make(map[string]struct{}, len(daySales)+len(dayExpenses))
	dates := make([]string, 0, len(daySales)+len(dayExpenses))
	for date := range daySales {
		seen[date] = struct{}{}
		dates = append(dates, date)
	}
	for date := range dayExpenses {
		if _, ok := seen[date]; !ok {
			dates = append(dates, date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	days := make([]reportdomain.DayStat, 0, len(dates))
	for _, date := range dates {
		days = append(days, reportdomain.DayStat{
			Date:     date,
			Sales:    daySales[date],
			Expenses: dayExpenses[date],
			Net:      daySales[date] - dayExpenses[date],
		})
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
