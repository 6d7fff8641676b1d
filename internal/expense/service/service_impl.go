package service

import (
	"context"

	expensedomain "github.com/smallbiznis/stockbook/internal/expense/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(p Params) expensedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("expense.service"),
	}
}

func (s *Service) List(ctx context.Context, req expensedomain.ListRequest) ([]expensedomain.Expense, error) {
	stmt := s.db.WithContext(ctx).Model(&expensedomain.Expense{})
	if req.StartDate != nil {
		stmt = stmt.Where("expense_date >= ?", *req.StartDate)
	}
	if req.EndDate != nil {
		stmt = stmt.Where("expense_date <= ?", *req.EndDate)
	}

	var expenses []expensedomain.Expense
	if err := stmt.Order("expense_date DESC, id ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
