package service

import (
	"context"

	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
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

func NewService(p Params) saledomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("sale.service"),
	}
}

func (s *Service) List(ctx context.Context, req saledomain.ListRequest) ([]saledomain.Sale, error) {
	stmt := s.db.WithContext(ctx).Model(&saledomain.Sale{})
	if req.StartDate != nil {
		stmt = stmt.Where("sale_date >= ?", *req.StartDate)
	}
	if req.EndDate != nil {
		stmt = stmt.Where("sale_date <= ?", *req.EndDate)
	}

	var sales []saledomain.Sale
	if err := stmt.Order("sale_date DESC, id ASC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
