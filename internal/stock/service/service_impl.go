package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
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

func NewService(p Params) stockdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("stock.service"),
		genID: p.GenID,
	}
}

func (s *Service) CurrentStock(ctx context.Context, productID int64) (int64, error) {
	return s.CurrentStockTx(ctx, s.db, productID)
}

func (s *Service) CurrentStockTx(ctx context.Context, tx *gorm.DB, productID int64) (int64, error) {
	var product productdomain.Product
	err := tx.WithContext(ctx).
		Select("id", "opening_stock").
		Where("id = ?", productID).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, stockdomain.ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}

	purchased, err := s.sumQuantity(ctx, tx, productID, stockdomain.KindPurchase)
	if err != nil {
		return 0, err
	}
	sold, err := s.sumQuantity(ctx, tx, productID, stockdomain.KindSale)
	if err != nil {
		return 0, err
	}

	return product.OpeningStock + purchased - sold, nil
}

func (s *Service) Record(ctx context.Context, tx *gorm.DB, txn *stockdomain.StockTransaction) error {
	if !txn.Kind.Valid() {
		// An unknown kind can only come from engine code, never from input.
		panic(fmt.Sprintf("stock: invalid transaction kind %q", txn.Kind))
	}
	if txn.Quantity <= 0 {
		return stockdomain.ErrInvalidQuantity
	}

	if txn.ID == 0 {
		txn.ID = s.genID.Generate().Int64()
	}
	return tx.WithContext(ctx).Create(txn).Error
}

func (s *Service) sumQuantity(ctx context.Context, tx *gorm.DB, productID int64, kind stockdomain.TransactionKind) (int64, error) {
	var total int64
	err := tx.WithContext(ctx).
		Model(&stockdomain.StockTransaction{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("product_id = ? AND kind = ?", productID, kind).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
