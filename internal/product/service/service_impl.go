package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Engine accountingdomain.Engine
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	engine accountingdomain.Engine
}

func NewService(p Params) productdomain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("product.service"),
		genID:  p.GenID,
		engine: p.Engine,
	}
}

func (s *Service) Create(ctx context.Context, req productdomain.CreateRequest) (*productdomain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, productdomain.ErrInvalidName
	}
	if req.PurchasePrice < 0 {
		return nil, productdomain.ErrInvalidPurchasePrice
	}
	if req.SellPrice < 0 {
		return nil, productdomain.ErrInvalidSellPrice
	}
	if req.OpeningStock < 0 {
		return nil, productdomain.ErrInvalidOpeningStock
	}

	now := time.Now().UTC()
	product := &productdomain.Product{
		ID:            s.genID.Generate().Int64(),
		Name:          name,
		PurchasePrice: req.PurchasePrice,
		SellPrice:     req.SellPrice,
		OpeningStock:  req.OpeningStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(product).Error; err != nil {
			return err
		}
		return s.engine.ProcessOpeningStock(ctx, tx, product)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("product created",
		zap.Int64("product_id", product.ID),
		zap.Int64("opening_stock", product.OpeningStock),
	)
	return product, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*productdomain.Product, error) {
	var product productdomain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, productdomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Service) List(ctx context.Context) ([]productdomain.Product, error) {
	var products []productdomain.Product
	if err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
