package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/stockbook/internal/accounting"
	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	"github.com/smallbiznis/stockbook/internal/cache"
	"github.com/smallbiznis/stockbook/internal/config"
	"github.com/smallbiznis/stockbook/internal/expense"
	expensedomain "github.com/smallbiznis/stockbook/internal/expense/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	obsmetrics "github.com/smallbiznis/stockbook/internal/observability/metrics"
	"github.com/smallbiznis/stockbook/internal/product"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	"github.com/smallbiznis/stockbook/internal/report"
	reportdomain "github.com/smallbiznis/stockbook/internal/report/domain"
	"github.com/smallbiznis/stockbook/internal/sale"
	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	config.Module,
	cache.Module,
	obsmetrics.Module,
	accounting.Module,
	product.Module,
	sale.Module,
	expense.Module,
	report.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type ServerParams struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	Engine     accountingdomain.Engine
	ProductSvc productdomain.Service
	SaleSvc    saledomain.Service
	ExpenseSvc expensedomain.Service
	StockSvc   stockdomain.Service
	LedgerSvc  ledgerdomain.Service
	ReportSvc  reportdomain.Service
}

type Server struct {
	cfg        config.Config
	log        *zap.Logger
	engine     accountingdomain.Engine
	productSvc productdomain.Service
	saleSvc    saledomain.Service
	expenseSvc expensedomain.Service
	stockSvc   stockdomain.Service
	ledgerSvc  ledgerdomain.Service
	reportSvc  reportdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		cfg:        p.Cfg,
		log:        p.Log.Named("http.server"),
		engine:     p.Engine,
		productSvc: p.ProductSvc,
		saleSvc:    p.SaleSvc,
		expenseSvc: p.ExpenseSvc,
		stockSvc:   p.StockSvc,
		ledgerSvc:  p.LedgerSvc,
		reportSvc:  p.ReportSvc,
	}
}

func RegisterRoutes(r *gin.Engine, s *Server) {
	v1 := r.Group("/v1")
	{
		v1.POST("/products", s.CreateProduct)
		v1.GET("/products", s.ListProducts)
		v1.GET("/products/:id", s.GetProductByID)
		v1.GET("/products/:id/stock", s.GetProductStock)

		v1.POST("/sales", s.CreateSale)
		v1.GET("/sales", s.ListSales)

		v1.POST("/purchases", s.CreatePurchase)

		v1.POST("/expenses", s.CreateExpense)
		v1.GET("/expenses", s.ListExpenses)

		v1.GET("/journal-entries", s.ListJournalEntries)
		v1.GET("/reports/financial", s.FinancialReport)
		v1.GET("/dashboard", s.Dashboard)
	}
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
