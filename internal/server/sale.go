package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	saledomain "github.com/smallbiznis/stockbook/internal/sale/domain"
)

type createSaleRequest struct {
	ProductID  int64   `json:"product_id"`
	Quantity   int64   `json:"quantity"`
	Discount   int64   `json:"discount"`
	VATRate    float64 `json:"vat_rate"`
	PaidAmount int64   `json:"paid_amount"`
	SaleDate   string  `json:"sale_date"`
}

func (s *Server) CreateSale(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	saleDate, err := parseDate(req.SaleDate)
	if err != nil {
		AbortWithError(c, accountingdomain.ErrInvalidDate)
		return
	}

	resp, err := s.engine.ProcessSale(c.Request.Context(), accountingdomain.SaleRequest{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Discount:   req.Discount,
		VATRate:    req.VATRate,
		PaidAmount: req.PaidAmount,
		SaleDate:   saleDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSales(c *gin.Context) {
	startDate, err := parseOptionalDate(c.Query("start_date"))
	if err != nil {
		AbortWithError(c, accountingdomain.ErrInvalidDate)
		return
	}
	endDate, err := parseOptionalDate(c.Query("end_date"))
	if err != nil {
		AbortWithError(c, accountingdomain.ErrInvalidDate)
		return
	}

	resp, err := s.saleSvc.List(c.Request.Context(), saledomain.ListRequest{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type createPurchaseRequest struct {
	ProductID    int64  `json:"product_id"`
	Quantity     int64  `json:"quantity"`
	PurchaseDate string `json:"purchase_date"`
	Note         string `json:"note"`
}

func (s *Server) CreatePurchase(c *gin.Context) {
	var req createPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		AbortWithError(c, accountingdomain.ErrInvalidDate)
		return
	}

	resp, err := s.engine.ProcessPurchase(c.Request.Context(), accountingdomain.PurchaseRequest{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		PurchaseDate: purchaseDate,
		Note:         req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
