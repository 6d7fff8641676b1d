package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	ledgerdomain "github.com/smallbiznis/stockbook/internal/ledger/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	reportdomain "github.com/smallbiznis/stockbook/internal/report/domain"
	stockdomain "github.com/smallbiznis/stockbook/internal/stock/domain"
	"gorm.io/gorm"
)

var ErrInvalidRequest = errors.New("invalid_request")

type errorPayload struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var insufficient *accountingdomain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return http.StatusConflict, errorPayload{
			Type:    "insufficient_stock",
			Message: insufficient.Error(),
			Details: map[string]any{
				"product_id": insufficient.ProductID,
				"requested":  insufficient.Requested,
				"available":  insufficient.Available,
			},
		}
	}

	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, accountingdomain.ErrInvalidQuantity),
		errors.Is(err, accountingdomain.ErrInvalidDiscount),
		errors.Is(err, accountingdomain.ErrInvalidVATRate),
		errors.Is(err, accountingdomain.ErrInvalidPaidAmount),
		errors.Is(err, accountingdomain.ErrInvalidAmount),
		errors.Is(err, accountingdomain.ErrInvalidDescription),
		errors.Is(err, accountingdomain.ErrInvalidDate),
		errors.Is(err, accountingdomain.ErrDiscountExceedsSubtotal),
		errors.Is(err, accountingdomain.ErrPaidExceedsTotal),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidPurchasePrice),
		errors.Is(err, productdomain.ErrInvalidSellPrice),
		errors.Is(err, productdomain.ErrInvalidOpeningStock),
		errors.Is(err, stockdomain.ErrInvalidQuantity),
		errors.Is(err, ledgerdomain.ErrInvalidEntryDate),
		errors.Is(err, reportdomain.ErrInvalidDateRange):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, stockdomain.ErrProductNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
