package server

import (
	"errors"
	"net/http"
	"testing"

	accountingdomain "github.com/smallbiznis/stockbook/internal/accounting/domain"
	productdomain "github.com/smallbiznis/stockbook/internal/product/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Run("insufficient stock conflicts with details", func(t *testing.T) {
		status, payload := mapError(&accountingdomain.InsufficientStockError{
			ProductID: 7,
			Requested: 60,
			Available: 50,
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "insufficient_stock", payload.Type)
		assert.Equal(t, int64(7), payload.Details["product_id"])
		assert.Equal(t, int64(60), payload.Details["requested"])
		assert.Equal(t, int64(50), payload.Details["available"])
	})

	t.Run("validation errors are bad requests", func(t *testing.T) {
		for _, err := range []error{
			ErrInvalidRequest,
			accountingdomain.ErrInvalidQuantity,
			accountingdomain.ErrPaidExceedsTotal,
			accountingdomain.ErrDiscountExceedsSubtotal,
			productdomain.ErrInvalidName,
		} {
			status, payload := mapError(err)
			assert.Equal(t, http.StatusBadRequest, status, err.Error())
			assert.Equal(t, "validation_error", payload.Type)
		}
	})

	t.Run("missing records are not found", func(t *testing.T) {
		status, payload := mapError(productdomain.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not_found", payload.Type)
	})

	t.Run("unknown errors are internal and opaque", func(t *testing.T) {
		status, payload := mapError(errors.New("pq: connection reset"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal_error", payload.Type)
		assert.NotContains(t, payload.Message, "pq:")
	})
}
