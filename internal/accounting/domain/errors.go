package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity         = errors.New("invalid_quantity")
	ErrInvalidDiscount         = errors.New("invalid_discount")
	ErrInvalidVATRate          = errors.New("invalid_vat_rate")
	ErrInvalidPaidAmount       = errors.New("invalid_paid_amount")
	ErrInvalidAmount           = errors.New("invalid_amount")
	ErrInvalidDescription      = errors.New("invalid_description")
	ErrInvalidDate             = errors.New("invalid_date")
	ErrDiscountExceedsSubtotal = errors.New("discount_exceeds_subtotal")
	ErrPaidExceedsTotal        = errors.New("paid_exceeds_total")
)

// InsufficientStockError rejects a sale whose quantity exceeds the current
// stock. Available is reported so the caller can display it.
type InsufficientStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
