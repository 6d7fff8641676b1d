package domain

import "errors"

var (
	ErrInvalidName          = errors.New("invalid_name")
	ErrInvalidPurchasePrice = errors.New("invalid_purchase_price")
	ErrInvalidSellPrice     = errors.New("invalid_sell_price")
	ErrInvalidOpeningStock  = errors.New("invalid_opening_stock")
	ErrNotFound             = errors.New("not_found")
)
