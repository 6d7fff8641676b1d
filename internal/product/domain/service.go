package domain

import "context"

type Service interface {
	// Create validates the request and, in one transaction, inserts the
	// product and processes its opening stock event.
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Get(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}

type CreateRequest struct {
	Name          string `json:"name"`
	PurchasePrice int64  `json:"purchase_price"`
	SellPrice     int64  `json:"sell_price"`
	OpeningStock  int64  `json:"opening_stock"`
}
