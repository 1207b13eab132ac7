package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        int64       `db:"id" json:"id"`
	CreatedAt time.Time   `db:"created_at" json:"data"`
	Items     []OrderItem `db:"-" json:"produtos"`

	// Total is never persisted. It is recomputed from live product prices,
	// both when the order is placed and when it is read back.
	Total decimal.Decimal `db:"-" json:"valor_total"`
}

type OrderItem struct {
	ProductID int64 `db:"product_id" json:"produto_id"`
	Quantity  int64 `db:"quantity" json:"quantidade"`
}
