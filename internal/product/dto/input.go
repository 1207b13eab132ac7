package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name          string
	Price         decimal.Decimal
	StockQuantity int64
	CategoryID    int64
}

type UpdateProductInput struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	StockQuantity int64
	CategoryID    int64
}
