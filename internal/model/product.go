package model

import "github.com/shopspring/decimal"

type Product struct {
	ID            int64           `db:"id" json:"id"`
	Name          string          `db:"name" json:"nome"`
	Price         decimal.Decimal `db:"price" json:"preco"`
	StockQuantity int64           `db:"stock_quantity" json:"quantidade_estoque"`
	CategoryID    int64           `db:"category_id" json:"categoria_id"`
}
