package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/tsampaio/loja-order-service/internal/model"
)

// Row is one result row of the header/line-item/product join. Orders with no
// line items produce a single row with NULL item columns.
type Row struct {
	OrderID   int64               `db:"order_id"`
	CreatedAt time.Time           `db:"created_at"`
	ProductID sql.NullInt64       `db:"product_id"`
	Quantity  sql.NullInt64       `db:"quantity"`
	Price     decimal.NullDecimal `db:"price"`
}

type Repository interface {
	// Write primitives. They run on the caller's transaction so the header,
	// every line item and every stock decrement commit as one unit.
	InsertHeader(ctx context.Context, tx *sqlx.Tx, createdAt time.Time) (int64, error)
	InsertItem(ctx context.Context, tx *sqlx.Tx, orderID int64, item model.OrderItem) error
	DeleteItemsTx(ctx context.Context, tx *sqlx.Tx, orderID int64) error
	DeleteHeaderTx(ctx context.Context, tx *sqlx.Tx, orderID int64) error

	// Read side.
	HeaderExists(ctx context.Context, id int64) (bool, error)
	RowsByOrder(ctx context.Context, id int64) ([]Row, error)
	AllRows(ctx context.Context) ([]Row, error)
}
