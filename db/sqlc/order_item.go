package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrderItem = `-- name: CreateOrderItem :one
INSERT INTO order_items (
    order_id, product_name, sku, quantity, unit_price, total_price, notes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
)
RETURNING id, order_id, product_name, sku, quantity, unit_price, total_price, notes
`

type CreateOrderItemParams struct {
	OrderID     int64       `json:"order_id"`
	ProductName string      `json:"product_name"`
	Sku         pgtype.Text `json:"sku"`
	Quantity    int32       `json:"quantity"`
	UnitPrice   int64       `json:"unit_price"`
	TotalPrice  int64       `json:"total_price"`
	Notes       pgtype.Text `json:"notes"`
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem,
		arg.OrderID,
		arg.ProductName,
		arg.Sku,
		arg.Quantity,
		arg.UnitPrice,
		arg.TotalPrice,
		arg.Notes,
	)
	var i OrderItem
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.ProductName,
		&i.Sku,
		&i.Quantity,
		&i.UnitPrice,
		&i.TotalPrice,
		&i.Notes,
	)
	return i, err
}

const listOrderItemsByOrder = `-- name: ListOrderItemsByOrder :many
SELECT id, order_id, product_name, sku, quantity, unit_price, total_price, notes
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListOrderItemsByOrder(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, listOrderItemsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OrderItem{}
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(
			&i.ID,
			&i.OrderID,
			&i.ProductName,
			&i.Sku,
			&i.Quantity,
			&i.UnitPrice,
			&i.TotalPrice,
			&i.Notes,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
