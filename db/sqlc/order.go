package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_number, table_id, customer_name, customer_phone, type, status,
subtotal, tax, discount, total, payment_status, waiter_id, split_from, split_index,
merged_into, notes, created_at, updated_at, completed_at`

func scanOrder(row interface{ Scan(dest ...interface{}) error }) (Order, error) {
	var i Order
	err := row.Scan(
		&i.ID,
		&i.OrderNumber,
		&i.TableID,
		&i.CustomerName,
		&i.CustomerPhone,
		&i.Type,
		&i.Status,
		&i.Subtotal,
		&i.Tax,
		&i.Discount,
		&i.Total,
		&i.PaymentStatus,
		&i.WaiterID,
		&i.SplitFrom,
		&i.SplitIndex,
		&i.MergedInto,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CompletedAt,
	)
	return i, err
}

const createOrder = `-- name: CreateOrder :one
INSERT INTO orders (
    order_number, table_id, customer_name, customer_phone, type, status,
    subtotal, tax, discount, total, payment_status, waiter_id, split_from,
    split_index, merged_into, notes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)
RETURNING ` + orderColumns

type CreateOrderParams struct {
	OrderNumber   string      `json:"order_number"`
	TableID       pgtype.Int8 `json:"table_id"`
	CustomerName  pgtype.Text `json:"customer_name"`
	CustomerPhone pgtype.Text `json:"customer_phone"`
	Type          string      `json:"type"`
	Status        string      `json:"status"`
	Subtotal      int64       `json:"subtotal"`
	Tax           int64       `json:"tax"`
	Discount      int64       `json:"discount"`
	Total         int64       `json:"total"`
	PaymentStatus string      `json:"payment_status"`
	WaiterID      pgtype.Int8 `json:"waiter_id"`
	SplitFrom     pgtype.Int8 `json:"split_from"`
	SplitIndex    pgtype.Int4 `json:"split_index"`
	MergedInto    pgtype.Int8 `json:"merged_into"`
	Notes         pgtype.Text `json:"notes"`
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder,
		arg.OrderNumber,
		arg.TableID,
		arg.CustomerName,
		arg.CustomerPhone,
		arg.Type,
		arg.Status,
		arg.Subtotal,
		arg.Tax,
		arg.Discount,
		arg.Total,
		arg.PaymentStatus,
		arg.WaiterID,
		arg.SplitFrom,
		arg.SplitIndex,
		arg.MergedInto,
		arg.Notes,
	)
	return scanOrder(row)
}

const getOrder = `-- name: GetOrder :one
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetOrder(ctx context.Context, id int64) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrder, id))
}

const getOrderForUpdate = `-- name: GetOrderForUpdate :one
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
LIMIT 1
FOR NO KEY UPDATE
`

func (q *Queries) GetOrderForUpdate(ctx context.Context, id int64) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderForUpdate, id))
}

const listOrders = `-- name: ListOrders :many
SELECT ` + orderColumns + `
FROM orders
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::bigint IS NULL OR table_id = $2)
ORDER BY created_at DESC
LIMIT $3
OFFSET $4
`

type ListOrdersParams struct {
	Status  pgtype.Text `json:"status"`
	TableID pgtype.Int8 `json:"table_id"`
	Limit   int32       `json:"limit"`
	Offset  int32       `json:"offset"`
}

func (q *Queries) ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrders,
		arg.Status,
		arg.TableID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Order{}
	for rows.Next() {
		i, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countOrders = `-- name: CountOrders :one
SELECT count(*) FROM orders
`

func (q *Queries) CountOrders(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countOrders)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listOrdersBySplitParent = `-- name: ListOrdersBySplitParent :many
SELECT ` + orderColumns + `
FROM orders
WHERE split_from = $1
ORDER BY split_index
`

func (q *Queries) ListOrdersBySplitParent(ctx context.Context, splitFrom pgtype.Int8) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersBySplitParent, splitFrom)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Order{}
	for rows.Next() {
		i, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateOrderStatus = `-- name: UpdateOrderStatus :one
UPDATE orders
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns

type UpdateOrderStatusParams struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, updateOrderStatus, arg.ID, arg.Status))
}

const updateOrderPaymentStatus = `-- name: UpdateOrderPaymentStatus :one
UPDATE orders
SET payment_status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns

type UpdateOrderPaymentStatusParams struct {
	ID            int64  `json:"id"`
	PaymentStatus string `json:"payment_status"`
}

func (q *Queries) UpdateOrderPaymentStatus(ctx context.Context, arg UpdateOrderPaymentStatusParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, updateOrderPaymentStatus, arg.ID, arg.PaymentStatus))
}

const markOrderCompleted = `-- name: MarkOrderCompleted :one
UPDATE orders
SET status = 'COMPLETED', payment_status = 'PAID', completed_at = now(), updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns

func (q *Queries) MarkOrderCompleted(ctx context.Context, id int64) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, markOrderCompleted, id))
}

const markOrderSplit = `-- name: MarkOrderSplit :one
UPDATE orders
SET status = 'SPLIT', updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns

func (q *Queries) MarkOrderSplit(ctx context.Context, id int64) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, markOrderSplit, id))
}

const markOrderMerged = `-- name: MarkOrderMerged :one
UPDATE orders
SET status = 'MERGED', merged_into = $2, updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns

type MarkOrderMergedParams struct {
	ID         int64       `json:"id"`
	MergedInto pgtype.Int8 `json:"merged_into"`
}

func (q *Queries) MarkOrderMerged(ctx context.Context, arg MarkOrderMergedParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, markOrderMerged, arg.ID, arg.MergedInto))
}

const listOrdersUpdatedSince = `-- name: ListOrdersUpdatedSince :many
SELECT ` + orderColumns + `
FROM orders
WHERE updated_at >= $1
  AND status NOT IN ('SPLIT', 'MERGED', 'CANCELLED')
ORDER BY updated_at
LIMIT $2
`

type ListOrdersUpdatedSinceParams struct {
	Since time.Time `json:"since"`
	Limit int32     `json:"limit"`
}

func (q *Queries) ListOrdersUpdatedSince(ctx context.Context, arg ListOrdersUpdatedSinceParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersUpdatedSince, arg.Since, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Order{}
	for rows.Next() {
		i, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
