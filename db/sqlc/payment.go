package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const paymentColumns = `id, order_id, amount, method, status, original_payment_id, reference, processed_by, notes, created_at`

func scanPayment(row interface{ Scan(dest ...interface{}) error }) (Payment, error) {
	var i Payment
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.Amount,
		&i.Method,
		&i.Status,
		&i.OriginalPaymentID,
		&i.Reference,
		&i.ProcessedBy,
		&i.Notes,
		&i.CreatedAt,
	)
	return i, err
}

const createPayment = `-- name: CreatePayment :one
INSERT INTO payments (
    order_id, amount, method, status, original_payment_id, reference, processed_by, notes
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8
)
RETURNING ` + paymentColumns

type CreatePaymentParams struct {
	OrderID           int64       `json:"order_id"`
	Amount            int64       `json:"amount"`
	Method            string      `json:"method"`
	Status            string      `json:"status"`
	OriginalPaymentID pgtype.Int8 `json:"original_payment_id"`
	Reference         pgtype.Text `json:"reference"`
	ProcessedBy       string      `json:"processed_by"`
	Notes             pgtype.Text `json:"notes"`
}

func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error) {
	row := q.db.QueryRow(ctx, createPayment,
		arg.OrderID,
		arg.Amount,
		arg.Method,
		arg.Status,
		arg.OriginalPaymentID,
		arg.Reference,
		arg.ProcessedBy,
		arg.Notes,
	)
	return scanPayment(row)
}

const getPayment = `-- name: GetPayment :one
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetPayment(ctx context.Context, id int64) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPayment, id))
}

const getPaymentForUpdate = `-- name: GetPaymentForUpdate :one
SELECT ` + paymentColumns + `
FROM payments
WHERE id = $1
LIMIT 1
FOR NO KEY UPDATE
`

func (q *Queries) GetPaymentForUpdate(ctx context.Context, id int64) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, getPaymentForUpdate, id))
}

const listPaymentsByOrder = `-- name: ListPaymentsByOrder :many
SELECT ` + paymentColumns + `
FROM payments
WHERE order_id = $1
ORDER BY created_at
`

func (q *Queries) ListPaymentsByOrder(ctx context.Context, orderID int64) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPaymentsByOrder, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payment{}
	for rows.Next() {
		i, err := scanPayment(rows)
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

const listPayments = `-- name: ListPayments :many
SELECT ` + paymentColumns + `
FROM payments
WHERE ($1::bigint IS NULL OR order_id = $1)
  AND ($2::text IS NULL OR status = $2)
  AND ($3::text IS NULL OR method = $3)
ORDER BY created_at DESC
LIMIT $4
OFFSET $5
`

type ListPaymentsParams struct {
	OrderID pgtype.Int8 `json:"order_id"`
	Status  pgtype.Text `json:"status"`
	Method  pgtype.Text `json:"method"`
	Limit   int32       `json:"limit"`
	Offset  int32       `json:"offset"`
}

func (q *Queries) ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error) {
	rows, err := q.db.Query(ctx, listPayments,
		arg.OrderID,
		arg.Status,
		arg.Method,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payment{}
	for rows.Next() {
		i, err := scanPayment(rows)
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

const sumCompletedPaymentsByOrder = `-- name: SumCompletedPaymentsByOrder :one
SELECT COALESCE(sum(amount), 0)::bigint
FROM payments
WHERE order_id = $1
  AND status IN ('COMPLETED', 'REFUNDED')
`

// SumCompletedPaymentsByOrder returns the net settled amount for an order.
// Refund rows carry negative amounts, so the sum is the outstanding balance
// already collected.
func (q *Queries) SumCompletedPaymentsByOrder(ctx context.Context, orderID int64) (int64, error) {
	row := q.db.QueryRow(ctx, sumCompletedPaymentsByOrder, orderID)
	var sum int64
	err := row.Scan(&sum)
	return sum, err
}

const sumRefundsByOriginalPayment = `-- name: SumRefundsByOriginalPayment :one
SELECT COALESCE(sum(-amount), 0)::bigint
FROM payments
WHERE original_payment_id = $1
  AND status = 'COMPLETED'
`

// SumRefundsByOriginalPayment returns the already-refunded amount for a
// payment as a positive number.
func (q *Queries) SumRefundsByOriginalPayment(ctx context.Context, originalPaymentID pgtype.Int8) (int64, error) {
	row := q.db.QueryRow(ctx, sumRefundsByOriginalPayment, originalPaymentID)
	var sum int64
	err := row.Scan(&sum)
	return sum, err
}

const markPaymentRefunded = `-- name: MarkPaymentRefunded :one
UPDATE payments
SET status = 'REFUNDED'
WHERE id = $1
RETURNING ` + paymentColumns

func (q *Queries) MarkPaymentRefunded(ctx context.Context, id int64) (Payment, error) {
	return scanPayment(q.db.QueryRow(ctx, markPaymentRefunded, id))
}
