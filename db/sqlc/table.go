package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTable = `-- name: CreateTable :one
INSERT INTO tables (
    number, name, floor, capacity, status
) VALUES (
    $1, $2, $3, $4, 'AVAILABLE'
)
RETURNING id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
`

type CreateTableParams struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	Floor    string `json:"floor"`
	Capacity int16  `json:"capacity"`
}

func (q *Queries) CreateTable(ctx context.Context, arg CreateTableParams) (Table, error) {
	row := q.db.QueryRow(ctx, createTable,
		arg.Number,
		arg.Name,
		arg.Floor,
		arg.Capacity,
	)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTable = `-- name: GetTable :one
SELECT id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
FROM tables
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetTable(ctx context.Context, id int64) (Table, error) {
	row := q.db.QueryRow(ctx, getTable, id)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTableForUpdate = `-- name: GetTableForUpdate :one
SELECT id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
FROM tables
WHERE id = $1
LIMIT 1
FOR NO KEY UPDATE
`

func (q *Queries) GetTableForUpdate(ctx context.Context, id int64) (Table, error) {
	row := q.db.QueryRow(ctx, getTableForUpdate, id)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getActiveTableByNumberAndFloor = `-- name: GetActiveTableByNumberAndFloor :one
SELECT id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
FROM tables
WHERE number = $1 AND floor = $2 AND is_active = TRUE
LIMIT 1
`

type GetActiveTableByNumberAndFloorParams struct {
	Number string `json:"number"`
	Floor  string `json:"floor"`
}

func (q *Queries) GetActiveTableByNumberAndFloor(ctx context.Context, arg GetActiveTableByNumberAndFloorParams) (Table, error) {
	row := q.db.QueryRow(ctx, getActiveTableByNumberAndFloor, arg.Number, arg.Floor)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTables = `-- name: ListTables :many
SELECT id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
FROM tables
WHERE is_active = TRUE
  AND ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR floor = $2)
ORDER BY floor, number
`

type ListTablesParams struct {
	Status pgtype.Text `json:"status"`
	Floor  pgtype.Text `json:"floor"`
}

func (q *Queries) ListTables(ctx context.Context, arg ListTablesParams) ([]Table, error) {
	rows, err := q.db.Query(ctx, listTables, arg.Status, arg.Floor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Table{}
	for rows.Next() {
		var i Table
		if err := rows.Scan(
			&i.ID,
			&i.Number,
			&i.Name,
			&i.Floor,
			&i.Capacity,
			&i.Status,
			&i.CurrentOrderID,
			&i.IsActive,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateTable = `-- name: UpdateTable :one
UPDATE tables
SET
    number = COALESCE($2, number),
    name = COALESCE($3, name),
    floor = COALESCE($4, floor),
    capacity = COALESCE($5, capacity),
    updated_at = now()
WHERE id = $1
RETURNING id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
`

type UpdateTableParams struct {
	ID       int64       `json:"id"`
	Number   pgtype.Text `json:"number"`
	Name     pgtype.Text `json:"name"`
	Floor    pgtype.Text `json:"floor"`
	Capacity pgtype.Int2 `json:"capacity"`
}

func (q *Queries) UpdateTable(ctx context.Context, arg UpdateTableParams) (Table, error) {
	row := q.db.QueryRow(ctx, updateTable,
		arg.ID,
		arg.Number,
		arg.Name,
		arg.Floor,
		arg.Capacity,
	)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateTableStatus = `-- name: UpdateTableStatus :one
UPDATE tables
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
`

type UpdateTableStatusParams struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func (q *Queries) UpdateTableStatus(ctx context.Context, arg UpdateTableStatusParams) (Table, error) {
	row := q.db.QueryRow(ctx, updateTableStatus, arg.ID, arg.Status)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const setTableCurrentOrder = `-- name: SetTableCurrentOrder :one
UPDATE tables
SET status = $2, current_order_id = $3, updated_at = now()
WHERE id = $1
RETURNING id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
`

type SetTableCurrentOrderParams struct {
	ID             int64       `json:"id"`
	Status         string      `json:"status"`
	CurrentOrderID pgtype.Int8 `json:"current_order_id"`
}

func (q *Queries) SetTableCurrentOrder(ctx context.Context, arg SetTableCurrentOrderParams) (Table, error) {
	row := q.db.QueryRow(ctx, setTableCurrentOrder, arg.ID, arg.Status, arg.CurrentOrderID)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deactivateTable = `-- name: DeactivateTable :one
UPDATE tables
SET is_active = FALSE, current_order_id = NULL, updated_at = now()
WHERE id = $1
RETURNING id, number, name, floor, capacity, status, current_order_id, is_active, created_at, updated_at
`

func (q *Queries) DeactivateTable(ctx context.Context, id int64) (Table, error) {
	row := q.db.QueryRow(ctx, deactivateTable, id)
	var i Table
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.Name,
		&i.Floor,
		&i.Capacity,
		&i.Status,
		&i.CurrentOrderID,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const countActiveOrdersByTable = `-- name: CountActiveOrdersByTable :one
SELECT count(*)
FROM orders
WHERE table_id = $1
  AND status = ANY($2::text[])
`

type CountActiveOrdersByTableParams struct {
	TableID  pgtype.Int8 `json:"table_id"`
	Statuses []string    `json:"statuses"`
}

func (q *Queries) CountActiveOrdersByTable(ctx context.Context, arg CountActiveOrdersByTableParams) (int64, error) {
	row := q.db.QueryRow(ctx, countActiveOrdersByTable, arg.TableID, arg.Statuses)
	var count int64
	err := row.Scan(&count)
	return count, err
}
