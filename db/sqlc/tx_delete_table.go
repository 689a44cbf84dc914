package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrTableHasActiveOrder is returned when deleting a table that still has
// an open or in-progress order
var ErrTableHasActiveOrder = errors.New("table has an active order")

// DeleteTableTxParams contains the input parameters of the delete table transaction
type DeleteTableTxParams struct {
	TableID int64
}

// DeleteTableTx soft deletes a table. The row is kept so historic orders
// still resolve their table, but the (number, floor) pair becomes reusable.
func (store *SQLStore) DeleteTableTx(ctx context.Context, arg DeleteTableTxParams) (Table, error) {
	var result Table

	err := store.execTx(ctx, func(q *Queries) error {
		table, err := q.GetTableForUpdate(ctx, arg.TableID)
		if err != nil {
			return err
		}
		if !table.IsActive {
			return ErrRecordNotFound
		}
		if table.CurrentOrderID.Valid {
			return ErrTableHasActiveOrder
		}

		active, err := q.CountActiveOrdersByTable(ctx, CountActiveOrdersByTableParams{
			TableID:  pgtype.Int8{Int64: table.ID, Valid: true},
			Statuses: NonTerminalOrderStatuses,
		})
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrTableHasActiveOrder
		}

		result, err = q.DeactivateTable(ctx, table.ID)
		return err
	})

	return result, err
}
