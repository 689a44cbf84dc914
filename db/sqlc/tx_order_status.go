package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	// ErrInvalidStatusTransition is returned for a status change the order
	// lifecycle does not allow
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
	// ErrOrderHasPayments is returned when cancelling an order that already
	// collected money
	ErrOrderHasPayments = errors.New("order with recorded payments cannot be cancelled")
)

// validOrderStatusTransitions encodes the manual order lifecycle. COMPLETED
// is reachable only through full payment, SPLIT and MERGED only through
// their transactions.
var validOrderStatusTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusServed},
	OrderStatusServed:    {},
}

// UpdateOrderStatusTxParams contains the input parameters of the status transaction
type UpdateOrderStatusTxParams struct {
	OrderID int64
	Status  string
}

// UpdateOrderStatusTx advances an order through its lifecycle. Cancelling
// releases the order's table and is refused once money was collected.
func (store *SQLStore) UpdateOrderStatusTx(ctx context.Context, arg UpdateOrderStatusTxParams) (Order, error) {
	var result Order

	err := store.execTx(ctx, func(q *Queries) error {
		order, err := q.GetOrderForUpdate(ctx, arg.OrderID)
		if err != nil {
			return err
		}

		allowed, ok := validOrderStatusTransitions[order.Status]
		if !ok {
			return ErrInvalidStatusTransition
		}
		permitted := false
		for _, next := range allowed {
			if next == arg.Status {
				permitted = true
				break
			}
		}
		if !permitted {
			return ErrInvalidStatusTransition
		}

		if arg.Status == OrderStatusCancelled {
			paid, err := q.SumCompletedPaymentsByOrder(ctx, order.ID)
			if err != nil {
				return err
			}
			if paid != 0 {
				return ErrOrderHasPayments
			}
			if order.TableID.Valid {
				table, err := q.GetTableForUpdate(ctx, order.TableID.Int64)
				if err != nil {
					return err
				}
				if table.CurrentOrderID.Valid && table.CurrentOrderID.Int64 == order.ID {
					_, err = q.SetTableCurrentOrder(ctx, SetTableCurrentOrderParams{
						ID:             table.ID,
						Status:         TableStatusAvailable,
						CurrentOrderID: pgtype.Int8{},
					})
					if err != nil {
						return err
					}
				}
			}
		}

		result, err = q.UpdateOrderStatus(ctx, UpdateOrderStatusParams{
			ID:     order.ID,
			Status: arg.Status,
		})
		return err
	})

	return result, err
}
