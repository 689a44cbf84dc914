package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
	"github.com/Elisbrown/Restaurant-POS-sub001/util"
)

var (
	// ErrEmptyOrder is returned when an order is created without items
	ErrEmptyOrder = errors.New("order must contain at least one item")
	// ErrTableOccupied is returned when a dine-in order targets a table
	// that already has an open order
	ErrTableOccupied = errors.New("table already has an open order")
	// ErrTableInactive is returned when an operation targets a deleted table
	ErrTableInactive = errors.New("table is not active")
	// ErrNegativeDiscount is returned when the discount is negative or
	// exceeds the order subtotal plus tax
	ErrNegativeDiscount = errors.New("discount must be between zero and the order total")
	// ErrTableRequired is returned when a dine-in order omits the table
	ErrTableRequired = errors.New("dine-in orders require a table")
)

// CreateOrderItemSpec describes one line item of a new order
type CreateOrderItemSpec struct {
	ProductName string
	Sku         pgtype.Text
	Quantity    int32
	UnitPrice   int64
	Notes       pgtype.Text
}

// CreateOrderTxParams contains the input parameters of the create order transaction
type CreateOrderTxParams struct {
	TableID            pgtype.Int8
	CustomerName       pgtype.Text
	CustomerPhone      pgtype.Text
	Type               string
	WaiterID           pgtype.Int8
	Notes              pgtype.Text
	Discount           int64
	TaxRateBasisPoints int64
	Items              []CreateOrderItemSpec
}

// CreateOrderTxResult is the result of the create order transaction
type CreateOrderTxResult struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
	Table *Table      `json:"table,omitempty"`
}

// CreateOrderTx creates an order with its items, prices it, and occupies
// the target table for dine-in orders. Everything happens in one
// transaction so a failed item insert never leaves a priced order behind.
func (store *SQLStore) CreateOrderTx(ctx context.Context, arg CreateOrderTxParams) (CreateOrderTxResult, error) {
	var result CreateOrderTxResult

	if len(arg.Items) == 0 {
		return result, ErrEmptyOrder
	}

	var subtotal int64
	for _, item := range arg.Items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	tax := pricing.TaxOn(subtotal, arg.TaxRateBasisPoints)
	if arg.Discount < 0 || arg.Discount > subtotal+tax {
		return result, ErrNegativeDiscount
	}
	total := subtotal + tax - arg.Discount

	err := store.execTx(ctx, func(q *Queries) error {
		var table Table
		if arg.Type == OrderTypeDineIn {
			if !arg.TableID.Valid {
				return ErrTableRequired
			}
			var err error
			table, err = q.GetTableForUpdate(ctx, arg.TableID.Int64)
			if err != nil {
				return err
			}
			if !table.IsActive {
				return ErrTableInactive
			}
			if table.CurrentOrderID.Valid {
				return ErrTableOccupied
			}
		}

		seq, err := q.CountOrders(ctx)
		if err != nil {
			return err
		}

		order, err := q.CreateOrder(ctx, CreateOrderParams{
			OrderNumber:   util.OrderNumber(time.Now(), seq+1),
			TableID:       arg.TableID,
			CustomerName:  arg.CustomerName,
			CustomerPhone: arg.CustomerPhone,
			Type:          arg.Type,
			Status:        OrderStatusPending,
			Subtotal:      subtotal,
			Tax:           tax,
			Discount:      arg.Discount,
			Total:         total,
			PaymentStatus: pricing.PaymentPending,
			WaiterID:      arg.WaiterID,
			Notes:         arg.Notes,
		})
		if err != nil {
			return err
		}
		result.Order = order

		for _, item := range arg.Items {
			created, err := q.CreateOrderItem(ctx, CreateOrderItemParams{
				OrderID:     order.ID,
				ProductName: item.ProductName,
				Sku:         item.Sku,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TotalPrice:  item.UnitPrice * int64(item.Quantity),
				Notes:       item.Notes,
			})
			if err != nil {
				return err
			}
			result.Items = append(result.Items, created)
		}

		if arg.Type == OrderTypeDineIn {
			occupied, err := q.SetTableCurrentOrder(ctx, SetTableCurrentOrderParams{
				ID:             table.ID,
				Status:         TableStatusOccupied,
				CurrentOrderID: pgtype.Int8{Int64: order.ID, Valid: true},
			})
			if err != nil {
				return err
			}
			result.Table = &occupied
		}
		return nil
	})

	return result, err
}
