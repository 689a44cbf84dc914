package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
	"github.com/Elisbrown/Restaurant-POS-sub001/util"
)

// Split modes.
const (
	SplitByItem   = "BY_ITEM"
	SplitByAmount = "BY_AMOUNT"
)

var (
	// ErrOrderNotSplittable is returned when the order was already split,
	// merged, cancelled or completed
	ErrOrderNotSplittable = errors.New("order cannot be split")
	// ErrOrderPaid is returned when splitting a fully settled order
	ErrOrderPaid = errors.New("paid order cannot be split")
	// ErrSplitCount is returned when fewer than two parts are requested
	ErrSplitCount = errors.New("split requires at least two parts")
	// ErrItemNotInOrder is returned when an item group references an item
	// outside the parent order
	ErrItemNotInOrder = errors.New("item does not belong to the order")
	// ErrItemAssignment is returned when items are left unassigned or
	// assigned to more than one part
	ErrItemAssignment = errors.New("every item must be assigned to exactly one part")
	// ErrSplitMode is returned for an unknown split mode
	ErrSplitMode = errors.New("unknown split mode")
	// ErrSplitUnbalanced is returned when the children's totals drift from
	// the parent beyond the rounding tolerance
	ErrSplitUnbalanced = errors.New("split totals do not reconcile with the order total")
)

// SplitOrderTxParams contains the input parameters of the split transaction.
// ItemGroups is only used in BY_ITEM mode; Parts only in BY_AMOUNT mode.
type SplitOrderTxParams struct {
	OrderID            int64
	Mode               string
	Parts              int
	ItemGroups         [][]int64
	TaxRateBasisPoints int64
}

// SplitOrderTxResult is the result of the split transaction
type SplitOrderTxResult struct {
	Parent   Order   `json:"parent"`
	Children []Order `json:"children"`
}

// SplitOrderTx decomposes an order that is not yet fully paid into child
// orders whose totals reconcile exactly with the parent in BY_AMOUNT mode,
// and within one franc per part in BY_ITEM mode. The parent is kept as a
// SPLIT marker and the table's current order moves to the first child. Any
// partial payments already collected stay attributed to the parent.
func (store *SQLStore) SplitOrderTx(ctx context.Context, arg SplitOrderTxParams) (SplitOrderTxResult, error) {
	var result SplitOrderTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		parent, err := q.GetOrderForUpdate(ctx, arg.OrderID)
		if err != nil {
			return err
		}
		switch parent.Status {
		case OrderStatusSplit, OrderStatusMerged, OrderStatusCancelled, OrderStatusCompleted:
			return ErrOrderNotSplittable
		}

		paid, err := q.SumCompletedPaymentsByOrder(ctx, parent.ID)
		if err != nil {
			return err
		}
		if pricing.StatusFor(paid, parent.Total) == pricing.PaymentPaid {
			return ErrOrderPaid
		}

		switch arg.Mode {
		case SplitByAmount:
			err = store.splitByAmount(ctx, q, parent, arg, &result)
		case SplitByItem:
			err = store.splitByItems(ctx, q, parent, arg, &result)
		default:
			err = ErrSplitMode
		}
		if err != nil {
			return err
		}

		result.Parent, err = q.MarkOrderSplit(ctx, parent.ID)
		if err != nil {
			return err
		}

		if parent.TableID.Valid {
			table, err := q.GetTableForUpdate(ctx, parent.TableID.Int64)
			if err != nil {
				return err
			}
			if table.CurrentOrderID.Valid && table.CurrentOrderID.Int64 == parent.ID {
				_, err = q.SetTableCurrentOrder(ctx, SetTableCurrentOrderParams{
					ID:             table.ID,
					Status:         table.Status,
					CurrentOrderID: pgtype.Int8{Int64: result.Children[0].ID, Valid: true},
				})
				if err != nil {
					return err
				}
			}
		}
		return nil
	})

	return result, err
}

func (store *SQLStore) splitByAmount(ctx context.Context, q *Queries, parent Order, arg SplitOrderTxParams, result *SplitOrderTxResult) error {
	if arg.Parts < 2 {
		return ErrSplitCount
	}

	shares := pricing.SplitEvenly(parent.Total, arg.Parts, arg.TaxRateBasisPoints)
	for i, share := range shares {
		child, err := store.createChild(ctx, q, parent, i+1, share)
		if err != nil {
			return err
		}
		result.Children = append(result.Children, child)
	}
	return nil
}

func (store *SQLStore) splitByItems(ctx context.Context, q *Queries, parent Order, arg SplitOrderTxParams, result *SplitOrderTxResult) error {
	if len(arg.ItemGroups) < 2 {
		return ErrSplitCount
	}

	items, err := q.ListOrderItemsByOrder(ctx, parent.ID)
	if err != nil {
		return err
	}
	byID := make(map[int64]OrderItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	assigned := make(map[int64]bool, len(items))
	subtotals := make([]int64, len(arg.ItemGroups))
	for i, group := range arg.ItemGroups {
		if len(group) == 0 {
			return ErrItemAssignment
		}
		for _, itemID := range group {
			item, ok := byID[itemID]
			if !ok {
				return ErrItemNotInOrder
			}
			if assigned[itemID] {
				return ErrItemAssignment
			}
			assigned[itemID] = true
			subtotals[i] += item.TotalPrice
		}
	}
	if len(assigned) != len(items) {
		return ErrItemAssignment
	}

	shares := pricing.SplitByItems(subtotals, parent.Discount, arg.TaxRateBasisPoints)
	tol := pricing.SplitTolerance(len(shares))
	if !pricing.WithinTolerance(parent.Total, pricing.SumTotals(shares), tol) {
		return ErrSplitUnbalanced
	}
	for i, share := range shares {
		child, err := store.createChild(ctx, q, parent, i+1, share)
		if err != nil {
			return err
		}
		for _, itemID := range arg.ItemGroups[i] {
			item := byID[itemID]
			_, err = q.CreateOrderItem(ctx, CreateOrderItemParams{
				OrderID:     child.ID,
				ProductName: item.ProductName,
				Sku:         item.Sku,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				TotalPrice:  item.TotalPrice,
				Notes:       item.Notes,
			})
			if err != nil {
				return err
			}
		}
		result.Children = append(result.Children, child)
	}
	return nil
}

func (store *SQLStore) createChild(ctx context.Context, q *Queries, parent Order, index int, share pricing.Share) (Order, error) {
	return q.CreateOrder(ctx, CreateOrderParams{
		OrderNumber:   util.SplitOrderNumber(parent.OrderNumber, index),
		TableID:       parent.TableID,
		CustomerName:  parent.CustomerName,
		CustomerPhone: parent.CustomerPhone,
		Type:          parent.Type,
		Status:        parent.Status,
		Subtotal:      share.Subtotal,
		Tax:           share.Tax,
		Discount:      share.Discount,
		Total:         share.Total,
		PaymentStatus: pricing.PaymentPending,
		WaiterID:      parent.WaiterID,
		SplitFrom:     pgtype.Int8{Int64: parent.ID, Valid: true},
		SplitIndex:    pgtype.Int4{Int32: int32(index), Valid: true},
	})
}
