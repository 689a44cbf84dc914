package db

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
	"github.com/Elisbrown/Restaurant-POS-sub001/util"
)

var (
	// ErrMergeCount is returned when fewer than two distinct tables are merged
	ErrMergeCount = errors.New("merge requires at least two distinct tables")
	// ErrNoOrdersToMerge is returned when none of the tables carries an
	// unpaid open order
	ErrNoOrdersToMerge = errors.New("no unpaid orders found on the given tables")
)

// MergeTablesTxParams contains the input parameters of the merge transaction.
// The first listed table hosts the merged order.
type MergeTablesTxParams struct {
	TableIDs []int64
}

// MergeTablesTxResult is the result of the merge transaction
type MergeTablesTxResult struct {
	MergedOrder  Order   `json:"merged_order"`
	SourceOrders []Order `json:"source_orders"`
	Tables       []Table `json:"tables"`
}

// MergeTablesTx folds the unpaid open orders of several tables into one new
// order hosted on the first listed table. Orders are eligible while their
// ledger is untouched (payment status PENDING); source orders become MERGED
// markers pointing at the merged order and their items are copied over. All
// listed tables end up OCCUPIED holding the merged order, so one bill
// settles the whole party and releases every table at once. Tables are
// locked in ascending id order so two concurrent merges touching the same
// tables cannot deadlock.
func (store *SQLStore) MergeTablesTx(ctx context.Context, arg MergeTablesTxParams) (MergeTablesTxResult, error) {
	var result MergeTablesTxResult

	if len(arg.TableIDs) < 2 {
		return result, ErrMergeCount
	}
	ids := make([]int64, len(arg.TableIDs))
	copy(ids, arg.TableIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return result, ErrMergeCount
		}
	}

	err := store.execTx(ctx, func(q *Queries) error {
		lockedTables := make(map[int64]Table, len(ids))
		for _, id := range ids {
			table, err := q.GetTableForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if !table.IsActive {
				return ErrTableInactive
			}
			lockedTables[id] = table
		}

		// Collect eligible orders in the caller's listing order so the
		// merged order's number sequence follows the first table.
		var orders []Order
		for _, id := range arg.TableIDs {
			table := lockedTables[id]
			if !table.CurrentOrderID.Valid {
				continue
			}
			order, err := q.GetOrderForUpdate(ctx, table.CurrentOrderID.Int64)
			if err != nil {
				return err
			}
			switch order.Status {
			case OrderStatusSplit, OrderStatusMerged, OrderStatusCancelled, OrderStatusCompleted:
				continue
			}
			if order.PaymentStatus != pricing.PaymentPending {
				continue
			}
			orders = append(orders, order)
		}
		if len(orders) == 0 {
			return ErrNoOrdersToMerge
		}

		var subtotal, tax, discount int64
		for _, order := range orders {
			subtotal += order.Subtotal
			tax += order.Tax
			discount += order.Discount
		}

		// Sums carried forward, never recomputed: re-taxing the merged
		// subtotal would double-charge rounding on each source.
		merged, err := q.CreateOrder(ctx, CreateOrderParams{
			OrderNumber:   util.MergedOrderNumber(time.Now()),
			TableID:       pgtype.Int8{Int64: arg.TableIDs[0], Valid: true},
			Type:          OrderTypeDineIn,
			Status:        OrderStatusReady,
			Subtotal:      subtotal,
			Tax:           tax,
			Discount:      discount,
			Total:         subtotal + tax - discount,
			PaymentStatus: pricing.PaymentPending,
			WaiterID:      orders[0].WaiterID,
		})
		if err != nil {
			return err
		}
		result.MergedOrder = merged

		for _, order := range orders {
			items, err := q.ListOrderItemsByOrder(ctx, order.ID)
			if err != nil {
				return err
			}
			for _, item := range items {
				_, err = q.CreateOrderItem(ctx, CreateOrderItemParams{
					OrderID:     merged.ID,
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
			marked, err := q.MarkOrderMerged(ctx, MarkOrderMergedParams{
				ID:         order.ID,
				MergedInto: pgtype.Int8{Int64: merged.ID, Valid: true},
			})
			if err != nil {
				return err
			}
			result.SourceOrders = append(result.SourceOrders, marked)
		}

		for _, id := range ids {
			updated, err := q.SetTableCurrentOrder(ctx, SetTableCurrentOrderParams{
				ID:             id,
				Status:         TableStatusOccupied,
				CurrentOrderID: pgtype.Int8{Int64: merged.ID, Valid: true},
			})
			if err != nil {
				return err
			}
			result.Tables = append(result.Tables, updated)
		}
		return nil
	})

	return result, err
}
