package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
)

// ==================== SplitOrderTx Transaction Tests ====================

func TestSplitOrderTx_ByAmount(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order

	result, err := testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            order.ID,
		Mode:               SplitByAmount,
		Parts:              3,
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.NoError(t, err)

	require.Equal(t, OrderStatusSplit, result.Parent.Status)
	require.Len(t, result.Children, 3)

	var sum int64
	for i, child := range result.Children {
		require.True(t, child.SplitFrom.Valid)
		require.Equal(t, order.ID, child.SplitFrom.Int64)
		require.Equal(t, int32(i+1), child.SplitIndex.Int32)
		require.Equal(t, pricing.PaymentPending, child.PaymentStatus)
		require.Equal(t, child.Subtotal+child.Tax-child.Discount, child.Total)
		sum += child.Total
	}
	// Even splits reconstruct the parent exactly, remainder on the first child.
	require.Equal(t, order.Total, sum)
	require.GreaterOrEqual(t, result.Children[0].Total, result.Children[1].Total)

	dbTable, err := testStore.GetTable(context.Background(), table.ID)
	require.NoError(t, err)
	require.True(t, dbTable.CurrentOrderID.Valid)
	require.Equal(t, result.Children[0].ID, dbTable.CurrentOrderID.Int64)
}

func TestSplitOrderTx_ByItem(t *testing.T) {
	table := createRandomDiningTable(t)
	created := createDineInOrder(t, table.ID)
	order := created.Order
	require.Len(t, created.Items, 2)

	result, err := testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            order.ID,
		Mode:               SplitByItem,
		ItemGroups:         [][]int64{{created.Items[0].ID}, {created.Items[1].ID}},
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.NoError(t, err)
	require.Len(t, result.Children, 2)

	var childTotals, itemCount int64
	for i, child := range result.Children {
		items, err := testStore.ListOrderItemsByOrder(context.Background(), child.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		itemCount += int64(len(items))

		// Each child is priced from its own item subset.
		require.Equal(t, created.Items[i].TotalPrice, items[0].TotalPrice)
		require.Equal(t, created.Items[i].ProductName, items[0].ProductName)
		require.Equal(t, items[0].TotalPrice, child.Subtotal)
		childTotals += child.Total
	}
	require.Equal(t, int64(len(created.Items)), itemCount)
	require.True(t, pricing.WithinTolerance(order.Total, childTotals, pricing.SplitTolerance(2)))
}

func TestSplitOrderTx_PaidOrder(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order

	// Settle the ledger without running the payment transaction so the
	// order keeps a non-terminal status.
	_, err := testStore.CreatePayment(context.Background(), CreatePaymentParams{
		OrderID:     order.ID,
		Amount:      order.Total,
		Method:      "CASH",
		Status:      PaymentRecordCompleted,
		ProcessedBy: "cashier1",
	})
	require.NoError(t, err)

	_, err = testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            order.ID,
		Mode:               SplitByAmount,
		Parts:              2,
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.ErrorIs(t, err, ErrOrderPaid)
}

func TestSplitOrderTx_PartialPaymentStaysOnParent(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order

	_, err := testStore.RecordPaymentTx(context.Background(), RecordPaymentTxParams{
		OrderID:     order.ID,
		Amount:      order.Total / 3,
		Method:      "CASH",
		ProcessedBy: "cashier1",
	})
	require.NoError(t, err)

	result, err := testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            order.ID,
		Mode:               SplitByAmount,
		Parts:              2,
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.NoError(t, err)
	require.Len(t, result.Children, 2)

	parentPayments, err := testStore.ListPaymentsByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, parentPayments, 1)

	for _, child := range result.Children {
		childPayments, err := testStore.ListPaymentsByOrder(context.Background(), child.ID)
		require.NoError(t, err)
		require.Empty(t, childPayments)
	}
}

func TestSplitOrderTx_ItemNotInOrder(t *testing.T) {
	table := createRandomDiningTable(t)
	created := createDineInOrder(t, table.ID)

	_, err := testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            created.Order.ID,
		Mode:               SplitByItem,
		ItemGroups:         [][]int64{{created.Items[0].ID}, {99999999}},
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.ErrorIs(t, err, ErrItemNotInOrder)
}

func TestSplitOrderTx_UnassignedItem(t *testing.T) {
	table := createRandomDiningTable(t)
	created := createDineInOrder(t, table.ID)

	// Both groups reference the same item; the second item is left out.
	_, err := testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            created.Order.ID,
		Mode:               SplitByItem,
		ItemGroups:         [][]int64{{created.Items[0].ID}, {created.Items[0].ID}},
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.ErrorIs(t, err, ErrItemAssignment)
}

func TestSplitOrderTx_AlreadySplit(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order

	_, err := testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            order.ID,
		Mode:               SplitByAmount,
		Parts:              2,
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.NoError(t, err)

	_, err = testStore.SplitOrderTx(context.Background(), SplitOrderTxParams{
		OrderID:            order.ID,
		Mode:               SplitByAmount,
		Parts:              2,
		TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
	})
	require.ErrorIs(t, err, ErrOrderNotSplittable)
}
