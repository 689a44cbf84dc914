package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
)

// ==================== RefundPaymentTx Transaction Tests ====================

func TestRefundPaymentTx_Partial(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order
	payment := payOrderInFull(t, order).Payment

	half := payment.Amount / 2
	result, err := testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      half,
		Reason:      pgtype.Text{String: "wrong dish", Valid: true},
		ProcessedBy: "manager1",
	})
	require.NoError(t, err)

	require.Equal(t, -half, result.Refund.Amount)
	require.Equal(t, PaymentRecordCompleted, result.Refund.Status)
	require.True(t, result.Refund.OriginalPaymentID.Valid)
	require.Equal(t, payment.ID, result.Refund.OriginalPaymentID.Int64)

	// A partial reversal leaves the original open for further refunds.
	require.Equal(t, PaymentRecordCompleted, result.Original.Status)
	require.Equal(t, pricing.PaymentPartial, result.Order.PaymentStatus)
}

func TestRefundPaymentTx_FullFlipsOriginal(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order
	payment := payOrderInFull(t, order).Payment

	result, err := testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      payment.Amount,
		Reason:      pgtype.Text{String: "order voided", Valid: true},
		ProcessedBy: "manager1",
	})
	require.NoError(t, err)

	require.Equal(t, -payment.Amount, result.Refund.Amount)
	require.Equal(t, PaymentRecordRefunded, result.Original.Status)
	require.Equal(t, pricing.PaymentPending, result.Order.PaymentStatus)

	paid, err := testStore.SumCompletedPaymentsByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Zero(t, paid)
}

func TestRefundPaymentTx_ExceedsRemainderLeavesLedgerUntouched(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order
	payment := payOrderInFull(t, order).Payment

	half := payment.Amount / 2
	_, err := testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      half,
		ProcessedBy: "manager1",
	})
	require.NoError(t, err)

	_, err = testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      payment.Amount - half + 1,
		ProcessedBy: "manager1",
	})
	require.ErrorIs(t, err, ErrRefundExceedsPayment)

	payments, err := testStore.ListPaymentsByOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)

	refunded, err := testStore.SumRefundsByOriginalPayment(context.Background(), pgtype.Int8{Int64: payment.ID, Valid: true})
	require.NoError(t, err)
	require.Equal(t, half, refunded)
}

func TestRefundPaymentTx_AlreadyRefunded(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order
	payment := payOrderInFull(t, order).Payment

	_, err := testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      payment.Amount,
		ProcessedBy: "manager1",
	})
	require.NoError(t, err)

	// The original is now REFUNDED; any further request is rejected as not
	// refundable rather than as exceeding the remainder.
	_, err = testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      1,
		ProcessedBy: "manager1",
	})
	require.ErrorIs(t, err, ErrNotRefundable)
}

func TestRefundPaymentTx_RefundOfRefund(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order
	payment := payOrderInFull(t, order).Payment

	result, err := testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      payment.Amount / 2,
		ProcessedBy: "manager1",
	})
	require.NoError(t, err)

	_, err = testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   result.Refund.ID,
		Amount:      1,
		ProcessedBy: "manager1",
	})
	require.ErrorIs(t, err, ErrNotRefundable)
}

func TestRefundPaymentTx_InvalidAmount(t *testing.T) {
	table := createRandomDiningTable(t)
	order := createDineInOrder(t, table.ID).Order
	payment := payOrderInFull(t, order).Payment

	_, err := testStore.RefundPaymentTx(context.Background(), RefundPaymentTxParams{
		PaymentID:   payment.ID,
		Amount:      -100,
		ProcessedBy: "manager1",
	})
	require.ErrorIs(t, err, ErrInvalidAmount)
}
