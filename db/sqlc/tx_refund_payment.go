package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
)

var (
	// ErrNotRefundable is returned when the target payment is itself a
	// refund, never completed, or already fully reversed
	ErrNotRefundable = errors.New("payment is not refundable")
	// ErrRefundExceedsPayment is returned when a refund exceeds the
	// unrefunded remainder of the original payment
	ErrRefundExceedsPayment = errors.New("refund exceeds the remaining refundable amount")
)

// RefundPaymentTxParams contains the input parameters of the refund transaction
type RefundPaymentTxParams struct {
	PaymentID   int64
	Amount      int64
	Reason      pgtype.Text
	ProcessedBy string
}

// RefundPaymentTxResult is the result of the refund transaction
type RefundPaymentTxResult struct {
	Refund   Payment `json:"refund"`
	Original Payment `json:"original"`
	Order    Order   `json:"order"`
}

// RefundPaymentTx records a refund as a negative ledger entry linked to the
// original payment. Partial refunds are allowed up to the unrefunded
// remainder, so the original stays COMPLETED until fully reversed; once it
// flips to REFUNDED further refund requests are rejected as not refundable.
// The order's payment status is recomputed from the ledger sum.
func (store *SQLStore) RefundPaymentTx(ctx context.Context, arg RefundPaymentTxParams) (RefundPaymentTxResult, error) {
	var result RefundPaymentTxResult

	if arg.Amount <= 0 {
		return result, ErrInvalidAmount
	}

	err := store.execTx(ctx, func(q *Queries) error {
		original, err := q.GetPaymentForUpdate(ctx, arg.PaymentID)
		if err != nil {
			return err
		}
		if original.Amount <= 0 || original.OriginalPaymentID.Valid {
			return ErrNotRefundable
		}
		if original.Status != PaymentRecordCompleted {
			return ErrNotRefundable
		}

		refunded, err := q.SumRefundsByOriginalPayment(ctx, pgtype.Int8{Int64: original.ID, Valid: true})
		if err != nil {
			return err
		}
		if arg.Amount > original.Amount-refunded {
			return ErrRefundExceedsPayment
		}

		order, err := q.GetOrderForUpdate(ctx, original.OrderID)
		if err != nil {
			return err
		}

		refund, err := q.CreatePayment(ctx, CreatePaymentParams{
			OrderID:           original.OrderID,
			Amount:            -arg.Amount,
			Method:            original.Method,
			Status:            PaymentRecordCompleted,
			OriginalPaymentID: pgtype.Int8{Int64: original.ID, Valid: true},
			ProcessedBy:       arg.ProcessedBy,
			Notes:             arg.Reason,
		})
		if err != nil {
			return err
		}
		result.Refund = refund
		result.Original = original

		if refunded+arg.Amount == original.Amount {
			result.Original, err = q.MarkPaymentRefunded(ctx, original.ID)
			if err != nil {
				return err
			}
		}

		paid, err := q.SumCompletedPaymentsByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		result.Order, err = q.UpdateOrderPaymentStatus(ctx, UpdateOrderPaymentStatusParams{
			ID:            order.ID,
			PaymentStatus: pricing.StatusFor(paid, order.Total),
		})
		return err
	})

	return result, err
}
