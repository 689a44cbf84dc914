package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
)

var (
	// ErrOrderNotPayable is returned when a payment targets an order that
	// was split, merged or cancelled
	ErrOrderNotPayable = errors.New("order can no longer accept payments")
	// ErrOverpayment is returned when a payment exceeds the outstanding balance
	ErrOverpayment = errors.New("payment exceeds the outstanding balance")
	// ErrInvalidAmount is returned when a payment amount is not positive
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

// RecordPaymentTxParams contains the input parameters of the record payment transaction
type RecordPaymentTxParams struct {
	OrderID     int64
	Amount      int64
	Method      string
	Reference   pgtype.Text
	ProcessedBy string
	Notes       pgtype.Text
}

// RecordPaymentTxResult is the result of the record payment transaction
type RecordPaymentTxResult struct {
	Payment Payment `json:"payment"`
	Order   Order   `json:"order"`
	Table   *Table  `json:"table,omitempty"`
}

// RecordPaymentTx appends a payment to an order's ledger and recomputes the
// order's payment status from the ledger sum. The order row is locked for
// the duration so concurrent payments cannot both observe the same balance.
// When the order becomes fully paid it is completed and its table is
// released for cleaning.
func (store *SQLStore) RecordPaymentTx(ctx context.Context, arg RecordPaymentTxParams) (RecordPaymentTxResult, error) {
	var result RecordPaymentTxResult

	if arg.Amount <= 0 {
		return result, ErrInvalidAmount
	}

	err := store.execTx(ctx, func(q *Queries) error {
		order, err := q.GetOrderForUpdate(ctx, arg.OrderID)
		if err != nil {
			return err
		}
		switch order.Status {
		case OrderStatusSplit, OrderStatusMerged, OrderStatusCancelled:
			return ErrOrderNotPayable
		}

		paid, err := q.SumCompletedPaymentsByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if arg.Amount > order.Total-paid {
			return ErrOverpayment
		}

		payment, err := q.CreatePayment(ctx, CreatePaymentParams{
			OrderID:     order.ID,
			Amount:      arg.Amount,
			Method:      arg.Method,
			Status:      PaymentRecordCompleted,
			Reference:   arg.Reference,
			ProcessedBy: arg.ProcessedBy,
			Notes:       arg.Notes,
		})
		if err != nil {
			return err
		}
		result.Payment = payment

		paid += arg.Amount
		if pricing.StatusFor(paid, order.Total) == pricing.PaymentPaid {
			completed, err := q.MarkOrderCompleted(ctx, order.ID)
			if err != nil {
				return err
			}
			result.Order = completed

			if order.TableID.Valid {
				table, err := q.GetTableForUpdate(ctx, order.TableID.Int64)
				if err != nil {
					return err
				}
				if table.CurrentOrderID.Valid && table.CurrentOrderID.Int64 == order.ID {
					released, err := q.SetTableCurrentOrder(ctx, SetTableCurrentOrderParams{
						ID:     table.ID,
						Status: TableStatusDirty,
					})
					if err != nil {
						return err
					}
					result.Table = &released
				}
			}
			return nil
		}

		updated, err := q.UpdateOrderPaymentStatus(ctx, UpdateOrderPaymentStatusParams{
			ID:            order.ID,
			PaymentStatus: pricing.StatusFor(paid, order.Total),
		})
		if err != nil {
			return err
		}
		result.Order = updated
		return nil
	})

	return result, err
}
