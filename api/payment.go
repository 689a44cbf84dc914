package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/token"
)

type recordPaymentRequest struct {
	OrderID   int64  `json:"order_id" binding:"required,min=1"`
	Amount    int64  `json:"amount" binding:"required,min=1"`
	Method    string `json:"method" binding:"required,oneof=CASH CARD MOBILE_MONEY BANK_TRANSFER"`
	Reference string `json:"reference"`
	Notes     string `json:"notes"`
}

// recordPayment collects money against an order. Full settlement completes
// the order and releases its table for cleaning.
// POST /v1/payments
func (server *Server) recordPayment(ctx *gin.Context) {
	var req recordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	arg := db.RecordPaymentTxParams{
		OrderID:     req.OrderID,
		Amount:      req.Amount,
		Method:      req.Method,
		ProcessedBy: authPayload.Username,
	}
	if req.Reference != "" {
		arg.Reference = pgtype.Text{String: req.Reference, Valid: true}
	}
	if req.Notes != "" {
		arg.Notes = pgtype.Text{String: req.Notes, Valid: true}
	}

	result, err := server.store.RecordPaymentTx(ctx, arg)
	if err != nil {
		RecordPaymentProcessed(false)
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrInvalidAmount):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.Is(err, db.ErrOrderNotPayable),
			errors.Is(err, db.ErrOverpayment):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordPaymentProcessed(true)
	details, _ := json.Marshal(gin.H{
		"amount":         result.Payment.Amount,
		"method":         result.Payment.Method,
		"payment_status": result.Order.PaymentStatus,
	})
	server.recordActivity(ctx, authPayload.Username, "RECORD_PAYMENT", "payment", result.Payment.ID, details)

	ctx.JSON(http.StatusCreated, result)
}

type paymentIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getPayment returns one ledger entry.
// GET /v1/payments/:id
func (server *Server) getPayment(ctx *gin.Context) {
	var req paymentIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	payment, err := server.store.GetPayment(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

type listPaymentsRequest struct {
	OrderID  int64  `form:"order_id" binding:"omitempty,min=1"`
	Status   string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
	Method   string `form:"method" binding:"omitempty,oneof=CASH CARD MOBILE_MONEY BANK_TRANSFER"`
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=50"`
}

// listPayments returns ledger entries newest first with optional filters.
// GET /v1/payments
func (server *Server) listPayments(ctx *gin.Context) {
	var req listPaymentsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListPaymentsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	}
	if req.OrderID != 0 {
		arg.OrderID = pgtype.Int8{Int64: req.OrderID, Valid: true}
	}
	if req.Status != "" {
		arg.Status = pgtype.Text{String: req.Status, Valid: true}
	}
	if req.Method != "" {
		arg.Method = pgtype.Text{String: req.Method, Valid: true}
	}

	payments, err := server.store.ListPayments(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// listOrderPayments returns the full ledger of one order.
// GET /v1/orders/:id/payments
func (server *Server) listOrderPayments(ctx *gin.Context) {
	var req orderIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	if _, err := server.store.GetOrder(ctx, req.ID); err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	payments, err := server.store.ListPaymentsByOrder(ctx, req.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

type refundPaymentRequest struct {
	Amount int64  `json:"amount" binding:"required,min=1"`
	Reason string `json:"reason" binding:"required"`
}

// refundPayment reverses part or all of a payment.
// POST /v1/payments/:id/refund
func (server *Server) refundPayment(ctx *gin.Context) {
	var uri paymentIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var req refundPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	result, err := server.store.RefundPaymentTx(ctx, db.RefundPaymentTxParams{
		PaymentID:   uri.ID,
		Amount:      req.Amount,
		Reason:      pgtype.Text{String: req.Reason, Valid: true},
		ProcessedBy: authPayload.Username,
	})
	if err != nil {
		RecordRefundProcessed(false)
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrInvalidAmount):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.Is(err, db.ErrNotRefundable),
			errors.Is(err, db.ErrRefundExceedsPayment):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordRefundProcessed(true)
	details, _ := json.Marshal(gin.H{
		"amount": req.Amount,
		"reason": req.Reason,
	})
	server.recordActivity(ctx, authPayload.Username, "REFUND_PAYMENT", "payment", uri.ID, details)

	ctx.JSON(http.StatusCreated, result)
}
