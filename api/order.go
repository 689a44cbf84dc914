package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/token"
	"github.com/Elisbrown/Restaurant-POS-sub001/worker"
)

type createOrderItemRequest struct {
	ProductName string `json:"product_name" binding:"required"`
	Sku         string `json:"sku"`
	Quantity    int32  `json:"quantity" binding:"required,min=1"`
	UnitPrice   int64  `json:"unit_price" binding:"required,min=1"`
	Notes       string `json:"notes"`
}

type createOrderRequest struct {
	TableID       int64                    `json:"table_id"`
	CustomerName  string                   `json:"customer_name"`
	CustomerPhone string                   `json:"customer_phone"`
	Type          string                   `json:"type" binding:"required,oneof=DINE_IN TAKEAWAY DELIVERY"`
	Discount      int64                    `json:"discount" binding:"min=0"`
	Notes         string                   `json:"notes"`
	Items         []createOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// createOrder opens a new order, prices it, and occupies the table for
// dine-in.
// POST /v1/orders
func (server *Server) createOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	arg := db.CreateOrderTxParams{
		Type:               req.Type,
		Discount:           req.Discount,
		TaxRateBasisPoints: server.config.TaxRateBasisPoints,
		WaiterID:           pgtype.Int8{Int64: authPayload.UserID, Valid: true},
	}
	if req.TableID != 0 {
		arg.TableID = pgtype.Int8{Int64: req.TableID, Valid: true}
	}
	if req.CustomerName != "" {
		arg.CustomerName = pgtype.Text{String: req.CustomerName, Valid: true}
	}
	if req.CustomerPhone != "" {
		arg.CustomerPhone = pgtype.Text{String: req.CustomerPhone, Valid: true}
	}
	if req.Notes != "" {
		arg.Notes = pgtype.Text{String: req.Notes, Valid: true}
	}
	for _, item := range req.Items {
		spec := db.CreateOrderItemSpec{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
		if item.Sku != "" {
			spec.Sku = pgtype.Text{String: item.Sku, Valid: true}
		}
		if item.Notes != "" {
			spec.Notes = pgtype.Text{String: item.Notes, Valid: true}
		}
		arg.Items = append(arg.Items, spec)
	}

	result, err := server.store.CreateOrderTx(ctx, arg)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrEmptyOrder),
			errors.Is(err, db.ErrTableRequired),
			errors.Is(err, db.ErrNegativeDiscount):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.Is(err, db.ErrTableOccupied),
			errors.Is(err, db.ErrTableInactive):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordOrderCreated()
	server.recordActivity(ctx, authPayload.Username, "CREATE_ORDER", "order", result.Order.ID, nil)

	ctx.JSON(http.StatusCreated, result)
}

type orderIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getOrder returns one order.
// GET /v1/orders/:id
func (server *Server) getOrder(ctx *gin.Context) {
	var req orderIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.store.GetOrder(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// listOrderItems returns the line items of an order.
// GET /v1/orders/:id/items
func (server *Server) listOrderItems(ctx *gin.Context) {
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

	items, err := server.store.ListOrderItemsByOrder(ctx, req.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, items)
}

type listOrdersRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED PREPARING READY SERVED COMPLETED CANCELLED SPLIT MERGED"`
	TableID  int64  `form:"table_id" binding:"omitempty,min=1"`
	PageID   int32  `form:"page_id" binding:"required,min=1"`
	PageSize int32  `form:"page_size" binding:"required,min=5,max=50"`
}

// listOrders returns orders newest first with optional status and table
// filters.
// GET /v1/orders
func (server *Server) listOrders(ctx *gin.Context) {
	var req listOrdersRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListOrdersParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	}
	if req.Status != "" {
		arg.Status = pgtype.Text{String: req.Status, Valid: true}
	}
	if req.TableID != 0 {
		arg.TableID = pgtype.Int8{Int64: req.TableID, Valid: true}
	}

	orders, err := server.store.ListOrders(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CONFIRMED PREPARING READY SERVED CANCELLED"`
}

// updateOrderStatus advances the kitchen lifecycle of an order.
// PATCH /v1/orders/:id/status
func (server *Server) updateOrderStatus(ctx *gin.Context) {
	var uri orderIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var req updateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	order, err := server.store.UpdateOrderStatusTx(ctx, db.UpdateOrderStatusTxParams{
		OrderID: uri.ID,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrInvalidStatusTransition),
			errors.Is(err, db.ErrOrderHasPayments):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	if order.Status == db.OrderStatusReady && server.taskDistributor != nil {
		err = server.taskDistributor.DistributeTaskOrderReady(
			ctx,
			&worker.PayloadOrderReady{OrderID: order.ID},
			asynq.Queue(worker.QueueCritical),
		)
		if err != nil {
			_ = ctx.Error(err)
		}
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	details, _ := json.Marshal(gin.H{"to": order.Status})
	server.recordActivity(ctx, authPayload.Username, "UPDATE_ORDER_STATUS", "order", order.ID, details)

	ctx.JSON(http.StatusOK, order)
}
