package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/token"
)

type splitOrderRequest struct {
	Mode string `json:"mode" binding:"required,oneof=BY_ITEM BY_AMOUNT"`
	// Parts is the number of equal shares in BY_AMOUNT mode.
	Parts int `json:"parts" binding:"omitempty,min=2,max=20"`
	// ItemGroups assigns every item id of the order to exactly one child
	// in BY_ITEM mode.
	ItemGroups [][]int64 `json:"item_groups" binding:"omitempty,min=2,dive,min=1"`
}

// splitOrder decomposes an order that is not yet fully paid into separately
// payable child orders.
// POST /v1/orders/:id/split
func (server *Server) splitOrder(ctx *gin.Context) {
	var uri orderIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var req splitOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	switch req.Mode {
	case db.SplitByAmount:
		if req.Parts < 2 {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("parts is required for BY_AMOUNT splits")))
			return
		}
	case db.SplitByItem:
		if len(req.ItemGroups) < 2 {
			ctx.JSON(http.StatusBadRequest, errorResponse(errors.New("item_groups is required for BY_ITEM splits")))
			return
		}
	}

	result, err := server.store.SplitOrderTx(ctx, db.SplitOrderTxParams{
		OrderID:            uri.ID,
		Mode:               req.Mode,
		Parts:              req.Parts,
		ItemGroups:         req.ItemGroups,
		TaxRateBasisPoints: server.config.TaxRateBasisPoints,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrSplitMode),
			errors.Is(err, db.ErrSplitCount),
			errors.Is(err, db.ErrItemNotInOrder),
			errors.Is(err, db.ErrItemAssignment):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.Is(err, db.ErrOrderNotSplittable),
			errors.Is(err, db.ErrOrderPaid),
			errors.Is(err, db.ErrSplitUnbalanced):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordOrderSplit(req.Mode)

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	details, _ := json.Marshal(gin.H{
		"mode":     req.Mode,
		"children": len(result.Children),
	})
	server.recordActivity(ctx, authPayload.Username, "SPLIT_ORDER", "order", uri.ID, details)

	ctx.JSON(http.StatusCreated, result)
}
