package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/token"
)

type mergeTablesRequest struct {
	// TableIDs lists the tables to merge; the first one hosts the merged
	// order.
	TableIDs []int64 `json:"table_ids" binding:"required,min=2,dive,min=1"`
}

// mergeTables combines the unpaid open orders of several tables into one
// order hosted on the first listed table.
// POST /v1/tables/merge
func (server *Server) mergeTables(ctx *gin.Context) {
	var req mergeTablesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := server.store.MergeTablesTx(ctx, db.MergeTablesTxParams{
		TableIDs: req.TableIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrMergeCount):
			ctx.JSON(http.StatusBadRequest, errorResponse(err))
		case errors.Is(err, db.ErrTableInactive),
			errors.Is(err, db.ErrNoOrdersToMerge):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	RecordTablesMerged()

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	details, _ := json.Marshal(gin.H{
		"table_ids":    req.TableIDs,
		"merged_order": result.MergedOrder.OrderNumber,
	})
	server.recordActivity(ctx, authPayload.Username, "MERGE_TABLES", "order", result.MergedOrder.ID, details)

	ctx.JSON(http.StatusCreated, result)
}
