package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
)

type listActivitiesRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=5,max=100"`
}

// listActivities returns the audit trail newest first.
// GET /v1/activities
func (server *Server) listActivities(ctx *gin.Context) {
	var req listActivitiesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	logs, err := server.store.ListActivityLogs(ctx, db.ListActivityLogsParams{
		Limit:  req.PageSize,
		Offset: (req.PageID - 1) * req.PageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, logs)
}
