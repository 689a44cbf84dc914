package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/token"
)

type createTableRequest struct {
	Number   string `json:"number" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Floor    string `json:"floor" binding:"required"`
	Capacity int16  `json:"capacity" binding:"required,min=1,max=50"`
}

// createTable registers a new table on a floor.
// POST /v1/tables
func (server *Server) createTable(ctx *gin.Context) {
	var req createTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	table, err := server.store.CreateTable(ctx, db.CreateTableParams{
		Number:   req.Number,
		Name:     req.Name,
		Floor:    req.Floor,
		Capacity: req.Capacity,
	})
	if err != nil {
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(
				fmt.Errorf("table %s already exists on floor %s", req.Number, req.Floor)))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	server.recordActivity(ctx, authPayload.Username, "CREATE_TABLE", "table", table.ID, nil)

	ctx.JSON(http.StatusCreated, table)
}

type tableIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// getTable returns one table.
// GET /v1/tables/:id
func (server *Server) getTable(ctx *gin.Context) {
	var req tableIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	table, err := server.store.GetTable(ctx, req.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if !table.IsActive {
		ctx.JSON(http.StatusNotFound, errorResponse(db.ErrRecordNotFound))
		return
	}

	ctx.JSON(http.StatusOK, table)
}

type listTablesRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED RESERVED CLEANING DIRTY"`
	Floor  string `form:"floor"`
}

// listTables returns the active tables, optionally filtered by status and floor.
// GET /v1/tables
func (server *Server) listTables(ctx *gin.Context) {
	var req listTablesRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.ListTablesParams{}
	if req.Status != "" {
		arg.Status = pgtype.Text{String: req.Status, Valid: true}
	}
	if req.Floor != "" {
		arg.Floor = pgtype.Text{String: req.Floor, Valid: true}
	}

	tables, err := server.store.ListTables(ctx, arg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, tables)
}

type updateTableRequest struct {
	Number   string `json:"number"`
	Name     string `json:"name"`
	Floor    string `json:"floor"`
	Capacity int16  `json:"capacity" binding:"omitempty,min=1,max=50"`
}

// updateTable changes a table's identity fields.
// PUT /v1/tables/:id
func (server *Server) updateTable(ctx *gin.Context) {
	var uri tableIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var req updateTableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	arg := db.UpdateTableParams{ID: uri.ID}
	if req.Number != "" {
		arg.Number = pgtype.Text{String: req.Number, Valid: true}
	}
	if req.Name != "" {
		arg.Name = pgtype.Text{String: req.Name, Valid: true}
	}
	if req.Floor != "" {
		arg.Floor = pgtype.Text{String: req.Floor, Valid: true}
	}
	if req.Capacity != 0 {
		arg.Capacity = pgtype.Int2{Int16: req.Capacity, Valid: true}
	}

	table, err := server.store.UpdateTable(ctx, arg)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		if db.ErrorCode(err) == db.UniqueViolation {
			ctx.JSON(http.StatusConflict, errorResponse(
				errors.New("another table already uses this number on this floor")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	server.recordActivity(ctx, authPayload.Username, "UPDATE_TABLE", "table", table.ID, nil)

	ctx.JSON(http.StatusOK, table)
}

// deleteTable soft deletes a table with no open orders.
// DELETE /v1/tables/:id
func (server *Server) deleteTable(ctx *gin.Context) {
	var req tableIDRequest
	if err := ctx.ShouldBindUri(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	table, err := server.store.DeleteTableTx(ctx, db.DeleteTableTxParams{TableID: req.ID})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, errorResponse(err))
		case errors.Is(err, db.ErrTableHasActiveOrder):
			ctx.JSON(http.StatusConflict, errorResponse(err))
		default:
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		}
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	server.recordActivity(ctx, authPayload.Username, "DELETE_TABLE", "table", table.ID, nil)

	ctx.JSON(http.StatusOK, table)
}

type updateTableStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=AVAILABLE RESERVED CLEANING"`
}

// manualTableTransitions are the status changes staff may apply directly.
// OCCUPIED and DIRTY are only reachable through the order lifecycle;
// RESERVED and CLEANING can be forced from any state, and AVAILABLE is the
// exit from the cleaning cycle or a dropped reservation.
var manualTableTransitions = map[string][]string{
	db.TableStatusAvailable: {db.TableStatusReserved, db.TableStatusCleaning},
	db.TableStatusOccupied:  {db.TableStatusReserved, db.TableStatusCleaning},
	db.TableStatusReserved:  {db.TableStatusAvailable, db.TableStatusCleaning},
	db.TableStatusCleaning:  {db.TableStatusAvailable, db.TableStatusReserved},
	db.TableStatusDirty:     {db.TableStatusAvailable, db.TableStatusReserved, db.TableStatusCleaning},
}

// updateTableStatus applies a staff-driven status change: reservations,
// sending a table to cleaning, and the return to AVAILABLE.
// PATCH /v1/tables/:id/status
func (server *Server) updateTableStatus(ctx *gin.Context) {
	var uri tableIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	var req updateTableStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	table, err := server.store.GetTable(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}
	if !table.IsActive {
		ctx.JSON(http.StatusNotFound, errorResponse(db.ErrRecordNotFound))
		return
	}

	allowed := false
	for _, next := range manualTableTransitions[table.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		ctx.JSON(http.StatusConflict, errorResponse(
			fmt.Errorf("cannot change table status from %s to %s", table.Status, req.Status)))
		return
	}

	var updated db.Table
	if req.Status == db.TableStatusAvailable {
		// Returning a table to service also drops any lingering order reference.
		updated, err = server.store.SetTableCurrentOrder(ctx, db.SetTableCurrentOrderParams{
			ID:     table.ID,
			Status: db.TableStatusAvailable,
		})
	} else {
		updated, err = server.store.UpdateTableStatus(ctx, db.UpdateTableStatusParams{
			ID:     table.ID,
			Status: req.Status,
		})
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	details, _ := json.Marshal(gin.H{"from": table.Status, "to": req.Status})
	server.recordActivity(ctx, authPayload.Username, "UPDATE_TABLE_STATUS", "table", table.ID, details)

	ctx.JSON(http.StatusOK, updated)
}
