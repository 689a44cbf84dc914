package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUser(ctx context.Context, id int64) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)

	CreateSession(ctx context.Context, arg CreateSessionParams) (Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (Session, error)

	CreateTable(ctx context.Context, arg CreateTableParams) (Table, error)
	GetTable(ctx context.Context, id int64) (Table, error)
	GetTableForUpdate(ctx context.Context, id int64) (Table, error)
	GetActiveTableByNumberAndFloor(ctx context.Context, arg GetActiveTableByNumberAndFloorParams) (Table, error)
	ListTables(ctx context.Context, arg ListTablesParams) ([]Table, error)
	UpdateTable(ctx context.Context, arg UpdateTableParams) (Table, error)
	UpdateTableStatus(ctx context.Context, arg UpdateTableStatusParams) (Table, error)
	SetTableCurrentOrder(ctx context.Context, arg SetTableCurrentOrderParams) (Table, error)
	DeactivateTable(ctx context.Context, id int64) (Table, error)
	CountActiveOrdersByTable(ctx context.Context, arg CountActiveOrdersByTableParams) (int64, error)

	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	GetOrder(ctx context.Context, id int64) (Order, error)
	GetOrderForUpdate(ctx context.Context, id int64) (Order, error)
	ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error)
	CountOrders(ctx context.Context) (int64, error)
	ListOrdersBySplitParent(ctx context.Context, splitFrom pgtype.Int8) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
	UpdateOrderPaymentStatus(ctx context.Context, arg UpdateOrderPaymentStatusParams) (Order, error)
	MarkOrderCompleted(ctx context.Context, id int64) (Order, error)
	MarkOrderSplit(ctx context.Context, id int64) (Order, error)
	MarkOrderMerged(ctx context.Context, arg MarkOrderMergedParams) (Order, error)
	ListOrdersUpdatedSince(ctx context.Context, arg ListOrdersUpdatedSinceParams) ([]Order, error)

	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	ListOrderItemsByOrder(ctx context.Context, orderID int64) ([]OrderItem, error)

	CreatePayment(ctx context.Context, arg CreatePaymentParams) (Payment, error)
	GetPayment(ctx context.Context, id int64) (Payment, error)
	GetPaymentForUpdate(ctx context.Context, id int64) (Payment, error)
	ListPaymentsByOrder(ctx context.Context, orderID int64) ([]Payment, error)
	ListPayments(ctx context.Context, arg ListPaymentsParams) ([]Payment, error)
	SumCompletedPaymentsByOrder(ctx context.Context, orderID int64) (int64, error)
	SumRefundsByOriginalPayment(ctx context.Context, originalPaymentID pgtype.Int8) (int64, error)
	MarkPaymentRefunded(ctx context.Context, id int64) (Payment, error)

	CreateActivityLog(ctx context.Context, arg CreateActivityLogParams) (ActivityLog, error)
	ListActivityLogs(ctx context.Context, arg ListActivityLogsParams) ([]ActivityLog, error)
}

var _ Querier = (*Queries)(nil)
