package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Order lifecycle statuses. SPLIT and MERGED are terminal markers for
// orders that were decomposed or folded into another order; the rows are
// retained for reporting and are never deleted.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusPreparing = "PREPARING"
	OrderStatusReady     = "READY"
	OrderStatusServed    = "SERVED"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusSplit     = "SPLIT"
	OrderStatusMerged    = "MERGED"
)

// Order types.
const (
	OrderTypeDineIn   = "DINE_IN"
	OrderTypeTakeaway = "TAKEAWAY"
	OrderTypeDelivery = "DELIVERY"
)

// Table statuses.
const (
	TableStatusAvailable = "AVAILABLE"
	TableStatusOccupied  = "OCCUPIED"
	TableStatusReserved  = "RESERVED"
	TableStatusCleaning  = "CLEANING"
	TableStatusDirty     = "DIRTY"
)

// Payment record statuses. A record is immutable once COMPLETED except
// for the transition to REFUNDED when fully reversed.
const (
	PaymentRecordPending   = "PENDING"
	PaymentRecordCompleted = "COMPLETED"
	PaymentRecordFailed    = "FAILED"
	PaymentRecordRefunded  = "REFUNDED"
)

// NonTerminalOrderStatuses are the statuses that block table deletion
// and count as "active" for a table's current order.
var NonTerminalOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
}

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"hashed_password"`
	FullName       string    `json:"full_name"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type Session struct {
	ID           uuid.UUID `json:"id"`
	UserID       int64     `json:"user_id"`
	RefreshToken string    `json:"refresh_token"`
	UserAgent    string    `json:"user_agent"`
	ClientIp     string    `json:"client_ip"`
	IsBlocked    bool      `json:"is_blocked"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

type Table struct {
	ID             int64              `json:"id"`
	Number         string             `json:"number"`
	Name           string             `json:"name"`
	Floor          string             `json:"floor"`
	Capacity       int16              `json:"capacity"`
	Status         string             `json:"status"`
	CurrentOrderID pgtype.Int8        `json:"current_order_id"`
	IsActive       bool               `json:"is_active"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Order struct {
	ID            int64              `json:"id"`
	OrderNumber   string             `json:"order_number"`
	TableID       pgtype.Int8        `json:"table_id"`
	CustomerName  pgtype.Text        `json:"customer_name"`
	CustomerPhone pgtype.Text        `json:"customer_phone"`
	Type          string             `json:"type"`
	Status        string             `json:"status"`
	Subtotal      int64              `json:"subtotal"`
	Tax           int64              `json:"tax"`
	Discount      int64              `json:"discount"`
	Total         int64              `json:"total"`
	PaymentStatus string             `json:"payment_status"`
	WaiterID      pgtype.Int8        `json:"waiter_id"`
	SplitFrom     pgtype.Int8        `json:"split_from"`
	SplitIndex    pgtype.Int4        `json:"split_index"`
	MergedInto    pgtype.Int8        `json:"merged_into"`
	Notes         pgtype.Text        `json:"notes"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
	CompletedAt   pgtype.Timestamptz `json:"completed_at"`
}

type OrderItem struct {
	ID          int64       `json:"id"`
	OrderID     int64       `json:"order_id"`
	ProductName string      `json:"product_name"`
	Sku         pgtype.Text `json:"sku"`
	Quantity    int32       `json:"quantity"`
	UnitPrice   int64       `json:"unit_price"`
	TotalPrice  int64       `json:"total_price"`
	Notes       pgtype.Text `json:"notes"`
}

// Payment is one append-only ledger entry. Refunds are negative amounts
// linked back to the payment they reverse via OriginalPaymentID.
type Payment struct {
	ID                int64       `json:"id"`
	OrderID           int64       `json:"order_id"`
	Amount            int64       `json:"amount"`
	Method            string      `json:"method"`
	Status            string      `json:"status"`
	OriginalPaymentID pgtype.Int8 `json:"original_payment_id"`
	Reference         pgtype.Text `json:"reference"`
	ProcessedBy       string      `json:"processed_by"`
	Notes             pgtype.Text `json:"notes"`
	CreatedAt         time.Time   `json:"created_at"`
}

type ActivityLog struct {
	ID         int64       `json:"id"`
	Actor      string      `json:"actor"`
	Action     string      `json:"action"`
	TargetType string      `json:"target_type"`
	TargetID   pgtype.Int8 `json:"target_id"`
	Details    []byte      `json:"details"`
	IpAddress  pgtype.Text `json:"ip_address"`
	CreatedAt  time.Time   `json:"created_at"`
}
