package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
)

const TaskOrderReady = "task:order_ready"

// OrderReadyChannel is the redis Pub/Sub channel the floor display
// subscribes to.
const OrderReadyChannel = "pos:orders:ready"

// PayloadOrderReady notifies front of house that the kitchen finished an order
type PayloadOrderReady struct {
	OrderID int64 `json:"order_id"`
}

func (distributor *RedisTaskDistributor) DistributeTaskOrderReady(
	ctx context.Context,
	payload *PayloadOrderReady,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskOrderReady, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Debug().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")
	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskOrderReady(ctx context.Context, task *asynq.Task) error {
	var payload PayloadOrderReady
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	order, err := processor.store.GetOrder(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return fmt.Errorf("order gone: %w", asynq.SkipRetry)
		}
		return fmt.Errorf("failed to get order: %w", err)
	}

	notification := map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	}
	if order.TableID.Valid {
		notification["table_id"] = order.TableID.Int64
	}
	message, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", asynq.SkipRetry)
	}

	if processor.redisClient != nil {
		if err := processor.redisClient.Publish(ctx, OrderReadyChannel, message).Err(); err != nil {
			return fmt.Errorf("failed to publish order ready notification: %w", err)
		}
	}

	log.Info().Str("type", task.Type()).Str("order_number", order.OrderNumber).
		Msg("order ready for service")
	return nil
}
