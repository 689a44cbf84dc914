package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
)

const TaskRecordActivity = "task:record_activity"

// PayloadRecordActivity describes one audit trail entry. Writing it through
// the queue keeps the hot request path off the activity_logs table.
type PayloadRecordActivity struct {
	Actor      string          `json:"actor"`
	Action     string          `json:"action"`
	TargetType string          `json:"target_type"`
	TargetID   int64           `json:"target_id"`
	Details    json.RawMessage `json:"details"`
	IPAddress  string          `json:"ip_address"`
}

func (distributor *RedisTaskDistributor) DistributeTaskRecordActivity(
	ctx context.Context,
	payload *PayloadRecordActivity,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskRecordActivity, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Debug().Str("type", task.Type()).Bytes("payload", task.Payload()).
		Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("enqueued task")
	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskRecordActivity(ctx context.Context, task *asynq.Task) error {
	var payload PayloadRecordActivity
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	arg := db.CreateActivityLogParams{
		Actor:      payload.Actor,
		Action:     payload.Action,
		TargetType: payload.TargetType,
		Details:    payload.Details,
	}
	if payload.TargetID != 0 {
		arg.TargetID = pgtype.Int8{Int64: payload.TargetID, Valid: true}
	}
	if payload.IPAddress != "" {
		arg.IpAddress = pgtype.Text{String: payload.IPAddress, Valid: true}
	}

	entry, err := processor.store.CreateActivityLog(ctx, arg)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	log.Info().Str("type", task.Type()).Str("actor", entry.Actor).
		Str("action", entry.Action).Msg("processed task")
	return nil
}
