package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor enqueues background tasks for asynchronous processing
type TaskDistributor interface {
	DistributeTaskRecordActivity(
		ctx context.Context,
		payload *PayloadRecordActivity,
		opts ...asynq.Option,
	) error
	DistributeTaskOrderReady(
		ctx context.Context,
		payload *PayloadOrderReady,
		opts ...asynq.Option,
	) error
}

// RedisTaskDistributor distributes tasks through a redis-backed asynq queue
type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
