package worker

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
)

const (
	// QueueCritical carries tasks that must not lag behind service traffic
	QueueCritical = "critical"
	// QueueDefault carries everything else
	QueueDefault = "default"
)

// TaskProcessor consumes and handles tasks from the queue
type TaskProcessor interface {
	Start() error
	Shutdown()
}

// RedisTaskProcessor processes tasks from a redis-backed asynq queue
type RedisTaskProcessor struct {
	server *asynq.Server
	store  db.Store
	// redisClient is used to publish floor notifications over Pub/Sub,
	// separate from the asynq connection.
	redisClient *redis.Client
}

func NewRedisTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: logger,
		},
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisOpt.Addr,
		Password: redisOpt.Password,
		DB:       redisOpt.DB,
	})

	return &RedisTaskProcessor{
		server:      server,
		store:       store,
		redisClient: redisClient,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskRecordActivity, processor.ProcessTaskRecordActivity)
	mux.HandleFunc(TaskOrderReady, processor.ProcessTaskOrderReady)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
	if processor.redisClient != nil {
		if err := processor.redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
}
