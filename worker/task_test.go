package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/Elisbrown/Restaurant-POS-sub001/db/mock"
	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
)

func newTestProcessor(store db.Store) *RedisTaskProcessor {
	return &RedisTaskProcessor{store: store}
}

func TestProcessTaskRecordActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := newTestProcessor(store)

	payload := PayloadRecordActivity{
		Actor:      "cashier01",
		Action:     "RECORD_PAYMENT",
		TargetType: "payment",
		TargetID:   42,
		IPAddress:  "10.0.0.7",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	store.EXPECT().
		CreateActivityLog(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg db.CreateActivityLogParams) (db.ActivityLog, error) {
			require.Equal(t, payload.Actor, arg.Actor)
			require.Equal(t, payload.Action, arg.Action)
			require.Equal(t, payload.TargetID, arg.TargetID.Int64)
			require.True(t, arg.TargetID.Valid)
			require.Equal(t, payload.IPAddress, arg.IpAddress.String)
			return db.ActivityLog{Actor: arg.Actor, Action: arg.Action}, nil
		})

	task := asynq.NewTask(TaskRecordActivity, body)
	err = processor.ProcessTaskRecordActivity(context.Background(), task)
	require.NoError(t, err)
}

func TestProcessTaskRecordActivityBadPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := newTestProcessor(store)

	store.EXPECT().
		CreateActivityLog(gomock.Any(), gomock.Any()).
		Times(0)

	task := asynq.NewTask(TaskRecordActivity, []byte("not json"))
	err := processor.ProcessTaskRecordActivity(context.Background(), task)
	require.Error(t, err)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestProcessTaskOrderReadyOrderGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := newTestProcessor(store)

	body, err := json.Marshal(PayloadOrderReady{OrderID: 99})
	require.NoError(t, err)

	store.EXPECT().
		GetOrder(gomock.Any(), gomock.Eq(int64(99))).
		Times(1).
		Return(db.Order{}, db.ErrRecordNotFound)

	task := asynq.NewTask(TaskOrderReady, body)
	err = processor.ProcessTaskOrderReady(context.Background(), task)
	require.Error(t, err)
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestProcessTaskOrderReadyTransientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	processor := newTestProcessor(store)

	body, err := json.Marshal(PayloadOrderReady{OrderID: 7})
	require.NoError(t, err)

	dbErr := errors.New("connection reset")
	store.EXPECT().
		GetOrder(gomock.Any(), gomock.Eq(int64(7))).
		Times(1).
		Return(db.Order{}, dbErr)

	task := asynq.NewTask(TaskOrderReady, body)
	err = processor.ProcessTaskOrderReady(context.Background(), task)
	require.Error(t, err)
	require.NotErrorIs(t, err, asynq.SkipRetry)
}
