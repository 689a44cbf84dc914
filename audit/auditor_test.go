package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/Elisbrown/Restaurant-POS-sub001/db/mock"
	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
)

func TestSweepDetectsDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	clean := db.Order{ID: 1, OrderNumber: "ORD-1-0001", Total: 5000, PaymentStatus: pricing.PaymentPaid}
	drifted := db.Order{ID: 2, OrderNumber: "ORD-1-0002", Total: 8000, PaymentStatus: pricing.PaymentPaid}

	store.EXPECT().
		ListOrdersUpdatedSince(gomock.Any(), gomock.Any()).
		Times(1).
		Return([]db.Order{clean, drifted}, nil)
	store.EXPECT().
		SumCompletedPaymentsByOrder(gomock.Any(), gomock.Eq(clean.ID)).
		Times(1).
		Return(int64(5000), nil)
	store.EXPECT().
		SumCompletedPaymentsByOrder(gomock.Any(), gomock.Eq(drifted.ID)).
		Times(1).
		Return(int64(3000), nil)

	auditor := NewAuditor(store)
	err := auditor.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), auditor.LastDriftCount())
}

func TestSweepAdvancesWatermark(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().
		ListOrdersUpdatedSince(gomock.Any(), gomock.Any()).
		Times(2).
		Return([]db.Order{}, nil)

	auditor := NewAuditor(store)
	require.NoError(t, auditor.Sweep(context.Background()))
	first := auditor.lastRun
	require.NoError(t, auditor.Sweep(context.Background()))
	require.True(t, auditor.lastRun.After(first) || auditor.lastRun.Equal(first))
}
