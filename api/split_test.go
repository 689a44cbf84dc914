package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/Elisbrown/Restaurant-POS-sub001/db/mock"
	db "github.com/Elisbrown/Restaurant-POS-sub001/db/sqlc"
	"github.com/Elisbrown/Restaurant-POS-sub001/pricing"
	"github.com/Elisbrown/Restaurant-POS-sub001/token"
	"github.com/Elisbrown/Restaurant-POS-sub001/util"
)

func splitChildren(parent db.Order, n int) []db.Order {
	shares := pricing.SplitEvenly(parent.Total, n, pricing.DefaultTaxRateBasisPoints)
	children := make([]db.Order, n)
	for i := range children {
		children[i] = db.Order{
			ID:          parent.ID + int64(i) + 1,
			OrderNumber: util.SplitOrderNumber(parent.OrderNumber, i+1),
			TableID:     parent.TableID,
			Type:        parent.Type,
			Status:      parent.Status,
			Subtotal:    shares[i].Subtotal,
			Tax:         shares[i].Tax,
			Discount:    shares[i].Discount,
			Total:       shares[i].Total,
			SplitFrom:   pgtype.Int8{Int64: parent.ID, Valid: true},
			SplitIndex:  pgtype.Int4{Int32: int32(i + 1), Valid: true},
		}
	}
	return children
}

func TestSplitOrderAPI(t *testing.T) {
	user, _ := randomUser(t, util.RoleCashier)
	order := randomOrder(util.RandomInt(1, 100), db.OrderStatusServed)

	testCases := []struct {
		name          string
		orderID       int64
		body          gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "ByAmount",
			orderID: order.ID,
			body: gin.H{
				"mode":  db.SplitByAmount,
				"parts": 3,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				parent := order
				parent.Status = db.OrderStatusSplit
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Eq(db.SplitOrderTxParams{
						OrderID:            order.ID,
						Mode:               db.SplitByAmount,
						Parts:              3,
						TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
					})).
					Times(1).
					Return(db.SplitOrderTxResult{Parent: parent, Children: splitChildren(order, 3)}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var rsp db.SplitOrderTxResult
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, db.OrderStatusSplit, rsp.Parent.Status)
				require.Len(t, rsp.Children, 3)

				var sum int64
				for _, child := range rsp.Children {
					require.Equal(t, rsp.Parent.ID, child.SplitFrom.Int64)
					sum += child.Total
				}
				require.Equal(t, rsp.Parent.Total, sum)
			},
		},
		{
			name:    "ByItem",
			orderID: order.ID,
			body: gin.H{
				"mode":        db.SplitByItem,
				"item_groups": [][]int64{{1, 2}, {3}},
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				parent := order
				parent.Status = db.OrderStatusSplit
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Eq(db.SplitOrderTxParams{
						OrderID:            order.ID,
						Mode:               db.SplitByItem,
						ItemGroups:         [][]int64{{1, 2}, {3}},
						TaxRateBasisPoints: pricing.DefaultTaxRateBasisPoints,
					})).
					Times(1).
					Return(db.SplitOrderTxResult{Parent: parent, Children: splitChildren(order, 2)}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var rsp db.SplitOrderTxResult
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Len(t, rsp.Children, 2)
			},
		},
		{
			name:    "ByAmountMissingParts",
			orderID: order.ID,
			body: gin.H{
				"mode": db.SplitByAmount,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:    "ByItemMissingGroups",
			orderID: order.ID,
			body: gin.H{
				"mode": db.SplitByItem,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:    "InvalidMode",
			orderID: order.ID,
			body: gin.H{
				"mode":  "BY_GUEST",
				"parts": 2,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:    "PaidOrder",
			orderID: order.ID,
			body: gin.H{
				"mode":  db.SplitByAmount,
				"parts": 2,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SplitOrderTxResult{}, db.ErrOrderPaid)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:    "UnbalancedSplit",
			orderID: order.ID,
			body: gin.H{
				"mode":        db.SplitByItem,
				"item_groups": [][]int64{{1, 2}, {3}},
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SplitOrderTxResult{}, db.ErrSplitUnbalanced)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:    "ItemNotInOrder",
			orderID: order.ID,
			body: gin.H{
				"mode":        db.SplitByItem,
				"item_groups": [][]int64{{1}, {999}},
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SplitOrderTxResult{}, db.ErrItemNotInOrder)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:    "ForbiddenForChef",
			orderID: order.ID,
			body: gin.H{
				"mode":  db.SplitByAmount,
				"parts": 2,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, util.RoleChef, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					SplitOrderTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/orders/%d/split", tc.orderID)
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
