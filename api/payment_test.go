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

func randomPayment(orderID int64, amount int64, processedBy string) db.Payment {
	return db.Payment{
		ID:          util.RandomInt(1, 1000),
		OrderID:     orderID,
		Amount:      amount,
		Method:      "CASH",
		Status:      db.PaymentRecordCompleted,
		ProcessedBy: processedBy,
		CreatedAt:   time.Now(),
	}
}

func TestRecordPaymentAPI(t *testing.T) {
	user, _ := randomUser(t, util.RoleCashier)
	order := randomOrder(util.RandomInt(1, 100), db.OrderStatusServed)
	payment := randomPayment(order.ID, order.Total, user.Username)

	testCases := []struct {
		name          string
		body          gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "FullPaymentCompletesOrder",
			body: gin.H{
				"order_id": order.ID,
				"amount":   order.Total,
				"method":   "CASH",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				paid := order
				paid.Status = db.OrderStatusCompleted
				paid.PaymentStatus = pricing.PaymentPaid

				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Eq(db.RecordPaymentTxParams{
						OrderID:     order.ID,
						Amount:      order.Total,
						Method:      "CASH",
						ProcessedBy: user.Username,
					})).
					Times(1).
					Return(db.RecordPaymentTxResult{Payment: payment, Order: paid}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var rsp db.RecordPaymentTxResult
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, order.Total, rsp.Payment.Amount)
				require.Equal(t, db.OrderStatusCompleted, rsp.Order.Status)
				require.Equal(t, pricing.PaymentPaid, rsp.Order.PaymentStatus)
			},
		},
		{
			name: "PartialPayment",
			body: gin.H{
				"order_id": order.ID,
				"amount":   order.Total / 2,
				"method":   "MOBILE_MONEY",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				partial := order
				partial.PaymentStatus = pricing.PaymentPartial
				half := randomPayment(order.ID, order.Total/2, user.Username)
				half.Method = "MOBILE_MONEY"

				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.RecordPaymentTxResult{Payment: half, Order: partial}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var rsp db.RecordPaymentTxResult
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, pricing.PaymentPartial, rsp.Order.PaymentStatus)
				require.NotEqual(t, db.OrderStatusCompleted, rsp.Order.Status)
			},
		},
		{
			name: "Overpayment",
			body: gin.H{
				"order_id": order.ID,
				"amount":   order.Total + 1,
				"method":   "CASH",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.RecordPaymentTxResult{}, db.ErrOverpayment)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "OrderNotPayable",
			body: gin.H{
				"order_id": order.ID,
				"amount":   order.Total,
				"method":   "CASH",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.RecordPaymentTxResult{}, db.ErrOrderNotPayable)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "OrderNotFound",
			body: gin.H{
				"order_id": order.ID,
				"amount":   order.Total,
				"method":   "CASH",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.RecordPaymentTxResult{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name: "InvalidMethod",
			body: gin.H{
				"order_id": order.ID,
				"amount":   order.Total,
				"method":   "CRYPTO",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "NegativeAmount",
			body: gin.H{
				"order_id": order.ID,
				"amount":   -500,
				"method":   "CASH",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "ForbiddenForWaitress",
			body: gin.H{
				"order_id": order.ID,
				"amount":   order.Total,
				"method":   "CASH",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Username, util.RoleWaitress, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RecordPaymentTx(gomock.Any(), gomock.Any()).
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

			request, err := http.NewRequest(http.MethodPost, "/v1/payments", bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestRefundPaymentAPI(t *testing.T) {
	manager, _ := randomUser(t, util.RoleManager)
	order := randomOrder(util.RandomInt(1, 100), db.OrderStatusCompleted)
	payment := randomPayment(order.ID, order.Total, "cashier01")

	testCases := []struct {
		name          string
		paymentID     int64
		body          gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:      "FullRefund",
			paymentID: payment.ID,
			body: gin.H{
				"amount": payment.Amount,
				"reason": "customer complaint",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, manager.ID, manager.Username, manager.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				refund := db.Payment{
					ID:                payment.ID + 1,
					OrderID:           order.ID,
					Amount:            -payment.Amount,
					Method:            payment.Method,
					Status:            db.PaymentRecordCompleted,
					OriginalPaymentID: pgtype.Int8{Int64: payment.ID, Valid: true},
					ProcessedBy:       manager.Username,
				}
				original := payment
				original.Status = db.PaymentRecordRefunded
				refunded := order
				refunded.PaymentStatus = pricing.PaymentRefunded

				store.EXPECT().
					RefundPaymentTx(gomock.Any(), gomock.Eq(db.RefundPaymentTxParams{
						PaymentID:   payment.ID,
						Amount:      payment.Amount,
						Reason:      pgtype.Text{String: "customer complaint", Valid: true},
						ProcessedBy: manager.Username,
					})).
					Times(1).
					Return(db.RefundPaymentTxResult{Refund: refund, Original: original, Order: refunded}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var rsp db.RefundPaymentTxResult
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, -payment.Amount, rsp.Refund.Amount)
				require.Equal(t, payment.ID, rsp.Refund.OriginalPaymentID.Int64)
				require.Equal(t, db.PaymentRecordRefunded, rsp.Original.Status)
			},
		},
		{
			name:      "ExceedsRemainder",
			paymentID: payment.ID,
			body: gin.H{
				"amount": payment.Amount + 1,
				"reason": "overcharge",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, manager.ID, manager.Username, manager.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RefundPaymentTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.RefundPaymentTxResult{}, db.ErrRefundExceedsPayment)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:      "RefundOfRefund",
			paymentID: payment.ID,
			body: gin.H{
				"amount": 100,
				"reason": "mistake",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, manager.ID, manager.Username, manager.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RefundPaymentTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.RefundPaymentTxResult{}, db.ErrNotRefundable)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:      "MissingReason",
			paymentID: payment.ID,
			body: gin.H{
				"amount": payment.Amount,
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, manager.ID, manager.Username, manager.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RefundPaymentTx(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:      "ForbiddenForCashier",
			paymentID: payment.ID,
			body: gin.H{
				"amount": payment.Amount,
				"reason": "customer complaint",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, manager.ID, manager.Username, util.RoleCashier, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					RefundPaymentTx(gomock.Any(), gomock.Any()).
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

			url := fmt.Sprintf("/v1/payments/%d/refund", tc.paymentID)
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
