package handler_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"RepairService/internal/auth"
	"RepairService/internal/entities"
	"RepairService/internal/handler"
	mocks "RepairService/internal/handler/mocks"
	"RepairService/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOwnerID = "owner-1"

// injectOwner заменяет JWT-мидлварь в тестах
func injectOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithOwner(r.Context(), testOwnerID)))
	})
}

func passthrough(next http.Handler) http.Handler {
	return next
}

func newOrdersRouter(t *testing.T, svc *mocks.MockOrderService, authMW func(http.Handler) http.Handler) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrdersHandler(logger, svc, authMW)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func doRequest(t *testing.T, r chi.Router, method, target, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	return res, string(raw)
}

func TestOrdersHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"customer_name": "Ivan Petrov",
		"phone_number": "+79990001122",
		"device_brand": "Apple",
		"device_model": "iPhone 13",
		"problem_description": "cracked screen",
		"device_condition": "Damaged",
		"estimated_cost": 150
	}`

	created := entities.RepairOrder{
		ID:        "order-1",
		OwnerID:   testOwnerID,
		Status:    entities.StatusPending,
		TrackCode: "A1B2C3D4",
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, testOwnerID, mock.MatchedBy(func(in service.CreateOrderInput) bool {
						return in.CustomerName == "Ivan Petrov" && in.DeviceCondition == entities.ConditionDamaged
					})).
					Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"track_code":"A1B2C3D4"`,
		},
		{
			name:         "missing required field",
			body:         `{"customer_name": "Ivan Petrov"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "unknown device condition",
			body:         `{"customer_name":"a","phone_number":"b","device_brand":"c","device_model":"d","problem_description":"e","device_condition":"Broken","estimated_cost":1}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed json",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "service rejects order",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, testOwnerID, mock.Anything).
					Return(entities.RepairOrder{}, entities.ErrInvalidOrder).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "persistence failure",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, testOwnerID, mock.Anything).
					Return(entities.RepairOrder{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc, injectOwner)

			res, body := doRequest(t, r, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestOrdersHandler_CreateOrder_NoOwner(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	r := newOrdersRouter(t, svc, passthrough)

	res, body := doRequest(t, r, http.MethodPost, "/orders", `{}`)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body, `"unauthenticated"`)
}

func TestOrdersHandler_ListOrders(t *testing.T) {
	list := service.OrderList{
		Active: []entities.RepairOrder{
			{ID: "order-2", Status: entities.StatusInProgress, TrackCode: "BBBB2222"},
		},
		Collected: []entities.RepairOrder{
			{ID: "order-1", Status: entities.StatusCollected, TrackCode: "AAAA1111"},
		},
	}

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "no filters",
			target: "/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ListOrders(mock.Anything, testOwnerID, service.ListQuery{StatusFilter: service.StatusFilterAll}).
					Return(list, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"track_code":"BBBB2222"`,
		},
		{
			name:   "search and status",
			target: "/orders?search=iphone&status=InProgress",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ListOrders(mock.Anything, testOwnerID, service.ListQuery{Search: "iphone", StatusFilter: "InProgress"}).
					Return(service.OrderList{}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "unknown status filter",
			target:       "/orders?status=Done",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:   "persistence failure",
			target: "/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ListOrders(mock.Anything, testOwnerID, mock.Anything).
					Return(service.OrderList{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc, injectOwner)

			res, body := doRequest(t, r, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestOrdersHandler_ChangeStatus(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "order-1",
			body:    `{"status": "Ready"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, testOwnerID, "order-1", entities.StatusReady).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status updated"`,
		},
		{
			name:    "backwards transition allowed",
			orderID: "order-1",
			body:    `{"status": "Pending"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, testOwnerID, "order-1", entities.StatusPending).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "unknown status",
			orderID:      "order-1",
			body:         `{"status": "Done"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:    "not found",
			orderID: "missing",
			body:    `{"status": "Ready"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, testOwnerID, "missing", entities.StatusReady).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc, injectOwner)

			res, body := doRequest(t, r, http.MethodPatch, "/orders/"+tc.orderID+"/status", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestOrdersHandler_UpdateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "order-1",
			body:    `{"estimated_cost": 200, "problem_description": "battery swap"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, testOwnerID, "order-1", mock.MatchedBy(func(upd entities.OrderUpdate) bool {
						return upd.EstimatedCost != nil && *upd.EstimatedCost == 200 &&
							upd.ProblemDescription != nil && upd.CustomerName == nil
					})).
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order updated"`,
		},
		{
			name:         "negative cost",
			orderID:      "order-1",
			body:         `{"estimated_cost": -5}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:    "not found",
			orderID: "missing",
			body:    `{"customer_name": "New Name"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, testOwnerID, "missing", mock.Anything).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc, injectOwner)

			res, body := doRequest(t, r, http.MethodPut, "/orders/"+tc.orderID, tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestOrdersHandler_DeleteOrder(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "order-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					DeleteOrder(mock.Anything, testOwnerID, "order-1").
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order deleted"`,
		},
		{
			name:    "not found",
			orderID: "missing",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					DeleteOrder(mock.Anything, testOwnerID, "missing").
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc, injectOwner)

			res, body := doRequest(t, r, http.MethodDelete, "/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrdersHandler_Statistics(t *testing.T) {
	stats := entities.Statistics{
		OrderCount:  3,
		TotalCost:   300,
		AverageCost: 100,
		StatusCounts: map[entities.Status]int{
			entities.StatusPending: 2,
			entities.StatusReady:   1,
		},
	}

	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().Statistics(mock.Anything, testOwnerID).Return(stats, nil).Once()
	r := newOrdersRouter(t, svc, injectOwner)

	res, body := doRequest(t, r, http.MethodGet, "/orders/stats", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"order_count":3`)
	assert.Contains(t, body, `"average_cost":100`)
	assert.Contains(t, body, `"Pending":2`)
	assert.NotContains(t, body, `"Collected"`)
}

func TestOrdersHandler_TrackOrder(t *testing.T) {
	tracked := entities.TrackedOrder{
		TrackCode:     "A1B2C3D4",
		CustomerName:  "Ivan Petrov",
		DeviceBrand:   "Apple",
		DeviceModel:   "iPhone 13",
		Status:        entities.StatusReady,
		EstimatedCost: 150,
		LastUpdatedAt: time.Now(),
	}

	testCases := []struct {
		name         string
		trackCode    string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "success",
			trackCode: "A1B2C3D4",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TrackOrder(mock.Anything, "A1B2C3D4").
					Return(tracked, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Ready"`,
		},
		{
			name:      "not found",
			trackCode: "ZZZZ9999",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TrackOrder(mock.Anything, "ZZZZ9999").
					Return(entities.TrackedOrder{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:      "internal error",
			trackCode: "A1B2C3D4",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TrackOrder(mock.Anything, "A1B2C3D4").
					Return(entities.TrackedOrder{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)
			r := newOrdersRouter(t, svc, passthrough)

			res, body := doRequest(t, r, http.MethodGet, "/track/"+tc.trackCode, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrdersHandler_TrackOrder_NoOwnerInResponse(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().
		TrackOrder(mock.Anything, "A1B2C3D4").
		Return(entities.TrackedOrder{TrackCode: "A1B2C3D4", Status: entities.StatusPending}, nil).Once()
	r := newOrdersRouter(t, svc, passthrough)

	res, body := doRequest(t, r, http.MethodGet, "/track/A1B2C3D4", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, body, "owner")
}
