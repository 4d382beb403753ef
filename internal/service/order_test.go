package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"RepairService/internal/entities"
	"RepairService/internal/service"
	mocks "RepairService/internal/service/mocks"
	txMocks "RepairService/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var trackCodeRe = regexp.MustCompile(`^[A-Z0-9]{8}$`)

type orderSvc interface {
	CreateOrder(ctx context.Context, ownerID string, in service.CreateOrderInput) (entities.RepairOrder, error)
	ListOrders(ctx context.Context, ownerID string, query service.ListQuery) (service.OrderList, error)
	ChangeStatus(ctx context.Context, ownerID, orderID string, status entities.Status) error
	UpdateOrder(ctx context.Context, ownerID, orderID string, upd entities.OrderUpdate) error
	DeleteOrder(ctx context.Context, ownerID, orderID string) error
	Statistics(ctx context.Context, ownerID string) (entities.Statistics, error)
	TrackOrder(ctx context.Context, trackCode string) (entities.TrackedOrder, error)
}

func newOrderService(t *testing.T) (*mocks.MockOrdersRepo, *mocks.MockCache, *mocks.MockEventPublisher, orderSvc) {
	t.Helper()

	repo := mocks.NewMockOrdersRepo(t)
	cache := mocks.NewMockCache(t)
	events := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	return repo, cache, events, service.NewOrderService(logger, tx, repo, cache, events)
}

func validInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		CustomerName:       "Ivan Petrov",
		PhoneNumber:        "+79990001122",
		DeviceBrand:        "Apple",
		DeviceModel:        "iPhone 13",
		IMEI:               "356789104321987",
		ProblemDescription: "broken screen",
		DeviceCondition:    entities.ConditionDamaged,
		EstimatedCost:      150,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		ownerID      string
		input        service.CreateOrderInput
		mockBehavior func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher)
		wantErr      error
	}{
		{
			name:    "OK",
			ownerID: "owner-1",
			input:   validInput(),
			mockBehavior: func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TrackCodeExists(mock.Anything, mock.Anything).Return(false, nil).Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
						o.ID = "order-1"
						return o, nil
					}).Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "track code collision is regenerated",
			ownerID: "owner-1",
			input:   validInput(),
			mockBehavior: func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TrackCodeExists(mock.Anything, mock.Anything).Return(true, nil).Once()
				repo.EXPECT().TrackCodeExists(mock.Anything, mock.Anything).Return(false, nil).Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
						o.ID = "order-1"
						return o, nil
					}).Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "unauthenticated",
			ownerID:      "",
			input:        validInput(),
			mockBehavior: func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrUnauthenticated,
		},
		{
			name:    "missing required field",
			ownerID: "owner-1",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.CustomerName = "   "
				return in
			}(),
			mockBehavior: func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:    "negative cost",
			ownerID: "owner-1",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.EstimatedCost = -1
				return in
			}(),
			mockBehavior: func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:    "unknown device condition",
			ownerID: "owner-1",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.DeviceCondition = "Perfect"
				return in
			}(),
			mockBehavior: func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:    "persistence failure",
			ownerID: "owner-1",
			input:   validInput(),
			mockBehavior: func(repo *mocks.MockOrdersRepo, events *mocks.MockEventPublisher) {
				repo.EXPECT().TrackCodeExists(mock.Anything, mock.Anything).Return(false, nil).Once()
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.RepairOrder{}, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, _, events, svc := newOrderService(t)
			tc.mockBehavior(repo, events)

			order, err := svc.CreateOrder(context.Background(), tc.ownerID, tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "order-1", order.ID)
			assert.Equal(t, tc.ownerID, order.OwnerID)
			assert.Equal(t, entities.StatusPending, order.Status)
			assert.Regexp(t, trackCodeRe, order.TrackCode)
		})
	}
}

func TestOrderService_ChangeStatus(t *testing.T) {
	dbError := errors.New("db error")

	owned := entities.RepairOrder{ID: "order-1", OwnerID: "owner-1", TrackCode: "AAAA1111", Status: entities.StatusReady}

	testCases := []struct {
		name         string
		ownerID      string
		status       entities.Status
		mockBehavior func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher)
		wantErr      error
	}{
		{
			name:    "backwards transition is allowed",
			ownerID: "owner-1",
			status:  entities.StatusPending,
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				repo.EXPECT().OrderByID(mock.Anything, "order-1").Return(owned, nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.StatusPending).Return(nil).Once()
				cache.EXPECT().Delete("AAAA1111").Return().Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "invalid status",
			ownerID:      "owner-1",
			status:       "Done",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:    "foreign order looks like not found",
			ownerID: "owner-2",
			status:  entities.StatusReady,
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				repo.EXPECT().OrderByID(mock.Anything, "order-1").Return(owned, nil).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "persistence failure keeps cache intact",
			ownerID: "owner-1",
			status:  entities.StatusCollected,
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				repo.EXPECT().OrderByID(mock.Anything, "order-1").Return(owned, nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "order-1", entities.StatusCollected).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, cache, events, svc := newOrderService(t)
			tc.mockBehavior(repo, cache, events)

			err := svc.ChangeStatus(context.Background(), tc.ownerID, "order-1", tc.status)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// Переходы не ограничены: любой статус достижим из любого, включая сам себя.
func TestOrderService_ChangeStatus_AnyToAny(t *testing.T) {
	for _, from := range entities.AllStatuses {
		for _, to := range entities.AllStatuses {
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				repo, cache, events, svc := newOrderService(t)

				order := entities.RepairOrder{ID: "order-1", OwnerID: "owner-1", TrackCode: "AAAA1111", Status: from}
				repo.EXPECT().OrderByID(mock.Anything, "order-1").Return(order, nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "order-1", to).Return(nil).Once()
				cache.EXPECT().Delete("AAAA1111").Return().Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

				assert.NoError(t, svc.ChangeStatus(context.Background(), "owner-1", "order-1", to))
			})
		}
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	owned := entities.RepairOrder{ID: "order-1", OwnerID: "owner-1", TrackCode: "AAAA1111"}
	newName := "Anna"
	blank := "  "

	testCases := []struct {
		name         string
		ownerID      string
		upd          entities.OrderUpdate
		mockBehavior func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher)
		wantErr      error
	}{
		{
			name:    "OK",
			ownerID: "owner-1",
			upd:     entities.OrderUpdate{CustomerName: &newName},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				repo.EXPECT().OrderByID(mock.Anything, "order-1").Return(owned, nil).Once()
				repo.EXPECT().UpdateFields(mock.Anything, "order-1", mock.Anything).Return(nil).Once()
				cache.EXPECT().Delete("AAAA1111").Return().Once()
				events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "empty update",
			ownerID:      "owner-1",
			upd:          entities.OrderUpdate{},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:         "required field blanked out",
			ownerID:      "owner-1",
			upd:          entities.OrderUpdate{CustomerName: &blank},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:    "foreign order",
			ownerID: "owner-2",
			upd:     entities.OrderUpdate{CustomerName: &newName},
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache, events *mocks.MockEventPublisher) {
				repo.EXPECT().OrderByID(mock.Anything, "order-1").Return(owned, nil).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, cache, events, svc := newOrderService(t)
			tc.mockBehavior(repo, cache, events)

			err := svc.UpdateOrder(context.Background(), tc.ownerID, "order-1", tc.upd)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	owned := entities.RepairOrder{ID: "order-1", OwnerID: "owner-1", TrackCode: "AAAA1111"}

	t.Run("OK", func(t *testing.T) {
		repo, cache, events, svc := newOrderService(t)
		repo.EXPECT().OrderByID(mock.Anything, "order-1").Return(owned, nil).Once()
		repo.EXPECT().DeleteOrder(mock.Anything, "order-1").Return(nil).Once()
		cache.EXPECT().Delete("AAAA1111").Return().Once()
		events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

		assert.NoError(t, svc.DeleteOrder(context.Background(), "owner-1", "order-1"))
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, _, svc := newOrderService(t)
		repo.EXPECT().OrderByID(mock.Anything, "missing").
			Return(entities.RepairOrder{}, entities.ErrOrderNotFound).Once()

		err := svc.DeleteOrder(context.Background(), "owner-1", "missing")
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	orders := []entities.RepairOrder{
		{ID: "1", OwnerID: "owner-1", DeviceModel: "iPhone 13", Status: entities.StatusPending},
		{ID: "2", OwnerID: "owner-1", DeviceModel: "Galaxy S21", Status: entities.StatusCollected},
		{ID: "3", OwnerID: "owner-1", DeviceModel: "iPhone 12", Status: entities.StatusCollected},
	}

	t.Run("splits active and collected", func(t *testing.T) {
		repo, _, _, svc := newOrderService(t)
		repo.EXPECT().OrdersByOwner(mock.Anything, "owner-1").Return(orders, nil).Once()

		list, err := svc.ListOrders(context.Background(), "owner-1", service.ListQuery{StatusFilter: service.StatusFilterAll})
		require.NoError(t, err)

		require.Len(t, list.Active, 1)
		require.Len(t, list.Collected, 2)
		assert.Equal(t, "1", list.Active[0].ID)
		assert.Equal(t, []string{"2", "3"}, []string{list.Collected[0].ID, list.Collected[1].ID})
	})

	t.Run("search applies to both views", func(t *testing.T) {
		repo, _, _, svc := newOrderService(t)
		repo.EXPECT().OrdersByOwner(mock.Anything, "owner-1").Return(orders, nil).Once()

		list, err := svc.ListOrders(context.Background(), "owner-1", service.ListQuery{Search: "iphone"})
		require.NoError(t, err)

		require.Len(t, list.Active, 1)
		require.Len(t, list.Collected, 1)
		assert.Equal(t, "3", list.Collected[0].ID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, _, _, svc := newOrderService(t)

		_, err := svc.ListOrders(context.Background(), "", service.ListQuery{})
		assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	})
}

func TestOrderService_Statistics(t *testing.T) {
	testCases := []struct {
		name   string
		orders []entities.RepairOrder
		want   entities.Statistics
	}{
		{
			name: "mixed collection",
			orders: []entities.RepairOrder{
				{EstimatedCost: 50, Status: entities.StatusPending},
				{EstimatedCost: 100, Status: entities.StatusPending},
				{EstimatedCost: 150, Status: entities.StatusCollected},
			},
			want: entities.Statistics{
				OrderCount:  3,
				TotalCost:   300,
				AverageCost: 100,
				StatusCounts: map[entities.Status]int{
					entities.StatusPending:   2,
					entities.StatusCollected: 1,
				},
			},
		},
		{
			name:   "empty collection",
			orders: []entities.RepairOrder{},
			want: entities.Statistics{
				OrderCount:   0,
				TotalCost:    0,
				AverageCost:  0,
				StatusCounts: map[entities.Status]int{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, _, _, svc := newOrderService(t)
			repo.EXPECT().OrdersByOwner(mock.Anything, "owner-1").Return(tc.orders, nil).Once()

			stats, err := svc.Statistics(context.Background(), "owner-1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, stats)
		})
	}
}

func TestOrderService_TrackOrder(t *testing.T) {
	order := entities.RepairOrder{
		ID:                 "order-1",
		OwnerID:            "owner-1",
		CustomerName:       "Ivan Petrov",
		DeviceBrand:        "Apple",
		DeviceModel:        "iPhone 13",
		Status:             entities.StatusReady,
		EstimatedCost:      150,
		TrackCode:          "AAAA1111",
		ProblemDescription: "broken screen",
	}

	tracked := entities.TrackedOrder{
		TrackCode:          order.TrackCode,
		CustomerName:       order.CustomerName,
		DeviceBrand:        order.DeviceBrand,
		DeviceModel:        order.DeviceModel,
		ProblemDescription: order.ProblemDescription,
		Status:             order.Status,
		EstimatedCost:      order.EstimatedCost,
	}
	trackedData, err := tracked.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		trackCode    string
		mockBehavior func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache)
		wantErr      error
		want         entities.TrackedOrder
	}{
		{
			name:      "success from cache",
			trackCode: "AAAA1111",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("AAAA1111").Return(trackedData, true).Once()
			},
			want: tracked,
		},
		{
			name:      "success from repo and set to cache",
			trackCode: "AAAA1111",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("AAAA1111").Return(nil, false).Once()
				repo.EXPECT().OrderByTrackCode(mock.Anything, "AAAA1111").Return(order, nil).Once()
				cache.EXPECT().Set("AAAA1111", trackedData).Return().Once()
			},
			want: tracked,
		},
		{
			name:      "input is trimmed",
			trackCode: "  AAAA1111  ",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("AAAA1111").Return(trackedData, true).Once()
			},
			want: tracked,
		},
		{
			name:         "blank code is not found without a query",
			trackCode:    "   ",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrOrderNotFound,
		},
		{
			name:      "unknown code",
			trackCode: "ZZZZ9999",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("ZZZZ9999").Return(nil, false).Once()
				repo.EXPECT().OrderByTrackCode(mock.Anything, "ZZZZ9999").
					Return(entities.RepairOrder{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:      "broken cache entry falls back to repo",
			trackCode: "AAAA1111",
			mockBehavior: func(repo *mocks.MockOrdersRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("AAAA1111").Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete("AAAA1111").Return().Once()
				repo.EXPECT().OrderByTrackCode(mock.Anything, "AAAA1111").Return(order, nil).Once()
				cache.EXPECT().Set("AAAA1111", trackedData).Return().Once()
			},
			want: tracked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, cache, _, svc := newOrderService(t)
			tc.mockBehavior(repo, cache)

			got, err := svc.TrackOrder(context.Background(), tc.trackCode)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
