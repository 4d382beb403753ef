package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"RepairService/internal/entities"
	"RepairService/pkg/trm"
)

type OrdersRepo interface {
	CreateOrder(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error)
	OrdersByOwner(ctx context.Context, ownerID string) ([]entities.RepairOrder, error)
	OrderByID(ctx context.Context, orderID string) (entities.RepairOrder, error)
	OrderByTrackCode(ctx context.Context, trackCode string) (entities.RepairOrder, error)
	TrackCodeExists(ctx context.Context, trackCode string) (bool, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.Status) error
	UpdateFields(ctx context.Context, orderID string, upd entities.OrderUpdate) error
	DeleteOrder(ctx context.Context, orderID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrdersRepo
	cache     Cache
	events    EventPublisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrdersRepo, cache Cache, events EventPublisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		events:    events,
	}
}

type CreateOrderInput struct {
	CustomerName       string
	PhoneNumber        string
	DeviceBrand        string
	DeviceModel        string
	IMEI               string
	ProblemDescription string
	DeviceCondition    entities.DeviceCondition
	EstimatedCost      float64
}

func (in CreateOrderInput) validate() error {
	switch {
	case strings.TrimSpace(in.CustomerName) == "",
		strings.TrimSpace(in.PhoneNumber) == "",
		strings.TrimSpace(in.DeviceBrand) == "",
		strings.TrimSpace(in.DeviceModel) == "",
		strings.TrimSpace(in.ProblemDescription) == "":
		return entities.ErrInvalidOrder
	case !in.DeviceCondition.Valid():
		return entities.ErrInvalidOrder
	case in.EstimatedCost < 0:
		return entities.ErrInvalidOrder
	}
	return nil
}

// CreateOrder заводит новый заказ со статусом Pending и свежим трек-кодом.
// Код проверяется на занятость в той же транзакции, что и вставка.
func (s *orderService) CreateOrder(ctx context.Context, ownerID string, in CreateOrderInput) (entities.RepairOrder, error) {
	if ownerID == "" {
		return entities.RepairOrder{}, entities.ErrUnauthenticated
	}
	if err := in.validate(); err != nil {
		return entities.RepairOrder{}, err
	}

	order := entities.RepairOrder{
		OwnerID:            ownerID,
		CustomerName:       strings.TrimSpace(in.CustomerName),
		PhoneNumber:        strings.TrimSpace(in.PhoneNumber),
		DeviceBrand:        strings.TrimSpace(in.DeviceBrand),
		DeviceModel:        strings.TrimSpace(in.DeviceModel),
		IMEI:               strings.TrimSpace(in.IMEI),
		ProblemDescription: strings.TrimSpace(in.ProblemDescription),
		DeviceCondition:    in.DeviceCondition,
		EstimatedCost:      in.EstimatedCost,
		Status:             entities.StatusPending,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		code, err := s.pickTrackCode(ctx)
		if err != nil {
			return err
		}
		order.TrackCode = code

		order, err = s.repo.CreateOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.RepairOrder{}, err
	}

	s.logger.Debug("order created", "order_id", order.ID, "track_code", order.TrackCode)
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderCreated, order))
	return order, nil
}

// ListOrders возвращает заказы владельца, новые сверху, после применения
// поискового фильтра. Результат разбит на активные и выданные.
func (s *orderService) ListOrders(ctx context.Context, ownerID string, query ListQuery) (OrderList, error) {
	if ownerID == "" {
		return OrderList{}, entities.ErrUnauthenticated
	}

	orders, err := s.repo.OrdersByOwner(ctx, ownerID)
	if err != nil {
		return OrderList{}, fmt.Errorf("failed to list orders: %w", err)
	}

	filtered := FilterOrders(orders, query.Search, query.StatusFilter)
	active, collected := SplitCollected(filtered)
	return OrderList{Active: active, Collected: collected}, nil
}

// ChangeStatus переводит заказ в новый статус. Ограничений на переходы нет,
// допустим любой статус после любого.
func (s *orderService) ChangeStatus(ctx context.Context, ownerID, orderID string, status entities.Status) error {
	if ownerID == "" {
		return entities.ErrUnauthenticated
	}
	if !status.Valid() {
		return entities.ErrInvalidStatus
	}

	order, err := s.ownedOrder(ctx, ownerID, orderID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed to change status: %w", err)
	}

	s.cache.Delete(order.TrackCode)
	order.Status = status
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderStatusChanged, order))
	return nil
}

// UpdateOrder редактирует поля заказа. Nil-поля не трогаются.
func (s *orderService) UpdateOrder(ctx context.Context, ownerID, orderID string, upd entities.OrderUpdate) error {
	if ownerID == "" {
		return entities.ErrUnauthenticated
	}
	if err := validateUpdate(upd); err != nil {
		return err
	}

	order, err := s.ownedOrder(ctx, ownerID, orderID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateFields(ctx, orderID, upd); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	s.cache.Delete(order.TrackCode)
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderUpdated, order))
	return nil
}

func (s *orderService) DeleteOrder(ctx context.Context, ownerID, orderID string) error {
	if ownerID == "" {
		return entities.ErrUnauthenticated
	}

	order, err := s.ownedOrder(ctx, ownerID, orderID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.cache.Delete(order.TrackCode)
	s.publish(ctx, entities.NewOrderEvent(entities.EventOrderDeleted, order))
	return nil
}

// Statistics пересчитывает агрегаты по всей коллекции владельца.
func (s *orderService) Statistics(ctx context.Context, ownerID string) (entities.Statistics, error) {
	if ownerID == "" {
		return entities.Statistics{}, entities.ErrUnauthenticated
	}

	orders, err := s.repo.OrdersByOwner(ctx, ownerID)
	if err != nil {
		return entities.Statistics{}, fmt.Errorf("failed to list orders: %w", err)
	}
	return ComputeStatistics(orders), nil
}

// TrackOrder отдаёт публичную проекцию заказа по трек-коду, без аутентификации.
func (s *orderService) TrackOrder(ctx context.Context, trackCode string) (entities.TrackedOrder, error) {
	trackCode = strings.TrimSpace(trackCode)
	if trackCode == "" {
		return entities.TrackedOrder{}, entities.ErrOrderNotFound
	}

	if data, ok := s.cache.Get(trackCode); ok {
		var tracked entities.TrackedOrder
		if err := tracked.Unmarshal(data); err == nil {
			return tracked, nil
		}
		// битую запись выкидываем и идём в базу
		s.cache.Delete(trackCode)
	}

	order, err := s.repo.OrderByTrackCode(ctx, trackCode)
	if err != nil {
		return entities.TrackedOrder{}, err
	}

	tracked := entities.TrackedOrder{
		TrackCode:          order.TrackCode,
		CustomerName:       order.CustomerName,
		DeviceBrand:        order.DeviceBrand,
		DeviceModel:        order.DeviceModel,
		IMEI:               order.IMEI,
		ProblemDescription: order.ProblemDescription,
		Status:             order.Status,
		EstimatedCost:      order.EstimatedCost,
		LastUpdatedAt:      order.UpdatedAt,
	}

	if data, err := tracked.Marshal(); err == nil {
		s.cache.Set(trackCode, data)
	} else {
		s.logger.Error("failed to marshal tracked order", slog.Any("error", err))
	}
	return tracked, nil
}

// ownedOrder возвращает заказ, только если он принадлежит вызывающему.
// Чужой заказ неотличим от несуществующего.
func (s *orderService) ownedOrder(ctx context.Context, ownerID, orderID string) (entities.RepairOrder, error) {
	order, err := s.repo.OrderByID(ctx, orderID)
	if err != nil {
		return entities.RepairOrder{}, err
	}
	if order.OwnerID != ownerID {
		return entities.RepairOrder{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func validateUpdate(upd entities.OrderUpdate) error {
	if upd.Empty() {
		return entities.ErrInvalidOrder
	}
	for _, field := range []*string{upd.CustomerName, upd.PhoneNumber, upd.DeviceBrand, upd.DeviceModel, upd.ProblemDescription} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return entities.ErrInvalidOrder
		}
	}
	if upd.DeviceCondition != nil && !upd.DeviceCondition.Valid() {
		return entities.ErrInvalidOrder
	}
	if upd.EstimatedCost != nil && *upd.EstimatedCost < 0 {
		return entities.ErrInvalidOrder
	}
	return nil
}

// publish не влияет на результат операции: событие - побочный канал.
func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("event", event.Type), slog.Any("error", err))
	}
}
