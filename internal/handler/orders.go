package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"RepairService/internal/auth"
	"RepairService/internal/entities"
	"RepairService/internal/service"
	"RepairService/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, ownerID string, in service.CreateOrderInput) (entities.RepairOrder, error)
	ListOrders(ctx context.Context, ownerID string, query service.ListQuery) (service.OrderList, error)
	ChangeStatus(ctx context.Context, ownerID, orderID string, status entities.Status) error
	UpdateOrder(ctx context.Context, ownerID, orderID string, upd entities.OrderUpdate) error
	DeleteOrder(ctx context.Context, ownerID, orderID string) error
	Statistics(ctx context.Context, ownerID string) (entities.Statistics, error)
	TrackOrder(ctx context.Context, trackCode string) (entities.TrackedOrder, error)
}

type OrdersHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	authMW   func(next http.Handler) http.Handler
}

func NewOrdersHandler(logger *slog.Logger, svc OrderService, authMW func(next http.Handler) http.Handler) *OrdersHandler {
	return &OrdersHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
		authMW:   authMW,
	}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Get("/track/{track_code}", h.TrackOrder)

	r.Group(func(r chi.Router) {
		r.Use(h.authMW)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/stats", h.Statistics)
		r.Patch("/orders/{order_id}/status", h.ChangeStatus)
		r.Put("/orders/{order_id}", h.UpdateOrder)
		r.Delete("/orders/{order_id}", h.DeleteOrder)
	})
}

// CreateOrder регистрирует новый заказ на ремонт.
// @Summary      Создать заказ
// @Description  Создаёт заказ со статусом Pending и сгенерированным трек-кодом
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        input  body  CreateOrderRequest  true  "Данные заказа"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := auth.OwnerFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, ownerID, req.ToInput())
	if err != nil {
		h.writeOrderError(ctx, w, "failed to create order", err)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ListOrders возвращает заказы владельца, новые сверху.
// @Summary      Список заказов
// @Description  Возвращает заказы владельца с учётом поиска и фильтра по статусу
// @Tags         orders
// @Security     BearerAuth
// @Param        search  query  string  false  "Подстрока для поиска"
// @Param        status  query  string  false  "Фильтр по статусу (all, Pending, InProgress, Ready, Collected)"
// @Success      200  {object}  OrderList
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := auth.OwnerFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	query := service.ListQuery{
		Search:       r.URL.Query().Get("search"),
		StatusFilter: r.URL.Query().Get("status"),
	}
	if query.StatusFilter == "" {
		query.StatusFilter = service.StatusFilterAll
	}
	if err := h.validate.Var(query.StatusFilter, "oneof=all Pending InProgress Ready Collected"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	list, err := h.svc.ListOrders(ctx, ownerID, query)
	if err != nil {
		h.writeOrderError(ctx, w, "failed to list orders", err)
		return
	}

	utils.WriteJSON(w, OrderListEntityToJSON(list), http.StatusOK)
}

// Statistics возвращает сводку по заказам владельца.
// @Summary      Статистика заказов
// @Description  Количество, суммарная и средняя стоимость, распределение по статусам
// @Tags         orders
// @Security     BearerAuth
// @Success      200  {object}  Statistics
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/stats [get]
func (h *OrdersHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := auth.OwnerFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	stats, err := h.svc.Statistics(ctx, ownerID)
	if err != nil {
		h.writeOrderError(ctx, w, "failed to compute statistics", err)
		return
	}

	utils.WriteJSON(w, StatisticsEntityToJSON(stats), http.StatusOK)
}

// ChangeStatus переводит заказ в новый статус.
// @Summary      Сменить статус заказа
// @Description  Допускается переход между любыми статусами
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        order_id  path  string               true  "Идентификатор заказа"
// @Param        input     body  ChangeStatusRequest  true  "Новый статус"
// @Success      200  {object}  utils.MessageResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/status [patch]
func (h *OrdersHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := auth.OwnerFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req ChangeStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.ChangeStatus(ctx, ownerID, orderID, entities.Status(req.Status)); err != nil {
		h.writeOrderError(ctx, w, "failed to change status", err)
		return
	}

	statusChanges.WithLabelValues(req.Status).Inc()
	utils.WriteMessage(w, "status updated", http.StatusOK)
}

// UpdateOrder изменяет поля заказа.
// @Summary      Изменить заказ
// @Description  Частичное обновление полей заказа; трек-код и дата создания неизменяемы
// @Tags         orders
// @Security     BearerAuth
// @Accept       json
// @Param        order_id  path  string              true  "Идентификатор заказа"
// @Param        input     body  UpdateOrderRequest  true  "Изменяемые поля"
// @Success      200  {object}  utils.MessageResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [put]
func (h *OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := auth.OwnerFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.UpdateOrder(ctx, ownerID, orderID, req.ToUpdate()); err != nil {
		h.writeOrderError(ctx, w, "failed to update order", err)
		return
	}

	utils.WriteMessage(w, "order updated", http.StatusOK)
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Tags         orders
// @Security     BearerAuth
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {object}  utils.MessageResponse
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [delete]
func (h *OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := auth.OwnerFromContext(ctx)
	if !ok {
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
		return
	}
	orderID := chi.URLParam(r, "order_id")

	if err := h.svc.DeleteOrder(ctx, ownerID, orderID); err != nil {
		h.writeOrderError(ctx, w, "failed to delete order", err)
		return
	}

	utils.WriteMessage(w, "order deleted", http.StatusOK)
}

// TrackOrder возвращает публичный статус заказа по трек-коду.
// @Summary      Отследить заказ
// @Description  Публичный запрос без авторизации, владелец заказа не раскрывается
// @Tags         track
// @Param        track_code  path  string  true  "Трек-код заказа"
// @Success      200  {object}  TrackedOrder
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /track/{track_code} [get]
func (h *OrdersHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trackCode := chi.URLParam(r, "track_code")

	if err := h.validate.Var(trackCode, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	tracked, err := h.svc.TrackOrder(ctx, trackCode)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to track order", slog.Any("error", err), slog.String("trackCode", trackCode))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	trackLookups.Inc()
	utils.WriteJSON(w, TrackedOrderEntityToJSON(tracked), http.StatusOK)
}

func (h *OrdersHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidOrder), errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnauthenticated):
		utils.WriteError(w, "unauthenticated", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
