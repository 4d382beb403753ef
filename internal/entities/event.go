package entities

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderUpdated       = "order.updated"
	EventOrderDeleted       = "order.deleted"
)

// OrderEvent публикуется после успешного изменения хранилища,
// чтобы внешние потребители могли реагировать на жизненный цикл заказа.
type OrderEvent struct {
	Type       string    `json:"event"`
	OrderID    string    `json:"order_id"`
	OwnerID    string    `json:"owner_id"`
	Status     Status    `json:"status"`
	TrackCode  string    `json:"track_code"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewOrderEvent(eventType string, o RepairOrder) OrderEvent {
	return OrderEvent{
		Type:       eventType,
		OrderID:    o.ID,
		OwnerID:    o.OwnerID,
		Status:     o.Status,
		TrackCode:  o.TrackCode,
		OccurredAt: time.Now().UTC(),
	}
}
