package handler

import (
	"time"

	"RepairService/internal/entities"
	"RepairService/internal/service"
)

// Order представляет заказ на ремонт
type Order struct {
	ID                 string    `json:"order_id"`
	CustomerName       string    `json:"customer_name"`
	PhoneNumber        string    `json:"phone_number"`
	DeviceBrand        string    `json:"device_brand"`
	DeviceModel        string    `json:"device_model"`
	IMEI               string    `json:"imei,omitempty"`
	ProblemDescription string    `json:"problem_description"`
	DeviceCondition    string    `json:"device_condition"`
	EstimatedCost      float64   `json:"estimated_cost"`
	Status             string    `json:"status"`
	TrackCode          string    `json:"track_code"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type CreateOrderRequest struct {
	CustomerName       string  `json:"customer_name" validate:"required"`
	PhoneNumber        string  `json:"phone_number" validate:"required"`
	DeviceBrand        string  `json:"device_brand" validate:"required"`
	DeviceModel        string  `json:"device_model" validate:"required"`
	IMEI               string  `json:"imei"`
	ProblemDescription string  `json:"problem_description" validate:"required"`
	DeviceCondition    string  `json:"device_condition" validate:"required,oneof=Good Fair Damaged 'Not Working'"`
	EstimatedCost      float64 `json:"estimated_cost" validate:"gte=0"`
}

type UpdateOrderRequest struct {
	CustomerName       *string  `json:"customer_name,omitempty"`
	PhoneNumber        *string  `json:"phone_number,omitempty"`
	DeviceBrand        *string  `json:"device_brand,omitempty"`
	DeviceModel        *string  `json:"device_model,omitempty"`
	IMEI               *string  `json:"imei,omitempty"`
	ProblemDescription *string  `json:"problem_description,omitempty"`
	DeviceCondition    *string  `json:"device_condition,omitempty" validate:"omitempty,oneof=Good Fair Damaged 'Not Working'"`
	EstimatedCost      *float64 `json:"estimated_cost,omitempty" validate:"omitempty,gte=0"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending InProgress Ready Collected"`
}

// OrderList - результат выборки: активные заказы и уже выданные клиентам
type OrderList struct {
	Active    []Order `json:"active"`
	Collected []Order `json:"collected"`
}

// Statistics - сводка по заказам владельца
type Statistics struct {
	OrderCount   int            `json:"order_count"`
	TotalCost    float64        `json:"total_cost"`
	AverageCost  float64        `json:"average_cost"`
	StatusCounts map[string]int `json:"status_counts"`
}

// TrackedOrder - публичная проекция заказа для трекинга, без владельца
type TrackedOrder struct {
	TrackCode          string    `json:"track_code"`
	CustomerName       string    `json:"customer_name"`
	DeviceBrand        string    `json:"device_brand"`
	DeviceModel        string    `json:"device_model"`
	IMEI               string    `json:"imei,omitempty"`
	ProblemDescription string    `json:"problem_description"`
	Status             string    `json:"status"`
	EstimatedCost      float64   `json:"estimated_cost"`
	LastUpdatedAt      time.Time `json:"last_updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	ID        string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func OrderEntityToJSON(o entities.RepairOrder) Order {
	return Order{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		PhoneNumber:        o.PhoneNumber,
		DeviceBrand:        o.DeviceBrand,
		DeviceModel:        o.DeviceModel,
		IMEI:               o.IMEI,
		ProblemDescription: o.ProblemDescription,
		DeviceCondition:    string(o.DeviceCondition),
		EstimatedCost:      o.EstimatedCost,
		Status:             string(o.Status),
		TrackCode:          o.TrackCode,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func OrderListEntityToJSON(list service.OrderList) OrderList {
	active := make([]Order, 0, len(list.Active))
	for _, o := range list.Active {
		active = append(active, OrderEntityToJSON(o))
	}
	collected := make([]Order, 0, len(list.Collected))
	for _, o := range list.Collected {
		collected = append(collected, OrderEntityToJSON(o))
	}
	return OrderList{Active: active, Collected: collected}
}

func StatisticsEntityToJSON(s entities.Statistics) Statistics {
	counts := make(map[string]int, len(s.StatusCounts))
	for status, count := range s.StatusCounts {
		counts[string(status)] = count
	}
	return Statistics{
		OrderCount:   s.OrderCount,
		TotalCost:    s.TotalCost,
		AverageCost:  s.AverageCost,
		StatusCounts: counts,
	}
}

func TrackedOrderEntityToJSON(t entities.TrackedOrder) TrackedOrder {
	return TrackedOrder{
		TrackCode:          t.TrackCode,
		CustomerName:       t.CustomerName,
		DeviceBrand:        t.DeviceBrand,
		DeviceModel:        t.DeviceModel,
		IMEI:               t.IMEI,
		ProblemDescription: t.ProblemDescription,
		Status:             string(t.Status),
		EstimatedCost:      t.EstimatedCost,
		LastUpdatedAt:      t.LastUpdatedAt,
	}
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

func (r CreateOrderRequest) ToInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		CustomerName:       r.CustomerName,
		PhoneNumber:        r.PhoneNumber,
		DeviceBrand:        r.DeviceBrand,
		DeviceModel:        r.DeviceModel,
		IMEI:               r.IMEI,
		ProblemDescription: r.ProblemDescription,
		DeviceCondition:    entities.DeviceCondition(r.DeviceCondition),
		EstimatedCost:      r.EstimatedCost,
	}
}

func (r UpdateOrderRequest) ToUpdate() entities.OrderUpdate {
	upd := entities.OrderUpdate{
		CustomerName:       r.CustomerName,
		PhoneNumber:        r.PhoneNumber,
		DeviceBrand:        r.DeviceBrand,
		DeviceModel:        r.DeviceModel,
		IMEI:               r.IMEI,
		ProblemDescription: r.ProblemDescription,
		EstimatedCost:      r.EstimatedCost,
	}
	if r.DeviceCondition != nil {
		condition := entities.DeviceCondition(*r.DeviceCondition)
		upd.DeviceCondition = &condition
	}
	return upd
}
