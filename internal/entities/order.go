package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusReady      Status = "Ready"
	StatusCollected  Status = "Collected"
)

// AllStatuses перечисляет допустимые статусы заказа.
// Переходы между ними не ограничены: заказ можно вернуть из любого статуса в любой.
var AllStatuses = []Status{StatusPending, StatusInProgress, StatusReady, StatusCollected}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReady, StatusCollected:
		return true
	}
	return false
}

type DeviceCondition string

const (
	ConditionGood       DeviceCondition = "Good"
	ConditionFair       DeviceCondition = "Fair"
	ConditionDamaged    DeviceCondition = "Damaged"
	ConditionNotWorking DeviceCondition = "Not Working"
)

func (c DeviceCondition) Valid() bool {
	switch c {
	case ConditionGood, ConditionFair, ConditionDamaged, ConditionNotWorking:
		return true
	}
	return false
}

type RepairOrder struct {
	ID                 string
	OwnerID            string
	CustomerName       string
	PhoneNumber        string
	DeviceBrand        string
	DeviceModel        string
	IMEI               string
	ProblemDescription string
	DeviceCondition    DeviceCondition
	EstimatedCost      float64
	Status             Status
	TrackCode          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderUpdate содержит редактируемые поля заказа. Nil-поле не изменяется.
type OrderUpdate struct {
	CustomerName       *string
	PhoneNumber        *string
	DeviceBrand        *string
	DeviceModel        *string
	IMEI               *string
	ProblemDescription *string
	DeviceCondition    *DeviceCondition
	EstimatedCost      *float64
}

func (u OrderUpdate) Empty() bool {
	return u.CustomerName == nil && u.PhoneNumber == nil && u.DeviceBrand == nil &&
		u.DeviceModel == nil && u.IMEI == nil && u.ProblemDescription == nil &&
		u.DeviceCondition == nil && u.EstimatedCost == nil
}

// TrackedOrder - урезанная проекция заказа для публичного трекинга.
// Владелец заказа сюда не попадает.
type TrackedOrder struct {
	TrackCode          string
	CustomerName       string
	DeviceBrand        string
	DeviceModel        string
	IMEI               string
	ProblemDescription string
	Status             Status
	EstimatedCost      float64
	LastUpdatedAt      time.Time
}

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidOrder    = errors.New("invalid order data")
	ErrUnauthenticated = errors.New("unauthenticated")
)

func (t *TrackedOrder) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *TrackedOrder) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(t)
}

func init() {
	gob.Register(TrackedOrder{})
}
