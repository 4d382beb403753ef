package repo

import (
	"database/sql"
	"time"

	"RepairService/internal/entities"
)

type RepairOrder struct {
	OrderID            string         `db:"order_id"`
	OwnerID            string         `db:"owner_id"`
	CustomerName       string         `db:"customer_name"`
	PhoneNumber        string         `db:"phone_number"`
	DeviceBrand        string         `db:"device_brand"`
	DeviceModel        string         `db:"device_model"`
	IMEI               sql.NullString `db:"imei"`
	ProblemDescription string         `db:"problem_description"`
	DeviceCondition    string         `db:"device_condition"`
	EstimatedCost      float64        `db:"estimated_cost"`
	Status             string         `db:"status"`
	TrackCode          string         `db:"track_code"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type User struct {
	UserID       string    `db:"user_id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func OrderToEntity(o RepairOrder) entities.RepairOrder {
	return entities.RepairOrder{
		ID:                 o.OrderID,
		OwnerID:            o.OwnerID,
		CustomerName:       o.CustomerName,
		PhoneNumber:        o.PhoneNumber,
		DeviceBrand:        o.DeviceBrand,
		DeviceModel:        o.DeviceModel,
		IMEI:               nullStringToString(o.IMEI),
		ProblemDescription: o.ProblemDescription,
		DeviceCondition:    entities.DeviceCondition(o.DeviceCondition),
		EstimatedCost:      o.EstimatedCost,
		Status:             entities.Status(o.Status),
		TrackCode:          o.TrackCode,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:           u.UserID,
		Email:        u.Email,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
