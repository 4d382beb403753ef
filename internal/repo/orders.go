package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"RepairService/internal/entities"
	"RepairService/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"order_id", "owner_id", "customer_name", "phone_number",
	"device_brand", "device_model", "imei", "problem_description",
	"device_condition", "estimated_cost", "status", "track_code",
	"created_at", "updated_at",
}

type ordersRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewOrdersRepo(db *sqlx.DB) *ordersRepo {
	return &ordersRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder сохраняет заказ и назначает ему идентификатор и метки времени.
func (r *ordersRepo) CreateOrder(ctx context.Context, o entities.RepairOrder) (entities.RepairOrder, error) {
	o.ID = uuid.NewString()
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	query, args := r.qb.Insert("repair_orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OwnerID, o.CustomerName, o.PhoneNumber,
			o.DeviceBrand, o.DeviceModel, nullString(o.IMEI), o.ProblemDescription,
			string(o.DeviceCondition), o.EstimatedCost, string(o.Status), o.TrackCode,
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.RepairOrder{}, fmt.Errorf("failed to save order: %w", err)
	}
	return o, nil
}

// OrdersByOwner возвращает заказы владельца, новые сверху.
func (r *ordersRepo) OrdersByOwner(ctx context.Context, ownerID string) ([]entities.RepairOrder, error) {
	query, args := r.qb.Select(orderColumns...).
		From("repair_orders").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC").
		MustSql()

	var orders []RepairOrder
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.RepairOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order))
	}
	return result, nil
}

func (r *ordersRepo) OrderByID(ctx context.Context, orderID string) (entities.RepairOrder, error) {
	query, args := r.qb.Select(orderColumns...).
		From("repair_orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order RepairOrder
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RepairOrder{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.RepairOrder{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *ordersRepo) OrderByTrackCode(ctx context.Context, trackCode string) (entities.RepairOrder, error) {
	query, args := r.qb.Select(orderColumns...).
		From("repair_orders").
		Where(sq.Eq{"track_code": trackCode}).
		MustSql()

	var order RepairOrder
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RepairOrder{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.RepairOrder{}, fmt.Errorf("failed to get order by track code: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *ordersRepo) TrackCodeExists(ctx context.Context, trackCode string) (bool, error) {
	query, args := r.qb.Select("1").
		From("repair_orders").
		Where(sq.Eq{"track_code": trackCode}).
		MustSql()

	var one int
	err := r.getContext(ctx, &one, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check track code: %w", err)
	}
	return true, nil
}

func (r *ordersRepo) UpdateStatus(ctx context.Context, orderID string, status entities.Status) error {
	query, args := r.qb.Update("repair_orders").
		Set("status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return checkAffected(res)
}

func (r *ordersRepo) UpdateFields(ctx context.Context, orderID string, upd entities.OrderUpdate) error {
	q := r.qb.Update("repair_orders").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"order_id": orderID})

	if upd.CustomerName != nil {
		q = q.Set("customer_name", *upd.CustomerName)
	}
	if upd.PhoneNumber != nil {
		q = q.Set("phone_number", *upd.PhoneNumber)
	}
	if upd.DeviceBrand != nil {
		q = q.Set("device_brand", *upd.DeviceBrand)
	}
	if upd.DeviceModel != nil {
		q = q.Set("device_model", *upd.DeviceModel)
	}
	if upd.IMEI != nil {
		q = q.Set("imei", nullString(*upd.IMEI))
	}
	if upd.ProblemDescription != nil {
		q = q.Set("problem_description", *upd.ProblemDescription)
	}
	if upd.DeviceCondition != nil {
		q = q.Set("device_condition", string(*upd.DeviceCondition))
	}
	if upd.EstimatedCost != nil {
		q = q.Set("estimated_cost", *upd.EstimatedCost)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	return checkAffected(res)
}

func (r *ordersRepo) DeleteOrder(ctx context.Context, orderID string) error {
	query, args := r.qb.Delete("repair_orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *ordersRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ordersRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ordersRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
