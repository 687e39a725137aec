package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (r *postgresRepo) CreateOrderItem(ctx context.Context, item entities.OrderItem) (string, error) {
	id := uuid.NewString()

	query, args := r.qb.Insert("order_items").
		Columns("id", "product_id", "quantity").
		Values(id, item.ProductID, item.Quantity).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("failed to insert order item: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) GetOrderItem(ctx context.Context, id string) (entities.OrderItem, error) {
	query, args := r.qb.Select("id", "product_id", "quantity").
		From("order_items").
		Where(sq.Eq{"id": id}).
		MustSql()

	var item OrderItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.OrderItem{}, entities.ErrOrderItemNotFound
	}
	if err != nil {
		return entities.OrderItem{}, fmt.Errorf("failed to get order item: %w", err)
	}
	return OrderItemToEntity(item), nil
}

func (r *postgresRepo) DeleteOrderItem(ctx context.Context, id string) error {
	query, args := r.qb.Delete("order_items").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return fmt.Errorf("failed to delete order item: %w", err)
	}
	if !ok {
		return entities.ErrOrderItemNotFound
	}
	return nil
}

func (r *postgresRepo) orderItemsByIDs(ctx context.Context, ids []string) (map[string]OrderItem, error) {
	result := make(map[string]OrderItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args := r.qb.Select("id", "product_id", "quantity").
		From("order_items").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var rows []OrderItem
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	for _, it := range rows {
		result[it.ID] = it
	}
	return result, nil
}
