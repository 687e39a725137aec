package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "order_items", "shipping_address1", "shipping_address2", "city", "zip",
	"country", "phone", "status", "total_price", "user_id", "date_ordered",
}

var returningOrder = "RETURNING " + strings.Join(orderColumns, ", ")

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = uuid.NewString()

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, stringArray(o.OrderItems), o.Shipping.Address1, o.Shipping.Address2, o.Shipping.City,
			nullString(o.Shipping.Zip), o.Shipping.Country, o.Shipping.Phone, string(o.Status),
			o.TotalPrice, o.UserID, o.DateOrdered,
		).
		Suffix(returningOrder).
		MustSql()

	var row Order
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return OrderToEntity(row), nil
}

func (r *postgresRepo) getOrderRow(ctx context.Context, id string) (Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return row, nil
}

func (r *postgresRepo) GetOrderDetails(ctx context.Context, id string) (entities.OrderDetails, error) {
	row, err := r.getOrderRow(ctx, id)
	if err != nil {
		return entities.OrderDetails{}, err
	}

	details, err := r.loadDetails(ctx, []Order{row})
	if err != nil {
		return entities.OrderDetails{}, err
	}
	return details[0], nil
}

// ListOrderDetails returns orders newest first. An empty userID lists every order.
func (r *postgresRepo) ListOrderDetails(ctx context.Context, userID string) ([]entities.OrderDetails, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("date_ordered DESC")
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}

	query, args := q.MustSql()
	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.loadDetails(ctx, rows)
}

// RecentOrderDetails returns at most limit of the newest orders.
func (r *postgresRepo) RecentOrderDetails(ctx context.Context, limit int) ([]entities.OrderDetails, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("date_ordered DESC").
		Limit(uint64(limit)).
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select recent orders: %w", err)
	}

	return r.loadDetails(ctx, rows)
}

// loadDetails resolves users, order items, products and categories for orders
// with one query per referenced table.
func (r *postgresRepo) loadDetails(ctx context.Context, orders []Order) ([]entities.OrderDetails, error) {
	if len(orders) == 0 {
		return []entities.OrderDetails{}, nil
	}

	userIDs := make([]string, 0, len(orders))
	var itemIDs []string
	for _, o := range orders {
		userIDs = append(userIDs, o.UserID)
		itemIDs = append(itemIDs, o.OrderItems...)
	}

	users, err := r.userRefsByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	items, err := r.orderItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	productIDs := make([]string, 0, len(items))
	for _, it := range items {
		productIDs = append(productIDs, it.ProductID)
	}
	products, err := r.productsByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	result := make([]entities.OrderDetails, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToDetails(o, users, items, products))
	}
	return result, nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}).
		Suffix(returningOrder).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	return OrderToEntity(row), nil
}

// DeleteOrder removes the order and returns it so the caller can cascade to its items.
func (r *postgresRepo) DeleteOrder(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Delete("orders").
		Where(sq.Eq{"id": id}).
		Suffix(returningOrder).
		MustSql()

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to delete order: %w", err)
	}
	return OrderToEntity(row), nil
}

func (r *postgresRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	query, args := r.qb.Select("COALESCE(SUM(total_price), 0)").From("orders").MustSql()

	var total decimal.Decimal
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum orders: %w", err)
	}
	return total, nil
}

func (r *postgresRepo) CountOrders(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("orders").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
