package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
)

type OrderItemRepo interface {
	CreateOrderItem(ctx context.Context, item entities.OrderItem) (string, error)
	GetOrderItem(ctx context.Context, id string) (entities.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id string) error
}

// OrderItemCreator persists single order lines.
// It does not check that the product exists.
type OrderItemCreator struct {
	repo OrderItemRepo
}

func NewOrderItemCreator(repo OrderItemRepo) *OrderItemCreator {
	return &OrderItemCreator{repo: repo}
}

func (c *OrderItemCreator) CreateOrderItem(ctx context.Context, productID string, quantity int) (string, error) {
	if quantity <= 0 {
		return "", entities.ErrInvalidQuantity
	}

	id, err := c.repo.CreateOrderItem(ctx, entities.OrderItem{ProductID: productID, Quantity: quantity})
	if err != nil {
		return "", fmt.Errorf("failed to create order item: %w", err)
	}
	return id, nil
}
