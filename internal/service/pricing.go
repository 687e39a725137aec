package service

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	"github.com/shopspring/decimal"
)

type PriceRepo interface {
	GetProductPrice(ctx context.Context, productID string) (decimal.Decimal, error)
}

type orderItemGetter interface {
	GetOrderItem(ctx context.Context, id string) (entities.OrderItem, error)
}

// PriceAggregator totals order items at the products' current prices.
type PriceAggregator struct {
	items  orderItemGetter
	prices PriceRepo
}

func NewPriceAggregator(items orderItemGetter, prices PriceRepo) *PriceAggregator {
	return &PriceAggregator{items: items, prices: prices}
}

// ComputeTotal returns the sum of quantity * price over the items. Zero for no items.
func (a *PriceAggregator) ComputeTotal(ctx context.Context, itemIDs []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, id := range itemIDs {
		item, err := a.items.GetOrderItem(ctx, id)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to get order item %s: %w", id, err)
		}

		price, err := a.prices.GetProductPrice(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to get price of product %s: %w", item.ProductID, err)
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
