package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/config"
	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/pkg/trm"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetOrderDetails(ctx context.Context, id string) (entities.OrderDetails, error)
	ListOrderDetails(ctx context.Context, userID string) ([]entities.OrderDetails, error)
	RecentOrderDetails(ctx context.Context, limit int) ([]entities.OrderDetails, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) (entities.Order, error)
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	CountOrders(ctx context.Context) (int, error)
}

// OrderStore is everything the order workflow reads and writes.
type OrderStore interface {
	OrderRepo
	OrderItemRepo
	PriceRepo
	MissingProducts(ctx context.Context, ids []string) ([]string, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	store       OrderStore
	cache       Cache
	items       *OrderItemCreator
	pricing     *PriceAggregator
	consistency string
	now         func() time.Time

	// cascades tracks background order item deletions.
	cascades sync.WaitGroup
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, store OrderStore, cache Cache, consistency string) *orderService {
	return &orderService{
		logger:      logger.With(slog.String("service", "order"), slog.String("consistency", consistency)),
		txManager:   txManager,
		store:       store,
		cache:       cache,
		items:       NewOrderItemCreator(store),
		pricing:     NewPriceAggregator(store, store),
		consistency: consistency,
		now:         time.Now,
	}
}

// CreateOrder persists one item per requested line, totals them and saves the order.
// What happens to already created items on failure depends on the consistency mode.
func (s *orderService) CreateOrder(ctx context.Context, req entities.CreateOrderRequest) (entities.Order, error) {
	if err := s.validateRequest(ctx, &req); err != nil {
		return entities.Order{}, err
	}

	var (
		order entities.Order
		err   error
	)
	if s.consistency == config.ConsistencyTransactional {
		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.createOrder(ctx, req, true)
			return err
		})
	} else {
		order, err = s.createOrder(ctx, req, false)
	}

	if err != nil {
		var ce *entities.OrderCreationError
		if !errors.As(err, &ce) {
			// the transaction itself failed to begin or commit
			ce = &entities.OrderCreationError{Stage: entities.StageOrder, Err: err}
		}
		orderCreationFailed.WithLabelValues(ce.Stage).Inc()
		return entities.Order{}, ce
	}

	ordersCreated.Inc()
	s.logger.Debug("order created", slog.String("order_id", order.ID), slog.Int("items", len(order.OrderItems)))
	return order, nil
}

func (s *orderService) validateRequest(ctx context.Context, req *entities.CreateOrderRequest) error {
	if len(req.Lines) == 0 {
		return fmt.Errorf("%w: no order items", entities.ErrInvalidOrder)
	}
	if req.Status == "" {
		req.Status = entities.StatusPending
	}
	if !req.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidOrder, req.Status)
	}

	productIDs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return entities.ErrInvalidQuantity
		}
		productIDs = append(productIDs, line.ProductID)
	}

	missing, err := s.store.MissingProducts(ctx, productIDs)
	if err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", entities.ErrProductNotFound, missing)
	}
	return nil
}

func (s *orderService) createOrder(ctx context.Context, req entities.CreateOrderRequest, sequential bool) (entities.Order, error) {
	var (
		ids  []string
		line int
		err  error
	)
	if sequential {
		ids, line, err = s.createItemsSequential(ctx, req.Lines)
	} else {
		ids, line, err = s.createItemsConcurrent(ctx, req.Lines)
	}
	if err != nil {
		return entities.Order{}, s.fail(ctx, entities.StageItems, line, ids, err)
	}

	total, err := s.pricing.ComputeTotal(ctx, ids)
	if err != nil {
		return entities.Order{}, s.fail(ctx, entities.StageTotal, 0, ids, err)
	}

	order, err := s.store.CreateOrder(ctx, entities.Order{
		OrderItems:  ids,
		Shipping:    req.Shipping,
		Status:      req.Status,
		TotalPrice:  total,
		UserID:      req.UserID,
		DateOrdered: s.now().UTC(),
	})
	if err != nil {
		return entities.Order{}, s.fail(ctx, entities.StageOrder, 0, ids, err)
	}
	return order, nil
}

type lineError struct {
	line int
	err  error
}

func (e *lineError) Error() string { return e.err.Error() }
func (e *lineError) Unwrap() error { return e.err }

// createItemsConcurrent starts every line at once and waits for all of them.
// A failed line does not stop its siblings. The returned ids hold only the
// created items, in request order.
func (s *orderService) createItemsConcurrent(ctx context.Context, lines []entities.OrderLine) ([]string, int, error) {
	slots := make([]string, len(lines))

	var g errgroup.Group
	for i, line := range lines {
		g.Go(func() error {
			id, err := s.items.CreateOrderItem(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return &lineError{line: i, err: err}
			}
			slots[i] = id
			return nil
		})
	}
	err := g.Wait()

	ids := make([]string, 0, len(lines))
	for _, id := range slots {
		if id != "" {
			ids = append(ids, id)
		}
	}

	if err != nil {
		var le *lineError
		if errors.As(err, &le) {
			return ids, le.line, le.err
		}
		return ids, 0, err
	}
	return ids, 0, nil
}

func (s *orderService) createItemsSequential(ctx context.Context, lines []entities.OrderLine) ([]string, int, error) {
	ids := make([]string, 0, len(lines))
	for i, line := range lines {
		id, err := s.items.CreateOrderItem(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return ids, i, err
		}
		ids = append(ids, id)
	}
	return ids, 0, nil
}

// fail builds the creation error and applies the consistency mode to the
// items created so far.
func (s *orderService) fail(ctx context.Context, stage string, line int, created []string, err error) *entities.OrderCreationError {
	ce := &entities.OrderCreationError{Stage: stage, Line: line, Err: err}
	logger := s.logger.With(slog.String("stage", stage), slog.Any("error", err))

	switch s.consistency {
	case config.ConsistencyTransactional:
		logger.Warn("order creation failed, rolling back")
	case config.ConsistencyCompensating:
		ce.Orphans = s.compensate(context.WithoutCancel(ctx), created)
		if len(ce.Orphans) > 0 {
			orderItemsOrphaned.Add(float64(len(ce.Orphans)))
			logger.Error("order creation failed, compensation incomplete", slog.Any("orphans", ce.Orphans))
		} else {
			logger.Warn("order creation failed, created items removed", slog.Int("removed", len(created)))
		}
	default:
		ce.Orphans = created
		if len(created) > 0 {
			orderItemsOrphaned.Add(float64(len(created)))
			logger.Error("order creation failed, items left orphaned", slog.Any("orphans", created))
		} else {
			logger.Warn("order creation failed")
		}
	}
	return ce
}

// compensate deletes created items and returns those it could not delete.
func (s *orderService) compensate(ctx context.Context, ids []string) []string {
	var orphans []string
	for _, id := range ids {
		err := s.store.DeleteOrderItem(ctx, id)
		if err != nil && !errors.Is(err, entities.ErrOrderItemNotFound) {
			s.logger.Error("failed to compensate order item", slog.String("order_item_id", id), slog.Any("error", err))
			orphans = append(orphans, id)
			continue
		}
		orderItemsCompensated.Inc()
	}
	return orphans
}

func (s *orderService) GetOrder(ctx context.Context, id string) (entities.OrderDetails, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.OrderDetails
		err := order.Unmarshal(data)
		if err == nil {
			return order, nil
		}
		s.logger.Error("failed to unmarshal cached order", slog.String("order_id", id), slog.Any("error", err))
		s.cache.Delete(id)
	}

	order, err := s.store.GetOrderDetails(ctx, id)
	if err != nil {
		return entities.OrderDetails{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", id), slog.Any("error", err))
		return order, nil
	}
	s.cache.Set(id, data)
	return order, nil
}

// WarmUpCache loads the newest orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.store.RecentOrderDetails(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load recent orders: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.ID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.OrderDetails, error) {
	return s.store.ListOrderDetails(ctx, "")
}

func (s *orderService) ListUserOrders(ctx context.Context, userID string) ([]entities.OrderDetails, error) {
	return s.store.ListOrderDetails(ctx, userID)
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidOrder, status)
	}

	order, err := s.store.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return entities.Order{}, err
	}
	s.cache.Delete(id)
	return order, nil
}

// DeleteOrder removes the order and deletes its items in the background.
// Items that are already gone are skipped; other failures are only logged.
func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.store.DeleteOrder(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Delete(id)

	s.cascades.Add(1)
	go func() {
		defer s.cascades.Done()
		s.deleteItems(context.WithoutCancel(ctx), order.ID, order.OrderItems)
	}()
	return nil
}

func (s *orderService) deleteItems(ctx context.Context, orderID string, ids []string) {
	for _, itemID := range ids {
		err := s.store.DeleteOrderItem(ctx, itemID)
		if errors.Is(err, entities.ErrOrderItemNotFound) {
			s.logger.Debug("order item already deleted", slog.String("order_id", orderID), slog.String("order_item_id", itemID))
			continue
		}
		if err != nil {
			s.logger.Error("failed to delete order item",
				slog.String("order_id", orderID),
				slog.String("order_item_id", itemID),
				slog.Any("error", err),
			)
		}
	}
}

// Wait blocks until background item deletions have finished.
func (s *orderService) Wait() {
	s.cascades.Wait()
}

func (s *orderService) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	return s.store.TotalSales(ctx)
}

func (s *orderService) CountOrders(ctx context.Context) (int, error) {
	return s.store.CountOrders(ctx)
}
