package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/config"
	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/eshop-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passThroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func item(productID string, quantity int) entities.OrderItem {
	return entities.OrderItem{ProductID: productID, Quantity: quantity}
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(store *mocks.MockOrderStore)

	dbError := errors.New("db error")

	twoLines := entities.CreateOrderRequest{
		Lines: []entities.OrderLine{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		Shipping: entities.Shipping{Address1: "Main st 1", City: "Prague", Country: "CZ", Phone: "+420123456789"},
		UserID:   "u1",
	}

	threeLines := entities.CreateOrderRequest{
		Lines: []entities.OrderLine{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 1},
			{ProductID: "p3", Quantity: 1},
		},
		UserID: "u1",
	}

	expectPriced := func(store *mocks.MockOrderStore) {
		store.EXPECT().GetOrderItem(mock.Anything, "i1").
			Return(entities.OrderItem{ID: "i1", ProductID: "p1", Quantity: 2}, nil).Once()
		store.EXPECT().GetOrderItem(mock.Anything, "i2").
			Return(entities.OrderItem{ID: "i2", ProductID: "p2", Quantity: 1}, nil).Once()
		store.EXPECT().GetProductPrice(mock.Anything, "p1").Return(decimal.NewFromInt(10), nil).Once()
		store.EXPECT().GetProductPrice(mock.Anything, "p2").Return(decimal.RequireFromString("5.5"), nil).Once()
	}

	testCases := []struct {
		name         string
		consistency  string
		req          entities.CreateOrderRequest
		mockBehavior MockBehavior
		wantTotal    decimal.Decimal
		wantErr      error
		wantStage    string
		wantLine     int
		wantOrphans  []string
	}{
		{
			name:        "OK",
			consistency: config.ConsistencyNone,
			req:         twoLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, []string{"p1", "p2"}).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 2)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("i2", nil).Once()
				expectPriced(store)
				store.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return assert.ObjectsAreEqual([]string{"i1", "i2"}, o.OrderItems) &&
							o.Status == entities.StatusPending &&
							o.UserID == "u1" &&
							o.Shipping.City == "Prague"
					})).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = "o1"
						return o, nil
					}).Once()
			},
			wantTotal: decimal.RequireFromString("25.5"),
		},
		{
			name:        "OK transactional",
			consistency: config.ConsistencyTransactional,
			req:         twoLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, []string{"p1", "p2"}).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 2)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("i2", nil).Once()
				expectPriced(store)
				store.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.ID = "o1"
						return o, nil
					}).Once()
			},
			wantTotal: decimal.RequireFromString("25.5"),
		},
		{
			name:        "no lines",
			consistency: config.ConsistencyNone,
			req:         entities.CreateOrderRequest{UserID: "u1"},
			mockBehavior: func(_ *mocks.MockOrderStore) {
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:        "unknown status",
			consistency: config.ConsistencyNone,
			req: entities.CreateOrderRequest{
				Lines:  []entities.OrderLine{{ProductID: "p1", Quantity: 1}},
				Status: "Lost",
			},
			mockBehavior: func(_ *mocks.MockOrderStore) {
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:        "zero quantity",
			consistency: config.ConsistencyNone,
			req: entities.CreateOrderRequest{
				Lines: []entities.OrderLine{{ProductID: "p1", Quantity: 0}},
			},
			mockBehavior: func(_ *mocks.MockOrderStore) {
			},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:        "unknown product writes nothing",
			consistency: config.ConsistencyNone,
			req:         twoLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, []string{"p1", "p2"}).Return([]string{"p2"}, nil).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:        "second line fails, items orphaned",
			consistency: config.ConsistencyNone,
			req:         threeLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 1)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("", dbError).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p3", 1)).Return("i3", nil).Once()
			},
			wantErr:     dbError,
			wantStage:   entities.StageItems,
			wantLine:    1,
			wantOrphans: []string{"i1", "i3"},
		},
		{
			name:        "second line fails, items compensated",
			consistency: config.ConsistencyCompensating,
			req:         threeLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 1)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("", dbError).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p3", 1)).Return("i3", nil).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i1").Return(nil).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i3").Return(nil).Once()
			},
			wantErr:   dbError,
			wantStage: entities.StageItems,
			wantLine:  1,
		},
		{
			name:        "compensation partly fails",
			consistency: config.ConsistencyCompensating,
			req:         threeLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 1)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("", dbError).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p3", 1)).Return("i3", nil).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i1").Return(nil).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i3").Return(errors.New("connection reset")).Once()
			},
			wantErr:     dbError,
			wantStage:   entities.StageItems,
			wantLine:    1,
			wantOrphans: []string{"i3"},
		},
		{
			name:        "second line fails, transaction rolled back",
			consistency: config.ConsistencyTransactional,
			req:         threeLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 1)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("", dbError).Once()
			},
			wantErr:   dbError,
			wantStage: entities.StageItems,
			wantLine:  1,
		},
		{
			name:        "total fails",
			consistency: config.ConsistencyNone,
			req: entities.CreateOrderRequest{
				Lines: []entities.OrderLine{{ProductID: "p1", Quantity: 2}},
			},
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 2)).Return("i1", nil).Once()
				store.EXPECT().GetOrderItem(mock.Anything, "i1").
					Return(entities.OrderItem{ID: "i1", ProductID: "p1", Quantity: 2}, nil).Once()
				store.EXPECT().GetProductPrice(mock.Anything, "p1").
					Return(decimal.Zero, entities.ErrProductNotFound).Once()
			},
			wantErr:     entities.ErrProductNotFound,
			wantStage:   entities.StageTotal,
			wantOrphans: []string{"i1"},
		},
		{
			name:        "order persistence fails",
			consistency: config.ConsistencyNone,
			req:         twoLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 2)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("i2", nil).Once()
				expectPriced(store)
				store.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbError).Once()
			},
			wantErr:     dbError,
			wantStage:   entities.StageOrder,
			wantOrphans: []string{"i1", "i2"},
		},
		{
			name:        "order persistence fails, items compensated",
			consistency: config.ConsistencyCompensating,
			req:         twoLines,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p1", 2)).Return("i1", nil).Once()
				store.EXPECT().CreateOrderItem(mock.Anything, item("p2", 1)).Return("i2", nil).Once()
				expectPriced(store)
				store.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, dbError).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i1").Return(nil).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i2").Return(entities.ErrOrderItemNotFound).Once()
			},
			wantErr:   dbError,
			wantStage: entities.StageOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			passThroughTx(tx)
			tc.mockBehavior(store)

			svc := service.NewOrderService(logger, tx, store, mocks.NewMockCache(t), tc.consistency)

			order, err := svc.CreateOrder(context.Background(), tc.req)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantStage == "" {
					return
				}

				var ce *entities.OrderCreationError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tc.wantStage, ce.Stage)
				assert.Equal(t, tc.wantLine, ce.Line)
				assert.ElementsMatch(t, tc.wantOrphans, ce.Orphans)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "o1", order.ID)
			assert.True(t, tc.wantTotal.Equal(order.TotalPrice), "total %s, want %s", order.TotalPrice, tc.wantTotal)
			assert.Equal(t, []string{"i1", "i2"}, order.OrderItems)
		})
	}
}

func TestOrderService_CreateOrder_TxBeginFails(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, tx, store, mocks.NewMockCache(t), config.ConsistencyTransactional)

	store.EXPECT().MissingProducts(mock.Anything, mock.Anything).Return(nil, nil).Once()
	tx.EXPECT().Do(mock.Anything, mock.Anything).Return(errors.New("too many connections")).Once()

	_, err := svc.CreateOrder(context.Background(), entities.CreateOrderRequest{
		Lines: []entities.OrderLine{{ProductID: "p1", Quantity: 1}},
	})

	var ce *entities.OrderCreationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, entities.StageOrder, ce.Stage)
	assert.Empty(t, ce.Orphans)
}

func TestOrderService_GetOrder(t *testing.T) {
	type MockBehavior func(store *mocks.MockOrderStore, cache *mocks.MockCache)

	validOrder := entities.OrderDetails{ID: "o1", Status: entities.StatusShipped}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		want         entities.OrderDetails
		wantErr      error
	}{
		{
			name: "success from cache",
			mockBehavior: func(_ *mocks.MockOrderStore, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name: "cache miss",
			mockBehavior: func(store *mocks.MockOrderStore, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				store.EXPECT().GetOrderDetails(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", mock.Anything).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "cache hit but unmarshal fails",
			mockBehavior: func(store *mocks.MockOrderStore, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return([]byte("broken"), true).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				store.EXPECT().GetOrderDetails(mock.Anything, "o1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("o1", mock.Anything).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "not found",
			mockBehavior: func(store *mocks.MockOrderStore, cache *mocks.MockCache) {
				cache.EXPECT().Get("o1").Return(nil, false).Once()
				store.EXPECT().GetOrderDetails(mock.Anything, "o1").
					Return(entities.OrderDetails{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			tc.mockBehavior(store, cache)

			svc := service.NewOrderService(logger, tx, store, cache, config.ConsistencyNone)
			got, err := svc.GetOrder(context.Background(), "o1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	cache := mocks.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, txMocks.NewMockManager(t), store, cache, config.ConsistencyNone)

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateOrderStatus(context.Background(), "o1", "Lost")
		assert.ErrorIs(t, err, entities.ErrInvalidOrder)
	})

	t.Run("not found", func(t *testing.T) {
		store.EXPECT().UpdateOrderStatus(mock.Anything, "o2", entities.StatusShipped).
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.UpdateOrderStatus(context.Background(), "o2", entities.StatusShipped)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("success invalidates cache", func(t *testing.T) {
		store.EXPECT().UpdateOrderStatus(mock.Anything, "o1", entities.StatusDelivered).
			Return(entities.Order{ID: "o1", Status: entities.StatusDelivered}, nil).Once()
		cache.EXPECT().Delete("o1").Return().Once()

		order, err := svc.UpdateOrderStatus(context.Background(), "o1", entities.StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusDelivered, order.Status)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	type MockBehavior func(store *mocks.MockOrderStore, cache *mocks.MockCache)

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "deletes items in background",
			mockBehavior: func(store *mocks.MockOrderStore, cache *mocks.MockCache) {
				store.EXPECT().DeleteOrder(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", OrderItems: []string{"i1", "i2"}}, nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i1").Return(nil).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i2").Return(nil).Once()
			},
		},
		{
			name: "already deleted items are skipped",
			mockBehavior: func(store *mocks.MockOrderStore, cache *mocks.MockCache) {
				store.EXPECT().DeleteOrder(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", OrderItems: []string{"i1", "i2"}}, nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i1").Return(entities.ErrOrderItemNotFound).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i2").Return(nil).Once()
			},
		},
		{
			name: "item deletion failure does not fail the request",
			mockBehavior: func(store *mocks.MockOrderStore, cache *mocks.MockCache) {
				store.EXPECT().DeleteOrder(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", OrderItems: []string{"i1", "i2"}}, nil).Once()
				cache.EXPECT().Delete("o1").Return().Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i1").Return(errors.New("db error")).Once()
				store.EXPECT().DeleteOrderItem(mock.Anything, "i2").Return(nil).Once()
			},
		},
		{
			name: "order not found",
			mockBehavior: func(store *mocks.MockOrderStore, _ *mocks.MockCache) {
				store.EXPECT().DeleteOrder(mock.Anything, "o1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			tc.mockBehavior(store, cache)

			svc := service.NewOrderService(logger, txMocks.NewMockManager(t), store, cache, config.ConsistencyNone)
			err := svc.DeleteOrder(context.Background(), "o1")
			svc.Wait()

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_TotalSales(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, txMocks.NewMockManager(t), store, mocks.NewMockCache(t), config.ConsistencyNone)

	store.EXPECT().TotalSales(mock.Anything).Return(decimal.Zero, nil).Once()

	total, err := svc.TotalSales(context.Background())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestOrderService_WarmUpCache(t *testing.T) {
	store := mocks.NewMockOrderStore(t)
	cache := mocks.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, txMocks.NewMockManager(t), store, cache, config.ConsistencyNone)

	store.EXPECT().RecentOrderDetails(mock.Anything, 2).
		Return([]entities.OrderDetails{{ID: "o1"}, {ID: "o2"}}, nil).Once()
	cache.EXPECT().Set("o1", mock.Anything).Return().Once()
	cache.EXPECT().Set("o2", mock.Anything).Return().Once()

	require.NoError(t, svc.WarmUpCache(context.Background(), 2))
}
