package handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/config"
	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKafkaHandler_HandleMessage(t *testing.T) {
	valid := fmt.Sprintf(`{"orderItems":[{"product":%q,"quantity":2}],"shippingAddress1":"A","shippingAddress2":"B","city":"C","country":"D","phone":"1","user":%q}`,
		productID, customerID)

	testCases := []struct {
		name         string
		value        string
		mockBehavior func(orders *mocks.MockOrderCreator)
		wantErr      error
		wantAnyErr   bool
	}{
		{
			name:  "creates order",
			value: valid,
			mockBehavior: func(orders *mocks.MockOrderCreator) {
				orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(req entities.CreateOrderRequest) bool {
						return req.UserID == customerID && len(req.Lines) == 1 && req.Lines[0].Quantity == 2
					})).
					Return(entities.Order{ID: orderID}, nil).Once()
			},
		},
		{
			name:         "not json",
			value:        "order please",
			mockBehavior: func(_ *mocks.MockOrderCreator) {},
			wantAnyErr:   true,
		},
		{
			name:         "missing user",
			value:        fmt.Sprintf(`{"orderItems":[{"product":%q,"quantity":2}],"shippingAddress1":"A","shippingAddress2":"B","city":"C","country":"D","phone":"1"}`, productID),
			mockBehavior: func(_ *mocks.MockOrderCreator) {},
			wantAnyErr:   true,
		},
		{
			name:  "creation fails",
			value: valid,
			mockBehavior: func(orders *mocks.MockOrderCreator) {
				orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.OrderCreationError{Stage: entities.StageOrder, Err: errors.New("db error")}).Once()
			},
			wantAnyErr: true,
		},
		{
			name:  "unknown product",
			value: valid,
			mockBehavior: func(orders *mocks.MockOrderCreator) {
				orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderCreator(t)
			tc.mockBehavior(orders)

			h := handler.NewKafkaHandler(discardLogger(), config.Kafka{
				Brokers: []string{"localhost:9092"},
				GroupID: "test",
				Topic:   "orders",
			}, orders)
			t.Cleanup(func() { _ = h.Close() })

			err := h.HandleMessage(context.Background(), kafka.Message{Topic: "orders", Value: []byte(tc.value)})

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantAnyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
