package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderItemCreator_CreateOrderItem(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		quantity     int
		mockBehavior func(store *mocks.MockOrderStore)
		wantID       string
		wantErr      error
	}{
		{
			name:     "OK",
			quantity: 3,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().CreateOrderItem(mock.Anything, entities.OrderItem{ProductID: "p1", Quantity: 3}).
					Return("i1", nil).Once()
			},
			wantID: "i1",
		},
		{
			name:         "zero quantity",
			quantity:     0,
			mockBehavior: func(_ *mocks.MockOrderStore) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:         "negative quantity",
			quantity:     -1,
			mockBehavior: func(_ *mocks.MockOrderStore) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:     "store fails",
			quantity: 1,
			mockBehavior: func(store *mocks.MockOrderStore) {
				store.EXPECT().CreateOrderItem(mock.Anything, mock.Anything).Return("", dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockOrderStore(t)
			tc.mockBehavior(store)

			id, err := service.NewOrderItemCreator(store).CreateOrderItem(context.Background(), "p1", tc.quantity)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}
