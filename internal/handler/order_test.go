package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/eshop-service/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	body := fmt.Sprintf(`{
		"orderItems": [{"product": %q, "quantity": 2}],
		"shippingAddress1": "A",
		"shippingAddress2": "B",
		"city": "C",
		"country": "D",
		"phone": "1",
		"user": %q
	}`, productID, customerID)

	wantRequest := entities.CreateOrderRequest{
		Lines:    []entities.OrderLine{{ProductID: productID, Quantity: 2}},
		Shipping: entities.Shipping{Address1: "A", Address2: "B", City: "C", Country: "D", Phone: "1"},
		UserID:   customerID,
	}

	testCases := []struct {
		name         string
		caller       auth.Claims
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
		hiddenText   string
	}{
		{
			name:   "success",
			caller: customer,
			body:   body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, wantRequest).
					Return(entities.Order{
						ID:         orderID,
						OrderItems: []string{"i1"},
						Shipping:   wantRequest.Shipping,
						Status:     entities.StatusPending,
						TotalPrice: decimal.NewFromInt(20),
						UserID:     customerID,
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"totalPrice":20`,
		},
		{
			name:   "user defaults to caller",
			caller: customer,
			body:   fmt.Sprintf(`{"orderItems":[{"product":%q,"quantity":2}],"shippingAddress1":"A","shippingAddress2":"B","city":"C","country":"D","phone":"1"}`, productID),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, wantRequest).
					Return(entities.Order{ID: orderID, UserID: customerID}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"user":"` + customerID + `"`,
		},
		{
			name:         "malformed json",
			caller:       customer,
			body:         `{"orderItems":`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "zero quantity",
			caller:       customer,
			body:         fmt.Sprintf(`{"orderItems":[{"product":%q,"quantity":0}],"shippingAddress1":"A","shippingAddress2":"B","city":"C","country":"D","phone":"1"}`, productID),
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Quantity":"required"`,
		},
		{
			name:         "no items",
			caller:       customer,
			body:         `{"orderItems":[],"shippingAddress1":"A","shippingAddress2":"B","city":"C","country":"D","phone":"1"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "order for someone else",
			caller:       customer,
			body:         fmt.Sprintf(`{"orderItems":[{"product":%q,"quantity":1}],"shippingAddress1":"A","shippingAddress2":"B","city":"C","country":"D","phone":"1","user":%q}`, productID, otherID),
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:   "product not found",
			caller: customer,
			body:   body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, fmt.Errorf("%w: [%s]", entities.ErrProductNotFound, productID)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"message":"product not found"`,
		},
		{
			name:   "creation failed",
			caller: customer,
			body:   body,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.OrderCreationError{
						Stage:   entities.StageItems,
						Line:    1,
						Orphans: []string{"i1"},
						Err:     errors.New("pq: connection reset by peer"),
					}).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"message":"failed to create order","error":"order creation failed at items (line 1), 1 orphaned items"`,
			hiddenText: "connection reset",
		},
		{
			name:         "quantity out of range",
			caller:       customer,
			body:         fmt.Sprintf(`{"orderItems":[{"product":%q,"quantity":3000000000}],"shippingAddress1":"A","shippingAddress2":"B","city":"C","country":"D","phone":"1"}`, productID),
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Quantity":"lte"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), asCaller(tc.caller), svc)
			rr := serve(t, h, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
			if tc.hiddenText != "" {
				assert.NotContains(t, rr.Body.String(), tc.hiddenText)
			}

			var env map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
			assert.Equal(t, float64(tc.wantStatus), env["code"])
			assert.Equal(t, tc.wantStatus < http.StatusBadRequest, env["status"])
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	owned := entities.OrderDetails{
		ID:         orderID,
		Status:     entities.StatusPending,
		TotalPrice: decimal.NewFromInt(20),
		User:       &entities.UserRef{ID: customerID, Name: "Ann", Email: "ann@example.com"},
		OrderItems: []entities.OrderItemDetails{{
			ID:       "i1",
			Quantity: 2,
			Product: &entities.Product{
				ID:       productID,
				Name:     "Phone",
				Price:    decimal.NewFromInt(10),
				Category: &entities.Category{ID: categoryID, Name: "Electronics"},
			},
		}},
	}

	testCases := []struct {
		name         string
		caller       auth.Claims
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "owner",
			caller: customer,
			id:     orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(owned, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"category":{"id":"` + categoryID + `","name":"Electronics"}`,
		},
		{
			name:   "admin",
			caller: admin,
			id:     orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(owned, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"email":"ann@example.com"`,
		},
		{
			name:   "someone else's order",
			caller: auth.Claims{UserID: otherID},
			id:     orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).Return(owned, nil).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:         "malformed id",
			caller:       customer,
			id:           "not-a-uuid",
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnprocessableEntity,
			wantBody:     `"message":"invalid id"`,
		},
		{
			name:   "not found",
			caller: customer,
			id:     orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.OrderDetails{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"message":"order not found"`,
		},
		{
			name:   "store error",
			caller: customer,
			id:     orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, orderID).
					Return(entities.OrderDetails{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"message":"failed to get order"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), asCaller(tc.caller), svc)
			rr := serve(t, h, http.MethodGet, "/orders/"+tc.id, "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_AdminRoutes(t *testing.T) {
	testCases := []struct {
		name         string
		caller       auth.Claims
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list orders",
			caller: admin,
			method: http.MethodGet,
			target: "/orders",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything).
					Return([]entities.OrderDetails{{ID: orderID}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[{"id":"` + orderID + `"`,
		},
		{
			name:         "list orders as customer",
			caller:       customer,
			method:       http.MethodGet,
			target:       "/orders",
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:   "total sales without orders",
			caller: admin,
			method: http.MethodGet,
			target: "/orders/get/total_sales",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().TotalSales(mock.Anything).Return(decimal.Zero, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"totalSales":0`,
		},
		{
			name:   "count",
			caller: admin,
			method: http.MethodGet,
			target: "/orders/get/count",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CountOrders(mock.Anything).Return(3, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"count":3`,
		},
		{
			name:   "update status",
			caller: admin,
			method: http.MethodPut,
			target: "/orders/" + orderID,
			body:   `{"status":"Shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, orderID, entities.StatusShipped).
					Return(entities.Order{ID: orderID, Status: entities.StatusShipped}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Shipped"`,
		},
		{
			name:         "update unknown status",
			caller:       admin,
			method:       http.MethodPut,
			target:       "/orders/" + orderID,
			body:         `{"status":"Lost"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "update malformed id",
			caller:       admin,
			method:       http.MethodPut,
			target:       "/orders/123",
			body:         `{"status":"Shipped"}`,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnprocessableEntity,
		},
		{
			name:   "delete",
			caller: admin,
			method: http.MethodDelete,
			target: "/orders/" + orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"message":"order deleted"`,
		},
		{
			name:   "delete missing",
			caller: admin,
			method: http.MethodDelete,
			target: "/orders/" + orderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "delete malformed id",
			caller:       admin,
			method:       http.MethodDelete,
			target:       "/orders/xyz",
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnprocessableEntity,
		},
		{
			name:   "own orders",
			caller: customer,
			method: http.MethodGet,
			target: "/orders/get/userorders/" + customerID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListUserOrders(mock.Anything, customerID).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[]`,
		},
		{
			name:         "someone else's orders",
			caller:       customer,
			method:       http.MethodGet,
			target:       "/orders/get/userorders/" + otherID,
			mockBehavior: func(_ *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), asCaller(tc.caller), svc)
			rr := serve(t, h, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
