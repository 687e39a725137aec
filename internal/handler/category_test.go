package handler_test

import (
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/eshop-service/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryHandler(t *testing.T) {
	category := entities.Category{ID: categoryID, Name: "Phones", Color: "#ff0000"}

	testCases := []struct {
		name         string
		caller       auth.Claims
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockCategoryService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list",
			caller: customer,
			method: http.MethodGet,
			target: "/categories",
			mockBehavior: func(svc *mocks.MockCategoryService) {
				svc.EXPECT().ListCategories(mock.Anything).Return([]entities.Category{category}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"categories":[{"id":"` + categoryID + `"`,
		},
		{
			name:   "get",
			caller: customer,
			method: http.MethodGet,
			target: "/categories/" + categoryID,
			mockBehavior: func(svc *mocks.MockCategoryService) {
				svc.EXPECT().GetCategory(mock.Anything, categoryID).Return(category, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"color":"#ff0000"`,
		},
		{
			name:         "get malformed id",
			caller:       customer,
			method:       http.MethodGet,
			target:       "/categories/phones",
			mockBehavior: func(_ *mocks.MockCategoryService) {},
			wantStatus:   http.StatusUnprocessableEntity,
		},
		{
			name:   "get missing",
			caller: customer,
			method: http.MethodGet,
			target: "/categories/" + categoryID,
			mockBehavior: func(svc *mocks.MockCategoryService) {
				svc.EXPECT().GetCategory(mock.Anything, categoryID).Return(entities.Category{}, entities.ErrCategoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "create",
			caller: admin,
			method: http.MethodPost,
			target: "/categories",
			body:   `{"name":"Phones","color":"#ff0000"}`,
			mockBehavior: func(svc *mocks.MockCategoryService) {
				svc.EXPECT().CreateCategory(mock.Anything, entities.Category{Name: "Phones", Color: "#ff0000"}).
					Return(category, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"message":"category created"`,
		},
		{
			name:         "create without name",
			caller:       admin,
			method:       http.MethodPost,
			target:       "/categories",
			body:         `{"color":"#ff0000"}`,
			mockBehavior: func(_ *mocks.MockCategoryService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Name":"required"`,
		},
		{
			name:         "create as customer",
			caller:       customer,
			method:       http.MethodPost,
			target:       "/categories",
			body:         `{"name":"Phones"}`,
			mockBehavior: func(_ *mocks.MockCategoryService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:   "update",
			caller: admin,
			method: http.MethodPut,
			target: "/categories/" + categoryID,
			body:   `{"name":"Phones"}`,
			mockBehavior: func(svc *mocks.MockCategoryService) {
				svc.EXPECT().UpdateCategory(mock.Anything, entities.Category{ID: categoryID, Name: "Phones"}).
					Return(category, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete missing",
			caller: admin,
			method: http.MethodDelete,
			target: "/categories/" + categoryID,
			mockBehavior: func(svc *mocks.MockCategoryService) {
				svc.EXPECT().DeleteCategory(mock.Anything, categoryID).Return(entities.ErrCategoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "delete malformed id",
			caller:       admin,
			method:       http.MethodDelete,
			target:       "/categories/1",
			mockBehavior: func(_ *mocks.MockCategoryService) {},
			wantStatus:   http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCategoryService(t)
			tc.mockBehavior(svc)

			h := handler.NewCategoryHandler(discardLogger(), asCaller(tc.caller), svc)
			rr := serve(t, h, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
