package handler_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const maxUpload = 1 << 20

func multipartBody(t *testing.T, fields map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for field, contents := range files {
		for i, content := range contents {
			fw, err := mw.CreateFormFile(field, fmt.Sprintf("%s-%d.png", field, i))
			require.NoError(t, err)
			_, err = fw.Write([]byte(content))
			require.NoError(t, err)
		}
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func serveMultipart(t *testing.T, h *handler.ProductHandler, method, target string, fields map[string]string, files map[string][]string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	body, contentType := multipartBody(t, fields, files)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	return rr
}

func TestProductHandler_CreateProduct(t *testing.T) {
	validFields := map[string]string{
		"name":         "Phone",
		"description":  "Smart phone",
		"price":        "199.99",
		"category":     categoryID,
		"countInStock": "5",
	}

	testCases := []struct {
		name         string
		fields       map[string]string
		files        map[string][]string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			fields: validFields,
			files:  map[string][]string{"image": {"png-bytes"}},
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().
					CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
						return p.Name == "Phone" && p.CategoryID == categoryID && p.Price.Equal(decimal.RequireFromString("199.99"))
					}), mock.Anything).
					Return(entities.Product{ID: productID, Name: "Phone", Price: decimal.RequireFromString("199.99"), CategoryID: categoryID}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"price":199.99`,
		},
		{
			name:         "missing image",
			fields:       validFields,
			mockBehavior: func(_ *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"image is required"`,
		},
		{
			name:         "malformed category",
			fields:       map[string]string{"name": "Phone", "description": "d", "category": "c1"},
			files:        map[string][]string{"image": {"png-bytes"}},
			mockBehavior: func(_ *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Category":"uuid"`,
		},
		{
			name:         "bad price",
			fields:       map[string]string{"name": "Phone", "description": "d", "category": categoryID, "price": "cheap"},
			files:        map[string][]string{"image": {"png-bytes"}},
			mockBehavior: func(_ *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "unknown category",
			fields: validFields,
			files:  map[string][]string{"image": {"png-bytes"}},
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.Product{}, entities.ErrCategoryNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"message":"category not found"`,
		},
		{
			name:   "unsupported image",
			fields: validFields,
			files:  map[string][]string{"image": {"GIF89a"}},
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.Anything, mock.Anything).
					Return(entities.Product{}, fmt.Errorf("%w: only png and jpeg images are allowed", entities.ErrUnsupportedMedia)).Once()
			},
			wantStatus: http.StatusUnsupportedMediaType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			h := handler.NewProductHandler(discardLogger(), asCaller(admin), svc, maxUpload)
			rr := serveMultipart(t, h, http.MethodPost, "/products", tc.fields, tc.files)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestProductHandler_CreateProduct_NotAdmin(t *testing.T) {
	svc := mocks.NewMockProductService(t)
	h := handler.NewProductHandler(discardLogger(), asCaller(customer), svc, maxUpload)

	rr := serveMultipart(t, h, http.MethodPost, "/products", map[string]string{"name": "Phone"}, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestProductHandler_UpdateProduct_WithoutImage(t *testing.T) {
	svc := mocks.NewMockProductService(t)
	svc.EXPECT().
		UpdateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool { return p.ID == productID }), nil).
		Return(entities.Product{ID: productID, Image: "old.png"}, nil).Once()

	h := handler.NewProductHandler(discardLogger(), asCaller(admin), svc, maxUpload)
	rr := serveMultipart(t, h, http.MethodPut, "/products/"+productID, map[string]string{
		"name":        "Phone",
		"description": "d",
		"category":    categoryID,
	}, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"image":"old.png"`)
}

func TestProductHandler_UpdateGallery(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		svc.EXPECT().
			UpdateGallery(mock.Anything, productID, mock.MatchedBy(func(images []io.Reader) bool { return len(images) == 2 })).
			Return(entities.Product{ID: productID, Images: []string{"a.png", "b.png"}}, nil).Once()

		h := handler.NewProductHandler(discardLogger(), asCaller(admin), svc, maxUpload)
		rr := serveMultipart(t, h, http.MethodPut, "/products/gallery-images/"+productID, nil,
			map[string][]string{"images": {"a", "b"}})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"images":["a.png","b.png"]`)
	})

	t.Run("too many images", func(t *testing.T) {
		svc := mocks.NewMockProductService(t)
		h := handler.NewProductHandler(discardLogger(), asCaller(admin), svc, maxUpload)

		files := make([]string, 11)
		for i := range files {
			files[i] = "x"
		}
		rr := serveMultipart(t, h, http.MethodPut, "/products/gallery-images/"+productID, nil,
			map[string][]string{"images": files})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestProductHandler_PublicRoutes(t *testing.T) {
	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockProductService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list filtered by categories",
			target: "/products?categories=" + categoryID,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{CategoryIDs: []string{categoryID}}).
					Return([]entities.Product{{ID: productID, CategoryID: categoryID}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"category":"` + categoryID + `"`,
		},
		{
			name:         "list with malformed category",
			target:       "/products?categories=abc",
			mockBehavior: func(_ *mocks.MockProductService) {},
			wantStatus:   http.StatusUnprocessableEntity,
		},
		{
			name:   "get with category",
			target: "/products/" + productID,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, productID).
					Return(entities.Product{ID: productID, Category: &entities.Category{ID: categoryID, Name: "Phones"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Phones"`,
		},
		{
			name:         "get malformed id",
			target:       "/products/42",
			mockBehavior: func(_ *mocks.MockProductService) {},
			wantStatus:   http.StatusUnprocessableEntity,
		},
		{
			name:   "get missing",
			target: "/products/" + productID,
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().GetProduct(mock.Anything, productID).Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "featured",
			target: "/products/get/featured/2",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().FeaturedProducts(mock.Anything, 2).Return([]entities.Product{}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"products":[]`,
		},
		{
			name:         "featured bad count",
			target:       "/products/get/featured/many",
			mockBehavior: func(_ *mocks.MockProductService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "store error",
			target: "/products",
			mockBehavior: func(svc *mocks.MockProductService) {
				svc.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{}).Return(nil, errors.New("db error")).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProductService(t)
			tc.mockBehavior(svc)

			h := handler.NewProductHandler(discardLogger(), asCaller(customer), svc, maxUpload)
			rr := serve(t, h, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}
