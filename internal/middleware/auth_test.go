package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/middleware"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/middleware/mocks"
	"github.com/SergeyBogomolovv/eshop-service/pkg/auth"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	testCases := []struct {
		name         string
		header       string
		mockBehavior func(tokens *mocks.MockTokenParser)
		wantStatus   int
		wantUserID   string
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			mockBehavior: func(tokens *mocks.MockTokenParser) {
				tokens.EXPECT().Parse("good").Return(auth.Claims{UserID: "u1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantUserID: "u1",
		},
		{
			name:         "missing header",
			mockBehavior: func(_ *mocks.MockTokenParser) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "wrong scheme",
			header:       "Basic dXNlcjpwYXNz",
			mockBehavior: func(_ *mocks.MockTokenParser) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			mockBehavior: func(tokens *mocks.MockTokenParser) {
				tokens.EXPECT().Parse("expired").
					Return(auth.Claims{}, errors.Join(auth.ErrInvalidToken, errors.New("token is expired"))).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := mocks.NewMockTokenParser(t)
			tc.mockBehavior(tokens)

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, _ := middleware.ClaimsFromContext(r.Context())
				gotUserID = claims.UserID
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			middleware.Auth(tokens)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantUserID, gotUserID)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		claims     *auth.Claims
		wantStatus int
	}{
		{name: "admin", claims: &auth.Claims{UserID: "u1", IsAdmin: true}, wantStatus: http.StatusOK},
		{name: "customer", claims: &auth.Claims{UserID: "u2"}, wantStatus: http.StatusForbidden},
		{name: "anonymous", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.claims != nil {
				req = req.WithContext(middleware.WithClaims(req.Context(), *tc.claims))
			}
			rr := httptest.NewRecorder()

			middleware.RequireAdmin(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
