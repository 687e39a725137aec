package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/middleware"
	"github.com/SergeyBogomolovv/eshop-service/pkg/auth"
	"github.com/go-chi/chi/v5"
)

const (
	orderID    = "5b0d2b3c-1f2a-4c1e-9d7b-3f5b2f1a0c01"
	productID  = "8f14e45f-ceea-467a-9af0-2b1c3d4e5f60"
	categoryID = "1c4ca423-8a5d-4a6b-8f1e-9a0b1c2d3e4f"
	customerID = "c81e728d-9d4c-4f63-8e2a-7b6c5d4e3f21"
	adminID    = "eccbc87e-4b5c-4e2d-9a1f-0b2c3d4e5f66"
	otherID    = "a87ff679-a2f3-4e71-b0c9-d8e7f6a5b432"
)

var (
	customer = auth.Claims{UserID: customerID, Name: "Ann", Email: "ann@example.com"}
	admin    = auth.Claims{UserID: adminID, Name: "Root", Email: "root@example.com", IsAdmin: true}
)

// asCaller stands in for the token check and authenticates every request as c.
func asCaller(c auth.Claims) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithClaims(r.Context(), c)))
		})
	}
}

type initer interface {
	Init(r chi.Router)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, h initer, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)
	return rr
}
