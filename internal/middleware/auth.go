package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/eshop-service/pkg/auth"
	"github.com/SergeyBogomolovv/eshop-service/pkg/utils"
)

type claimsKey struct{}

type TokenParser interface {
	Parse(raw string) (auth.Claims, error)
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(auth.Claims)
	return c, ok
}

// Auth rejects requests without a valid bearer token and stores its claims
// in the request context.
func Auth(tokens TokenParser) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				authRejected.WithLabelValues("missing_token").Inc()
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				authRejected.WithLabelValues("invalid_token").Inc()
				utils.WriteErrorDetail(w, "invalid token", err, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsAdmin {
			authRejected.WithLabelValues("not_admin").Inc()
			utils.WriteError(w, "admin rights required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
