package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vegetanizando/api/pkg/httpx"
)

// TokenMiddleware gates admin routes behind a valid bearer token. The
// core services behind it treat authentication as a settled
// precondition.
func TokenMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authorization header is missing"})
				return
			}
			raw = strings.TrimPrefix(raw, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("invalid token signing method")
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
