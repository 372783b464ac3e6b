package handler

import (
	"context"
	"net/http"
	"strings"

	"mock-bank-api/common"
	"mock-bank-api/service"
)

type contextKey string

// UserIDKey holds the authenticated user id in the request context.
const UserIDKey contextKey = "userID"

// AuthMiddleware verifies the bearer credential and stores the
// caller's user id in the request context. A missing header, a
// non-bearer scheme, and a malformed credential all fail with the same
// response, so the reply reveals nothing about what was wrong.
func AuthMiddleware(tokens service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil).Send(w)
				return
			}

			headerParts := strings.SplitN(authHeader, " ", 2)
			if len(headerParts) != 2 || headerParts[0] != "Bearer" {
				common.NewAppError(http.StatusUnauthorized, "Unauthorized", nil).Send(w)
				return
			}

			userID, err := tokens.Verify(headerParts[1])
			if err != nil {
				common.NewAppError(http.StatusUnauthorized, "Unauthorized", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
