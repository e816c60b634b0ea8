// Middleware guarding protected routes. JWTMiddleware validates the bearer
// token and places the account id in the request context; AccountMiddleware
// then resolves the id to a live account, rejecting tokens whose account no
// longer exists. On any failure the downstream handler is never invoked.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/croptrack-go/apperror"
	"github.com/user/croptrack-go/config"
)

// ContextKey is a dedicated type for context keys to avoid collisions with
// values set by other packages.
type ContextKey string

const (
	// UserIDKey is the context key under which the authenticated account id is stored.
	UserIDKey ContextKey = "userID"
)

// JWTMiddleware verifies the token from the Authorization header and adds
// the account id to the request context.
func JWTMiddleware(cfg *config.AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("authentication required", nil))
				return
			}

			// Expected format: "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			tokenString := parts[1]
			claims := &Claims{}

			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				WriteError(w, r, apperror.NewAuthError("invalid token", err))
				return
			}

			if claims.UserID == 0 {
				WriteError(w, r, apperror.NewAuthError("invalid token: user_id claim is missing", nil))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountMiddleware re-resolves the authenticated account id to a live
// account. A valid token for a deleted account yields 404, matching the
// contract that tokens are only proof of identity, not of existence.
func AccountMiddleware(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserIDFromContext(r.Context())
			if !ok {
				WriteError(w, r, apperror.NewAuthError("authentication required", nil))
				return
			}

			if _, err := service.GetUserByID(r.Context(), userID); err != nil {
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext retrieves the account id stored by JWTMiddleware.
// Returns 0 and false if no authenticated id is present.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}
