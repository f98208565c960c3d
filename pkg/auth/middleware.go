package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/b2bmart/b2bmart/internal/domain"
	"github.com/b2bmart/b2bmart/pkg/utils"
)

type ContextKey string

const ScopeKey ContextKey = "scope"

// AuthMiddleware resolves the bearer token to a domain.Scope and stores it in
// the request context. Handlers never look at the role string themselves.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		scope := domain.Scope{UserID: claims.UserID, Role: claims.Role}
		ctx := context.WithValue(r.Context(), ScopeKey, scope)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ScopeFromContext returns the caller's scope set by AuthMiddleware.
func ScopeFromContext(ctx context.Context) domain.Scope {
	scope, _ := ctx.Value(ScopeKey).(domain.Scope)
	return scope
}
