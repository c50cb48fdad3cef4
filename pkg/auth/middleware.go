package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/pkg/utils"
)

type ContextKey string

const ServiceKey ContextKey = "service"

// Middleware accepts requests carrying a bearer token signed for a calling
// service and stores the service name in the request context.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				zap.L().Debug("rejected service token", zap.String("path", r.URL.Path), zap.Error(err))
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), ServiceKey, claims.Service)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
