package middleware

import (
	"errors"
	"net/http"
	"strings"

	"casting-agency/pkg/auth"
	"casting-agency/pkg/utils"

	"go.uber.org/zap"
)

// RequirePermissions verifies the bearer token and requires every permission in perms.
// All failures are reported as 401.
func RequirePermissions(verifier auth.Verifier, logger *zap.Logger, perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "authorization_header_missing", "Authorization header is expected.")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "invalid_header", "Authorization header must be of the form: Bearer <token>.")
				return
			}

			claims, err := verifier.Verify(r.Context(), parts[1])
			if err != nil {
				logger.Warn("Token rejected",
					zap.Error(err),
					zap.String("path", r.URL.Path),
					zap.String("request_id", utils.RequestIDFromContext(r.Context())),
				)
				switch {
				case errors.Is(err, auth.ErrTokenExpired):
					utils.ResponseUnauthorized(w, "token_expired", "Token expired.")
				case errors.Is(err, auth.ErrMissingPermissions):
					utils.ResponseUnauthorized(w, "invalid_claims", "Permissions not included in token.")
				default:
					utils.ResponseUnauthorized(w, "invalid_token", "Unable to verify token.")
				}
				return
			}

			if missing := claims.Missing(perms...); len(missing) > 0 {
				logger.Warn("Permission denied",
					zap.String("subject", claims.Subject),
					zap.Strings("missing", missing),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, "unauthorized", "Permission not found.")
				return
			}

			ctx := auth.WithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
