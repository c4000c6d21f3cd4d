package middleware

import (
	"net/http"
	"time"

	"casting-agency/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to perMinute requests. Zero or less disables it.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	if perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		perMinute,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseError(w, http.StatusTooManyRequests)
		}),
	)
}
