package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows every origin with the agency's fixed header and method set.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
