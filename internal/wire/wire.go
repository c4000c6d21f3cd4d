// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"casting-agency/internal/adaptor"
	"casting-agency/internal/data/repository"
	"casting-agency/internal/usecase"
	"casting-agency/pkg/auth"
	"casting-agency/pkg/middleware"
	"casting-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of repo
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger, verifier auth.Verifier) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger, verifier)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
	verifier auth.Verifier,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(config.RateLimit.RequestsPerMinute))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed)
	})

	wireMovie(r, handler.Movie, verifier, logger)
	wireActor(r, handler.Actor, verifier, logger)
	wireCasting(r, handler.Casting, verifier, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.DB.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, utils.Envelope{
				"success":  false,
				"error":    http.StatusServiceUnavailable,
				"message":  "service unavailable",
				"status":   "unavailable",
				"database": "down",
			})
			return
		}
		utils.ResponseOK(w, utils.Envelope{"status": "ok", "database": "up"})
	})

	return r
}
