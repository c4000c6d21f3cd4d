package wire

import (
	"casting-agency/internal/adaptor"
	"casting-agency/pkg/auth"
	"casting-agency/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	verifier auth.Verifier,
	log *zap.Logger,
) {
	r.With(middleware.RequirePermissions(verifier, log, "get:movies")).Get("/movies", movieHandler.GetMovies)
	r.With(middleware.RequirePermissions(verifier, log, "post:movies")).Post("/movies", movieHandler.CreateMovie)
	r.With(middleware.RequirePermissions(verifier, log, "get:movies")).Get("/movies/{id}", movieHandler.GetMovieByID)
	r.With(middleware.RequirePermissions(verifier, log, "patch:movies")).Patch("/movies/{id}", movieHandler.UpdateMovie)
	r.With(middleware.RequirePermissions(verifier, log, "delete:movies")).Delete("/movies/{id}", movieHandler.DeleteMovie)
}
