package wire

import (
	"casting-agency/internal/adaptor"
	"casting-agency/pkg/auth"
	"casting-agency/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCasting mounts the routes spanning both resources. Each needs both permissions.
func wireCasting(
	r chi.Router,
	castingHandler *adaptor.CastingHandler,
	verifier auth.Verifier,
	log *zap.Logger,
) {
	r.With(middleware.RequirePermissions(verifier, log, "patch:actors", "patch:movies")).
		Post("/movie_actor", castingHandler.LinkActor)

	r.With(middleware.RequirePermissions(verifier, log, "get:movies", "get:actors")).
		Get("/movies/{id}/actors", castingHandler.GetMovieActors)

	r.With(middleware.RequirePermissions(verifier, log, "get:actors", "get:movies")).
		Get("/actors/{id}/movies", castingHandler.GetActorMovies)
}
