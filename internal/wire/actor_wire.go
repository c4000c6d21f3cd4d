package wire

import (
	"casting-agency/internal/adaptor"
	"casting-agency/pkg/auth"
	"casting-agency/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActor(
	r chi.Router,
	actorHandler *adaptor.ActorHandler,
	verifier auth.Verifier,
	log *zap.Logger,
) {
	r.With(middleware.RequirePermissions(verifier, log, "get:actors")).Get("/actors", actorHandler.GetActors)
	r.With(middleware.RequirePermissions(verifier, log, "post:actors")).Post("/actors", actorHandler.CreateActor)
	r.With(middleware.RequirePermissions(verifier, log, "get:actors")).Get("/actors/{id}", actorHandler.GetActorByID)
	r.With(middleware.RequirePermissions(verifier, log, "patch:actors")).Patch("/actors/{id}", actorHandler.UpdateActor)
	r.With(middleware.RequirePermissions(verifier, log, "delete:actors")).Delete("/actors/{id}", actorHandler.DeleteActor)
}
