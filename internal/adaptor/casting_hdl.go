package adaptor

import (
	"net/http"

	"casting-agency/internal/dto/request"
	"casting-agency/internal/usecase"
	"casting-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CastingHandler struct {
	service usecase.CastingService
	log     *zap.Logger
}

func NewCastingHandler(service usecase.CastingService, log *zap.Logger) *CastingHandler {
	return &CastingHandler{
		service: service,
		log:     log.With(zap.String("handler", "casting")),
	}
}

// LinkActor handles POST /movie_actor
func (h *CastingHandler) LinkActor(w http.ResponseWriter, r *http.Request) {
	var req request.MovieActorRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Debug("Invalid movie_actor body", zap.Error(err))
		utils.ResponseBadRequest(w)
		return
	}

	link, err := h.service.Link(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "link actor to movie", opWrite)
		return
	}

	utils.ResponseCreated(w, utils.Envelope{
		"movie_id": link.MovieID,
		"actor_id": link.ActorID,
	})
}

// GetMovieActors handles GET /movies/{id}/actors
func (h *CastingHandler) GetMovieActors(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	actors, err := h.service.ActorsForMovie(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get actors for movie", opRead)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"actors": actors})
}

// GetActorMovies handles GET /actors/{id}/movies
func (h *CastingHandler) GetActorMovies(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	movies, err := h.service.MoviesForActor(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies for actor", opRead)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"movies": movies})
}
