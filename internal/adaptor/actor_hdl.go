package adaptor

import (
	"net/http"

	"casting-agency/internal/dto/request"
	"casting-agency/internal/usecase"
	"casting-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /actors
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page: utils.ParseInt(r.URL.Query().Get("page"), 1),
	}

	page, err := h.service.GetActors(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get actors", opRead)
		return
	}

	utils.ResponseOK(w, utils.Envelope{
		"actors":       page.Items,
		"total_actors": page.Total,
		"page":         page.Page,
		"total_pages":  page.TotalPages,
	})
}

// GetActorByID handles GET /actors/{id}
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get actor by ID", opRead)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"actor": actor})
}

// CreateActor handles POST /actors
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Debug("Invalid actor body", zap.Error(err))
		utils.ResponseBadRequest(w)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor", opWrite)
		return
	}

	utils.ResponseCreated(w, utils.Envelope{"actor_id": actor.ID})
}

// UpdateActor handles PATCH /actors/{id}
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	var req request.ActorUpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Debug("Invalid actor body", zap.Error(err))
		utils.ResponseBadRequest(w)
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), actorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update actor", opWrite)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"actor": actor})
}

// DeleteActor handles DELETE /actors/{id}
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	if err := h.service.DeleteActor(r.Context(), actorID); err != nil {
		handleServiceError(w, h.log, err, "delete actor", opDelete)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"deleted": actorID})
}
