package adaptor

import (
	"net/http"

	"casting-agency/internal/dto/request"
	"casting-agency/internal/usecase"
	"casting-agency/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page: utils.ParseInt(r.URL.Query().Get("page"), 1),
	}

	page, err := h.service.GetMovies(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get movies", opRead)
		return
	}

	utils.ResponseOK(w, utils.Envelope{
		"movies":       page.Items,
		"total_movies": page.Total,
		"page":         page.Page,
		"total_pages":  page.TotalPages,
	})
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID", opRead)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"movie": movie})
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Debug("Invalid movie body", zap.Error(err))
		utils.ResponseBadRequest(w)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie", opWrite)
		return
	}

	utils.ResponseCreated(w, utils.Envelope{"movie_id": movie.ID})
}

// UpdateMovie handles PATCH /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	var req request.MovieUpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.log.Debug("Invalid movie body", zap.Error(err))
		utils.ResponseBadRequest(w)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie", opWrite)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"movie": movie})
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseNotFound(w)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		handleServiceError(w, h.log, err, "delete movie", opDelete)
		return
	}

	utils.ResponseOK(w, utils.Envelope{"deleted": movieID})
}
