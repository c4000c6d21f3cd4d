package adaptor

import (
	"errors"
	"net/http"

	"casting-agency/internal/usecase"
	"casting-agency/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Actor   *ActorHandler
	Casting *CastingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Actor:   NewActorHandler(service.Actor, log),
		Casting: NewCastingHandler(service.Casting, log),
	}
}

// operation kinds decide how a missing resource and unexpected failures are reported
type opKind int

const (
	opRead opKind = iota
	opWrite
	opDelete
)

const maxBodyBytes = 1 << 20

var errTrailingData = errors.New("body must contain a single JSON object")

// decodeBody reads exactly one JSON value of at most maxBodyBytes into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}

// handleServiceError maps service errors onto the status codes of the API
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, kind opKind) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidReference),
		errors.Is(err, usecase.ErrAlreadyLinked):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w)

	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrPageOutOfRange):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		if kind == opDelete {
			utils.ResponseUnprocessable(w)
			return
		}
		utils.ResponseNotFound(w)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		if kind == opRead {
			utils.ResponseInternalError(w)
			return
		}
		utils.ResponseUnprocessable(w)
	}
}
