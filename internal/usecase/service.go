package usecase

import (
	"casting-agency/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Actor   ActorService
	Casting CastingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, log),
		Actor:   NewActorService(repo, log),
		Casting: NewCastingService(repo, log),
	}
}

// pageBounds rejects empty collections and pages starting at or past the end.
func pageBounds(total int64, offset int) error {
	if total == 0 {
		return ErrNotFound
	}
	if int64(offset) >= total {
		return ErrPageOutOfRange
	}
	return nil
}
