package usecase

import (
	"context"
	"errors"
	"fmt"

	"casting-agency/internal/data/entity"
	"casting-agency/internal/data/repository"
	"casting-agency/internal/dto/request"
	"casting-agency/internal/dto/response"
	"casting-agency/pkg/database"
	"casting-agency/pkg/utils"

	"go.uber.org/zap"
)

// CastingService manages the movie/actor relationship.
type CastingService interface {
	Link(ctx context.Context, req *request.MovieActorRequest) (*entity.MovieActor, error)
	ActorsForMovie(ctx context.Context, movieID int64) ([]response.ActorResponse, error)
	MoviesForActor(ctx context.Context, actorID int64) ([]response.MovieResponse, error)
}

type castingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCastingService(repo *repository.Repository, log *zap.Logger) CastingService {
	return &castingService{
		repo: repo,
		log:  log.With(zap.String("service", "casting")),
	}
}

// Link checks both ends and inserts the join row in a single transaction.
func (s *castingService) Link(ctx context.Context, req *request.MovieActorRequest) (*entity.MovieActor, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Link validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	link := &entity.MovieActor{
		MovieID: req.MovieID,
		ActorID: req.ActorID,
	}

	err := s.repo.WithTx(ctx, func(tx database.Querier) error {
		if _, err := s.repo.Movie.FindByID(ctx, tx, req.MovieID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("movie %d: %w", req.MovieID, ErrInvalidReference)
			}
			return err
		}

		if _, err := s.repo.Actor.FindByID(ctx, tx, req.ActorID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("actor %d: %w", req.ActorID, ErrInvalidReference)
			}
			return err
		}

		exists, err := s.repo.MovieActor.Exists(ctx, tx, req.MovieID, req.ActorID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyLinked
		}

		return s.repo.MovieActor.Create(ctx, tx, link)
	})
	if err != nil {
		s.log.Warn("Failed to link actor to movie",
			zap.Error(err),
			zap.Int64("movie_id", req.MovieID),
			zap.Int64("actor_id", req.ActorID),
		)
		return nil, fmt.Errorf("link actor to movie: %w", err)
	}

	s.log.Info("Actor linked to movie",
		zap.Int64("movie_id", link.MovieID),
		zap.Int64("actor_id", link.ActorID),
	)

	return link, nil
}

func (s *castingService) ActorsForMovie(ctx context.Context, movieID int64) ([]response.ActorResponse, error) {
	if _, err := s.repo.Movie.FindByID(ctx, s.repo.DB, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}

	actors, err := s.repo.Actor.FindByMovieID(ctx, s.repo.DB, movieID)
	if err != nil {
		return nil, fmt.Errorf("get actors for movie: %w", err)
	}

	return response.ActorsToResponse(actors), nil
}

func (s *castingService) MoviesForActor(ctx context.Context, actorID int64) ([]response.MovieResponse, error) {
	if _, err := s.repo.Actor.FindByID(ctx, s.repo.DB, actorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("actor %d: %w", actorID, ErrNotFound)
		}
		return nil, fmt.Errorf("find actor: %w", err)
	}

	movies, err := s.repo.Movie.FindByActorID(ctx, s.repo.DB, actorID)
	if err != nil {
		return nil, fmt.Errorf("get movies for actor: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}
