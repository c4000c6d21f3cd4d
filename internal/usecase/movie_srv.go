package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casting-agency/internal/data/entity"
	"casting-agency/internal/data/repository"
	"casting-agency/internal/dto/request"
	"casting-agency/internal/dto/response"
	"casting-agency/pkg/database"
	"casting-agency/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.Page[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID int64) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.Page[response.MovieResponse], error) {
	total, err := s.repo.Movie.Count(ctx, s.repo.DB)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	if err := pageBounds(total, req.Offset()); err != nil {
		s.log.Debug("Movies page out of range",
			zap.Int("page", req.Page),
			zap.Int64("total", total),
		)
		return nil, err
	}

	movies, err := s.repo.Movie.FindPage(ctx, s.repo.DB, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	return response.NewPage(response.MoviesToResponse(movies), req.Page, total, req.Limit()), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int64) (*response.MovieResponse, error) {
	movie, err := s.find(ctx, s.repo.DB, movieID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	releaseDate, err := time.Parse(entity.DateLayout, req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: release_date: %v", ErrValidation, err)
	}

	movie := &entity.Movie{
		Title:       req.Title,
		ReleaseDate: releaseDate,
	}

	if err := s.repo.Movie.Create(ctx, s.repo.DB, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID int64, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.find(ctx, s.repo.DB, movieID)
	if err != nil {
		return nil, err
	}

	// Apply partial updates only for provided fields
	updated := false

	if req.Title != nil && *req.Title != movie.Title {
		movie.Title = *req.Title
		updated = true
	}

	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse(entity.DateLayout, *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%w: release_date: %v", ErrValidation, err)
		}
		if !releaseDate.Equal(movie.ReleaseDate) {
			movie.ReleaseDate = releaseDate
			updated = true
		}
	}

	if updated {
		if err := s.repo.Movie.Update(ctx, s.repo.DB, movie); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
			}
			return nil, fmt.Errorf("update movie: %w", err)
		}
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", movieID),
		zap.Bool("was_updated", updated),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// DeleteMovie removes the movie and its cast links in one transaction.
func (s *movieService) DeleteMovie(ctx context.Context, movieID int64) error {
	err := s.repo.WithTx(ctx, func(tx database.Querier) error {
		if err := s.repo.MovieActor.DeleteByMovieID(ctx, tx, movieID); err != nil {
			return err
		}
		return s.repo.Movie.Delete(ctx, tx, movieID)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", movieID))
	return nil
}

func (s *movieService) find(ctx context.Context, db database.Querier, movieID int64) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, db, movieID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return movie, nil
}
