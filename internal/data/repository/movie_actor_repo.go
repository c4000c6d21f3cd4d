package repository

import (
	"casting-agency/internal/data/entity"
	"casting-agency/pkg/database"
	"context"
	"fmt"

	"go.uber.org/zap"
)

type MovieActorRepository interface {
	// Bridge table operations
	Create(ctx context.Context, db database.Querier, link *entity.MovieActor) error
	Exists(ctx context.Context, db database.Querier, movieID, actorID int64) (bool, error)
	DeleteByMovieID(ctx context.Context, db database.Querier, movieID int64) error
	DeleteByActorID(ctx context.Context, db database.Querier, actorID int64) error
}

type movieActorRepository struct {
	log *zap.Logger
}

func NewMovieActorRepository(log *zap.Logger) MovieActorRepository {
	return &movieActorRepository{
		log: log.With(zap.String("repository", "movie_actor")),
	}
}

func (r *movieActorRepository) Create(ctx context.Context, db database.Querier, link *entity.MovieActor) error {
	query := `INSERT INTO movies_actors (movie_id, actor_id) VALUES ($1, $2) RETURNING id`

	err := db.QueryRow(ctx, query, link.MovieID, link.ActorID).Scan(&link.ID)
	if err != nil {
		r.log.Error("Failed to create movie_actor",
			zap.Error(err),
			zap.Int64("movie_id", link.MovieID),
			zap.Int64("actor_id", link.ActorID),
		)
		return fmt.Errorf("failed to create movie_actor: %w", err)
	}

	return nil
}

func (r *movieActorRepository) Exists(ctx context.Context, db database.Querier, movieID, actorID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM movies_actors WHERE movie_id = $1 AND actor_id = $2)`

	var exists bool
	if err := db.QueryRow(ctx, query, movieID, actorID).Scan(&exists); err != nil {
		r.log.Error("Failed to check movie_actor",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
			zap.Int64("actor_id", actorID),
		)
		return false, fmt.Errorf("failed to check movie_actor: %w", err)
	}

	return exists, nil
}

func (r *movieActorRepository) DeleteByMovieID(ctx context.Context, db database.Querier, movieID int64) error {
	result, err := db.Exec(ctx, `DELETE FROM movies_actors WHERE movie_id = $1`, movieID)
	if err != nil {
		r.log.Error("Failed to delete movie_actors by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return fmt.Errorf("failed to delete movie_actors: %w", err)
	}

	r.log.Debug("Movie links removed",
		zap.Int64("movie_id", movieID),
		zap.Int64("rows", result.RowsAffected()),
	)
	return nil
}

func (r *movieActorRepository) DeleteByActorID(ctx context.Context, db database.Querier, actorID int64) error {
	result, err := db.Exec(ctx, `DELETE FROM movies_actors WHERE actor_id = $1`, actorID)
	if err != nil {
		r.log.Error("Failed to delete movie_actors by actor ID",
			zap.Error(err),
			zap.Int64("actor_id", actorID),
		)
		return fmt.Errorf("failed to delete movie_actors: %w", err)
	}

	r.log.Debug("Actor links removed",
		zap.Int64("actor_id", actorID),
		zap.Int64("rows", result.RowsAffected()),
	)
	return nil
}
