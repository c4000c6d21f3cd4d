package repository

import (
	"casting-agency/internal/data/entity"
	"casting-agency/pkg/database"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	// CRUD Movie
	Create(ctx context.Context, db database.Querier, movie *entity.Movie) error
	FindByID(ctx context.Context, db database.Querier, id int64) (*entity.Movie, error)
	Update(ctx context.Context, db database.Querier, movie *entity.Movie) error
	Delete(ctx context.Context, db database.Querier, id int64) error

	// Listing, ordered by title
	FindPage(ctx context.Context, db database.Querier, limit, offset int) ([]*entity.Movie, error)
	Count(ctx context.Context, db database.Querier) (int64, error)
	FindByActorID(ctx context.Context, db database.Querier, actorID int64) ([]*entity.Movie, error)
}

type movieRepository struct {
	log *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		log: log.With(zap.String("repository", "movie")),
	}
}

func scanMovie(row scanner) (*entity.Movie, error) {
	var movie entity.Movie
	if err := row.Scan(&movie.ID, &movie.Title, &movie.ReleaseDate); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, db database.Querier, movie *entity.Movie) error {
	query := `INSERT INTO movies (title, release_date) VALUES ($1, $2) RETURNING id`

	err := db.QueryRow(ctx, query, movie.Title, movie.ReleaseDate).Scan(&movie.ID)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, db database.Querier, id int64) (*entity.Movie, error) {
	query := `SELECT id, title, release_date FROM movies WHERE id = $1`

	movie, err := scanMovie(db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) FindPage(ctx context.Context, db database.Querier, limit, offset int) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, release_date
		FROM movies
		ORDER BY title ASC, id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find movies page",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	movies, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	r.log.Debug("Movies found",
		zap.Int("count", len(movies)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return movies, nil
}

func (r *movieRepository) FindByActorID(ctx context.Context, db database.Querier, actorID int64) ([]*entity.Movie, error) {
	query := `
		SELECT m.id, m.title, m.release_date
		FROM movies m
		JOIN movies_actors ma ON ma.movie_id = m.id
		WHERE ma.actor_id = $1
		ORDER BY m.title ASC, m.id ASC
	`

	rows, err := db.Query(ctx, query, actorID)
	if err != nil {
		r.log.Error("Failed to find movies by actor",
			zap.Error(err),
			zap.Int64("actor_id", actorID),
		)
		return nil, fmt.Errorf("failed to find movies by actor: %w", err)
	}

	return r.collect(rows)
}

func (r *movieRepository) collect(rows pgx.Rows) ([]*entity.Movie, error) {
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context, db database.Querier) (int64, error) {
	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return total, nil
}

func (r *movieRepository) Update(ctx context.Context, db database.Querier, movie *entity.Movie) error {
	query := `UPDATE movies SET title = $2, release_date = $3 WHERE id = $1`

	result, err := db.Exec(ctx, query, movie.ID, movie.Title, movie.ReleaseDate)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("failed to update movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, db database.Querier, id int64) error {
	result, err := db.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
