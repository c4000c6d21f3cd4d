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

type ActorRepository interface {
	Create(ctx context.Context, db database.Querier, actor *entity.Actor) error
	FindByID(ctx context.Context, db database.Querier, id int64) (*entity.Actor, error)
	Update(ctx context.Context, db database.Querier, actor *entity.Actor) error
	Delete(ctx context.Context, db database.Querier, id int64) error

	FindPage(ctx context.Context, db database.Querier, limit, offset int) ([]*entity.Actor, error)
	Count(ctx context.Context, db database.Querier) (int64, error)
	FindByMovieID(ctx context.Context, db database.Querier, movieID int64) ([]*entity.Actor, error)
}

type actorRepository struct {
	log *zap.Logger
}

func NewActorRepository(log *zap.Logger) ActorRepository {
	return &actorRepository{
		log: log.With(zap.String("repository", "actor")),
	}
}

func scanActor(row scanner) (*entity.Actor, error) {
	var (
		actor  entity.Actor
		gender string
	)
	if err := row.Scan(&actor.ID, &actor.Name, &actor.Age, &gender); err != nil {
		return nil, err
	}
	actor.Gender = entity.Gender(gender)
	return &actor, nil
}

func (r *actorRepository) Create(ctx context.Context, db database.Querier, actor *entity.Actor) error {
	query := `INSERT INTO actors (name, age, gender) VALUES ($1, $2, $3) RETURNING id`

	err := db.QueryRow(ctx, query, actor.Name, actor.Age, string(actor.Gender)).Scan(&actor.ID)
	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.Name),
		)
		return fmt.Errorf("failed to create actor: %w", err)
	}

	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, db database.Querier, id int64) (*entity.Actor, error) {
	query := `SELECT id, name, age, gender FROM actors WHERE id = $1`

	actor, err := scanActor(db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.Int64("actor_id", id),
		)
		return nil, fmt.Errorf("failed to find actor: %w", err)
	}

	return actor, nil
}

func (r *actorRepository) FindPage(ctx context.Context, db database.Querier, limit, offset int) ([]*entity.Actor, error) {
	query := `
		SELECT id, name, age, gender
		FROM actors
		ORDER BY name ASC, id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find actors page",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("failed to find actors: %w", err)
	}

	return r.collect(rows)
}

func (r *actorRepository) FindByMovieID(ctx context.Context, db database.Querier, movieID int64) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.name, a.age, a.gender
		FROM actors a
		JOIN movies_actors ma ON ma.actor_id = a.id
		WHERE ma.movie_id = $1
		ORDER BY a.name ASC, a.id ASC
	`

	rows, err := db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find actors by movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("failed to find actors by movie: %w", err)
	}

	return r.collect(rows)
}

func (r *actorRepository) collect(rows pgx.Rows) ([]*entity.Actor, error) {
	defer rows.Close()

	actors := make([]*entity.Actor, 0)
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan actor: %w", err)
		}
		actors = append(actors, actor)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return actors, nil
}

func (r *actorRepository) Count(ctx context.Context, db database.Querier) (int64, error) {
	var total int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM actors`).Scan(&total); err != nil {
		r.log.Error("Failed to count actors", zap.Error(err))
		return 0, fmt.Errorf("failed to count actors: %w", err)
	}
	return total, nil
}

func (r *actorRepository) Update(ctx context.Context, db database.Querier, actor *entity.Actor) error {
	query := `UPDATE actors SET name = $2, age = $3, gender = $4 WHERE id = $1`

	result, err := db.Exec(ctx, query, actor.ID, actor.Name, actor.Age, string(actor.Gender))
	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.Int64("actor_id", actor.ID),
		)
		return fmt.Errorf("failed to update actor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, db database.Querier, id int64) error {
	result, err := db.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.Int64("actor_id", id),
		)
		return fmt.Errorf("failed to delete actor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.log.Info("Actor deleted", zap.Int64("actor_id", id))
	return nil
}
