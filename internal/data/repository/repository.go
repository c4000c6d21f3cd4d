package repository

import (
	"casting-agency/pkg/database"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a row addressed by id does not exist.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	DB         database.PgxIface
	Movie      MovieRepository
	Actor      ActorRepository
	MovieActor MovieActorRepository

	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:         db,
		Movie:      NewMovieRepository(log),
		Actor:      NewActorRepository(log),
		MovieActor: NewMovieActorRepository(log),
		log:        log.With(zap.String("repository", "tx")),
	}
}

// WithTx runs fn inside a transaction. It commits when fn returns nil and rolls back otherwise.
func (r *Repository) WithTx(ctx context.Context, fn func(tx database.Querier) error) (err error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Warn("Failed to roll back transaction", zap.Error(rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}
