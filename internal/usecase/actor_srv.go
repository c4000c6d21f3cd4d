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

type ActorService interface {
	GetActors(ctx context.Context, req *request.PaginatedRequest) (*response.Page[response.ActorResponse], error)
	GetActorByID(ctx context.Context, actorID int64) (*response.ActorResponse, error)
	CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error)
	UpdateActor(ctx context.Context, actorID int64, req *request.ActorUpdateRequest) (*response.ActorResponse, error)
	DeleteActor(ctx context.Context, actorID int64) error
}

type actorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewActorService(repo *repository.Repository, log *zap.Logger) ActorService {
	return &actorService{
		repo: repo,
		log:  log.With(zap.String("service", "actor")),
	}
}

func (s *actorService) GetActors(ctx context.Context, req *request.PaginatedRequest) (*response.Page[response.ActorResponse], error) {
	total, err := s.repo.Actor.Count(ctx, s.repo.DB)
	if err != nil {
		return nil, fmt.Errorf("count actors: %w", err)
	}

	if err := pageBounds(total, req.Offset()); err != nil {
		return nil, err
	}

	actors, err := s.repo.Actor.FindPage(ctx, s.repo.DB, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get actors",
			zap.Error(err),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("get actors: %w", err)
	}

	return response.NewPage(response.ActorsToResponse(actors), req.Page, total, req.Limit()), nil
}

func (s *actorService) GetActorByID(ctx context.Context, actorID int64) (*response.ActorResponse, error) {
	actor, err := s.find(ctx, s.repo.DB, actorID)
	if err != nil {
		return nil, err
	}

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) CreateActor(ctx context.Context, req *request.ActorRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	gender, ok := entity.ParseGender(req.Gender)
	if !ok {
		return nil, fmt.Errorf("%w: gender %q", ErrValidation, req.Gender)
	}
	actor := &entity.Actor{
		Name:   req.Name,
		Age:    req.Age,
		Gender: gender,
	}

	if err := s.repo.Actor.Create(ctx, s.repo.DB, actor); err != nil {
		return nil, fmt.Errorf("create actor: %w", err)
	}

	s.log.Info("Actor created",
		zap.Int64("actor_id", actor.ID),
		zap.String("name", actor.Name),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

func (s *actorService) UpdateActor(ctx context.Context, actorID int64, req *request.ActorUpdateRequest) (*response.ActorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update actor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	actor, err := s.find(ctx, s.repo.DB, actorID)
	if err != nil {
		return nil, err
	}

	updated := false

	if req.Name != nil && *req.Name != actor.Name {
		actor.Name = *req.Name
		updated = true
	}

	if req.Age != nil && *req.Age != actor.Age {
		actor.Age = *req.Age
		updated = true
	}

	if req.Gender != nil {
		gender, ok := entity.ParseGender(*req.Gender)
		if !ok {
			return nil, fmt.Errorf("%w: gender %q", ErrValidation, *req.Gender)
		}
		if gender != actor.Gender {
			actor.Gender = gender
			updated = true
		}
	}

	if updated {
		if err := s.repo.Actor.Update(ctx, s.repo.DB, actor); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("actor %d: %w", actorID, ErrNotFound)
			}
			return nil, fmt.Errorf("update actor: %w", err)
		}
	}

	s.log.Info("Actor updated",
		zap.Int64("actor_id", actorID),
		zap.Bool("was_updated", updated),
	)

	resp := response.ActorToResponse(actor)
	return &resp, nil
}

// DeleteActor removes the actor and its cast links in one transaction.
func (s *actorService) DeleteActor(ctx context.Context, actorID int64) error {
	err := s.repo.WithTx(ctx, func(tx database.Querier) error {
		if err := s.repo.MovieActor.DeleteByActorID(ctx, tx, actorID); err != nil {
			return err
		}
		return s.repo.Actor.Delete(ctx, tx, actorID)
	})
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("actor %d: %w", actorID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}

	s.log.Info("Actor deleted", zap.Int64("actor_id", actorID))
	return nil
}

func (s *actorService) find(ctx context.Context, db database.Querier, actorID int64) (*entity.Actor, error) {
	actor, err := s.repo.Actor.FindByID(ctx, db, actorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("actor %d: %w", actorID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find actor: %w", err)
	}
	return actor, nil
}
