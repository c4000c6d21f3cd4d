package request

type MovieActorRequest struct {
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
	ActorID int64 `json:"actor_id" validate:"required,gt=0"`
}
