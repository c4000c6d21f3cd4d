package entity

// MovieActor links exactly one movie to one actor.
type MovieActor struct {
	Base
	MovieID int64 `db:"movie_id"`
	ActorID int64 `db:"actor_id"`
}
