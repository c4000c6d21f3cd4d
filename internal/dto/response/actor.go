package response

import (
	"casting-agency/internal/data/entity"
)

type ActorResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:     actor.ID,
		Name:   actor.Name,
		Age:    actor.Age,
		Gender: actor.Gender.Label(),
	}
}

func ActorsToResponse(actors []*entity.Actor) []ActorResponse {
	out := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		out[i] = ActorToResponse(actor)
	}
	return out
}
