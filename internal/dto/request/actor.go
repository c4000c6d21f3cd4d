package request

type ActorRequest struct {
	Name   string `json:"name" validate:"required,max=250"`
	Age    int    `json:"age" validate:"required,gt=0,max=150"`
	Gender string `json:"gender" validate:"required,gender"`
}

type ActorUpdateRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	Age    *int    `json:"age,omitempty" validate:"omitempty,gt=0,max=150"`
	Gender *string `json:"gender,omitempty" validate:"omitempty,gender"`
}
