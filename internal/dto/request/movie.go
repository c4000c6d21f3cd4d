package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required,max=250"`
	ReleaseDate string `json:"release_date" validate:"required,datetime=2006-01-02"`
}

// MovieUpdateRequest holds only the fields present in a PATCH body.
type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=250"`
	ReleaseDate *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
