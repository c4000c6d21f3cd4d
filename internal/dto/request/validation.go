package request

import (
	"casting-agency/internal/data/entity"
	"casting-agency/pkg/utils"

	"github.com/go-playground/validator/v10"
)

func init() {
	// gender accepts a name or label of entity.Gender in any case
	err := utils.RegisterValidation("gender", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseGender(fl.Field().String())
		return ok
	}, "Must be one of: male, female, prefer not to share")
	if err != nil {
		panic(err)
	}
}
