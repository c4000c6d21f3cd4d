package usecase

import "errors"

// Sentinel causes. Handlers classify service errors with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrInvalidReference = errors.New("referenced resource does not exist")
	ErrAlreadyLinked    = errors.New("actor already linked to movie")
)
