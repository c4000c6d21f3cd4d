package response

import "casting-agency/pkg/utils"

// Page is one fixed-size slice of a title- or name-ordered listing.
type Page[T any] struct {
	Items      []T
	Page       int
	Total      int64
	TotalPages int
}

func NewPage[T any](items []T, page int, total int64, perPage int) *Page[T] {
	return &Page[T]{
		Items:      items,
		Page:       page,
		Total:      total,
		TotalPages: utils.CalculateTotalPages(total, perPage),
	}
}
