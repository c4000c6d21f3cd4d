package request

import "casting-agency/pkg/utils"

// PageSize is the fixed number of items on every listing page.
const PageSize = 3

type PaginatedRequest struct {
	Page int `json:"page" validate:"min=1"`
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, PageSize)
}

func (p PaginatedRequest) Limit() int {
	return PageSize
}
