package dto

import (
	"math"
	"net/http"
	"strconv"

	"todofeed/shared/constant"
	"todofeed/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates Page and Limit from the HTTP request query.
// A parameter that is present must be an integer of at least 1 (limit at most
// constant.MaxValueLimit, and page small enough that the page window fits in an
// int), otherwise failure.InvalidPageParam or failure.InvalidLimitParam is returned. Absent parameters take the defaults.
// Sorting is never taken from the request; callers set it explicitly.
//
//	q := dto.QueryParams{}
//	if err := q.FromRequest(req); err != nil { ... }
func (q *QueryParams) FromRequest(r *http.Request) error {
	queryParams := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.Limit = constant.DefaultValueLimit

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt < 1 {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt < 1 || limitInt > constant.MaxValueLimit {
			return failure.InvalidLimitParam
		}

		q.Limit = limitInt
	}

	// the last row of the page, page*limit-1, must fit in an int
	if q.Page > math.MaxInt/q.Limit {
		return failure.InvalidPageParam
	}

	return nil
}

// WithDefaults fills zero Page and Limit with the defaults.
func (q QueryParams) WithDefaults() QueryParams {
	if q.Page <= 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit <= 0 {
		q.Limit = constant.DefaultValueLimit
	}

	return q
}

// Window returns the zero-based, inclusive row range [from, to] covered by the page.
func (q QueryParams) Window() (from, to int) {
	from = (q.Page - 1) * q.Limit
	to = q.Page*q.Limit - 1

	return from, to
}

// Offset is the number of rows skipped before the page starts.
func (q QueryParams) Offset() int {
	from, _ := q.Window()

	return from
}
