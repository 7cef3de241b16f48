package dto

import (
	"net/http"
	"net/url"
	"paroisse/shared/constant"
	"slices"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries the paging and ordering of a listing.
type QueryParams struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	SortBy  string `json:"sort_by"`
	SortDir string `json:"sort_dir"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// Malformed or non-positive numbers and unknown directions are ignored. With
// withDefaults set, a missing page or limit takes the package default.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	values := r.URL.Query()

	q.Page = positive(values, constant.RequestParamPage, q.Page)
	q.Limit = positive(values, constant.RequestParamLimit, q.Limit)

	if sortBy := values.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

func positive(values url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}

// AllowSort drops SortBy (and SortDir) unless it names one of columns.
func (q *QueryParams) AllowSort(columns ...string) {
	switch {
	case q.SortBy == "":
	case !slices.Contains(columns, q.SortBy):
		q.SortBy, q.SortDir = "", ""
	case q.SortDir == "":
		q.SortDir = SortDirAsc
	}
}
