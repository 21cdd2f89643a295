package metrics

import "strconv"

const (
	DefaultLimit = 100
	maxLimit     = 1000
)

// Page is the slice of rows selected by limit/offset, plus the total.
type Page[T any] struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Rows   []T `json:"rows"`
}

func Paginate[T any](rows []T, limit, offset int) Page[T] {
	limit, offset = clampLimitOffset(limit, offset, len(rows))
	return Page[T]{Total: len(rows), Limit: limit, Offset: offset, Rows: paginate(rows, limit, offset)}
}

func paginate[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func AtoiDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return d
	}
	return v
}

func clampLimitOffset(limit, offset, n int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset > n {
		offset = n
	}
	return limit, offset
}
