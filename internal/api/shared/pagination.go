package shared

import (
	"net/http"
	"strconv"
)

// PaginationLimits carries the configured bounds for list endpoints.
type PaginationLimits struct {
	DefaultLimit int
	MaxLimit     int
}

// Pagination is the validated slice window for a list request.
type Pagination struct {
	Offset int
	Limit  int
}

// ParsePagination reads the offset and limit query parameters, applying
// defaults for absent values and validating ranges: offset >= 0 and
// 1 <= limit <= limits.MaxLimit. It returns the offending fields when the
// inputs are invalid; callers respond with 422 in that case.
func ParsePagination(r *http.Request, limits PaginationLimits) (Pagination, []FieldError) {
	p := Pagination{
		Offset: 0,
		Limit:  limits.DefaultLimit,
	}

	var fields []FieldError

	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields = append(fields, FieldError{Field: "offset", Message: "must be an integer"})
		case offset < 0:
			fields = append(fields, FieldError{Field: "offset", Message: "must be at least 0"})
		default:
			p.Offset = offset
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields = append(fields, FieldError{Field: "limit", Message: "must be an integer"})
		case limit < 1:
			fields = append(fields, FieldError{Field: "limit", Message: "must be at least 1"})
		case limit > limits.MaxLimit:
			fields = append(fields, FieldError{Field: "limit", Message: "must be at most " + strconv.Itoa(limits.MaxLimit)})
		default:
			p.Limit = limit
		}
	}

	if len(fields) > 0 {
		return Pagination{}, fields
	}
	return p, nil
}
