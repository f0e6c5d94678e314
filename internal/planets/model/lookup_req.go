package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// LookupRequest is the body of POST /planet. The id is kept untyped so that a
// wrong type resolves to "not found" instead of a bind error.
type LookupRequest struct {
	ID any `json:"id"`
}

// PlanetID resolves the requested id. Integral numbers and numeric strings are
// accepted; anything else, including a missing id, reports false.
func (r *LookupRequest) PlanetID() (int, bool) {
	switch v := r.ID.(type) {
	case float64:
		return integral(v)
	case int:
		return v, true
	case int64:
		return integral(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return integral(f)
	default:
		return 0, false
	}
}

func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
