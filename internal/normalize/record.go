package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Record is a loosely-typed row as returned by the data store. Reference
// tables have drifted across schema revisions, so logical fields are
// extracted by trying an ordered list of candidate column names and taking
// the first present, non-empty value.
type Record map[string]any

// FirstString returns the value of the first candidate key that holds a
// non-empty string after trimming.
func (r Record) FirstString(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := asString(r[k]); ok {
			return s, true
		}
	}
	return "", false
}

// FirstNumber returns the value of the first candidate key that coerces to
// a finite number. Numeric strings count.
func (r Record) FirstNumber(keys ...string) (float64, bool) {
	for _, k := range keys {
		if n, ok := AsNumber(r[k]); ok {
			return n, true
		}
	}
	return 0, false
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		s = strings.TrimSpace(s)
		return s, s != ""
	case []byte:
		t := strings.TrimSpace(string(s))
		return t, t != ""
	}
	return "", false
}

// AsNumber coerces a loosely-typed value to a finite float64.
func AsNumber(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int16:
		n = float64(t)
	case int32:
		n = float64(t)
	case int64:
		n = float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
