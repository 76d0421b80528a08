package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ToFloat64 converts a scanned or decoded value to float64.
// Supports all integer and float kinds, numeric strings and []byte (as
// returned by the MySQL driver for DECIMAL columns). Anything else, and
// strings that do not parse, return an error.
func ToFloat64(v interface{}) (float64, error) {
	switch i := v.(type) {
	case float64:
		return i, nil
	case float32:
		return float64(i), nil
	case int64:
		return float64(i), nil
	case int:
		return float64(i), nil
	case int32:
		return float64(i), nil
	case int16:
		return float64(i), nil
	case int8:
		return float64(i), nil
	case uint:
		return float64(i), nil
	case uint64:
		return float64(i), nil
	case uint32:
		return float64(i), nil
	case uint16:
		return float64(i), nil
	case uint8:
		return float64(i), nil
	case string:
		return parseFloat(i)
	case []byte:
		return parseFloat(string(i))
	case nil:
		return 0, fmt.Errorf("cannot convert nil to float64")
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", v)
	}
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return f, nil
}

// ValidProbability reports whether p lies in (0, 1].
func ValidProbability(p float64) bool {
	return p > 0 && p <= 1
}
