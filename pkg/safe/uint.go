// Package safe provides helpers for numeric operations with overflow checks.
package safe

import (
	"fmt"
	"math"
)

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint64, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int32:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case int64:
		if value < 0 {
			return 0, fmt.Errorf("value %d out of uint64 range", v)
		}
		return uint64(value), nil
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint64:
		return value, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// AddDelta offsets an unsigned base by a signed delta, guarding both directions.
func AddDelta(base uint64, delta int64) (uint64, error) {
	if delta >= 0 {
		if base > math.MaxUint64-uint64(delta) {
			return 0, fmt.Errorf("delta %d overflows base %d", delta, base)
		}
		return base + uint64(delta), nil
	}

	// -delta would overflow for math.MinInt64, so build the magnitude in two steps.
	magnitude := uint64(-(delta + 1)) + 1
	if magnitude > base {
		return 0, fmt.Errorf("delta %d underflows base %d", delta, base)
	}
	return base - magnitude, nil
}
