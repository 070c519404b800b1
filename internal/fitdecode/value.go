package fitdecode

import (
	"math"
	"time"

	"github.com/muktihari/fit/profile/basetype"
)

// FIT date_time values count seconds from this instant.
var fitEpoch = time.Date(1989, time.December, 31, 0, 0, 0, 0, time.UTC)

var dateTimeFields = map[string]struct{}{
	"timestamp":    {},
	"start_time":   {},
	"time_created": {},
}

// convertValue turns a raw decoded field value into the value callers see.
// bt is the field's declared base type and decides which sentinel is invalid.
func convertValue(name string, bt basetype.BaseType, raw any, scale, offset float64) any {
	if raw == nil || isInvalid(bt, raw) {
		return nil
	}
	if _, ok := dateTimeFields[name]; ok {
		if secs, ok := raw.(uint32); ok {
			return FromFITTime(secs)
		}
	}
	if (scale == 0 || scale == 1) && offset == 0 {
		return raw
	}
	n, ok := numeric(raw)
	if !ok {
		return raw
	}
	if scale == 0 {
		scale = 1
	}
	return n/scale - offset
}

// FromFITTime converts a FIT date_time value to UTC time.
func FromFITTime(secs uint32) time.Time {
	return fitEpoch.Add(time.Duration(secs) * time.Second)
}

// isInvalid compares v against the sentinel of its base type, so the z types
// treat 0 as invalid and keep their all-ones value. An unknown base type falls
// back to the sentinel of v's Go type.
func isInvalid(bt basetype.BaseType, v any) bool {
	switch n := v.(type) {
	case float32:
		return math.Float32bits(n) == basetype.Float32Invalid || math.IsNaN(float64(n))
	case float64:
		return math.Float64bits(n) == basetype.Float64Invalid || math.IsNaN(n)
	}
	if sentinel := bt.Invalid(); sentinel != nil {
		return v == sentinel
	}
	return isInvalidGoValue(v)
}

func isInvalidGoValue(v any) bool {
	switch n := v.(type) {
	case int8:
		return n == math.MaxInt8
	case uint8:
		return n == math.MaxUint8
	case int16:
		return n == math.MaxInt16
	case uint16:
		return n == math.MaxUint16
	case int32:
		return n == math.MaxInt32
	case uint32:
		return n == math.MaxUint32
	case int64:
		return n == math.MaxInt64
	case uint64:
		return n == math.MaxUint64
	case string:
		return n == ""
	default:
		return false
	}
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int8:
		return float64(n), true
	case uint8:
		return float64(n), true
	case int16:
		return float64(n), true
	case uint16:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
