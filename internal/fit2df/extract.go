package fit2df

import (
	"fitframes/internal/fitdecode"
	"fitframes/internal/table"
)

// extractPoint returns the point row for a record frame, or nil when the frame
// has no usable position.
func extractPoint(frame fitdecode.Frame) table.Row {
	if !frame.HasField(fieldPositionLat) || !frame.HasField(fieldPositionLong) {
		return nil
	}
	rawLat, okLat := semicircles(frame.Value(fieldPositionLat))
	rawLon, okLon := semicircles(frame.Value(fieldPositionLong))
	if !okLat || !okLon {
		return nil
	}

	row := table.Row{
		ColLatitude:  rawLat / semicirclesPerDegree,
		ColLongitude: rawLon / semicirclesPerDegree,
	}
	for _, field := range pointFields {
		if frame.HasField(field) {
			row[field] = frame.Value(field)
		}
	}
	return row
}

// extractLap returns the lap row for a lap frame. The lap number is left to
// the caller.
func extractLap(frame fitdecode.Frame) table.Row {
	row := make(table.Row, len(lapFields)+1)
	for _, field := range lapFields {
		if frame.HasField(field) {
			row[field] = frame.Value(field)
		}
	}
	return row
}

// semicircles reads a raw position value. Null and non-numeric values report false.
func semicircles(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case uint32:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
