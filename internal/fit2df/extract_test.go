package fit2df

import (
	"testing"

	"fitframes/internal/testsupport"
)

func TestExtractPointCopiesOnlyDeclaredFields(t *testing.T) {
	row := extractPoint(testsupport.Position(0, 0, map[string]any{
		"cadence":       uint8(90),
		"temperature":   nil,
		"distance":      123.0,
		"lap":           uint16(9),
		"position_long": int32(0),
	}))
	if row == nil {
		t.Fatal("expected a row")
	}
	if row[ColCadence] != uint8(90) {
		t.Fatalf("cadence = %v", row[ColCadence])
	}
	if v, ok := row[ColTemperature]; !ok || v != nil {
		t.Fatalf("declared null temperature should map to nil, got %v (%v)", v, ok)
	}
	if _, ok := row["distance"]; ok {
		t.Fatal("non-canonical fields must not be copied")
	}
	if _, ok := row[ColLap]; ok {
		t.Fatal("lap is stamped by the converter, not read from the frame")
	}
	if _, ok := row[ColPower]; ok {
		t.Fatal("undeclared fields must stay absent")
	}
}

func TestExtractPointRejectsNonNumericPosition(t *testing.T) {
	row := extractPoint(testsupport.Record(map[string]any{"position_lat": "north", "position_long": int32(1)}))
	if row != nil {
		t.Fatalf("expected nil row, got %v", row)
	}
}

func TestExtractLapSkipsNumber(t *testing.T) {
	row := extractLap(testsupport.Lap(map[string]any{"number": int64(42), "max_speed": 5.5}))
	if _, ok := row[ColNumber]; ok {
		t.Fatal("number must never be read from the frame")
	}
	if row[ColMaxSpeed] != 5.5 {
		t.Fatalf("max_speed = %v", row[ColMaxSpeed])
	}
}

func TestSemicircleScale(t *testing.T) {
	if semicirclesPerDegree != 4294967296.0/360.0 {
		t.Fatalf("unexpected scale %v", semicirclesPerDegree)
	}
}
