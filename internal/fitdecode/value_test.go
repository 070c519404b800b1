package fitdecode

import (
	"math"
	"testing"
	"time"

	"github.com/muktihari/fit/profile/basetype"
)

func TestConvertValueInvalidSentinels(t *testing.T) {
	cases := []struct {
		name string
		bt   basetype.BaseType
		raw  any
	}{
		{"uint8", basetype.Uint8, uint8(math.MaxUint8)},
		{"uint16", basetype.Uint16, uint16(math.MaxUint16)},
		{"sint32", basetype.Sint32, int32(math.MaxInt32)},
		{"uint32", basetype.Uint32, uint32(math.MaxUint32)},
		{"enum", basetype.Enum, uint8(math.MaxUint8)},
		{"uint8z", basetype.Uint8z, uint8(0)},
		{"uint16z", basetype.Uint16z, uint16(0)},
		{"uint32z", basetype.Uint32z, uint32(0)},
		{"float32", basetype.Float32, math.Float32frombits(basetype.Float32Invalid)},
		{"float64", basetype.Float64, math.Float64frombits(basetype.Float64Invalid)},
		{"string", basetype.String, ""},
		{"nil", basetype.Uint8, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := convertValue("heart_rate", tc.bt, tc.raw, 1, 0); got != nil {
				t.Fatalf("expected nil for invalid %s, got %v", tc.name, got)
			}
		})
	}
}

func TestConvertValueZTypesKeepAllOnes(t *testing.T) {
	cases := []struct {
		name string
		bt   basetype.BaseType
		raw  any
	}{
		{"uint8z", basetype.Uint8z, uint8(math.MaxUint8)},
		{"uint16z", basetype.Uint16z, uint16(math.MaxUint16)},
		{"uint32z", basetype.Uint32z, uint32(math.MaxUint32)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := convertValue("serial_number", tc.bt, tc.raw, 1, 0); got != tc.raw {
				t.Fatalf("expected %v to stay valid for %s, got %v", tc.raw, tc.name, got)
			}
		})
	}
}

func TestConvertValueZeroIsValidForPlainTypes(t *testing.T) {
	if got := convertValue("heart_rate", basetype.Uint8, uint8(0), 1, 0); got != uint8(0) {
		t.Fatalf("expected 0 to stay valid for uint8, got %v", got)
	}
	if got := convertValue("heart_rate", basetype.Uint8z, uint8(0), 1, 0); got != nil {
		t.Fatalf("expected 0 to be invalid for uint8z, got %v", got)
	}
}

func TestConvertValueKeepsRawWithoutScale(t *testing.T) {
	got := convertValue("position_lat", basetype.Sint32, int32(1073741824), 1, 0)
	if v, ok := got.(int32); !ok || v != 1073741824 {
		t.Fatalf("expected raw int32, got %T %v", got, got)
	}
}

func TestConvertValueAppliesScaleAndOffset(t *testing.T) {
	// altitude is stored as (m + 500) * 5
	got := convertValue("altitude", basetype.Uint16, uint16(3000), 5, 500)
	v, ok := got.(float64)
	if !ok {
		t.Fatalf("expected float64, got %T", got)
	}
	if v != 100 {
		t.Fatalf("expected 100m, got %v", v)
	}

	got = convertValue("speed", basetype.Uint16, uint16(3500), 1000, 0)
	if v, ok := got.(float64); !ok || v != 3.5 {
		t.Fatalf("expected 3.5 m/s, got %v", got)
	}
}

func TestConvertValueDateTime(t *testing.T) {
	got := convertValue("timestamp", basetype.Uint32, uint32(86400), 1, 0)
	ts, ok := got.(time.Time)
	if !ok {
		t.Fatalf("expected time.Time, got %T", got)
	}
	want := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("expected %v, got %v", want, ts)
	}
}

func TestKindString(t *testing.T) {
	if KindData.String() != "data" || KindHeader.String() != "header" || KindDefinition.String() != "definition" {
		t.Fatal("unexpected kind labels")
	}
	if Kind(42).String() != "unknown" {
		t.Fatal("expected unknown label for out-of-range kind")
	}
}
