package spatial

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"fitframes/internal/logging"
)

const tolerance = 1e-6

// requirePROJ skips when the PROJ database cannot resolve even WGS84.
func requirePROJ(t *testing.T) {
	t.Helper()
	tr, err := NewTransformer(4326, 4326)
	if err != nil {
		t.Skipf("PROJ unavailable: %v", err)
	}
	tr.Close()
}

func TestIdentityTransform(t *testing.T) {
	requirePROJ(t)
	xs, ys, err := ConvertEPSGPoints(context.Background(), nil, []float64{0.0}, []float64{0.0}, 4326, 4326)
	if err != nil {
		t.Fatalf("ConvertEPSGPoints: %v", err)
	}
	if math.Abs(xs[0]) > tolerance || math.Abs(ys[0]) > tolerance {
		t.Fatalf("identity moved the point to (%v, %v)", xs[0], ys[0])
	}
}

func TestAlwaysXYOrder(t *testing.T) {
	requirePROJ(t)
	// Web Mercator x grows with longitude; a lat/lon swap would put 10°E on the y axis.
	xs, ys, err := ConvertEPSGPoints(context.Background(), nil, []float64{10}, []float64{0}, 4326, 3857)
	if err != nil {
		t.Fatalf("ConvertEPSGPoints: %v", err)
	}
	if xs[0] < 1_000_000 || math.Abs(ys[0]) > 1 {
		t.Fatalf("expected x≈1113195, y≈0, got (%v, %v)", xs[0], ys[0])
	}
}

func TestLengthPreserved(t *testing.T) {
	requirePROJ(t)
	lons := []float64{24.0, 25.5, 26.1, 27.9}
	lats := []float64{44.1, 45.0, 46.7, 47.2}
	xs, ys, err := ConvertEPSGPoints(context.Background(), nil, lons, lats, DefaultSourceEPSG, DefaultTargetEPSG)
	if err != nil {
		t.Fatalf("ConvertEPSGPoints: %v", err)
	}
	if len(xs) != len(lons) || len(ys) != len(lats) {
		t.Fatalf("expected %d points, got %d/%d", len(lons), len(xs), len(ys))
	}
	// Stereo 70 eastings increase west to east.
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("element order lost at %d: %v", i, xs)
		}
	}
	if lons[0] != 24.0 || lats[0] != 44.1 {
		t.Fatal("inputs must not be modified")
	}
}

func TestInvalidEPSGReturnsProjectionError(t *testing.T) {
	requirePROJ(t)
	_, _, err := ConvertEPSGPoints(context.Background(), nil, []float64{0}, []float64{0}, 4326, 999999)
	var projErr *ProjectionError
	if !errors.As(err, &projErr) {
		t.Fatalf("expected ProjectionError, got %v", err)
	}
	if projErr.Target != 999999 || projErr.Unwrap() == nil {
		t.Fatalf("unexpected error detail: %+v", projErr)
	}
}

func TestLengthMismatch(t *testing.T) {
	if _, _, err := ConvertEPSGPoints(context.Background(), nil, []float64{1, 2}, []float64{1}, 4326, 4326); !errors.Is(err, errLengthMismatch) {
		t.Fatalf("expected length mismatch error, got %v", err)
	}
}

func TestConvertLogsCodes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, logging.Options{Format: "console", Level: "info"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	// The message is emitted before PROJ is consulted, so mismatched lengths
	// are the only path that skips it.
	_, _, _ = ConvertEPSGPoints(context.Background(), logger, []float64{0}, []float64{0}, 4326, 3844)
	if !strings.Contains(buf.String(), "Convert coordinates from EPSG:4326 to EPSG:3844") {
		t.Fatalf("expected conversion message, got %q", buf.String())
	}
}

func TestProjectionErrorMessage(t *testing.T) {
	inner := errors.New("crs not found")
	err := &ProjectionError{Source: 4326, Target: 1, Err: inner}
	if err.Error() != "project EPSG:4326 to EPSG:1: crs not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Fatal("expected errors.Is to reach the library error")
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := ConvertEPSGPoints(ctx, nil, []float64{0}, []float64{0}, 4326, 4326); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
