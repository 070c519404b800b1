package spatial

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twpayne/go-proj/v10"

	"fitframes/internal/logging"
)

// Default CRS pair: WGS84 to Stereo 70.
const (
	DefaultSourceEPSG = 4326
	DefaultTargetEPSG = 3844
)

var errLengthMismatch = errors.New("spatial: xs and ys must have the same length")

// Transformer projects coordinates from one EPSG code to another. It is not
// safe for concurrent use; Close releases the PROJ object.
type Transformer struct {
	source int
	target int
	pj     *proj.PJ
}

// NewTransformer builds an always-XY transformation between two EPSG codes.
func NewTransformer(epsgSrc, epsgTgt int) (*Transformer, error) {
	pj, err := proj.NewCRSToCRS(epsgName(epsgSrc), epsgName(epsgTgt), nil)
	if err != nil {
		return nil, &ProjectionError{Source: epsgSrc, Target: epsgTgt, Err: err}
	}
	normalized, err := pj.NormalizeForVisualization()
	pj.Destroy()
	if err != nil {
		return nil, &ProjectionError{Source: epsgSrc, Target: epsgTgt, Err: err}
	}
	return &Transformer{source: epsgSrc, target: epsgTgt, pj: normalized}, nil
}

// Transform projects the parallel coordinate slices. The inputs are left
// untouched.
func (t *Transformer) Transform(xs, ys []float64) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, errLengthMismatch
	}
	outX := make([]float64, len(xs))
	outY := make([]float64, len(ys))
	for i := range xs {
		coord, err := t.pj.Forward(proj.NewCoord(xs[i], ys[i], 0, 0))
		if err != nil {
			return nil, nil, &ProjectionError{Source: t.source, Target: t.target, Err: err}
		}
		outX[i] = coord.X()
		outY[i] = coord.Y()
	}
	return outX, outY, nil
}

// Close releases the underlying PROJ object.
func (t *Transformer) Close() {
	if t == nil || t.pj == nil {
		return
	}
	t.pj.Destroy()
	t.pj = nil
}

// ConvertEPSGPoints reprojects xs/ys from epsgSrc to epsgTgt and logs the
// conversion. The returned slices match the inputs element for element.
func ConvertEPSGPoints(ctx context.Context, logger *slog.Logger, xs, ys []float64, epsgSrc, epsgTgt int) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, errLengthMismatch
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	logging.WithContext(ctx, logging.NewComponentLogger(logger, "spatial")).Info(
		fmt.Sprintf("Convert coordinates from %s to %s", epsgName(epsgSrc), epsgName(epsgTgt)),
		logging.Int("points", len(xs)),
	)

	t, err := NewTransformer(epsgSrc, epsgTgt)
	if err != nil {
		return nil, nil, err
	}
	defer t.Close()
	return t.Transform(xs, ys)
}

func epsgName(code int) string {
	return fmt.Sprintf("EPSG:%d", code)
}
