package fit2df

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"fitframes/internal/fitdecode"
	"fitframes/internal/logging"
	"fitframes/internal/table"
)

const fitExtension = ".fit"

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for status messages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDecoder replaces the FIT decoder.
func WithDecoder(opener fitdecode.Opener) Option {
	return func(c *Converter) {
		if opener != nil {
			c.opener = opener
		}
	}
}

// WithAllocator sets the Arrow allocator for the returned tables.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *Converter) {
		if mem != nil {
			c.mem = mem
		}
	}
}

// Converter turns FIT files into lap and point tables. It holds no per-call
// state and may be shared between goroutines.
type Converter struct {
	statusMessages bool
	opener         fitdecode.Opener
	logger         *slog.Logger
	mem            memory.Allocator
}

// New constructs a Converter. statusMessages enables per-file status logging
// and never changes the returned data.
func New(statusMessages bool, opts ...Option) *Converter {
	c := &Converter{
		statusMessages: statusMessages,
		opener:         fitdecode.FileOpener,
		logger:         logging.NewNop(),
		mem:            memory.NewGoAllocator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "fit2df")
	return c
}

// StatusMessages reports whether status logging is enabled.
func (c *Converter) StatusMessages() bool {
	return c.statusMessages
}

// conversion is the state of one FitToDataframes call.
type conversion struct {
	lap     int64
	laps    []table.Row
	points  []table.Row
	skipped int
}

func (s *conversion) handle(frame fitdecode.Frame) {
	if frame.Kind() != fitdecode.KindData {
		return
	}
	switch frame.Name() {
	case fitdecode.NameRecord:
		row := extractPoint(frame)
		if row == nil {
			s.skipped++
			return
		}
		row[ColLap] = s.lap
		s.points = append(s.points, row)
	case fitdecode.NameLap:
		row := extractLap(frame)
		row[ColNumber] = s.lap
		s.laps = append(s.laps, row)
		s.lap++
	}
}

// FitToDataframes reads the FIT file at path and returns its lap table (keyed
// by lap number) and point table. On any error no tables are returned. The
// caller owns the tables and should Release them.
func (c *Converter) FitToDataframes(ctx context.Context, path string) (*table.Table, *table.Table, error) {
	if err := CheckExtension(path); err != nil {
		return nil, nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.WithContext(ctx, c.logger).With(logging.String(logging.FieldFile, filepath.Base(path)))
	started := time.Now()

	state, err := c.readFrames(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	laps, err := table.Build(c.mem, LapSchema, state.laps)
	if err != nil {
		return nil, nil, fmt.Errorf("build lap table: %w", err)
	}
	points, err := table.Build(c.mem, PointSchema, state.points)
	if err != nil {
		laps.Release()
		return nil, nil, fmt.Errorf("build point table: %w", err)
	}

	if c.statusMessages {
		logger.Info("fit file converted",
			logging.Int("laps", laps.NumRows()),
			logging.Int("points", points.NumRows()),
			logging.Int("skipped_points", state.skipped),
			logging.Duration("duration", time.Since(started)),
		)
	}
	return laps, points, nil
}

// CheckExtension returns a *FormatError unless path ends in .fit (any case).
// It performs no I/O.
func CheckExtension(path string) error {
	if ext := filepath.Ext(path); !strings.EqualFold(ext, fitExtension) {
		return &FormatError{Path: path, Ext: ext}
	}
	return nil
}

func (c *Converter) readFrames(ctx context.Context, path string) (*conversion, error) {
	reader, err := c.opener.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	state := &conversion{lap: 1}
	for reader.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		frame := reader.Frame()
		state.handle(frame)
		if c.statusMessages && frame.Kind() == fitdecode.KindData && frame.Name() == fitdecode.NameLap {
			c.logger.Debug("lap boundary",
				logging.String(logging.FieldFile, filepath.Base(path)),
				logging.Int64("lap", state.lap-1),
				logging.Int("points", len(state.points)),
			)
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return state, nil
}
