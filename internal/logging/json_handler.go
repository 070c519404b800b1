package logging

import (
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"
)

const jsonTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// jsonFields rewrites slog's built-in keys into the shape the log file uses:
// ts in UTC, a lower-case level and a short source. Attribute values that
// encoding/json cannot represent are turned into strings.
type jsonFields struct{}

func (jsonFields) replace(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 {
		switch attr.Key {
		case slog.TimeKey:
			if attr.Value.Kind() == slog.KindTime {
				return slog.String("ts", attr.Value.Time().UTC().Format(jsonTimeLayout))
			}
		case slog.LevelKey:
			if level, ok := attr.Value.Any().(slog.Level); ok {
				return slog.String(slog.LevelKey, strings.ToLower(levelLabel(level)))
			}
			return attr
		case slog.SourceKey:
			if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
				return slog.String(slog.SourceKey, filepath.Base(src.File)+":"+strconv.Itoa(src.Line))
			}
			return attr
		}
	}
	attr.Value = jsonSafe(attr.Value)
	return attr
}

// jsonSafe maps NaN and infinities (a failed projection yields them) to text
// and renders times in UTC and durations in Go notation.
func jsonSafe(v slog.Value) slog.Value {
	switch v.Kind() {
	case slog.KindFloat64:
		f := v.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return slog.StringValue(strconv.FormatFloat(f, 'g', -1, 64))
		}
	case slog.KindTime:
		return slog.StringValue(v.Time().UTC().Format(jsonTimeLayout))
	case slog.KindDuration:
		return slog.StringValue(v.Duration().String())
	}
	return v
}

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: jsonFields{}.replace,
	})
}
