package testsupport

import (
	"sync"

	"fitframes/internal/fitdecode"
)

// Frame is an in-memory fitdecode.Frame. A key present in Fields with a nil
// value models a declared field holding the FIT invalid marker.
type Frame struct {
	FrameName string
	FrameKind fitdecode.Kind
	Fields    map[string]any
}

func (f Frame) Name() string          { return f.FrameName }
func (f Frame) Kind() fitdecode.Kind  { return f.FrameKind }
func (f Frame) Value(name string) any { return f.Fields[name] }

func (f Frame) HasField(name string) bool {
	_, ok := f.Fields[name]
	return ok
}

// Record builds a data frame of the track-sample kind.
func Record(fields map[string]any) Frame {
	return Frame{FrameName: fitdecode.NameRecord, FrameKind: fitdecode.KindData, Fields: fields}
}

// Lap builds a data frame of the lap-boundary kind.
func Lap(fields map[string]any) Frame {
	return Frame{FrameName: fitdecode.NameLap, FrameKind: fitdecode.KindData, Fields: fields}
}

// Definition builds a non-data frame carrying the given name.
func Definition(name string) Frame {
	return Frame{FrameName: name, FrameKind: fitdecode.KindDefinition}
}

// Position builds a record frame at the given raw semicircle coordinates.
func Position(lat, lon int32, extra map[string]any) Frame {
	fields := map[string]any{"position_lat": lat, "position_long": lon}
	for k, v := range extra {
		fields[k] = v
	}
	return Record(fields)
}

// ScriptedOpener replays Frames to every Open call. When Err is set the
// reader stops after FailAfter frames and reports Err.
type ScriptedOpener struct {
	Frames    []fitdecode.Frame
	FailAfter int
	Err       error
	OpenErr   error

	mu     sync.Mutex
	opened []string
	closed int
}

// Open implements fitdecode.Opener.
func (o *ScriptedOpener) Open(path string) (fitdecode.Reader, error) {
	o.mu.Lock()
	o.opened = append(o.opened, path)
	o.mu.Unlock()
	if o.OpenErr != nil {
		return nil, o.OpenErr
	}
	return &scriptedReader{opener: o, pos: -1}, nil
}

// Opened returns the paths passed to Open.
func (o *ScriptedOpener) Opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.opened...)
}

// Closed returns how many readers have been closed.
func (o *ScriptedOpener) Closed() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}

type scriptedReader struct {
	opener *ScriptedOpener
	pos    int
	err    error
	closed bool
}

func (r *scriptedReader) Next() bool {
	if r.err != nil {
		return false
	}
	next := r.pos + 1
	if r.opener.Err != nil && next >= r.opener.FailAfter {
		r.err = r.opener.Err
		return false
	}
	if next >= len(r.opener.Frames) {
		return false
	}
	r.pos = next
	return true
}

func (r *scriptedReader) Frame() fitdecode.Frame {
	if r.pos < 0 || r.pos >= len(r.opener.Frames) {
		return nil
	}
	return r.opener.Frames[r.pos]
}

func (r *scriptedReader) Err() error { return r.err }

func (r *scriptedReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.opener.mu.Lock()
	r.opener.closed++
	r.opener.mu.Unlock()
	return nil
}
