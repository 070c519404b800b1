package fitdecode

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/profile/untyped/mesgnum"
	"github.com/muktihari/fit/proto"
)

// FileReader streams frames out of a FIT file on disk. Chained FIT sequences
// are read one after another; each contributes a header frame followed by its
// data messages.
type FileReader struct {
	path      string
	file      *os.File
	dec       *decoder.Decoder
	sequences int

	pending []proto.Message
	pos     int
	current Frame
	err     error
	done    bool
}

// OpenFile opens path for frame iteration. The caller must Close the reader.
func OpenFile(path string) (*FileReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fit file: %w", err)
	}
	return &FileReader{
		path: path,
		file: file,
		dec:  decoder.New(bufio.NewReader(file)),
	}, nil
}

// Next advances to the next frame.
func (r *FileReader) Next() bool {
	if r.done {
		return false
	}
	if r.pos >= len(r.pending) {
		if !r.decodeSequence() {
			r.done = true
			r.current = nil
			return false
		}
		return true
	}
	mesg := &r.pending[r.pos]
	r.pos++
	r.current = &messageFrame{mesg: mesg, name: messageName(mesg.Num)}
	return true
}

// decodeSequence reads the next FIT sequence. Only a clean EOF right after a
// complete sequence ends the stream; an empty file, a truncated header or
// trailing bytes that are not a FIT header all surface as a DecodeError.
func (r *FileReader) decodeSequence() bool {
	fit, err := r.dec.Decode()
	if err != nil {
		if r.sequences > 0 && err == io.EOF {
			return false
		}
		r.err = &DecodeError{Path: r.path, Err: err}
		return false
	}
	r.sequences++
	r.pending = fit.Messages
	r.pos = 0
	r.current = &headerFrame{
		fields: map[string]any{
			"header_size":      fit.FileHeader.Size,
			"protocol_version": uint8(fit.FileHeader.ProtocolVersion),
			"profile_version":  fit.FileHeader.ProfileVersion,
			"data_size":        fit.FileHeader.DataSize,
			"sequence":         r.sequences,
		},
	}
	return true
}

// Frame returns the frame produced by the last successful Next.
func (r *FileReader) Frame() Frame {
	return r.current
}

// Err returns the decode error that stopped iteration, if any.
func (r *FileReader) Err() error {
	return r.err
}

// Close releases the underlying file.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Sequences reports how many FIT sequences have been decoded so far.
func (r *FileReader) Sequences() int {
	return r.sequences
}

type messageFrame struct {
	mesg *proto.Message
	name string
}

func (f *messageFrame) Name() string { return f.name }

func (f *messageFrame) Kind() Kind { return KindData }

func (f *messageFrame) HasField(name string) bool {
	return f.field(name) != nil
}

func (f *messageFrame) Value(name string) any {
	field := f.field(name)
	if field == nil {
		return nil
	}
	return convertValue(field.Name, field.BaseType, field.Value.Any(), field.Scale, field.Offset)
}

func (f *messageFrame) field(name string) *proto.Field {
	for i := range f.mesg.Fields {
		field := &f.mesg.Fields[i]
		if field.FieldBase != nil && field.Name == name {
			return field
		}
	}
	return nil
}

type headerFrame struct {
	fields map[string]any
}

func (f *headerFrame) Name() string { return "file_header" }

func (f *headerFrame) Kind() Kind { return KindHeader }

func (f *headerFrame) HasField(name string) bool {
	_, ok := f.fields[name]
	return ok
}

func (f *headerFrame) Value(name string) any {
	return f.fields[name]
}

func messageName(num typedef.MesgNum) string {
	switch num {
	case mesgnum.Record:
		return NameRecord
	case mesgnum.Lap:
		return NameLap
	default:
		return num.String()
	}
}
