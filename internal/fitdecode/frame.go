package fitdecode

// Kind classifies a decoded frame.
type Kind int

const (
	// KindHeader marks a file header surfaced at the start of each FIT sequence.
	KindHeader Kind = iota
	// KindDefinition marks a local message definition.
	KindDefinition
	// KindData marks a data-carrying message.
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindDefinition:
		return "definition"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// Message names the converter cares about.
const (
	NameRecord = "record"
	NameLap    = "lap"
)

// Frame is one decoded unit of a FIT file. A Frame is only valid until the
// Reader that produced it advances.
type Frame interface {
	Name() string
	Kind() Kind
	// HasField reports whether the frame declares the named field.
	HasField(name string) bool
	// Value returns the field value, or nil when the field is absent or holds
	// the FIT invalid marker.
	Value(name string) any
}

// Reader iterates frames in on-disk order.
//
// Next advances to the next frame and reports whether one is available.
// Decode failures stop iteration and are reported by Err.
type Reader interface {
	Next() bool
	Frame() Frame
	Err() error
	Close() error
}

// Opener opens a FIT source for reading.
type Opener interface {
	Open(path string) (Reader, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Reader, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Reader, error) {
	return f(path)
}

// FileOpener opens FIT files from disk with OpenFile.
var FileOpener Opener = OpenerFunc(func(path string) (Reader, error) {
	r, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return r, nil
})
