package table

import (
	"errors"
	"fmt"
)

var errUnsupported = errors.New("unsupported value type")

// BuildError reports a row value that cannot populate its column.
type BuildError struct {
	Column string
	Row    int
	Value  any
	Reason string
}

func (e *BuildError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("table: column %q row %d: %s", e.Column, e.Row, e.Reason)
	}
	return fmt.Sprintf("table: column %q row %d: unsupported value type %T", e.Column, e.Row, e.Value)
}
