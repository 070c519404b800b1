package spatial

import "fmt"

// ProjectionError reports a PROJ failure. Err is the library error, unmodified.
type ProjectionError struct {
	Source int
	Target int
	Err    error
}

func (e *ProjectionError) Error() string {
	return fmt.Sprintf("project EPSG:%d to EPSG:%d: %v", e.Source, e.Target, e.Err)
}

func (e *ProjectionError) Unwrap() error {
	return e.Err
}
