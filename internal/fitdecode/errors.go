package fitdecode

import "fmt"

// DecodeError reports that the FIT content could not be parsed. Err is the
// decoder's error, unmodified.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("decode fit: %v", e.Err)
	}
	return fmt.Sprintf("decode fit %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
