package fit2df

import "fmt"

// FormatError reports an input path without the .fit extension. It is raised
// before the file is opened.
type FormatError struct {
	Path string
	Ext  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("input file must be a .FIT file: %s", e.Path)
}
