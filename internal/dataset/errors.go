package dataset

import (
	"fmt"
	"strings"
)

// FileError indicates the dataset file could not be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("dataset file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// SchemaError indicates the input header is missing required columns.
type SchemaError struct {
	Path    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset file %s: missing required column(s): %s",
		e.Path, strings.Join(e.Missing, ", "))
}

// ParseError indicates a malformed value in a data row: an unparseable
// timestamp or a non-numeric value in a numeric column. Row is the 1-based
// data row number, not counting the header.
type ParseError struct {
	Path   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("dataset file %s: row %d: %v", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("dataset file %s: row %d, column %q: bad value %q: %v",
		e.Path, e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
