package chunk

import (
	"fmt"
	"io"
)

// FormatError reports a bad magic, a truncated record or malformed internal
// framing. It is always fatal.
type FormatError struct {
	Op     string
	Offset int64
	Err    error
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: at offset %#x: %v", e.Op, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Truncated returns a FormatError for a read that ran off the end of the
// data.
func Truncated(op string, offset int64) error {
	return &FormatError{Op: op, Offset: offset, Err: io.ErrUnexpectedEOF}
}

// UnsupportedValueError reports an unrecognised platform or data type tag.
// Callers recover from it with an unknown fallback.
type UnsupportedValueError struct {
	Kind  string
	Value int
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s 0x%04x", e.Kind, e.Value)
}

// RangeError reports a lookup outside the valid range, such as a palette or
// file index.
type RangeError struct {
	Kind  string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Kind, e.Index, e.Len)
}

// MissingDataError reports an asset referenced during import that does not
// exist.
type MissingDataError struct {
	Path string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing asset %q", e.Path)
}
