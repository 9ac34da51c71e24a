package chunk

import (
	"encoding/binary"
	"errors"
)

var errBadSeek = errors.New("seek past end of data")

// Reader reads fixed width values from a byte slice. Every failure is a
// *FormatError tagged with the reader's operation name and the offset the
// read started at.
type Reader struct {
	b   []byte
	off int
	op  string
}

// NewReader returns a Reader over b. op names the codec for error messages.
func NewReader(b []byte, op string) *Reader {
	return &Reader{b: b, op: op}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.off
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.b) - r.off
}

// Size returns the length of the underlying data.
func (r *Reader) Size() int {
	return len(r.b)
}

// Seek moves to an absolute offset.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.b) {
		return &FormatError{Op: r.op, Offset: int64(off), Err: errBadSeek}
	}
	r.off = off
	return nil
}

// Bytes returns the next n bytes. The result aliases the underlying data.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Len() {
		return nil, Truncated(r.op, int64(r.off))
	}
	b := r.b[r.off : r.off+n : r.off+n]
	r.off += n
	return b, nil
}

// Upto returns at most n bytes, fewer if the data ends first.
func (r *Reader) Upto(n int) []byte {
	if n > r.Len() {
		n = r.Len()
	}
	b, _ := r.Bytes(n)
	return b
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Uint16(order binary.ByteOrder) (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (r *Reader) Uint32(order binary.ByteOrder) (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// Errorf returns a *FormatError at the current offset.
func (r *Reader) Errorf(err error) error {
	return &FormatError{Op: r.op, Offset: int64(r.off), Err: err}
}
