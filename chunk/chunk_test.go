package chunk

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	r := NewReader([]byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc}, "test")

	v16, err := r.Uint16(binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v16, err = r.Uint16(binary.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x7856), v16)
	assert.Equal(t, 4, r.Offset())
	assert.Equal(t, 2, r.Len())

	_, err = r.Uint32(binary.BigEndian)
	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, int64(4), fe.Offset)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	// A failed read does not advance
	assert.Equal(t, []byte{0x9a, 0xbc}, r.Upto(r.Len()))

	require.NoError(t, r.Seek(1))
	assert.Equal(t, []byte{0x34, 0x56}, r.Upto(2))
	assert.Error(t, r.Seek(7))
}

func TestWriter(t *testing.T) {
	var w Writer
	w.PutUint16(binary.LittleEndian, 0x4000)
	w.PutUint8(7)
	w.PutBlock([]byte{1, 2})

	assert.Equal(t, []byte{0x00, 0x40, 0x07, 0x00, 0x00, 0x00, 0x02, 0x01, 0x02}, w.Bytes())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "unsupported platform 0x0007", (&UnsupportedValueError{Kind: "platform", Value: 7}).Error())
	assert.Equal(t, "palette index 3 out of range [0, 1)", (&RangeError{Kind: "palette", Index: 3, Len: 1}).Error())
	assert.Equal(t, `missing asset "a.png"`, (&MissingDataError{Path: "a.png"}).Error())
	assert.Equal(t, "resource: bad magic", (&FormatError{Op: "resource", Offset: -1, Err: errors.New("bad magic")}).Error())
}
