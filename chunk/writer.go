package chunk

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates a record in memory.
type Writer struct {
	bytes.Buffer
}

func (w *Writer) PutUint8(v uint8) {
	w.WriteByte(v)
}

func (w *Writer) PutUint16(order binary.ByteOrder, v uint16) {
	var tmp [2]byte
	order.PutUint16(tmp[:], v)
	w.Write(tmp[:])
}

func (w *Writer) PutUint32(order binary.ByteOrder, v uint32) {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	w.Write(tmp[:])
}

// PutBlock writes b prefixed with its length as a 4-byte big-endian value,
// the framing used by pages, sprite variants and locale blocks.
func (w *Writer) PutBlock(b []byte) {
	w.PutUint32(binary.BigEndian, uint32(len(b)))
	w.Write(b)
}
