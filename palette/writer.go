package palette

import (
	"encoding/binary"

	"github.com/bodgit/mgtools/chunk"
)

// Encode writes p as a color table record.
func Encode(p Palette) []byte {
	var w chunk.Writer
	w.PutUint32(binary.BigEndian, uint32(len(p)*entrySize))
	bgr := p.BGR()
	for i := 0; i < len(bgr); i += 3 {
		w.Write(bgr[i : i+3])
		w.PutUint8(0)
	}
	return w.Bytes()
}
