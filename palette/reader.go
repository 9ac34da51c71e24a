package palette

import (
	"encoding/binary"
	"errors"

	"github.com/bodgit/mgtools/chunk"
)

var (
	errBadLength = errors.New("palette: byte length is not a multiple of 4")
	errTooMuch   = errors.New("palette: trailing data after color table")
)

// Decode parses a color table record.
func Decode(b []byte) (Palette, error) {
	r := chunk.NewReader(b, "palette")

	n, err := r.Uint32(binary.BigEndian)
	if err != nil {
		return nil, err
	}
	if n%entrySize != 0 {
		return nil, r.Errorf(errBadLength)
	}

	table, err := r.Bytes(int(n))
	if err != nil {
		return nil, err
	}
	if r.Len() > 0 {
		return nil, r.Errorf(errTooMuch)
	}

	p := make(Palette, 0, n/entrySize)
	for i := 0; i < len(table); i += entrySize {
		// Pad byte at i+3 is discarded
		p = append(p, Color{R: table[i+2], G: table[i+1], B: table[i]})
	}

	return p, nil
}
