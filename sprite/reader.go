package sprite

import (
	"encoding/binary"
	"errors"
	"image"

	"github.com/bodgit/mgtools/chunk"
)

var (
	errShortVariant = errors.New("sprite: variant shorter than its header")
	errPixels       = errors.New("sprite: pixel data does not match dimensions")
	errTooMuch      = errors.New("sprite: trailing data after terminator")
)

// Decode parses a sprite record.
func Decode(b []byte) (*Sprite, error) {
	r := chunk.NewReader(b, "sprite")
	s := new(Sprite)

	for {
		n, err := r.Uint32(binary.BigEndian)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			break
		}
		if n < headerSize {
			return nil, r.Errorf(errShortVariant)
		}

		rec, err := r.Bytes(int(n))
		if err != nil {
			return nil, err
		}

		width := binary.LittleEndian.Uint32(rec[0:])
		height := binary.LittleEndian.Uint32(rec[4:])
		pix := rec[headerSize:]
		if uint64(width)*uint64(height) != uint64(len(pix)) {
			return nil, r.Errorf(errPixels)
		}

		m := image.NewPaletted(image.Rect(0, 0, int(width), int(height)), nil)
		copy(m.Pix, pix)
		s.Variants = append(s.Variants, m)
	}

	if r.Len() > 0 {
		return nil, r.Errorf(errTooMuch)
	}

	return s, nil
}
