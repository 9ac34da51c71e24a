package font

import (
	"encoding/binary"

	"github.com/bodgit/mgtools/chunk"
	"github.com/bodgit/mgtools/mgscii"
)

// Decode parses one page whose glyphs are height pixels tall.
func Decode(b []byte, height int, f Format) (*Page, error) {
	r := chunk.NewReader(b, "font")

	p := &Page{
		Height: height,
		Glyphs: make([]*Glyph, 0, f.Glyphs),
	}

	for i := 0; i < f.Glyphs; i++ {
		offset, err := r.Uint16(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		metrics, err := r.Uint16(binary.LittleEndian)
		if err != nil {
			return nil, err
		}
		p.Glyphs = append(p.Glyphs, &Glyph{
			Code:   f.StartCode + i,
			Char:   mgscii.Char(f.StartCode + i),
			Offset: int(offset),
			Width:  int(metrics>>widthShift) + 1,
			Flags:  uint8(metrics & flagsMask),
		})
	}

	start := r.Offset()

	for _, g := range p.Glyphs {
		if g.Width == Sentinel {
			continue
		}
		// Bitmaps past the end of the page are zero filled
		var b []byte
		if off := start + g.Offset; off <= r.Size() {
			if err := r.Seek(off); err != nil {
				return nil, err
			}
			b = r.Upto(packedSize(g.Width, height))
		}
		g.Image = Unpack(b, g.Width, height)
	}

	return p, nil
}
