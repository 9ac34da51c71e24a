package sprite

import (
	"encoding/binary"
	"image"

	"github.com/bodgit/mgtools/chunk"
)

func pixels(m *image.Paletted) []byte {
	r := m.Bounds()
	if m.Stride == r.Dx() && m.Rect.Min == (image.Point{}) {
		return m.Pix[:r.Dx()*r.Dy()]
	}
	b := make([]byte, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := m.PixOffset(r.Min.X, y)
		b = append(b, m.Pix[i:i+r.Dx()]...)
	}
	return b
}

// Encode writes s as a sprite record.
func Encode(s *Sprite) []byte {
	var w chunk.Writer
	for _, v := range s.Variants {
		pix := pixels(v)
		w.PutUint32(binary.BigEndian, uint32(len(pix)+headerSize))
		w.PutUint32(binary.LittleEndian, uint32(v.Bounds().Dx()))
		w.PutUint32(binary.LittleEndian, uint32(v.Bounds().Dy()))
		w.Write(pix)
	}
	w.PutUint32(binary.BigEndian, 0)
	return w.Bytes()
}
